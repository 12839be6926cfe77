//go:build !windows

package linking

import (
	"os"
	"syscall"
)

// isProcessAlive reports whether pid names a live process, adapted
// from the teacher's core.isProcessAlive. forge-go only targets POSIX
// hosts (internal/streams makes the same restriction for terminal
// capability detection), so only the Unix branch is carried over.
func isProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
