package linking

import (
	"fmt"
	"os"
	"time"
)

// ArtifactWriteConfig controls how a linked artifact is placed at its
// final path, adapted from the teacher's core.AtomicWriteConfig.
type ArtifactWriteConfig struct {
	// UseFsync forces an fsync on the temp file before the rename, for
	// builds that need the artifact durable across a crash.
	UseFsync bool
	// TempSuffix names the in-progress file before the atomic rename.
	TempSuffix string
}

// DefaultArtifactWriteConfig mirrors the teacher's DefaultAtomicConfig
// defaults, renamed to this package's domain.
func DefaultArtifactWriteConfig() ArtifactWriteConfig {
	return ArtifactWriteConfig{
		UseFsync:   false,
		TempSuffix: ".forge.tmp",
	}
}

// ArtifactWriter writes a linked build artifact to its final path
// without ever leaving a partially-written file there, adapted from
// the teacher's core.AtomicWriter. Unlike the teacher's writer — which
// guards many files being edited concurrently across a CLI session —
// a forge invocation links exactly one output artifact, so the
// teacher's refcounted lock registry has been dropped: WriteFile takes
// a plain per-path lock file and then runs a temp-then-rename
// sequence; a stray lock file from a crashed prior run is detected and
// cleared.
type ArtifactWriter struct {
	config ArtifactWriteConfig
}

// NewArtifactWriter creates an ArtifactWriter with the given config.
func NewArtifactWriter(config ArtifactWriteConfig) *ArtifactWriter {
	return &ArtifactWriter{config: config}
}

// WriteFile atomically writes content to path: while holding the
// path+".lock" file, it writes to a sibling temp file first,
// optionally fsyncs it, and only then renames it over path — so a
// reader never observes a partially written artifact, mirroring the
// teacher's WriteFile minus its backup step, which doesn't apply to a
// linker output.
func (aw *ArtifactWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	lockPath := path + ".lock"
	if err := aw.acquireLock(lockPath); err != nil {
		return fmt.Errorf("linking: failed to acquire lock for %s: %w", path, err)
	}
	defer os.Remove(lockPath)

	tempPath := path + aw.config.TempSuffix

	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("linking: failed to create temp file: %w", err)
	}

	if _, err := tempFile.Write(content); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("linking: failed to write artifact: %w", err)
	}

	if aw.config.UseFsync {
		if err := tempFile.Sync(); err != nil {
			tempFile.Close()
			os.Remove(tempPath)
			return fmt.Errorf("linking: failed to sync artifact: %w", err)
		}
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("linking: failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("linking: failed to move artifact into place: %w", err)
	}

	return nil
}

// acquireLock creates lockPath exclusively, clearing it first if it's
// left over from a dead process, mirroring the staleness check in the
// teacher's acquireLock/isLockStale.
func (aw *ArtifactWriter) acquireLock(lockPath string) error {
	for attempt := 0; ; attempt++ {
		lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			fmt.Fprintf(lockFile, "%d\n", os.Getpid())
			lockFile.Sync()
			lockFile.Close()
			return nil
		}

		if !os.IsExist(err) {
			return err
		}

		if isLockStale(lockPath) {
			os.Remove(lockPath)
			continue
		}

		if attempt > 0 {
			return fmt.Errorf("artifact path is locked by another process")
		}

		time.Sleep(50 * time.Millisecond)
	}
}

func isLockStale(lockPath string) bool {
	content, err := os.ReadFile(lockPath)
	if err != nil {
		return true
	}

	var pid int
	if _, err := fmt.Sscanf(string(content), "%d", &pid); err != nil {
		return true
	}

	return !isProcessAlive(pid)
}
