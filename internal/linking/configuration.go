// Package linking resolves which linker driver is available on the
// host and how the final artifact should be assembled, ported from
// lib/forge/linking/configuration.c. It also carries an atomic
// artifact writer, adapted from the teacher's core.AtomicWriter, for
// safely placing the linked output in its final path.
package linking

import (
	"fmt"
	"os/exec"
)

// LinkerKind identifies which linker driver a Configuration resolved
// to, mirroring frg_linking_linker_kind_t.
type LinkerKind int

const (
	LinkerKindNone LinkerKind = iota
	LinkerKindLDLLD
	LinkerKindLD64LLD
	LinkerKindLLDLink
)

func (k LinkerKind) String() string {
	switch k {
	case LinkerKindLDLLD:
		return "ld.lld"
	case LinkerKindLD64LLD:
		return "ld64.lld"
	case LinkerKindLLDLink:
		return "lld-link"
	default:
		return "none"
	}
}

// Mode selects the kind of artifact the linker should produce,
// mirroring frg_linking_mode_t.
type Mode int

const (
	ModeExecutable Mode = iota
	ModeSharedLibrary
	ModeStaticLibrary
)

// Configuration holds the currently selected linker and its resolved
// path on PATH, mirroring frg_linking_configuration_t.
type Configuration struct {
	kind LinkerKind
	path string
}

// resolvePath mirrors _frg_linking_resolve_path: it looks name up on
// PATH and returns ("", false) if not found, rather than a C NULL
// GString.
func resolvePath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// detectionOrder mirrors the platform-gated
// _frg_linking_get_path_{ld_lld,ld64_lld,lld_link} helpers, collapsed
// into one table since forge-go targets POSIX hosts: only ld.lld and
// ld64.lld are probed, in that order, matching the non-Windows branch
// of the C original.
var detectionOrder = []LinkerKind{LinkerKindLDLLD, LinkerKindLD64LLD}

func candidateName(kind LinkerKind) string {
	switch kind {
	case LinkerKindLDLLD:
		return "ld.lld"
	case LinkerKindLD64LLD:
		return "ld64.lld"
	case LinkerKindLLDLink:
		return "lld-link"
	default:
		return ""
	}
}

// Detect probes PATH for each known linker driver in order and
// returns a Configuration pointing at the first one found, or a
// Configuration with LinkerKindNone if none are installed, mirroring
// frg_linking_configuration_detect.
func Detect() *Configuration {
	for _, kind := range detectionOrder {
		if path, ok := resolvePath(candidateName(kind)); ok {
			return &Configuration{kind: kind, path: path}
		}
	}
	return &Configuration{kind: LinkerKindNone}
}

// Kind reports which linker driver this configuration resolved to.
func (c *Configuration) Kind() LinkerKind { return c.kind }

// Path returns the resolved linker's absolute path, mirroring
// frg_linking_linker_configuration_get_path. It panics if no linker
// was found, matching the C original's non-null precondition on its
// linker_configuration argument.
func (c *Configuration) Path() string {
	if c.kind == LinkerKindNone {
		panic("linking: no linker configuration available")
	}
	return c.path
}

// SetPath overrides the resolved linker path, mirroring
// frg_linking_linker_configuration_set_path.
func (c *Configuration) SetPath(path string) {
	if path == "" {
		panic("linking: path must not be empty")
	}
	c.path = path
}

// SetCurrentLinkerKind re-detects the configuration's kind by probing
// PATH for the requested linker, mirroring
// frg_linking_configuration_set_current_linker_kind. If the requested
// linker isn't found, the configuration falls back to
// LinkerKindNone, matching the C original's behavior.
func (c *Configuration) SetCurrentLinkerKind(kind LinkerKind) {
	name := candidateName(kind)
	if name == "" {
		c.kind = LinkerKindNone
		c.path = ""
		return
	}

	path, ok := resolvePath(name)
	if !ok {
		c.kind = LinkerKindNone
		c.path = ""
		return
	}

	c.kind = kind
	c.path = path
}

// ErrNoLinkerAvailable is returned by Link when no supported linker
// driver could be found on PATH.
var ErrNoLinkerAvailable = fmt.Errorf("linking: no supported linker found on PATH (tried: ld.lld, ld64.lld)")
