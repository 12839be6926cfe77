package linking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sophiekatz/forge-go/internal/diag"
)

func TestLinkerKindString(t *testing.T) {
	cases := map[LinkerKind]string{
		LinkerKindNone:    "none",
		LinkerKindLDLLD:   "ld.lld",
		LinkerKindLD64LLD: "ld64.lld",
		LinkerKindLLDLink: "lld-link",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("LinkerKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestDetectFallsBackToNoneWhenNothingOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	config := Detect()
	if config.Kind() != LinkerKindNone {
		t.Fatalf("expected LinkerKindNone with empty PATH, got %v", config.Kind())
	}
}

func TestConfigurationPathPanicsWithoutLinker(t *testing.T) {
	config := &Configuration{kind: LinkerKindNone}

	defer func() {
		if recover() == nil {
			t.Fatal("expected Path to panic when no linker is configured")
		}
	}()

	config.Path()
}

func TestLinkReportsErrorWhenNoLinkerAvailable(t *testing.T) {
	messages := diag.NewBuffer()
	config := &Configuration{kind: LinkerKindNone}

	ok := Link(messages, config, ModeExecutable, "out", nil)
	if ok {
		t.Fatal("expected Link to fail with no linker configured")
	}
	if messages.ErrorCount == 0 {
		t.Fatal("expected an error diagnostic to be emitted")
	}
}

func TestArtifactWriterWriteFileIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	writer := NewArtifactWriter(DefaultArtifactWriteConfig())

	if err := writer.WriteFile(path, []byte("artifact-bytes"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "artifact-bytes" {
		t.Errorf("got %q, want %q", content, "artifact-bytes")
	}

	if _, err := os.Stat(path + DefaultArtifactWriteConfig().TempSuffix); !os.IsNotExist(err) {
		t.Error("expected temp file to be gone after rename")
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Error("expected lock file to be removed after write")
	}
}

func TestArtifactWriterOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("setup WriteFile failed: %v", err)
	}

	writer := NewArtifactWriter(DefaultArtifactWriteConfig())
	if err := writer.WriteFile(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "new" {
		t.Errorf("got %q, want %q", content, "new")
	}
}

func TestIsLockStaleForUnparsablePid(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, "x.lock")

	if err := os.WriteFile(lockPath, []byte("not-a-pid"), 0o644); err != nil {
		t.Fatalf("setup WriteFile failed: %v", err)
	}

	if !isLockStale(lockPath) {
		t.Error("expected an unparsable lock file to be treated as stale")
	}
}
