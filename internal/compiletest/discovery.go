package compiletest

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFixtureFiles globs root for *.forge fixture source files,
// mirroring the teacher's util.ExpandGlobs use of doublestar for
// glob-based file targeting, repurposed here to discover
// testdata/compilation/*.forge — the same source text each Fixture's
// BuildAST constructs by hand until a real parser is wired in (see
// Fixture's doc comment). Once a parser exists, a Source.Parser can
// replace BuildAST and this discovery list becomes the fixture's
// actual input rather than documentation of it.
func DiscoverFixtureFiles(root string) ([]string, error) {
	return doublestar.Glob(os.DirFS(root), "**/*.forge")
}

// LoadFixtureFile reads the full contents of a fixture file found by
// DiscoverFixtureFiles.
func LoadFixtureFile(root, relPath string) (string, error) {
	content, err := os.ReadFile(filepath.Join(root, relPath))
	if err != nil {
		return "", err
	}
	return string(content), nil
}
