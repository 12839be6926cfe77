package compiletest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekatz/forge-go/internal/codegen"
)

func TestFixturesPassTheirOwnExpectations(t *testing.T) {
	for _, fixture := range Fixtures {
		fixture := fixture
		t.Run(fixture.Name, func(t *testing.T) {
			result := Run(fixture, codegen.NoopGenerator{})
			assert.True(t, result.Passed, "failures: %v", result.Failures)
		})
	}
}

func TestRunReportsCleanSuccessFixture(t *testing.T) {
	result := Run(Fixtures[0], codegen.NoopGenerator{})
	require.True(t, result.Passed)
	assert.Equal(t, 0, result.Messages.ErrorCount)
	assert.Equal(t, 0, result.Messages.WarningCount)
}

func TestRunDetectsUnexpectedPass(t *testing.T) {
	fixture := Fixtures[1]
	fixture.Kind = KindExpectSuccess

	result := Run(fixture, codegen.NoopGenerator{})
	assert.False(t, result.Passed)
}

func TestDiscoverFixtureFilesFindsTestdata(t *testing.T) {
	files, err := DiscoverFixtureFiles("testdata")
	require.NoError(t, err)
	assert.Len(t, files, len(Fixtures))
}

func TestLoadFixtureFileMatchesFixtureSourceText(t *testing.T) {
	content, err := LoadFixtureFile("testdata", "compilation/function-return-type-matching.forge")
	require.NoError(t, err)
	assert.Equal(t, Fixtures[0].SourceText, content)
}
