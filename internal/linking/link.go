package linking

import (
	"fmt"
	"os/exec"

	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/position"
)

// modeFlags returns the linker driver flags that select the requested
// artifact kind, mirroring the FRG_LINKING_MODE_* branch of frg_link.
func modeFlags(mode Mode) []string {
	switch mode {
	case ModeSharedLibrary:
		return []string{"-shared"}
	case ModeStaticLibrary:
		return []string{"-static"}
	default:
		return nil
	}
}

// Link invokes the configuration's resolved linker driver to combine
// objectPaths into outputPath as the given Mode, mirroring frg_link.
// Diagnostics are reported through messages the same way every other
// compiler phase reports through a diag.Buffer, rather than returning
// a bare bool as the C original does.
func Link(messages *diag.Buffer, config *Configuration, mode Mode, outputPath string, objectPaths []string) bool {
	if config.Kind() == LinkerKindNone {
		messages.Emit(diag.SeverityError, position.Null, "EL-1", "%s", ErrNoLinkerAvailable.Error())
		return false
	}

	args := append([]string{}, modeFlags(mode)...)
	args = append(args, "-o", outputPath)
	args = append(args, objectPaths...)

	cmd := exec.Command(config.Path(), args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		messages.Emit(diag.SeverityError, position.Null, "EL-2", "%s failed: %s", config.Kind(), condenseOutput(output, err))
		return false
	}

	return true
}

func condenseOutput(output []byte, err error) string {
	if len(output) == 0 {
		return err.Error()
	}
	return fmt.Sprintf("%s (%s)", err.Error(), output)
}
