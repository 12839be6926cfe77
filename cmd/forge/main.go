// Command forge is the compiler's command-line entry point: a Cobra
// root command with compile, link, and version subcommands (help is
// Cobra's default), mirroring _frg_configuration_new_root_command's
// shape but built on cobra.Command trees rather than the hand-rolled
// frg_cli_program_t the original used.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newRootCommand().Execute()
	if err == nil {
		return
	}

	var exitCode exitCodeError
	if errors.As(err, &exitCode) {
		os.Exit(int(exitCode))
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
