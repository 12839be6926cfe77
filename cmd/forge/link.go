package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sophiekatz/forge-go/internal/config"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/linking"
)

// newLinkCommand links one or more object files into an executable,
// shared library, or static library, directly exercising
// internal/linking.Detect/Link. The original compiler
// never exposed linking as its own CLI command (frg_link was only
// called from forge-testing's compilation harness); this command gives
// it a standalone front door now that forge produces object files one
// at a time via compile.
func newLinkCommand() *cobra.Command {
	var outputPath string
	var mode string

	cmd := &cobra.Command{
		Use:   "link <object file>...",
		Short: "Links one or more object files into an artifact.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return config.Wrap(config.ErrInvalidFlag, "invalid configuration", err)
			}

			if outputPath == "" {
				return config.CLIError{
					Code:    config.ErrMissingInput,
					Message: "missing required argument: --output-path/-o",
				}
			}

			linkMode, err := parseLinkMode(mode)
			if err != nil {
				return config.Wrap(config.ErrInvalidFlag, "invalid --mode", err)
			}

			return runLink(cfg, linkMode, outputPath, args)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output-path", "o", "", "The path to write the linked artifact to.")
	cmd.Flags().StringVar(&mode, "mode", "executable", "Artifact kind: executable, shared-library, or static-library.")

	return cmd
}

func parseLinkMode(s string) (linking.Mode, error) {
	switch s {
	case "executable":
		return linking.ModeExecutable, nil
	case "shared-library":
		return linking.ModeSharedLibrary, nil
	case "static-library":
		return linking.ModeStaticLibrary, nil
	default:
		return 0, fmt.Errorf("unknown link mode %q", s)
	}
}

func runLink(cfg *config.Config, mode linking.Mode, outputPath string, objectPaths []string) error {
	messages := diag.NewBuffer()
	linkConfig := linking.Detect()

	if !linking.Link(messages, linkConfig, mode, outputPath, objectPaths) {
		return renderMessages(cfg, messages)
	}

	return renderMessages(cfg, messages)
}
