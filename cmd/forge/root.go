package main

import (
	"github.com/spf13/cobra"

	"github.com/sophiekatz/forge-go/internal/config"
)

// newRootCommand builds forge's command tree: compile, link, version,
// with help falling back to Cobra's default, mirroring
// frg_configuration_new_root_command's command set but expressed as
// cobra.Command values rather than frg_cli_command_t.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "forge",
		Short:         "Compiles and links forge source files.",
		Long:          "forge is the command-line front end for the forge systems language compiler.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterGlobalFlags(root.PersistentFlags())

	root.AddCommand(newCompileCommand())
	root.AddCommand(newLinkCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// resolveConfig reads the global --debug/--color-mode/--unicode-mode
// flags (inherited from the root command's persistent flag set) and
// layers them over FORGE_DEBUG/FORGE_COLOR_MODE/FORGE_UNICODE_MODE.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Resolve(cmd.Flags())
}
