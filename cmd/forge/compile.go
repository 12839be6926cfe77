package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/codegen"
	"github.com/sophiekatz/forge-go/internal/config"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/source"
	"github.com/sophiekatz/forge-go/internal/streams"
	"github.com/sophiekatz/forge-go/internal/verifier"
)

// newCompileCommand mirrors frg_configuration_new_command_compile's
// option set, rewired onto a cobra.Command: -o/--output-path,
// --print-ast, --only-parse, --print-ir, -n/--dry.
func newCompileCommand() *cobra.Command {
	var outputPath string
	var printAST bool
	var onlyParse bool
	var printIR bool
	var dry bool

	cmd := &cobra.Command{
		Use:   "compile <source file>",
		Short: "Compiles one source file into an object file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return config.Wrap(config.ErrInvalidFlag, "invalid configuration", err)
			}

			return runCompile(cfg, compileOptions{
				path:       args[0],
				outputPath: outputPath,
				printAST:   printAST,
				onlyParse:  onlyParse,
				printIR:    printIR,
				dry:        dry,
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output-path", "o", "", "The path to output the *.o file to.")
	cmd.Flags().BoolVar(&printAST, "print-ast", false, "Prints out abstract syntax tree (AST) during compilation.")
	cmd.Flags().BoolVar(&onlyParse, "only-parse", false, "Only parses the source file, but does not generate machine code.")
	cmd.Flags().BoolVar(&printIR, "print-ir", false, "Prints out intermediate representation (IR) during compilation.")
	cmd.Flags().BoolVarP(&dry, "dry", "n", false, "Dry run only (parses and generates machine code, but does not write object file).")

	return cmd
}

type compileOptions struct {
	path       string
	outputPath string
	printAST   bool
	onlyParse  bool
	printIR    bool
	dry        bool
}

// runCompile walks the same pipeline as
// _frg_configuration_commands_callback_compile: open, parse,
// optionally print the AST, verify, optionally generate and print IR,
// optionally write an object file. Verification sits between parse and
// codegen here because this front end splits what the original
// bundled into frg_parse into separate parse and verify phases (see
// internal/verifier).
func runCompile(cfg *config.Config, opts compileOptions) error {
	codegenEnabled := !opts.onlyParse
	writeObjectFile := codegenEnabled && !opts.dry

	if writeObjectFile && opts.outputPath == "" {
		return config.Wrap(config.ErrMissingInput,
			"missing required argument: --output-path/-o is required when writing an object file",
			errors.New("use --only-parse or --dry to skip writing an object file"))
	}

	src, err := source.Open(opts.path)
	if err != nil {
		return config.Wrap(config.ErrUnreadableSrc, fmt.Sprintf("failed to open %q", opts.path), err)
	}

	stdout := streams.Stdout(cfg.ColorMode, cfg.UnicodeMode)
	messages := diag.NewBuffer()

	var parser source.Parser = source.NoopParser{}
	root, ok := parser.Parse(messages, src)
	if !ok {
		return renderMessages(cfg, messages)
	}

	if opts.printAST {
		printHeading(stdout, "Abstract syntax tree (AST):",
			"===========================", "━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		stdout.WriteString(ast.DebugPrint(root, ast.DebugPrintOptions{}))
		stdout.WriteString("\n")
	}

	ctx := verifier.NewContext(messages)
	verifier.New(ctx).Run(&root)

	if messages.ErrorCount > 0 {
		return renderMessages(cfg, messages)
	}

	if !codegenEnabled {
		return renderMessages(cfg, messages)
	}

	module, ok := codegen.NoopGenerator{}.Generate(root)
	if !ok {
		return renderMessages(cfg, messages)
	}

	if opts.printIR {
		stdout.WriteString("\n")
		printHeading(stdout, "Intermediate representation (IR):",
			"=================================", "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		module.Print(stdoutWriter{stdout})
	}

	if writeObjectFile {
		if !module.WriteObjectFile(messages, opts.outputPath) {
			return renderMessages(cfg, messages)
		}
	}

	return renderMessages(cfg, messages)
}

// printHeading writes a bold title followed by a glyph rule, mirroring
// compile.c's repeated print-bold-title-then-rule sequence for both
// the AST and IR dumps.
func printHeading(stream *streams.Stream, title, asciiRule, unicodeRule string) {
	stream.WriteColor(streams.ColorBold)
	stream.WriteString(title + "\n")
	stream.WriteString(stream.ChooseGlyph(asciiRule, unicodeRule))
	stream.WriteString("\n")
	stream.WriteColor(streams.ColorReset)
}
