package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-slc/slc/internal/compileerr"
	"github.com/go-slc/slc/internal/config"
	"github.com/go-slc/slc/internal/emitter"
	"github.com/go-slc/slc/internal/lexer"
	"github.com/go-slc/slc/internal/lower"
	"github.com/go-slc/slc/internal/parser"
	"github.com/spf13/cobra"
)

var buildVerbose bool

// buildCmd is the real end-to-end CLI surface: a single positional
// source file, no required flags, writing `<stem>.ll` beside the input.
var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Compile a source file to textual IR",
	Long: `Scan, parse, and lower a source file, then hand the result to the
IR emitter. Writes <stem>.ll next to the input file on success.

An optional slc.yaml next to the input may pin the output directory and
escalate scanner warnings to build failures.`,
	Args: cobra.ExactArgs(1),
	RunE: buildScript,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "verbose output")
}

func buildScript(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	dir := filepath.Dir(filename)
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("failed to read slc.yaml: %w", err)
	}

	if buildVerbose {
		fmt.Fprintf(os.Stderr, "compiling %s...\n", filename)
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		if tok.Type == lexer.EOF {
			break
		}
	}

	if scanErrs := l.Errors(); len(scanErrs) > 0 {
		for _, se := range scanErrs {
			fmt.Fprintf(os.Stderr, "scan: illegal byte at %s: %s\n", se.Pos, se.Message)
		}
		if cfg.WarningsAsErrors {
			return fmt.Errorf("scanning produced %d warning(s), escalated to errors by slc.yaml", len(scanErrs))
		}
	}

	root, parseErrs := parser.ParseProgram(input)
	if len(parseErrs) > 0 {
		first := parseErrs[0]
		ce := &compileerr.Error{
			Stage: compileerr.Parse, Kind: first.Code, TokenIdx: first.TokenIdx,
			Hint: first.Hint, Line: first.Pos.Line, Col: first.Pos.Column,
			Source: input, File: filename,
		}
		fmt.Fprintln(os.Stderr, ce.Brief())
		return fmt.Errorf("parsing failed")
	}

	units, lowerErr := lower.Lower(root)
	if lowerErr != nil {
		ce := &compileerr.Error{
			Stage: compileerr.Lower, Kind: lowerErr.Code,
			Hint: lowerErr.Hint, Line: lowerErr.Pos.Line, Col: lowerErr.Pos.Column,
			Source: input, File: filename,
		}
		fmt.Fprintln(os.Stderr, ce.Brief())
		return fmt.Errorf("lowering failed")
	}

	out := emitter.Emit(units)

	outDir := dir
	if cfg.OutputDir != "" {
		outDir = cfg.OutputDir
	}
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filepath.Base(filename), ext)
	outFile := filepath.Join(outDir, stem+".ll")

	if err := os.WriteFile(outFile, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if buildVerbose {
		fmt.Fprintf(os.Stderr, "wrote %s (%d units)\n", outFile, len(units))
	} else {
		fmt.Printf("compiled %s -> %s\n", filename, outFile)
	}

	return nil
}
