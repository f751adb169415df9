package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "slc",
	Short: "A compiler front end for a small expression-oriented language",
	Long: `slc scans, parses, and lowers a small statically-typed,
expression-oriented source language into a linearized single-assignment
form (LAST), then hands the result to an IR emitter that writes a
readable pseudo-IR listing (not LLVM textual IR).

The front end is the three-stage core: Scanner, Parser, Lowerer. The IR
emitter and the external IR builder are downstream collaborators.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
