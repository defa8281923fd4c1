package commands

import (
	plume "github.com/hsolberg/plume"
	"github.com/hsolberg/plume/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the plume CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "plume",
		Short: "Scaffold C++ class files from interactive prompts",
		Long: `Plume generates paired C++ header and source files.

It asks for the class name, namespace, and file placement, stamps every
generated file with the directory's shared copyright notice, and keeps
header and source in sync:
• Unified placement - both files in one folder
• Split placement - header and source folders with a computed #include path
• COPYRIGHT.txt created once per directory and reused afterwards`,
		Version: plume.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
