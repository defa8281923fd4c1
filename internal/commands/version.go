package commands

import (
	"fmt"

	plume "github.com/hsolberg/plume"
	"github.com/spf13/cobra"
)

// VersionCmd creates the 'version' command.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("plume v%s\n", plume.Version)
		},
	}
}
