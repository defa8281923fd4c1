package main

import (
	"os"

	"github.com/hsolberg/plume/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.ClassCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
