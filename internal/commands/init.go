package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/hsolberg/plume/internal/config"
	"github.com/hsolberg/plume/internal/generator"
	"github.com/hsolberg/plume/internal/output"
	"github.com/hsolberg/plume/internal/scaffold"
	"github.com/spf13/cobra"
)

const starterConfig = `workspace:
  roots:
    - .
  mode: narrow

class:
  guard_style: pragma
  header_ext: .hpp
  source_ext: .cpp
  header_dir: include
  source_dir: src
`

// InitCmd creates the 'init' command, which seeds plume.yml and the
// directory's COPYRIGHT.txt. Both files are written as a unit: a failure
// removes whatever was already written.
func InitCmd() *cobra.Command {
	var author, project string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a plume project in the current directory",
		Long: `Creates a starter plume.yml and, if missing, COPYRIGHT.txt.

The copyright notice is rendered from the author and project name and then
reused verbatim by every 'plume class' run in this directory.

Example:
  plume init --author "Jane" --project "Nebula"`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runInit(author, project, scaffold.TerminalPrompter{}); err != nil {
				if errors.Is(err, scaffold.ErrCancelled) {
					output.Info("Cancelled - nothing was written")
					return
				}
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Copyright holder for the notice")
	cmd.Flags().StringVar(&project, "project", "", "Project name for the notice")

	return cmd
}

func runInit(author, project string, prompter scaffold.Prompter) error {
	if config.Detect(".") {
		return fmt.Errorf("%s already exists", config.FileName)
	}

	if author == "" {
		var ok bool
		author, ok = prompter.Input("Author", "")
		if !ok {
			return scaffold.ErrCancelled
		}
		if author == "" {
			return fmt.Errorf("author: %w", scaffold.ErrMissingInput)
		}
	}

	if project == "" {
		var ok bool
		project, ok = prompter.Input("Project name", "")
		if !ok {
			return scaffold.ErrCancelled
		}
		if project == "" {
			return fmt.Errorf("project name: %w", scaffold.ErrMissingInput)
		}
	}

	tx := generator.NewTransaction()
	defer tx.Rollback()

	tx.StageFile(config.FileName, []byte(starterConfig), 0644)

	if _, err := os.Stat(scaffold.NoticeFileName); os.IsNotExist(err) {
		notice, err := scaffold.RenderNotice(author, project)
		if err != nil {
			return err
		}
		tx.StageFile(scaffold.NoticeFileName, []byte(notice), 0644)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	output.Success("Initialized plume project: " + project)
	output.Info("Next steps:")
	output.Step("plume class MyClass")
	output.Step("plume class MyClass --split   # header/ and src/ folders")
	return nil
}
