package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hsolberg/plume/internal/config"
	"github.com/hsolberg/plume/internal/generator"
	"github.com/hsolberg/plume/internal/output"
	"github.com/hsolberg/plume/internal/scaffold"
	"github.com/hsolberg/plume/internal/workspace"
	"github.com/spf13/cobra"
)

// ClassCmd creates the 'class' command, the scaffolding pipeline itself.
//
// The stages run strictly in order, and every prompt is a cancellation
// point: select folder, obtain copyright notice, class name, namespace,
// placement, render, write. Nothing is written until all inputs are
// collected; the two class-file writes are then independent of each other.
func ClassCmd() *cobra.Command {
	var dir, namespace, headerDir, sourceDir string
	var split, dryRun, force, skip, diff bool

	cmd := &cobra.Command{
		Use:   "class [ClassName]",
		Short: "Generate a C++ header/source pair",
		Long: `Generates <ClassName>.hpp and <ClassName>.cpp with the directory's
copyright notice, namespace wrapping, and a default constructor/destructor.

Anything not given as a flag is collected interactively.

Examples:
  plume class HttpClient
  plume class Parser --namespace "net::http"
  plume class Buffer --split --header-dir include --source-dir src
  plume class Socket --dry-run`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			opts := classOptions{
				name:      name,
				dir:       dir,
				namespace: namespace,
				nsSet:     cmd.Flags().Changed("namespace"),
				split:     split,
				splitSet:  cmd.Flags().Changed("split"),
				headerDir: headerDir,
				sourceDir: sourceDir,
				dryRun:    dryRun,
				force:     force,
				skip:      skip,
				diff:      diff,
			}

			if err := runClass(opts, scaffold.TerminalPrompter{}); err != nil {
				if errors.Is(err, scaffold.ErrCancelled) {
					output.Info("Cancelled - nothing was written")
					return
				}
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Base folder (skips the folder picker)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace path, e.g. net::http (empty for none)")
	cmd.Flags().BoolVar(&split, "split", false, "Place header and source in separate folders")
	cmd.Flags().StringVar(&headerDir, "header-dir", "", "Header subfolder for split placement")
	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "Source subfolder for split placement")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files without asking")
	cmd.Flags().BoolVar(&skip, "skip", false, "Keep existing files without asking")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show diffs for existing files before deciding")

	return cmd
}

type classOptions struct {
	name      string
	dir       string
	namespace string
	nsSet     bool
	split     bool
	splitSet  bool
	headerDir string
	sourceDir string
	dryRun    bool
	force     bool
	skip      bool
	diff      bool
}

func runClass(opts classOptions, prompter scaffold.Prompter) error {
	ctx := context.Background()

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	// Flag combinations are checked before any prompt runs.
	resolver, err := generator.NewResolver(opts.force, opts.skip, opts.diff)
	if err != nil {
		return err
	}

	// Stage 1: base folder.
	base := opts.dir
	if base == "" {
		strategy, err := workspace.StrategyFor(cfg.Workspace.Mode, cfg.Workspace.Roots, prompter)
		if err != nil {
			return err
		}
		base, err = strategy.Select()
		if err != nil {
			return err
		}
	}
	output.Verbose(fmt.Sprintf("Base folder: %s", base))

	// Stage 2: copyright notice, created on first use.
	notice, err := scaffold.NewNoticeProvider(prompter).GetOrCreate(base)
	if err != nil {
		return err
	}

	// Stage 3: class name.
	name := opts.name
	if name == "" {
		var ok bool
		name, ok = prompter.Input("Class name", "")
		if !ok {
			return scaffold.ErrCancelled
		}
	}
	if name == "" {
		return fmt.Errorf("class name: %w", scaffold.ErrMissingInput)
	}

	// Stage 4: namespace.
	nsInput := opts.namespace
	if !opts.nsSet {
		var ok bool
		nsInput, ok = prompter.Input("Namespace (a::b::c, empty for none)", "")
		if !ok {
			return scaffold.ErrCancelled
		}
	}
	namespaces := scaffold.ParseNamespace(nsInput)

	// Stage 5: placement.
	useSplit := opts.split
	if !opts.splitSet {
		var ok bool
		useSplit, ok = prompter.Confirm("Place header and source in separate folders?", false)
		if !ok {
			return scaffold.ErrCancelled
		}
	}

	var placement scaffold.Placement
	if useSplit {
		hd := opts.headerDir
		if hd == "" {
			var ok bool
			hd, ok = prompter.Input("Header subfolder", cfg.Class.HeaderDir)
			if !ok {
				return scaffold.ErrCancelled
			}
		}
		sd := opts.sourceDir
		if sd == "" {
			var ok bool
			sd, ok = prompter.Input("Source subfolder", cfg.Class.SourceDir)
			if !ok {
				return scaffold.ErrCancelled
			}
		}
		placement = scaffold.SplitPlacement(filepath.Join(base, hd), filepath.Join(base, sd))
	} else {
		placement = scaffold.UnifiedPlacement(base)
	}

	// Stage 6: render.
	ops, err := scaffold.NewGenerator().Generate(scaffold.Options{
		ClassName:  name,
		Namespaces: namespaces,
		Notice:     notice,
		Placement:  placement,
		GuardStyle: scaffold.GuardStyle(cfg.Class.GuardStyle),
		HeaderExt:  cfg.Class.HeaderExt,
		SourceExt:  cfg.Class.SourceExt,
	})
	if err != nil {
		return err
	}

	// Stage 7: adjudicate conflicts, then write.
	final := ops
	if !opts.dryRun {
		final, err = resolveConflicts(ops, resolver)
		if err != nil {
			return err
		}
	}
	if len(final) == 0 {
		output.Info("Nothing to write - all files kept")
		return nil
	}

	// Conflicts were already adjudicated above, so existing files that made
	// it here are approved for overwriting.
	if err := generator.Execute(ctx, final, generator.ExecuteOptions{
		DryRun: opts.dryRun,
		Force:  true,
	}); err != nil {
		return err
	}

	if !opts.dryRun {
		output.Success("Created class: " + name)
	}
	return nil
}

// resolveConflicts filters the planned writes through the conflict resolver.
// Fresh files pass through untouched.
func resolveConflicts(ops []generator.Operation, resolver *generator.Resolver) ([]generator.Operation, error) {
	var final []generator.Operation
	for _, op := range ops {
		w, isWrite := op.(*generator.WriteFileOp)
		if !isWrite {
			final = append(final, op)
			continue
		}

		existing, err := os.ReadFile(w.Path)
		if err != nil {
			final = append(final, op)
			continue
		}

		resolution, err := resolver.ResolveConflict(w.Path, existing, w.Content)
		if err != nil {
			return nil, err
		}
		switch resolution {
		case generator.Skip:
			output.Info("Kept existing " + w.Path)
		case generator.Overwrite:
			final = append(final, op)
		case generator.Cancel:
			return nil, scaffold.ErrCancelled
		}
	}
	return final, nil
}
