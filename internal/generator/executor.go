package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute validates all operations up front, then runs them.
//
// Validation failures abort before anything is written. Execution failures
// do NOT stop the remaining operations: generated files are independent
// artifacts, and a failed header write must not suppress the source write.
// All execution errors are joined into the returned error.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Execute or report
	var errs []error
	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s%s\n", op.Description(), dryRunNote(op))
			continue
		}

		if err := op.Execute(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", op.Description(), err))
			continue
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return errors.Join(errs...)
}

// dryRunNote flags writes whose target already exists, so a dry run shows
// which files a real run would have to overwrite or skip.
func dryRunNote(op Operation) string {
	w, ok := op.(*WriteFileOp)
	if !ok {
		return ""
	}
	if _, err := os.Stat(w.Path); err == nil {
		return " (would overwrite existing file)"
	}
	return ""
}
