// Package cli holds the command line plumbing shared by the pixdump tools:
// the common flags, the source options and the mapping of failures to exit statuses.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/pixdump"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PipeName is the file name that indicates stdin is being used.
const PipeName = "-"

// Exit statuses shared by every tool.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Tool is a command line tool printing the pixel values of an image.
type Tool struct {
	Proc    *pixdump.Processor
	Codes   pixdump.ExitCodes
	Verbose bool

	stdin          io.Reader
	stdout, stderr io.Writer
	logger         *log.Logger
}

// NewTool creates a tool reading from stdin and writing to stdout and stderr.
// The diagnostics are prefixed with the program name.
func NewTool(prog string, proc *pixdump.Processor, codes pixdump.ExitCodes, stdin io.Reader, stdout, stderr io.Writer) *Tool {
	return &Tool{
		Proc:   proc,
		Codes:  codes,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: log.New(stderr, filepath.Base(prog)+": ", 0),
	}
}

// Command builds the cobra command. Flags specific to the tool can be added to the returned command.
func (t *Tool) Command(use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Dimension errors have their own exit codes and take precedence over a bad filter name.
			if err := t.Proc.Validate(); err != nil {
				return err
			}
			if _, err := pixdump.ParseFilter(t.Proc.Interp); err != nil {
				return err
			}
			return t.Proc.Execute(cmd.Context(), t.ops(args[0]))
		},
	}
	cmd.SetOut(t.stdout)
	cmd.SetErr(t.stderr)

	flags := cmd.Flags()
	flags.IntVarP(&t.Proc.NewWidth, "col", "c", 0, "output width in pixels")
	flags.IntVarP(&t.Proc.NewHeight, "row", "r", 0, "output height in pixels")
	flags.StringVarP(&t.Proc.Interp, "interp", "i", pixdump.DefaultFilter,
		"resampling filter: "+strings.Join(pixdump.FilterNames(), ", "))
	flags.BoolVarP(&t.Verbose, "verbose", "v", false, "log the processing details to stderr")
	cmd.MarkFlagRequired("col")
	cmd.MarkFlagRequired("row")

	return cmd
}

// ops returns the source options for the image at src.
func (t *Tool) ops(src string) *pixdump.Ops {
	op := &pixdump.Ops{
		Src:      src,
		PipeName: PipeName,
		Stdin:    t.stdin,
		Stdout:   t.stdout,
	}
	if t.Verbose {
		op.Logger = t.logger
		op.Color = isTerminal(t.stderr)
	}
	return op
}

// Run executes the command with the provided arguments and returns the process exit status.
// Errors not matching any of the tool's exit codes are reported as usage errors.
func (t *Tool) Run(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitOK
	}

	cause, code := t.Codes.Lookup(err, ExitUsage)
	if code == ExitUsage {
		t.logger.Print(err)
		fmt.Fprintf(t.stderr, "Usage: %s\n", cmd.UseLine())
		return code
	}
	if t.Verbose {
		t.logger.Print(err)
	} else {
		t.logger.Print(cause)
	}
	return code
}

// isTerminal reports whether w is attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
