package main

import (
	"io"
	"os"

	"github.com/esimov/pixdump"
	"github.com/esimov/pixdump/internal/cli"
)

// exitCodes maps the failure causes to the process exit status.
var exitCodes = pixdump.ExitCodes{
	{Cause: pixdump.ErrWrite, Code: cli.ExitFailure},
	{Cause: pixdump.ErrDecode, Code: 11},
	{Cause: pixdump.ErrResize, Code: 12},
	{Cause: pixdump.ErrInvalidWidth, Code: 21},
	{Cause: pixdump.ErrInvalidHeight, Code: 22},
	{Cause: pixdump.ErrNotExist, Code: 23},
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// newProcessor returns the processor options the tool starts from.
// The image is read unchanged: no EXIF orientation is applied.
func newProcessor() *pixdump.Processor {
	return &pixdump.Processor{Mode: pixdump.ModeAlpha}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	proc := newProcessor()
	tool := cli.NewTool(args[0], proc, exitCodes, stdin, stdout, stderr)

	cmd := tool.Command(
		"alphasilhouette -c WIDTH -r HEIGHT IMAGE",
		"Print the alpha silhouette of a resized image",
		`Print the alpha silhouette of a resized image.

Every output line is an image row. Each pixel is printed as 1 when it is
not fully transparent and 0 otherwise. Images without an alpha channel are
fully opaque. Use - as IMAGE to read from stdin or pass an http(s) URL.`,
	)

	return tool.Run(cmd, args[1:])
}
