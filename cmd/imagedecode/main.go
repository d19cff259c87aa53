package main

import (
	"io"
	"os"

	"github.com/esimov/pixdump"
	"github.com/esimov/pixdump/internal/cli"
	"github.com/spf13/cobra"
)

// exitCodes maps the failure causes to the process exit status.
var exitCodes = pixdump.ExitCodes{
	{Cause: pixdump.ErrWrite, Code: cli.ExitFailure},
	{Cause: pixdump.ErrDecode, Code: 10},
	{Cause: pixdump.ErrResize, Code: 11},
	{Cause: pixdump.ErrGrayConvert, Code: 12},
	{Cause: pixdump.ErrHSVConvert, Code: 13},
	{Cause: pixdump.ErrInvalidWidth, Code: 21},
	{Cause: pixdump.ErrInvalidHeight, Code: 22},
	{Cause: pixdump.ErrNotExist, Code: 23},
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// newProcessor returns the processor options the tool starts from.
// The color image is decoded the same way as a photo viewer would show it.
func newProcessor() *pixdump.Processor {
	return &pixdump.Processor{AutoOrient: true}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	proc := newProcessor()
	tool := cli.NewTool(args[0], proc, exitCodes, stdin, stdout, stderr)

	var gray, hue, hsv bool
	cmd := tool.Command(
		"imagedecode -c WIDTH -r HEIGHT [-g | -u | -s] IMAGE",
		"Print the pixel values of a resized image as text",
		`Print the pixel values of a resized image as text.

Every output line is an image row. Each pixel is printed as its R G B values,
its gray level (-g), its hue (-u) or its H S V values (-s).
The hue is in the 0-179 range, saturation and value in the 0-255 range.
Use - as IMAGE to read from stdin or pass an http(s) URL.`,
	)
	cmd.PreRun = func(*cobra.Command, []string) {
		proc.Mode = pixdump.SelectMode(gray, hue, hsv)
	}

	flags := cmd.Flags()
	flags.BoolVarP(&gray, "gray", "g", false, "print the grayscale level of each pixel")
	flags.BoolVarP(&hue, "hue", "u", false, "print the hue of each pixel")
	flags.BoolVarP(&hsv, "hsv", "s", false, "print the hue, saturation and value of each pixel")
	flags.BoolVar(&proc.BGR, "bgr", false, "print the RGB channels in blue, green, red order")

	return tool.Run(cmd, args[1:])
}
