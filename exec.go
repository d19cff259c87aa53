package pixdump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/esimov/pixdump/utils"
	"golang.org/x/term"
)

// Ops describes where the image is read from and where the result is written to.
type Ops struct {
	Src, PipeName string
	Stdin         io.Reader
	Stdout        io.Writer
	// Logger receives the verbose diagnostics. Nothing is logged when it is nil.
	Logger *log.Logger
	// Color decorates the diagnostics with ANSI colors.
	Color bool
}

// Execute validates the options, resolves the image source and prints the pixel values.
// The source can be a local file, an URL or the pipe name, in which case the image is read from stdin.
func (p *Processor) Execute(ctx context.Context, op *Ops) error {
	if err := p.Validate(); err != nil {
		return err
	}

	now := time.Now()

	src, closeFn, err := op.openSource(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	img, err := p.Load(src)
	if err != nil {
		return err
	}
	op.logf(utils.StatusMessage, "%s resized to %dx%d (%s)", op.Src, img.Bounds().Dx(), img.Bounds().Dy(), p.Mode)

	ras, err := NewRaster(img, p.Mode, p.BGR)
	if err != nil {
		return err
	}
	stdout := op.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if err := WriteRaster(stdout, ras); err != nil {
		return err
	}
	op.logf(utils.SuccessMessage, "execution time: %s", utils.FormatTime(time.Since(now)))

	return nil
}

// openSource converts the source path into a readable stream.
// The returned function releases the resources held by the stream.
func (op *Ops) openSource(ctx context.Context) (io.Reader, func(), error) {
	// Check if the source path is an URL.
	if utils.IsValidUrl(op.Src) {
		op.logf(utils.StatusMessage, "downloading %s", op.Src)
		f, err := utils.DownloadImage(ctx, op.Src)
		if err != nil {
			if errors.Is(err, utils.ErrNotImage) {
				return nil, nil, fmt.Errorf("%w: %v", ErrDecode, err)
			}
			return nil, nil, fmt.Errorf("%w: %v", ErrNotExist, err)
		}
		return f, func() {
			op.closeFile(f)
			os.Remove(f.Name())
		}, nil
	}

	// Check if the source is a pipe name or a regular file.
	if op.Src == op.PipeName {
		stdin := op.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, nil, fmt.Errorf("%w: `%s` should be used with a pipe for stdin", ErrNotExist, op.PipeName)
		}
		return stdin, func() {}, nil
	}

	fs, err := os.Stat(op.Src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotExist, err)
	}
	if !fs.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%w: %s is not a regular file", ErrNotExist, op.Src)
	}
	f, err := os.Open(op.Src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotExist, err)
	}
	return f, func() { op.closeFile(f) }, nil
}

func (op *Ops) closeFile(f *os.File) {
	if err := f.Close(); err != nil {
		op.logf(utils.ErrorMessage, "could not close the opened file: %v", err)
	}
}

// logf writes a diagnostic message in case a logger is attached.
func (op *Ops) logf(msgType utils.MessageType, format string, args ...any) {
	if op.Logger == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if op.Color {
		msg = utils.DecorateText(msg, msgType)
	}
	op.Logger.Print(msg)
}
