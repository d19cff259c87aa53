package pixdump

import "errors"

// The failure causes reported by the command line tools. Each tool maps them to its own exit status.
var (
	ErrInvalidWidth  = errors.New("non-positive value specified for width")
	ErrInvalidHeight = errors.New("non-positive value specified for height")
	ErrNotExist      = errors.New("input file does not exist")
	ErrDecode        = errors.New("cannot open image")
	ErrResize        = errors.New("resize image failed")
	ErrGrayConvert   = errors.New("convert color failed")
	ErrHSVConvert    = errors.New("convert color failed")
	ErrWrite         = errors.New("write output failed")
)

// ExitCode pairs a failure cause with the process exit status it is reported with.
type ExitCode struct {
	Cause error
	Code  int
}

// ExitCodes is an ordered table of exit statuses. The first entry matching the error chain wins.
type ExitCodes []ExitCode

// Lookup returns the matching cause and its exit status.
// It returns the error itself and the fallback status in case no entry matches.
func (c ExitCodes) Lookup(err error, fallback int) (error, int) {
	for _, ec := range c {
		if errors.Is(err, ec.Cause) {
			return ec.Cause, ec.Code
		}
	}
	return err, fallback
}
