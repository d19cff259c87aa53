package pixdump

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipeName = "-"

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 8, 8), 0644))
	return path
}

func TestExec_LocalFile(t *testing.T) {
	p := &Processor{NewWidth: 4, NewHeight: 2, Mode: ModeAlpha, Interp: "nearest"}

	var out bytes.Buffer
	err := p.Execute(context.Background(), &Ops{Src: writeSample(t), PipeName: pipeName, Stdout: &out})
	require.NoError(t, err)
	assert.Equal(t, "1 1 0 0 \n1 1 0 0 \n", out.String())
}

func TestExec_Pipe(t *testing.T) {
	p := &Processor{NewWidth: 2, NewHeight: 2, Mode: ModeGray}

	var out bytes.Buffer
	err := p.Execute(context.Background(), &Ops{
		Src:      pipeName,
		PipeName: pipeName,
		Stdin:    bytes.NewReader(encodePNG(t, 8, 8)),
		Stdout:   &out,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestExec_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sample.png":
			w.Write(encodePNG(t, 8, 8))
		case "/readme.txt":
			w.Write([]byte("plain text content"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := &Processor{NewWidth: 3, NewHeight: 3, Mode: ModeHSV}

	var out bytes.Buffer
	err := p.Execute(context.Background(), &Ops{Src: srv.URL + "/sample.png", PipeName: pipeName, Stdout: &out})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))

	err = p.Execute(context.Background(), &Ops{Src: srv.URL + "/readme.txt", PipeName: pipeName, Stdout: &out})
	assert.ErrorIs(t, err, ErrDecode)

	err = p.Execute(context.Background(), &Ops{Src: srv.URL + "/missing.png", PipeName: pipeName, Stdout: &out})
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestExec_MissingSource(t *testing.T) {
	p := &Processor{NewWidth: 4, NewHeight: 4}
	missing := filepath.Join(t.TempDir(), "missing.png")

	err := p.Execute(context.Background(), &Ops{Src: missing, PipeName: pipeName, Stdout: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrNotExist)

	err = p.Execute(context.Background(), &Ops{Src: t.TempDir(), PipeName: pipeName, Stdout: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrNotExist, "a directory is not a valid source")
}

func TestExec_ValidatesBeforeOpening(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.png")

	p := &Processor{NewWidth: 0, NewHeight: 4}
	err := p.Execute(context.Background(), &Ops{Src: missing, PipeName: pipeName})
	assert.ErrorIs(t, err, ErrInvalidWidth)

	p = &Processor{NewWidth: 4, NewHeight: -1}
	err = p.Execute(context.Background(), &Ops{Src: missing, PipeName: pipeName})
	assert.ErrorIs(t, err, ErrInvalidHeight)
}

func TestExec_UndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n truncated"), 0644))

	p := &Processor{NewWidth: 4, NewHeight: 4}
	var out bytes.Buffer
	err := p.Execute(context.Background(), &Ops{Src: path, PipeName: pipeName, Stdout: &out})
	assert.ErrorIs(t, err, ErrDecode)
	assert.Zero(t, out.Len())
}

func TestExec_VerboseLogging(t *testing.T) {
	var logs bytes.Buffer
	p := &Processor{NewWidth: 2, NewHeight: 2}

	err := p.Execute(context.Background(), &Ops{
		Src:      writeSample(t),
		PipeName: pipeName,
		Stdout:   &bytes.Buffer{},
		Logger:   log.New(&logs, "test: ", 0),
	})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "resized to 2x2 (rgb)")
	assert.Contains(t, logs.String(), "execution time:")
	assert.NotContains(t, logs.String(), "\x1b[", "colors are disabled by default")
}
