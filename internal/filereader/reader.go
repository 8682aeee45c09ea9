// Package filereader reads user-selected files into data-URIs off the
// caller's goroutine.
package filereader

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/pyoushmadan10/chatify/internal/datauri"
	"github.com/spf13/afero"
)

// Source is a file picked by the user.
type Source interface {
	Name() string
	// ContentType is the type reported by the picker. It may be empty.
	ContentType() string
	Open() (io.ReadCloser, error)
}

// Result is the single completion value of a read.
type Result struct {
	URI string
	Err error
}

// Reader converts Sources into base64 data-URIs.
type Reader struct {
	logger *slog.Logger
}

// New creates a Reader. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadAsDataURL starts reading src on its own goroutine. The returned channel
// receives exactly one Result and is then closed. There is no cancellation
// and no retry.
func (r *Reader) ReadAsDataURL(src Source) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		defer close(done)
		uri, err := readAll(src)
		if err != nil {
			r.logger.Debug("file read failed", "file", src.Name(), "error", err)
		}
		done <- Result{URI: uri, Err: err}
	}()
	return done
}

func readAll(src Source) (string, error) {
	f, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src.Name(), err)
	}
	return datauri.Encode(src.ContentType(), data), nil
}

// FromMultipart adapts an uploaded multipart file.
func FromMultipart(fh *multipart.FileHeader) Source {
	return multipartSource{fh: fh}
}

type multipartSource struct {
	fh *multipart.FileHeader
}

func (s multipartSource) Name() string                 { return filepath.Base(s.fh.Filename) }
func (s multipartSource) ContentType() string          { return s.fh.Header.Get("Content-Type") }
func (s multipartSource) Open() (io.ReadCloser, error) { return s.fh.Open() }

// FromFS adapts a file on an afero filesystem. The content type is sniffed
// during encoding.
func FromFS(fs afero.Fs, path string) Source {
	return fsSource{fs: fs, path: path}
}

type fsSource struct {
	fs   afero.Fs
	path string
}

func (s fsSource) Name() string                 { return filepath.Base(s.path) }
func (s fsSource) ContentType() string          { return "" }
func (s fsSource) Open() (io.ReadCloser, error) { return s.fs.Open(s.path) }
