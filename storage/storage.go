// Package storage persists uploaded images and hands back a URL for them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrUnknownField    = errors.New("unknown upload field")
	ErrUnsupportedType = errors.New("only image uploads are allowed")
	ErrTooLarge        = errors.New("file too large")
)

// Upload field names and the sub-directory each one is stored under
const (
	FieldLogo         = "logo"
	FieldProductImage = "productImage"
)

var fieldDirs = map[string]string{
	FieldLogo:         "logo",
	FieldProductImage: "products",
}

// Store saves one uploaded file and returns its public URL. MaxBytes is the
// largest file Save accepts, or 0 for no limit.
type Store interface {
	Save(ctx context.Context, field string, fh *multipart.FileHeader) (string, error)
	MaxBytes() int64
}

// Local writes files under Dir and serves them from BaseURL + "/uploads"
type Local struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewLocal creates the upload directory tree if it is missing
func NewLocal(dir, baseURL string, maxBytes int64) (*Local, error) {
	for _, sub := range fieldDirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), maxBytes: maxBytes}, nil
}

// Dir is the root directory served at /uploads
func (l *Local) Dir() string { return l.dir }

func (l *Local) MaxBytes() int64 { return l.maxBytes }

func (l *Local) Save(ctx context.Context, field string, fh *multipart.FileHeader) (string, error) {
	sub, ok := fieldDirs[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if l.maxBytes > 0 && fh.Size > l.maxBytes {
		return "", fmt.Errorf("%w: %s exceeds the %s limit", ErrTooLarge,
			humanize.IBytes(uint64(fh.Size)), humanize.IBytes(uint64(l.maxBytes)))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("detect upload type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedType, mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := mtype.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(fh.Filename))
	}
	name := field + "-" + uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(l.dir, sub, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return l.baseURL + "/uploads/" + sub + "/" + name, nil
}

// IsClientError reports whether err was caused by the uploaded file itself
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrTooLarge) || errors.Is(err, ErrUnknownField)
}
