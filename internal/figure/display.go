package figure

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFormat is used when the output has no recognizable extension
const DefaultFormat = "png"

var formats = map[string]string{
	"png":  "png",
	"svg":  "svg",
	"pdf":  "pdf",
	"eps":  "eps",
	"jpg":  "jpg",
	"jpeg": "jpg",
	"tif":  "tif",
	"tiff": "tif",
}

// Display is the host's output surface
type Display interface {
	Show(ctx context.Context, fig *Figure) error
}

// DisplayFunc adapts a function to the Display interface
type DisplayFunc func(ctx context.Context, fig *Figure) error

func (fn DisplayFunc) Show(ctx context.Context, fig *Figure) error {
	return fn(ctx, fig)
}

// ParseFormat normalizes an image format name
func ParseFormat(name string) (string, error) {
	format, ok := formats[strings.ToLower(strings.TrimPrefix(name, "."))]
	if !ok {
		return "", fmt.Errorf("unsupported image format %q", name)
	}
	return format, nil
}

// FormatFromPath returns the image format implied by the file extension
func FormatFromPath(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return DefaultFormat, nil
	}
	return ParseFormat(ext)
}

// FileDisplay writes the figure to Path
type FileDisplay struct {
	Path string
}

func (d FileDisplay) Show(ctx context.Context, fig *Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	format, err := FormatFromPath(d.Path)
	if err != nil {
		return err
	}

	return writeFile(d.Path, func(w io.Writer) error {
		_, err := fig.WriteTo(w, format)
		return err
	})
}

// writeFile renders into memory first so a failed render leaves no file behind
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriterDisplay streams the figure to W, e.g. stdout
type WriterDisplay struct {
	W      io.Writer
	Format string
}

func (d WriterDisplay) Show(ctx context.Context, fig *Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	format := d.Format
	if format == "" {
		format = DefaultFormat
	}
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	_, err = fig.WriteTo(d.W, format)
	return err
}
