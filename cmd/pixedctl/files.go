package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/internal/parallel"
)

// Output holds the flags of commands that write images.
type Output struct {
	Dest   string `help:"Destination folder for processed pictures" default:"out" type:"path"`
	Format string `help:"Output format" enum:"png,bmp,tiff" default:"png"`
}

// path returns the destination file for src.
func (o *Output) path(src string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(o.Dest, base+"."+o.Format)
}

func (o *Output) prepare() error {
	if err := os.MkdirAll(o.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", o.Dest, err)
	}
	return nil
}

// load decodes an image file into a buffer.
func load(name string) (*pixed.Buffer, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image: %w", err)
	}
	defer f.Close()

	img, kind, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}
	b, err := pixed.FromImage(img)
	if err != nil {
		return nil, kind, fmt.Errorf("could not load %s image: %w", kind, err)
	}
	return b, kind, nil
}

// save encodes b to name, choosing the encoder from the extension. The file
// is written to a temporary name first and renamed when complete.
func save(b *pixed.Buffer, name string) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	dir := filepath.Dir(name)

	out, err := os.CreateTemp(dir, filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", name, err)
	}
	done := false
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", name, cerr)
		}
		if done && err == nil {
			if rerr := os.Rename(out.Name(), name); rerr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", name, rerr)
			}
		}
		if err != nil {
			os.Remove(out.Name())
		}
	}()

	img := b.ToNRGBA()
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression, BufferPool: pngPool}
		err = enc.Encode(out, img)
	case "bmp":
		err = bmp.Encode(out, img)
	case "tif", "tiff":
		err = tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", format, name, err)
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("could not flush destination %q: %w", name, err)
	}
	done = true
	return nil
}

// eachFile runs fn for every file on the pool and reports how many failed.
func eachFile(pool *parallel.WorkerPool, files []string, fn func(logger *slog.Logger, name string) error) error {
	errs := parallel.Map(pool, files, func(name string) error {
		logger := slog.Default().With("file", name)
		err := fn(logger, name)
		if err != nil {
			logger.Error("could not process image", "error", err)
		}
		return err
	})

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	slog.Info("stats", "processed", len(files)-failed, "errors", failed, "total", len(files))
	if failed > 0 {
		return fmt.Errorf("error processing %d files", failed)
	}
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}

// parseColor parses an optional hex color flag.
func parseColor(flag, s string, fallback pixed.Color) (pixed.Color, error) {
	if s == "" {
		return fallback, nil
	}
	c, err := pixed.Hex(s)
	if err != nil {
		return pixed.Color{}, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return c, nil
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (pixed.Rect, error) {
	var r pixed.Rect
	n, err := fmt.Sscanf(s, "%d,%d,%d,%d", &r.X, &r.Y, &r.W, &r.H)
	if err != nil || n != 4 {
		return pixed.Rect{}, fmt.Errorf("invalid rectangle %q, want x,y,w,h", s)
	}
	if r.Empty() {
		return pixed.Rect{}, fmt.Errorf("empty rectangle %q", s)
	}
	return r, nil
}
