// Package builder finds net definition files in a set of directories and
// loads them with the petrifile service registered for their extension.
package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jt05610/ptnet"
	"github.com/jt05610/ptnet/petrifile"
)

var ErrNoService = errors.New("no petrifile service for extension")

type Builder struct {
	SearchDirs []string
	seen       map[string]*ptnet.Net
	services   map[string]petrifile.Service
}

func NewBuilder(dirs ...string) *Builder {
	if dirs == nil {
		dirs = []string{"."}
	}
	return &Builder{
		SearchDirs: dirs,
		seen:       make(map[string]*ptnet.Net),
		services:   make(map[string]petrifile.Service),
	}
}

// WithService registers srv for each of the given file extensions. The
// leading dot is optional.
func (b *Builder) WithService(srv petrifile.Service, exts ...string) *Builder {
	for _, ext := range exts {
		b.services[strings.TrimPrefix(ext, ".")] = srv
	}
	return b
}

func (b *Builder) WithSearchDirs(dirs ...string) *Builder {
	b.SearchDirs = append(b.SearchDirs, dirs...)
	return b
}

func (b *Builder) service(f string) (petrifile.Service, error) {
	ext := strings.TrimPrefix(filepath.Ext(f), ".")
	if ext == "" {
		ext = "yaml"
	}
	srv, ok := b.services[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoService, ext)
	}
	return srv, nil
}

// Build loads the file named f from the first search directory holding it.
// A file is loaded once; later calls return the same net.
func (b *Builder) Build(ctx context.Context, f string) (*ptnet.Net, error) {
	if n, seen := b.seen[f]; seen {
		return n, nil
	}
	srv, err := b.service(f)
	if err != nil {
		return nil, err
	}
	for _, dir := range b.SearchDirs {
		file, err := os.Open(filepath.Join(dir, f))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		n, err := srv.Load(ctx, file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Join(dir, f), err)
		}
		b.seen[f] = n
		return n, nil
	}
	return nil, fmt.Errorf("%s: %w", f, os.ErrNotExist)
}
