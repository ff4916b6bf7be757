// Package petrifile loads net definitions from files.
package petrifile

import (
	"context"
	"errors"
	"io"

	"github.com/jt05610/ptnet"
)

type Service interface {
	Load(ctx context.Context, r io.Reader) (*ptnet.Net, error)
	Version() Version
}

type Version string

const (
	V1 Version = "v1"
)

var (
	ErrUnknownPlace       = errors.New("unknown place")
	ErrUnsupportedVersion = errors.New("unsupported petrifile version")
	ErrUnknownField       = errors.New("unknown field")
)
