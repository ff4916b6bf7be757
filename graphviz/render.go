package graphviz

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	gv "github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/jt05610/ptnet"
)

type Format string

const (
	SVG  Format = "svg"
	PNG  Format = "png"
	JPG  Format = "jpg"
	XDOT Format = "xdot"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case SVG, PNG, JPG, XDOT:
		return f, nil
	}
	return "", fmt.Errorf("unsupported render format %q", s)
}

func (f Format) gv() gv.Format {
	switch f {
	case PNG:
		return gv.PNG
	case JPG:
		return gv.JPG
	case XDOT:
		return gv.XDOT
	default:
		return gv.SVG
	}
}

type RankDir string

const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

// Renderer lays out the DOT export of a net and renders it as an image.
type Renderer struct {
	Format
	RankDir
}

func NewRenderer(format Format, rankDir RankDir) *Renderer {
	if format == "" {
		format = SVG
	}
	if rankDir == "" {
		rankDir = LeftToRight
	}
	return &Renderer{Format: format, RankDir: rankDir}
}

var _ ptnet.Flusher = (*Renderer)(nil)

// Flush renders n to out. Node identifiers in the DOT text are the raw
// labels, so labels must be valid DOT identifiers for parsing to succeed.
func (r *Renderer) Flush(out io.Writer, n *ptnet.Net) error {
	var buf bytes.Buffer
	if err := New(nil).Flush(&buf, n); err != nil {
		return err
	}
	graph, err := gv.ParseBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("parse dot: %w", err)
	}
	g := gv.New()
	defer func() {
		_ = graph.Close()
		_ = g.Close()
	}()
	graph.SetRankDir(cgraph.RankDir(r.RankDir))
	if err := g.Render(graph, r.Format.gv(), out); err != nil {
		return ptnet.WriteError(err)
	}
	return nil
}
