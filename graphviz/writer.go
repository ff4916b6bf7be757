// Package graphviz writes a net in the DOT language and renders it with
// Graphviz.
package graphviz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jt05610/ptnet"
)

var _ ptnet.Flusher = (*Writer)(nil)

const (
	// TokenGlyph is drawn once per token for small markings.
	TokenGlyph = "•"

	// MaxGlyphs is the largest marking drawn as glyphs. Larger markings are
	// written as a number.
	MaxGlyphs = 5
)

type Config struct {
	// Name is the graph identifier written in the header.
	Name string
}

type Writer struct {
	*Config
}

// New copies config, so the caller's value is never changed.
func New(config *Config) *Writer {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.Name == "" {
		c.Name = "petrinet"
	}
	return &Writer{Config: &c}
}

// Flush writes n to out. Nodes are declared before edges and places before
// transitions.
func (w *Writer) Flush(out io.Writer, n *ptnet.Net) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "digraph %s {\n", w.Name)
	n.EachPlace(func(ref ptnet.PlaceRef, p *ptnet.Place) bool {
		label := Label(ref.Label())
		fmt.Fprintf(bw, "    %s [shape=\"circle\" xlabel=\"%s\" label=\"%s\"];\n",
			label, label, MarkingLabel(p.Marking()))
		return true
	})
	n.EachTransition(func(ref ptnet.TransitionRef, _ *ptnet.Transition) bool {
		label := Label(ref.Label())
		fmt.Fprintf(bw, "    %s [shape=\"box\" xlabel=\"%s\" label=\"\"];\n", label, label)
		return true
	})
	for _, arc := range n.FindArcsPlaceTransition() {
		writeEdge(bw, arc.Place.Label(), arc.Transition.Label())
	}
	for _, arc := range n.FindArcsTransitionPlace() {
		writeEdge(bw, arc.Transition.Label(), arc.Place.Label())
	}
	bw.WriteString("}\n")
	return ptnet.WriteError(bw.Flush())
}

func writeEdge(w io.Writer, src, dst string) {
	fmt.Fprintf(w, "    %s -> %s;\n", Label(src), Label(dst))
}

// Label removes newlines and escapes double quotes so the label fits in a
// quoted attribute. Nothing else is escaped.
func Label(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, `"`, `\"`)
}

// MarkingLabel is empty for an empty place, one glyph per token up to
// MaxGlyphs, and the decimal count above that.
func MarkingLabel(marking uint) string {
	switch {
	case marking == 0:
		return ""
	case marking <= MaxGlyphs:
		return strings.Repeat(TokenGlyph, int(marking))
	default:
		return strconv.FormatUint(uint64(marking), 10)
	}
}

// String returns the DOT text of n.
func String(n *ptnet.Net) (string, error) {
	return ptnet.FlushString(New(nil), n)
}
