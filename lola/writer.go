// Package lola writes a net in the input language of the LoLA model checker.
package lola

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jt05610/ptnet"
)

var _ ptnet.Flusher = (*Writer)(nil)

// Multiplicity of every arc. Weighted arcs are not supported.
const Multiplicity = 1

type Writer struct{}

func New() *Writer { return &Writer{} }

// Flush writes the PLACE, MARKING and TRANSITION blocks of n to out. A net
// without places produces no output at all.
func (w *Writer) Flush(out io.Writer, n *ptnet.Net) error {
	if n.CardinalityPlaces() == 0 {
		return nil
	}
	bw := bufio.NewWriter(out)
	places := n.Places()

	bw.WriteString("PLACE\n")
	for i, p := range places {
		fmt.Fprintf(bw, "    %s%s", p.Label(), separator(i, len(places)))
	}

	bw.WriteString("MARKING\n")
	for i, e := range n.MarkingVector().Entries() {
		fmt.Fprintf(bw, "    %s : %d%s", e.Place.Label(), e.Tokens, separator(i, len(places)))
	}

	n.EachTransition(func(ref ptnet.TransitionRef, t *ptnet.Transition) bool {
		fmt.Fprintf(bw, "TRANSITION %s\n", ref.Label())
		writeArcs(bw, "CONSUME", t.Preset())
		writeArcs(bw, "PRODUCE", t.Postset())
		bw.WriteString("\n")
		return true
	})
	return ptnet.WriteError(bw.Flush())
}

// separator ends every list entry with a comma, and the last one with a
// semicolon and a blank line.
func separator(i, length int) string {
	if i == length-1 {
		return ";\n\n"
	}
	return ",\n"
}

// writeArcs writes a CONSUME or PRODUCE sub-block. An empty set still gets a
// header so the shape of the transition stays visible.
func writeArcs(w *bufio.Writer, header string, places []ptnet.PlaceRef) {
	if len(places) == 0 {
		fmt.Fprintf(w, "  %s;\n", header)
		return
	}
	fmt.Fprintf(w, "  %s\n", header)
	for i, p := range places {
		end := ","
		if i == len(places)-1 {
			end = ";"
		}
		fmt.Fprintf(w, "    %s : %d%s\n", p.Label(), Multiplicity, end)
	}
}

// String returns the LoLA text of n.
func String(n *ptnet.Net) (string, error) {
	return ptnet.FlushString(New(), n)
}
