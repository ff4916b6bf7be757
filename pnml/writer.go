// Package pnml writes a net as a Petri Net Markup Language document.
package pnml

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/jt05610/ptnet"
)

var _ ptnet.Flusher = (*Writer)(nil)

const (
	Namespace = "http://www.pnml.org/version-2009/grammar/pnml"
	Grammar   = "http://www.pnml.org/version-2009/grammar/ptnet"
	Header    = `<?xml version="1.0" encoding="utf-8"?>`
	NetID     = "net0"
	PageID    = "page0"
	indent    = "  "
)

type Writer struct{}

func New() *Writer { return &Writer{} }

// Flush writes n to out as an indented PNML document with a single net and
// a single page. Places come first, then transitions, then arcs.
func (w *Writer) Flush(out io.Writer, n *ptnet.Net) error {
	page := newElement("page", "id", PageID)
	n.EachPlace(func(ref ptnet.PlaceRef, p *ptnet.Place) bool {
		el := newElement("place", "id", ref.Label())
		el.add(name(ref.Label()))
		if p.Marking() > 0 {
			el.add(newElement("initialMarking").add(text(strconv.FormatUint(uint64(p.Marking()), 10))))
		}
		page.add(el)
		return true
	})
	n.EachTransition(func(ref ptnet.TransitionRef, _ *ptnet.Transition) bool {
		page.add(newElement("transition", "id", ref.Label()).add(name(ref.Label())))
		return true
	})
	for _, arc := range n.Arcs() {
		page.add(arcElement(arc))
	}
	root := newElement("pnml", "xmlns", Namespace).add(
		newElement("net", "id", NetID, "type", Grammar).add(page),
	)

	bw := bufio.NewWriter(out)
	bw.WriteString(Header)
	bw.WriteString("\n")
	root.write(bw, 0)
	return ptnet.WriteError(bw.Flush())
}

func arcElement(arc ptnet.Arc) *element {
	id := arc.String()
	el := newElement("arc", "source", arc.Source().Label(), "target", arc.Target().Label(), "id", id)
	return el.add(name(id), newElement("inscription").add(text(strconv.Itoa(1))))
}

func name(label string) *element {
	return newElement("name").add(text(label))
}

func text(s string) *element {
	el := newElement("text")
	el.text = s
	el.isText = true
	return el
}

type attr struct {
	name, value string
}

type element struct {
	name     string
	attrs    []attr
	text     string
	isText   bool
	children []*element
}

// newElement takes attributes as name, value pairs.
func newElement(name string, attrs ...string) *element {
	el := &element{name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.attrs = append(el.attrs, attr{name: attrs[i], value: attrs[i+1]})
	}
	return el
}

func (e *element) add(children ...*element) *element {
	e.children = append(e.children, children...)
	return e
}

// textEscaper escapes character data. Quotes and newlines are legal there and
// are left alone.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// write renders e at the given depth. Text elements stay on one line, even
// when empty. Other empty elements self-close.
func (e *element) write(w *bufio.Writer, depth int) {
	pad := strings.Repeat(indent, depth)
	w.WriteString(pad)
	w.WriteString("<")
	w.WriteString(e.name)
	for _, a := range e.attrs {
		w.WriteString(" ")
		w.WriteString(a.name)
		w.WriteString(`="`)
		_ = xml.EscapeText(w, []byte(a.value))
		w.WriteString(`"`)
	}
	switch {
	case len(e.children) > 0:
		w.WriteString(">")
		for _, c := range e.children {
			w.WriteString("\n")
			c.write(w, depth+1)
		}
		w.WriteString("\n")
		w.WriteString(pad)
		w.WriteString("</" + e.name + ">")
	case e.isText:
		w.WriteString(">")
		textEscaper.WriteString(w, e.text)
		w.WriteString("</" + e.name + ">")
	default:
		w.WriteString(" />")
	}
}

// String returns the PNML document for n.
func String(n *ptnet.Net) (string, error) {
	return ptnet.FlushString(New(), n)
}
