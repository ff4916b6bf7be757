package ptnet

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
)

var (
	_ Node = PlaceRef{}
	_ Node = TransitionRef{}
)

// ref pairs a display label with a time-ordered UUID. Labels may collide, the
// UUID keeps the nodes apart and orders equal labels by creation.
type ref struct {
	label string
	id    uuid.UUID
}

func newRef(label string) ref {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		id = uuid.New()
	}
	return ref{label: label, id: id}
}

func (r ref) compare(other ref) int {
	if c := strings.Compare(r.label, other.label); c != 0 {
		return c
	}
	return bytes.Compare(r.id[:], other.id[:])
}

// PlaceRef identifies a place within a Net.
type PlaceRef struct {
	ref
}

func (p PlaceRef) Kind() NodeKind { return PlaceNode }

// Label is the human readable name given to AddPlace. It is not unique.
func (p PlaceRef) Label() string { return p.label }

func (p PlaceRef) String() string { return p.label }

// IsZero reports whether p was never minted by a Net.
func (p PlaceRef) IsZero() bool { return p.id == uuid.Nil }

// Compare orders by label first, then by the uniqueness token.
func (p PlaceRef) Compare(other PlaceRef) int { return p.compare(other.ref) }

func (p PlaceRef) Less(other PlaceRef) bool { return p.Compare(other) < 0 }

// TransitionRef identifies a transition within a Net.
type TransitionRef struct {
	ref
}

func (t TransitionRef) Kind() NodeKind { return TransitionNode }

func (t TransitionRef) Label() string { return t.label }

func (t TransitionRef) String() string { return t.label }

func (t TransitionRef) IsZero() bool { return t.id == uuid.Nil }

func (t TransitionRef) Compare(other TransitionRef) int { return t.compare(other.ref) }

func (t TransitionRef) Less(other TransitionRef) bool { return t.Compare(other) < 0 }

func newPlaceRef(label string) PlaceRef { return PlaceRef{ref: newRef(label)} }

func newTransitionRef(label string) TransitionRef {
	return TransitionRef{ref: newRef(label)}
}
