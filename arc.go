package ptnet

import "fmt"

// PlaceTransitionArc is an arc from a place to a transition. Arcs have an
// implicit weight of one.
type PlaceTransitionArc struct {
	Place      PlaceRef
	Transition TransitionRef
}

func (a PlaceTransitionArc) Source() Node { return a.Place }
func (a PlaceTransitionArc) Target() Node { return a.Transition }

func (a PlaceTransitionArc) String() string {
	return fmt.Sprintf("(%s, %s)", a.Place.Label(), a.Transition.Label())
}

// TransitionPlaceArc is an arc from a transition to a place.
type TransitionPlaceArc struct {
	Transition TransitionRef
	Place      PlaceRef
}

func (a TransitionPlaceArc) Source() Node { return a.Transition }
func (a TransitionPlaceArc) Target() Node { return a.Place }

func (a TransitionPlaceArc) String() string {
	return fmt.Sprintf("(%s, %s)", a.Transition.Label(), a.Place.Label())
}

// Arc is either a PlaceTransitionArc or a TransitionPlaceArc.
type Arc interface {
	Source() Node
	Target() Node
	String() string
}

// Arcs returns every arc of the net: place to transition arcs first, then
// transition to place arcs, each in canonical order.
func (n *Net) Arcs() []Arc {
	pt := n.FindArcsPlaceTransition()
	tp := n.FindArcsTransitionPlace()
	arcs := make([]Arc, 0, len(pt)+len(tp))
	for _, a := range pt {
		arcs = append(arcs, a)
	}
	for _, a := range tp {
		arcs = append(arcs, a)
	}
	return arcs
}
