package ptnet

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Net is a Place/Transition net. Places and transitions are kept in canonical
// reference order so every query and export is deterministic.
//
// A Net is not safe for concurrent mutation. Readers, including the exporters,
// may run concurrently with each other but not with a mutation.
type Net struct {
	ID          string
	Name        string
	places      *refMap[PlaceRef, *Place]
	transitions *refMap[TransitionRef, *Transition]
}

// NewNet creates an empty net.
func NewNet(name string) *Net {
	return &Net{
		ID:          uuid.New().String(),
		Name:        name,
		places:      newRefMap[PlaceRef, *Place](),
		transitions: newRefMap[TransitionRef, *Transition](),
	}
}

func (n *Net) CardinalityPlaces() int { return n.places.len() }

func (n *Net) CardinalityTransitions() int { return n.transitions.len() }

// CheckPlaceRef reports whether the referenced place exists in this net.
func (n *Net) CheckPlaceRef(p PlaceRef) bool { return n.places.has(p) }

// CheckTransitionRef reports whether the referenced transition exists in this net.
func (n *Net) CheckTransitionRef(t TransitionRef) bool { return n.transitions.has(t) }

// AddPlace adds an empty place. Labels need not be unique: every call creates
// a new place with a fresh reference.
func (n *Net) AddPlace(label string) PlaceRef {
	ref := newPlaceRef(label)
	n.places.set(ref, newPlace())
	return ref
}

// AddTransition adds a transition with no arcs. Labels need not be unique.
func (n *Net) AddTransition(label string) TransitionRef {
	ref := newTransitionRef(label)
	n.transitions.set(ref, newTransition())
	return ref
}

// Places returns every place reference in canonical order.
func (n *Net) Places() []PlaceRef { return n.places.keys() }

// Transitions returns every transition reference in canonical order.
func (n *Net) Transitions() []TransitionRef { return n.transitions.keys() }

// EachPlace calls fn for every place in canonical order until fn returns false.
func (n *Net) EachPlace(fn func(PlaceRef, *Place) bool) { n.places.each(fn) }

// EachTransition calls fn for every transition in canonical order until fn
// returns false.
func (n *Net) EachTransition(fn func(TransitionRef, *Transition) bool) {
	n.transitions.each(fn)
}

func (n *Net) Place(p PlaceRef) (*Place, error) {
	place, ok := n.places.get(p)
	if !ok {
		return nil, invalidRef(p)
	}
	return place, nil
}

func (n *Net) Transition(t TransitionRef) (*Transition, error) {
	transition, ok := n.transitions.get(t)
	if !ok {
		return nil, invalidRef(t)
	}
	return transition, nil
}

// FindUnconnectedPlaces returns the places with an empty preset and postset.
func (n *Net) FindUnconnectedPlaces() []PlaceRef {
	var unconnected []PlaceRef
	n.places.each(func(ref PlaceRef, p *Place) bool {
		if p.IsUnconnected() {
			unconnected = append(unconnected, ref)
		}
		return true
	})
	return unconnected
}

// FindArcsPlaceTransition returns every place to transition arc, ordered by
// place then transition.
func (n *Net) FindArcsPlaceTransition() []PlaceTransitionArc {
	var arcs []PlaceTransitionArc
	n.places.each(func(ref PlaceRef, p *Place) bool {
		for _, t := range p.Postset() {
			arcs = append(arcs, PlaceTransitionArc{Place: ref, Transition: t})
		}
		return true
	})
	return arcs
}

// FindArcsTransitionPlace returns every transition to place arc, ordered by
// transition then place.
func (n *Net) FindArcsTransitionPlace() []TransitionPlaceArc {
	var arcs []TransitionPlaceArc
	n.transitions.each(func(ref TransitionRef, t *Transition) bool {
		for _, p := range t.Postset() {
			arcs = append(arcs, TransitionPlaceArc{Transition: ref, Place: p})
		}
		return true
	})
	return arcs
}

// AddArcPlaceTransition adds an arc from p to t.
func (n *Net) AddArcPlaceTransition(p PlaceRef, t TransitionRef) error {
	place, transition, err := n.pair(p, t)
	if err != nil {
		return err
	}
	outgoing := place.addOutgoing(t)
	incoming := transition.addIncoming(p)
	if err := checkLink(incoming, outgoing); err != nil {
		if outgoing && !incoming {
			place.removeOutgoing(t)
		}
		if incoming && !outgoing {
			transition.removeIncoming(p)
		}
		return fmt.Errorf("arc %s: %w", PlaceTransitionArc{Place: p, Transition: t}, err)
	}
	return nil
}

// AddArcTransitionPlace adds an arc from t to p.
func (n *Net) AddArcTransitionPlace(t TransitionRef, p PlaceRef) error {
	place, transition, err := n.pair(p, t)
	if err != nil {
		return err
	}
	outgoing := transition.addOutgoing(p)
	incoming := place.addIncoming(t)
	if err := checkLink(incoming, outgoing); err != nil {
		if outgoing && !incoming {
			transition.removeOutgoing(p)
		}
		if incoming && !outgoing {
			place.removeIncoming(t)
		}
		return fmt.Errorf("arc %s: %w", TransitionPlaceArc{Transition: t, Place: p}, err)
	}
	return nil
}

// checkLink decides the outcome of writing one arc on both of its endpoints.
// A one sided result is undone by the caller so the call has no effect.
func checkLink(incoming, outgoing bool) error {
	if !incoming && !outgoing {
		return ErrDuplicateArc
	}
	if !incoming || !outgoing {
		return fmt.Errorf("%w: arc existed on one endpoint only", ErrInconsistentState)
	}
	return nil
}

// Marking returns the number of tokens in p.
func (n *Net) Marking(p PlaceRef) (uint, error) {
	place, err := n.Place(p)
	if err != nil {
		return 0, err
	}
	return place.Marking(), nil
}

// AddToken adds count tokens to p.
func (n *Net) AddToken(p PlaceRef, count uint) error {
	place, err := n.Place(p)
	if err != nil {
		return err
	}
	if err := place.addTokens(count); err != nil {
		return fmt.Errorf("place %s: %w", p, err)
	}
	return nil
}

// RemoveToken removes count tokens from p. Removing more tokens than the
// place holds is an error, the marking is left unchanged.
func (n *Net) RemoveToken(p PlaceRef, count uint) error {
	place, err := n.Place(p)
	if err != nil {
		return err
	}
	if err := place.removeTokens(count); err != nil {
		return fmt.Errorf("place %s: %w", p, err)
	}
	return nil
}

// MarkingVector returns the marking of every place in canonical order.
func (n *Net) MarkingVector() *MarkingVector {
	mv := &MarkingVector{index: make(map[PlaceRef]int, n.places.len())}
	n.places.each(func(ref PlaceRef, p *Place) bool {
		mv.index[ref] = len(mv.entries)
		mv.entries = append(mv.entries, MarkingEntry{Place: ref, Tokens: p.Marking()})
		return true
	})
	return mv
}

// Validate walks every node and reports each dangling reference and each arc
// recorded on one endpoint only. A net built through the public API always
// validates.
func (n *Net) Validate() error {
	var err error
	n.places.each(func(ref PlaceRef, p *Place) bool {
		for _, t := range p.Postset() {
			err = multierr.Append(err, n.checkPlaceTransition(ref, t))
		}
		for _, t := range p.Preset() {
			err = multierr.Append(err, n.checkTransitionPlace(t, ref))
		}
		return true
	})
	n.transitions.each(func(ref TransitionRef, t *Transition) bool {
		for _, p := range t.Preset() {
			err = multierr.Append(err, n.checkPlaceTransition(p, ref))
		}
		for _, p := range t.Postset() {
			err = multierr.Append(err, n.checkTransitionPlace(ref, p))
		}
		return true
	})
	return err
}

func (n *Net) checkPlaceTransition(p PlaceRef, t TransitionRef) error {
	arc := PlaceTransitionArc{Place: p, Transition: t}
	place, ok := n.places.get(p)
	if !ok {
		return fmt.Errorf("%w: arc %s has dangling place", ErrInconsistentState, arc)
	}
	transition, ok := n.transitions.get(t)
	if !ok {
		return fmt.Errorf("%w: arc %s has dangling transition", ErrInconsistentState, arc)
	}
	if place.postset.has(t) != transition.preset.has(p) {
		return fmt.Errorf("%w: arc %s recorded on one endpoint", ErrInconsistentState, arc)
	}
	return nil
}

func (n *Net) checkTransitionPlace(t TransitionRef, p PlaceRef) error {
	arc := TransitionPlaceArc{Transition: t, Place: p}
	place, ok := n.places.get(p)
	if !ok {
		return fmt.Errorf("%w: arc %s has dangling place", ErrInconsistentState, arc)
	}
	transition, ok := n.transitions.get(t)
	if !ok {
		return fmt.Errorf("%w: arc %s has dangling transition", ErrInconsistentState, arc)
	}
	if transition.postset.has(p) != place.preset.has(t) {
		return fmt.Errorf("%w: arc %s recorded on one endpoint", ErrInconsistentState, arc)
	}
	return nil
}

func (n *Net) pair(p PlaceRef, t TransitionRef) (*Place, *Transition, error) {
	place, err := n.Place(p)
	if err != nil {
		return nil, nil, err
	}
	transition, err := n.Transition(t)
	if err != nil {
		return nil, nil, err
	}
	return place, transition, nil
}

func invalidRef(node Node) error {
	return fmt.Errorf("%s %q: %w", node.Kind(), node.Label(), ErrInvalidReference)
}
