package ptnet

import (
	"fmt"
	"math"
)

// Place holds a marking and the transitions connected to it.
type Place struct {
	// marking is the number of tokens currently in the place
	marking uint
	// preset holds the transitions with an arc into this place
	preset *refSet[TransitionRef]
	// postset holds the transitions with an arc out of this place
	postset *refSet[TransitionRef]
}

func newPlace() *Place {
	return &Place{
		preset:  newRefSet[TransitionRef](),
		postset: newRefSet[TransitionRef](),
	}
}

// Marking returns the number of tokens in the place.
func (p *Place) Marking() uint { return p.marking }

// IsEmpty reports whether the place holds no tokens.
func (p *Place) IsEmpty() bool { return p.marking == 0 }

// Preset returns the transitions with an arc into this place, in canonical order.
func (p *Place) Preset() []TransitionRef { return p.preset.items() }

// Postset returns the transitions with an arc out of this place, in canonical order.
func (p *Place) Postset() []TransitionRef { return p.postset.items() }

// IsUnconnected reports whether no arc touches the place.
func (p *Place) IsUnconnected() bool {
	return p.preset.len() == 0 && p.postset.len() == 0
}

func (p *Place) addTokens(n uint) error {
	if n > math.MaxUint-p.marking {
		return fmt.Errorf("%w: %d + %d", ErrOverflow, p.marking, n)
	}
	p.marking += n
	return nil
}

func (p *Place) removeTokens(n uint) error {
	if n > p.marking {
		return fmt.Errorf("%w: have %d, want to remove %d", ErrUnderflow, p.marking, n)
	}
	p.marking -= n
	return nil
}

func (p *Place) addIncoming(t TransitionRef) bool    { return p.preset.insert(t) }
func (p *Place) removeIncoming(t TransitionRef) bool { return p.preset.remove(t) }
func (p *Place) addOutgoing(t TransitionRef) bool    { return p.postset.insert(t) }
func (p *Place) removeOutgoing(t TransitionRef) bool { return p.postset.remove(t) }
