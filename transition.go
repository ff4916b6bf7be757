package ptnet

// Transition holds the places connected to it. It carries no marking.
type Transition struct {
	preset  *refSet[PlaceRef]
	postset *refSet[PlaceRef]
}

func newTransition() *Transition {
	return &Transition{
		preset:  newRefSet[PlaceRef](),
		postset: newRefSet[PlaceRef](),
	}
}

// Preset returns the places with an arc into this transition.
func (t *Transition) Preset() []PlaceRef { return t.preset.items() }

// Postset returns the places with an arc out of this transition.
func (t *Transition) Postset() []PlaceRef { return t.postset.items() }

func (t *Transition) addIncoming(p PlaceRef) bool    { return t.preset.insert(p) }
func (t *Transition) removeIncoming(p PlaceRef) bool { return t.preset.remove(p) }
func (t *Transition) addOutgoing(p PlaceRef) bool    { return t.postset.insert(p) }
func (t *Transition) removeOutgoing(p PlaceRef) bool { return t.postset.remove(p) }
