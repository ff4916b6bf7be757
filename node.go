package ptnet

type NodeKind int

const (
	PlaceNode NodeKind = iota
	TransitionNode
)

func (k NodeKind) String() string {
	switch k {
	case PlaceNode:
		return "place"
	case TransitionNode:
		return "transition"
	default:
		return "unknown"
	}
}

// Node is implemented by PlaceRef and TransitionRef.
type Node interface {
	Kind() NodeKind
	Label() string
}
