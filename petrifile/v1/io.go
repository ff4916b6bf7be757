package petrifile

import (
	"fmt"
	"sort"

	"github.com/jt05610/ptnet"
	"github.com/jt05610/ptnet/petrifile"
	"gopkg.in/yaml.v3"
)

// Place is the initial marking of a place. In a file it is either a bare
// token count, a mapping with a tokens key, or empty.
type Place struct {
	Tokens uint `yaml:"tokens"`
}

func (p *Place) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&p.Tokens)
	}
	// Node.Decode does not inherit the caller's KnownFields setting.
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if key := value.Content[i]; key.Value != "tokens" {
				return fmt.Errorf("line %d: %w %q in place", key.Line, petrifile.ErrUnknownField, key.Value)
			}
		}
	}
	type plain Place
	return value.Decode((*plain)(p))
}

// Refs is a list of place names. A single name may be written as a scalar.
type Refs []string

func (r *Refs) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*r = Refs{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*r = list
	return nil
}

type Transition struct {
	Inputs  Refs `yaml:"inputs,omitempty"`
	Outputs Refs `yaml:"outputs,omitempty"`
}

// Petrifile describes a net. Places and transitions are keyed by label, so
// labels are unique within a file.
type Petrifile struct {
	Petri       petrifile.Version      `yaml:"petri"`
	Name        string                 `yaml:"name"`
	Places      map[string]*Place      `yaml:"places"`
	Transitions map[string]*Transition `yaml:"transitions"`
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Net builds the described net through the public ptnet API.
func (p *Petrifile) Net() (*ptnet.Net, error) {
	if p.Petri != "" && p.Petri != petrifile.V1 {
		return nil, fmt.Errorf("%w: %s", petrifile.ErrUnsupportedVersion, p.Petri)
	}
	net := ptnet.NewNet(p.Name)
	places := make(map[string]ptnet.PlaceRef, len(p.Places))
	for _, name := range sortedKeys(p.Places) {
		ref := net.AddPlace(name)
		places[name] = ref
		if pl := p.Places[name]; pl != nil && pl.Tokens > 0 {
			if err := net.AddToken(ref, pl.Tokens); err != nil {
				return nil, err
			}
		}
	}
	lookup := func(transition, name string) (ptnet.PlaceRef, error) {
		ref, ok := places[name]
		if !ok {
			return ptnet.PlaceRef{}, fmt.Errorf("transition %s: %w %q", transition, petrifile.ErrUnknownPlace, name)
		}
		return ref, nil
	}
	for _, name := range sortedKeys(p.Transitions) {
		ref := net.AddTransition(name)
		t := p.Transitions[name]
		if t == nil {
			continue
		}
		for _, in := range t.Inputs {
			pl, err := lookup(name, in)
			if err != nil {
				return nil, err
			}
			if err := net.AddArcPlaceTransition(pl, ref); err != nil {
				return nil, err
			}
		}
		for _, out := range t.Outputs {
			pl, err := lookup(name, out)
			if err != nil {
				return nil, err
			}
			if err := net.AddArcTransitionPlace(ref, pl); err != nil {
				return nil, err
			}
		}
	}
	return net, nil
}
