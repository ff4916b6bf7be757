// Package analysis computes structural properties of a net. Nothing here
// fires transitions.
package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/jt05610/ptnet"
	"gonum.org/v1/gonum/mat"
)

type Net struct {
	*ptnet.Net
}

func (net *Net) arcNet(t *ptnet.Transition, p ptnet.PlaceRef, inputs map[ptnet.PlaceRef]bool) float64 {
	ret := float64(0)
	for _, out := range t.Postset() {
		if out == p {
			ret += 1
		}
	}
	if inputs[p] {
		ret -= 1
	}
	return ret
}

// Incidence returns the |T| x |P| incidence matrix. Entry (i, j) is +1 for an
// arc from transition i to place j, -1 for an arc from place j to transition
// i, and 0 when both or neither exist. Rows and columns follow canonical
// order. A net without places or transitions has no matrix.
func (net *Net) Incidence() *mat.Dense {
	places := net.Places()
	m := len(places)
	n := net.CardinalityTransitions()
	if m == 0 || n == 0 {
		return nil
	}
	d := make([]float64, m*n)
	i := 0
	net.EachTransition(func(_ ptnet.TransitionRef, t *ptnet.Transition) bool {
		inputs := make(map[ptnet.PlaceRef]bool)
		for _, p := range t.Preset() {
			inputs[p] = true
		}
		for j, place := range places {
			d[i*m+j] = net.arcNet(t, place, inputs)
		}
		i++
		return true
	})
	return mat.NewDense(n, m, d)
}

// Summary counts the parts of a net.
type Summary struct {
	Name                string
	Places              int
	Transitions         int
	ArcsPlaceTransition int
	ArcsTransitionPlace int
	UnconnectedPlaces   []string
	Tokens              uint
}

func (net *Net) Summarize() (*Summary, error) {
	tokens, err := net.MarkingVector().Total()
	if err != nil {
		return nil, err
	}
	s := &Summary{
		Name:                net.Name,
		Places:              net.CardinalityPlaces(),
		Transitions:         net.CardinalityTransitions(),
		ArcsPlaceTransition: len(net.FindArcsPlaceTransition()),
		ArcsTransitionPlace: len(net.FindArcsTransitionPlace()),
		Tokens:              tokens,
	}
	for _, p := range net.FindUnconnectedPlaces() {
		s.UnconnectedPlaces = append(s.UnconnectedPlaces, p.Label())
	}
	return s, nil
}

// WriteIncidence prints the incidence matrix with place labels as columns
// and transition labels as rows.
func (net *Net) WriteIncidence(w io.Writer) error {
	inc := net.Incidence()
	if inc == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	var b strings.Builder
	b.WriteString("\t")
	for _, p := range net.Places() {
		b.WriteString(p.Label() + "\t")
	}
	b.WriteString("\n")
	for i, t := range net.Transitions() {
		b.WriteString(t.Label() + "\t")
		for j := 0; j < net.CardinalityPlaces(); j++ {
			fmt.Fprintf(&b, "%d\t", int(inc.At(i, j)))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
