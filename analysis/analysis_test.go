package analysis_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/jt05610/ptnet"
	"github.com/jt05610/ptnet/analysis"
	"github.com/jt05610/ptnet/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func net(t *testing.T) *analysis.Net {
	n := ptnet.NewNet("cycle")
	pp := make([]ptnet.PlaceRef, 4)
	for i := range pp {
		pp[i] = n.AddPlace(fmt.Sprintf("p%d", i+1))
	}
	tt := make([]ptnet.TransitionRef, 3)
	for i := range tt {
		tt[i] = n.AddTransition(fmt.Sprintf("t%d", i+1))
	}
	require.NoError(t, n.AddArcPlaceTransition(pp[0], tt[0]))
	require.NoError(t, n.AddArcTransitionPlace(tt[0], pp[1]))
	require.NoError(t, n.AddArcPlaceTransition(pp[1], tt[1]))
	require.NoError(t, n.AddArcTransitionPlace(tt[1], pp[2]))
	require.NoError(t, n.AddArcPlaceTransition(pp[2], tt[0]))
	require.NoError(t, n.AddArcTransitionPlace(tt[1], pp[3]))
	require.NoError(t, n.AddArcPlaceTransition(pp[3], tt[2]))
	require.NoError(t, n.AddArcTransitionPlace(tt[2], pp[0]))
	return &analysis.Net{Net: n}
}

func TestNet_Incidence(t *testing.T) {
	aNet := net(t)
	inc := aNet.Incidence()
	want := [][]int{
		{-1, 1, -1, 0},
		{0, -1, 1, 1},
		{1, 0, 0, -1},
	}
	r, c := inc.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, float64(want[i][j]), inc.At(i, j), "t%d p%d", i+1, j+1)
		}
	}
}

func TestNet_IncidenceSelfLoopCancels(t *testing.T) {
	aNet := &analysis.Net{Net: examples.Loop()}
	assert.Equal(t, float64(0), aNet.Incidence().At(0, 0))
	assert.Nil(t, (&analysis.Net{Net: examples.Unconnected(2, 0)}).Incidence())
}

func TestNet_Summarize(t *testing.T) {
	n := examples.Marked(1, 2)
	n.AddPlace("P3")
	s, err := (&analysis.Net{Net: n}).Summarize()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Places)
	assert.Equal(t, uint(3), s.Tokens)
	assert.Equal(t, []string{"P1", "P2", "P3"}, s.UnconnectedPlaces)

	s, err = net(t).Summarize()
	require.NoError(t, err)
	assert.Equal(t, 4, s.ArcsPlaceTransition)
	assert.Equal(t, 4, s.ArcsTransitionPlace)
	assert.Empty(t, s.UnconnectedPlaces)
}

func TestNet_SummarizeTokenOverflow(t *testing.T) {
	_, err := (&analysis.Net{Net: examples.Marked(math.MaxUint, math.MaxUint)}).Summarize()
	assert.ErrorIs(t, err, ptnet.ErrOverflow)
}

func TestNet_WriteIncidence(t *testing.T) {
	var b strings.Builder
	require.NoError(t, (&analysis.Net{Net: examples.Chain(2)}).WriteIncidence(&b))
	assert.Equal(t, "\tP1\tP2\t\nT1\t-1\t1\t\n", b.String())
}

func TestNet_WriteIncidenceEmpty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, (&analysis.Net{Net: examples.Unconnected(0, 3)}).WriteIncidence(&b))
	assert.Equal(t, "(empty)\n", b.String())
}
