package lola_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jt05610/ptnet"
	"github.com/jt05610/ptnet/examples"
	"github.com/jt05610/ptnet/lola"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	emptyPlacesNet = `PLACE
    P1,
    P2,
    P3;

MARKING
    P1 : 0,
    P2 : 0,
    P3 : 0;

`

	markedPlacesNet = `PLACE
    P1,
    P2,
    P3,
    P4,
    P5;

MARKING
    P1 : 5,
    P2 : 6,
    P3 : 3,
    P4 : 2,
    P5 : 1;

`

	chainNet = `PLACE
    P1,
    P2,
    P3;

MARKING
    P1 : 0,
    P2 : 0,
    P3 : 0;

TRANSITION T1
  CONSUME
    P1 : 1;
  PRODUCE
    P2 : 1;

TRANSITION T2
  CONSUME
    P2 : 1;
  PRODUCE
    P3 : 1;

`

	loopNet = `PLACE
    P1;

MARKING
    P1 : 0;

TRANSITION T1
  CONSUME
    P1 : 1;
  PRODUCE
    P1 : 1;

`
)

func TestString(t *testing.T) {
	cases := []struct {
		name string
		net  *ptnet.Net
		want string
	}{
		{"empty", ptnet.NewNet("empty"), ""},
		{"only transitions", examples.Unconnected(0, 3), ""},
		{"empty places", examples.Unconnected(3, 0), emptyPlacesNet},
		{"marked places", examples.Marked(5, 6, 3, 2, 1), markedPlacesNet},
		{"chain", examples.Chain(3), chainNet},
		{"loop", examples.Loop(), loopNet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lola.String(tc.net)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestString_UnconnectedTransitionKeepsHeaders(t *testing.T) {
	net := ptnet.NewNet("test")
	net.AddPlace("P1")
	net.AddTransition("T1")
	got, err := lola.String(net)
	require.NoError(t, err)
	assert.Equal(t, `PLACE
    P1;

MARKING
    P1 : 0;

TRANSITION T1
  CONSUME;
  PRODUCE;

`, got)
}

func TestString_SeveralInputs(t *testing.T) {
	net := ptnet.NewNet("join")
	a := net.AddPlace("A")
	b := net.AddPlace("B")
	c := net.AddPlace("C")
	tr := net.AddTransition("join")
	require.NoError(t, net.AddArcPlaceTransition(b, tr))
	require.NoError(t, net.AddArcPlaceTransition(a, tr))
	require.NoError(t, net.AddArcTransitionPlace(tr, c))
	got, err := lola.String(net)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, `TRANSITION join
  CONSUME
    A : 1,
    B : 1;
  PRODUCE
    C : 1;

`), got)
	assert.Equal(t, 1, strings.Count(got, "TRANSITION"))
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWriter_FlushPropagatesWriteErrors(t *testing.T) {
	err := lola.New().Flush(failingWriter{}, examples.Chain(3))
	assert.ErrorIs(t, err, ptnet.ErrIO)
	assert.ErrorIs(t, err, errSink)
}
