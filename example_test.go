package ptnet_test

import (
	"fmt"

	"github.com/jt05610/ptnet"
	"github.com/jt05610/ptnet/lola"
)

// ExampleNet builds a two place net, marks it and writes it for LoLA.
func ExampleNet() {
	net := ptnet.NewNet("handoff")
	ready := net.AddPlace("ready")
	done := net.AddPlace("done")
	work := net.AddTransition("work")

	if err := net.AddArcPlaceTransition(ready, work); err != nil {
		panic(err)
	}
	if err := net.AddArcTransitionPlace(work, done); err != nil {
		panic(err)
	}
	if err := net.AddToken(ready, 2); err != nil {
		panic(err)
	}

	text, err := lola.String(net)
	if err != nil {
		panic(err)
	}
	fmt.Print(text)
	// Output:
	// PLACE
	//     done,
	//     ready;
	//
	// MARKING
	//     done : 0,
	//     ready : 2;
	//
	// TRANSITION work
	//   CONSUME
	//     ready : 1;
	//   PRODUCE
	//     done : 1;
}
