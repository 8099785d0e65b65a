package graph

import (
	"cmp"
	"fmt"
)

// Way is a single FIB entry: the next hop towards an implicit destination
// and the cumulative distance to it. A Way never stores its destination;
// it is always held in a FIB keyed by destination.
//
// Distances are plain float64 costs. Negative or NaN distances are not
// rejected; convergence guarantees only hold for finite non-negative
// values.
type Way[V cmp.Ordered] struct {
	// Nh is the next hop towards the destination. It is the zero value
	// when Self is set.
	Nh V
	// Self marks the owning vertex as the destination itself.
	Self bool
	// Dist is the cumulative distance to the destination.
	Dist float64
}

// SelfWay returns the Way a terminal holds for itself: no next hop,
// distance zero.
func SelfWay[V cmp.Ordered]() Way[V] {
	return Way[V]{Self: true}
}

// Via returns a Way routing through nh at the given distance.
func Via[V cmp.Ordered](nh V, dist float64) Way[V] {
	return Way[V]{Nh: nh, Dist: dist}
}

func (w Way[V]) String() string {
	if w.Self {
		return "(self)"
	}
	return fmt.Sprintf("(nh: %v, dist: %v)", w.Nh, w.Dist)
}
