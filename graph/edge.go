package graph

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrLoopEdge is returned when both endpoints of an edge are the same vertex.
var ErrLoopEdge = errors.New("loom: edge endpoints must differ")

// Edge is an unordered pair of vertices. NewEdge canonicalizes the endpoint
// order, so Edge values built from (a, b) and (b, a) compare equal and are
// interchangeable as map keys.
type Edge[V cmp.Ordered] struct {
	A, B V
}

func NewEdge[V cmp.Ordered](a, b V) (Edge[V], error) {
	if a == b {
		return Edge[V]{}, fmt.Errorf("%w: %v", ErrLoopEdge, a)
	}
	if b < a {
		a, b = b, a
	}
	return Edge[V]{A: a, B: b}, nil
}

// MustEdge is NewEdge for fixtures and literals; it panics on a loop edge.
func MustEdge[V cmp.Ordered](a, b V) Edge[V] {
	e, err := NewEdge(a, b)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Edge[V]) First() V  { return e.A }
func (e Edge[V]) Second() V { return e.B }

func (e Edge[V]) Has(v V) bool {
	return e.A == v || e.B == v
}

// Other returns the endpoint opposite to v. If v is not an endpoint, the
// first endpoint is returned.
func (e Edge[V]) Other(v V) V {
	if v == e.A {
		return e.B
	}
	return e.A
}

// Compare orders edges by their canonical endpoints. Used wherever a
// deterministic scan over an edge set is needed.
func (e Edge[V]) Compare(o Edge[V]) int {
	if c := cmp.Compare(e.A, o.A); c != 0 {
		return c
	}
	return cmp.Compare(e.B, o.B)
}

func (e Edge[V]) String() string {
	return fmt.Sprintf("%v~%v", e.A, e.B)
}
