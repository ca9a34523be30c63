package widget

// Point is a position in pixels. Coordinates are non-negative by
// contract.
type Point struct {
	X, Y int
}

// Region is the box between P1 (top left) and P2 (bottom right). It is
// either the space offered to a widget or the space a widget took. The
// type does not enforce P1 <= P2; the layout engine keeps to it.
type Region struct {
	P1, P2 Point
}
