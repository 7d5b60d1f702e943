package lattice

// IntervalLattice represents the interval lattice.
type IntervalLattice struct{}

// intervalLattice is a singleton instantiation of the interval lattice.
var intervalLattice = &IntervalLattice{}

// Interval yields the interval lattice.
func (latticeFactory) Interval() *IntervalLattice {
	return intervalLattice
}

// Top yields [-∞, ∞].
func (*IntervalLattice) Top() Interval {
	return Interval{
		low:  MinusInfinity{},
		high: PlusInfinity{},
	}
}

// Bot yields the canonical invalid pair [∞, -∞]. Any interval with
// lower > upper denotes ⊥; this is the fixed representative.
func (*IntervalLattice) Bot() Interval {
	return Interval{
		low:  PlusInfinity{},
		high: MinusInfinity{},
	}
}

func (*IntervalLattice) String() string {
	return "[" + colorize.Lattice("ℤ") +
		", " + colorize.Lattice("ℤ") + "]"
}
