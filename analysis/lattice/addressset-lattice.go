package lattice

// AddressSetLattice represents the finite powerset lattice over the
// object id space, which the external object model fixes at analysis
// start. Union and intersection alone guarantee termination, so the
// lattice carries no widening or narrowing operator.
type AddressSetLattice struct{}

// addressSetLattice is a singleton instantiation of the address set lattice.
var addressSetLattice = &AddressSetLattice{}

// AddressSet yields the address set lattice.
func (latticeFactory) AddressSet() *AddressSetLattice {
	return addressSetLattice
}

// Bot yields ∅, the address set with no possible targets.
func (*AddressSetLattice) Bot() AddressSet {
	return elFact.AddressSet()
}

// Top is the full object id universe, which is owned by the external
// object model and not representable here.
func (*AddressSetLattice) Top() AddressSet {
	panic(errUnsupportedOperation)
}

func (*AddressSetLattice) String() string {
	return colorize.Lattice("℘(Obj)")
}
