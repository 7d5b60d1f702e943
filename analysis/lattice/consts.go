package lattice

// Interval payloads are immutable values, so handing out shallow copies
// of these constants is safe.
var (
	_CONST_TOP_INTERVAL = elFact.AbstractInterval(intervalLattice.Top())
	_CONST_BOT_INTERVAL = elFact.AbstractInterval(intervalLattice.Bot())
)

type consts struct{}

var _consts = consts{}

// Consts is a commonly used constant factory.
func Consts() consts {
	return _consts
}

// TopIntervalValue is the unconstrained interval value. It doubles as
// the result of looking up an unbound key in the abstract state.
func (c consts) TopIntervalValue() AbstractValue {
	return _CONST_TOP_INTERVAL
}

// BotIntervalValue is the infeasible interval value.
func (c consts) BotIntervalValue() AbstractValue {
	return _CONST_BOT_INTERVAL
}

// EmptyAddressValue is an address value with no possible targets.
func (c consts) EmptyAddressValue() AbstractValue {
	return elFact.AbstractAddress(elFact.AddressSet())
}
