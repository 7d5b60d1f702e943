package lattice

import (
	"fmt"
)

// Type tags for abstract values.
const (
	_UNTYPED = iota
	_INTERVAL_VALUE
	_ADDRESS_VALUE
)

// AbstractValue is a tagged union over the interval and address-set
// domains. The tag is part of value identity: binary operations across
// mismatched tags fail with ErrTypeMismatch and are never coerced.
type AbstractValue struct {
	typ      int
	interval Interval
	addrs    AddressSet
}

// AbstractInterval wraps an interval as an abstract value.
func (elementFactory) AbstractInterval(e Interval) AbstractValue {
	return AbstractValue{typ: _INTERVAL_VALUE, interval: e}
}

// AbstractIntervalFinite wraps an interval with finite bounds as an
// abstract value.
func (elementFactory) AbstractIntervalFinite(low int, high int) AbstractValue {
	return elFact.AbstractInterval(elFact.IntervalFinite(low, high))
}

// AbstractAddress wraps an address set as an abstract value.
func (elementFactory) AbstractAddress(s AddressSet) AbstractValue {
	return AbstractValue{typ: _ADDRESS_VALUE, addrs: s}
}

// IsInterval checks whether the abstract value holds an interval.
func (v AbstractValue) IsInterval() bool {
	return v.typ == _INTERVAL_VALUE
}

// IsAddr checks whether the abstract value holds an address set.
func (v AbstractValue) IsAddr() bool {
	return v.typ == _ADDRESS_VALUE
}

// Interval unwraps an interval-tagged value and panics otherwise.
func (v AbstractValue) Interval() Interval {
	if !v.IsInterval() {
		panic(errUnsupportedTypeConversion)
	}
	return v.interval
}

// AddrSet unwraps an address-tagged value and panics otherwise.
func (v AbstractValue) AddrSet() AddressSet {
	if !v.IsAddr() {
		panic(errUnsupportedTypeConversion)
	}
	return v.addrs
}

// Join computes v1 ⊔ v2 for same-tagged values.
func (v1 AbstractValue) Join(v2 AbstractValue) (AbstractValue, error) {
	if v1.typ != v2.typ {
		return AbstractValue{}, fmt.Errorf("%w: %s ⊔ %s", ErrTypeMismatch, v1, v2)
	}
	return v1.MonoJoin(v2), nil
}

// MonoJoin computes v1 ⊔ v2 under the assumption that the tags already
// match. Only for callers that have established tag equality.
func (v1 AbstractValue) MonoJoin(v2 AbstractValue) AbstractValue {
	switch v1.typ {
	case _INTERVAL_VALUE:
		return elFact.AbstractInterval(v1.interval.Join(v2.interval))
	case _ADDRESS_VALUE:
		return elFact.AbstractAddress(v1.addrs.Join(v2.addrs))
	}
	panic(errPatternMatch(v1.typ))
}

// Meet computes v1 ⊓ v2 for same-tagged values.
func (v1 AbstractValue) Meet(v2 AbstractValue) (AbstractValue, error) {
	if v1.typ != v2.typ {
		return AbstractValue{}, fmt.Errorf("%w: %s ⊓ %s", ErrTypeMismatch, v1, v2)
	}
	return v1.MonoMeet(v2), nil
}

// MonoMeet computes v1 ⊓ v2 under the assumption that the tags already
// match.
func (v1 AbstractValue) MonoMeet(v2 AbstractValue) AbstractValue {
	switch v1.typ {
	case _INTERVAL_VALUE:
		return elFact.AbstractInterval(v1.interval.Meet(v2.interval))
	case _ADDRESS_VALUE:
		return elFact.AbstractAddress(v1.addrs.Meet(v2.addrs))
	}
	panic(errPatternMatch(v1.typ))
}

// Contain computes v1 ⊒ v2: interval containment or set inclusion.
// Values of differing tags are unordered.
func (v1 AbstractValue) Contain(v2 AbstractValue) bool {
	switch {
	case v1.typ != v2.typ:
		return false
	case v1.IsInterval():
		return v1.interval.Contain(v2.interval)
	default:
		return v1.addrs.Geq(v2.addrs)
	}
}

// Eq computes v1 = v2, false across mismatched tags.
func (v1 AbstractValue) Eq(v2 AbstractValue) bool {
	switch {
	case v1.typ != v2.typ:
		return false
	case v1.IsInterval():
		return v1.interval.Eq(v2.interval)
	default:
		return v1.addrs.Eq(v2.addrs)
	}
}

// uninformative checks whether a binding carries no information for its
// tag: an infeasible interval or an empty address set. MeetWith drops
// such bindings.
func (v AbstractValue) uninformative() bool {
	if v.IsInterval() {
		return v.interval.IsBot()
	}
	return v.addrs.Empty()
}

func (v AbstractValue) String() string {
	switch v.typ {
	case _INTERVAL_VALUE:
		return v.interval.String()
	case _ADDRESS_VALUE:
		return v.addrs.String()
	}
	return colorize.Const("undefined")
}
