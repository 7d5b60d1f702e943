package lattice

import (
	"fmt"
	"strconv"
)

// Interval is a member of the interval lattice. Any interval consists of
// two interval bounds, `low` and `high`.
type Interval struct {
	low  IntervalBound
	high IntervalBound
}

// Interval creates an interval with possibly infinite bounds.
func (elementFactory) Interval(low IntervalBound, high IntervalBound) Interval {
	return Interval{low: low, high: high}
}

// IntervalFinite creates an interval with finite bounds.
func (elementFactory) IntervalFinite(low int, high int) Interval {
	return Interval{
		low:  FiniteBound(low),
		high: FiniteBound(high),
	}
}

func (e Interval) String() string {
	if e.IsBot() {
		return colorize.Element("⊥")
	}
	return "[" + e.low.String() + ", " + e.high.String() + "]"
}

// IsBot recognizes every invalid pair as ⊥, not only the canonical
// [∞, -∞] representative.
func (e Interval) IsBot() bool {
	return e.low.Gt(e.high)
}

// IsTop checks that the interval is equal to [-∞, ∞].
func (e Interval) IsTop() bool {
	_, low := e.low.(MinusInfinity)
	_, high := e.high.(PlusInfinity)
	return low && high
}

// IsSingleton checks that the interval denotes exactly one integer.
func (e Interval) IsSingleton() bool {
	return !e.low.IsInfinite() && e.low.Eq(e.high)
}

// Eq computes e1 = e2. All ⊥ representations are equal to each other
// and to nothing else.
func (e1 Interval) Eq(e2 Interval) bool {
	if e1.IsBot() || e2.IsBot() {
		return e1.IsBot() && e2.IsBot()
	}
	return e1.low.Eq(e2.low) && e1.high.Eq(e2.high)
}

// Contain computes e1 ⊒ e2. ⊥ is contained in everything, and an
// unbounded side dominates any bound on the other operand.
func (e1 Interval) Contain(e2 Interval) bool {
	if e2.IsBot() {
		return true
	}
	if e1.IsBot() {
		return false
	}
	return e1.low.Leq(e2.low) && e1.high.Geq(e2.high)
}

// Join computes e1 ⊔ e2. The resulting interval takes the lowest of the
// lower bounds and the highest of the upper bounds; a ⊥ operand is
// absorbed.
func (e1 Interval) Join(e2 Interval) Interval {
	if e1.IsBot() {
		return e2
	}
	if e2.IsBot() {
		return e1
	}
	return Interval{
		low:  e1.low.Min(e2.low),
		high: e1.high.Max(e2.high),
	}
}

// Meet computes e1 ⊓ e2. Non-overlapping operands collapse to the
// canonical ⊥.
func (e1 Interval) Meet(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot()
	}
	low := e1.low.Max(e2.low)
	high := e1.high.Min(e2.high)
	if low.Gt(high) {
		return intervalLattice.Bot()
	}
	return Interval{low: low, high: high}
}

// Widen computes e1 ∇ e2. A bound of e2 that has grown strictly past
// the corresponding bound of e1 jumps directly to the infinity in that
// direction, so each side widens at most once before stabilizing.
func (e1 Interval) Widen(e2 Interval) Interval {
	if e1.IsBot() {
		return e2
	}
	if e2.IsBot() {
		return e1
	}
	low, high := e1.low, e1.high
	if e2.low.Lt(e1.low) {
		low = MinusInfinity{}
	}
	if e2.high.Gt(e1.high) {
		high = PlusInfinity{}
	}
	return Interval{low: low, high: high}
}

// Narrow computes e1 Δ e2. Only an unbounded side of e1 is replaced by
// e2's bound on that side; two already-finite bounds are never
// tightened. A ⊥ operand on either side yields ⊥.
func (e1 Interval) Narrow(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot()
	}
	low, high := e1.low, e1.high
	if low.IsInfinite() && !e2.low.IsInfinite() {
		low = e2.low
	}
	if high.IsInfinite() && !e2.high.IsInfinite() {
		high = e2.high
	}
	return Interval{low: low, high: high}
}

// GetFiniteBounds unpacks the interval bounds, if finite, and panics otherwise.
func (e Interval) GetFiniteBounds() (int, int) {
	if e.low.IsInfinite() || e.high.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite bounds", e))
	}
	return (int)(e.low.(FiniteBound)), (int)(e.high.(FiniteBound))
}

// Low returns the lower bound as an integer, if finite, and panics otherwise.
func (e Interval) Low() int {
	if e.low.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite lower bound", e))
	}
	return (int)(e.low.(FiniteBound))
}

// High returns the upper bound as an integer, if finite, and panics otherwise.
func (e Interval) High() int {
	if e.high.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite upper bound", e))
	}
	return (int)(e.high.(FiniteBound))
}

// IntervalBound is an interface implemented by all interval lattice bounds,
// i.e. any FiniteBound value, PlusInfinity and MinusInfinity.
type IntervalBound interface {
	String() string

	// IsInfinite checks whether the interval bound is infinite.
	IsInfinite() bool

	// Eq checks for interval bound equality.
	Eq(IntervalBound) bool
	// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℤ.
	Leq(IntervalBound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℤ.
	Geq(IntervalBound) bool
	// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℤ.
	Lt(IntervalBound) bool
	// Gt computes b1 > b2. The semantics is ∞ > c > -∞, where c ∈ ℤ.
	Gt(IntervalBound) bool

	// Max computes max(b1, b2).
	Max(IntervalBound) IntervalBound
	// Min computes min(b1, b2).
	Min(IntervalBound) IntervalBound
}

type (
	// FiniteBound is used to represent finite limits of an interval value.
	FiniteBound int
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
	// MinusInfinity represents -∞.
	MinusInfinity struct{}
)

// IsInfinite is false for the finite bound.
func (FiniteBound) IsInfinite() bool {
	return false
}

func (b FiniteBound) String() string {
	return colorize.Element(strconv.Itoa((int)(b)))
}

// Eq compares for equality with another bound. Two finite bounds
// are equal if their underlying values are equal.
func (b1 FiniteBound) Eq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 == b2
	}
	return false
}

// Leq computes b1 ≤ b2.
func (b1 FiniteBound) Leq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 <= b2
	case PlusInfinity:
		return true
	case MinusInfinity:
		return false
	}
	return false
}

// Geq computes b1 ≥ b2.
func (b1 FiniteBound) Geq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 >= b2
	case PlusInfinity:
		return false
	case MinusInfinity:
		return true
	}
	return false
}

// Lt computes b1 < b2.
func (b1 FiniteBound) Lt(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 < b2
	case PlusInfinity:
		return true
	case MinusInfinity:
		return false
	}
	return false
}

// Gt computes b1 > b2.
func (b1 FiniteBound) Gt(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 > b2
	case PlusInfinity:
		return false
	case MinusInfinity:
		return true
	}
	return false
}

// Max computes max(b1, b2). The semantics of maximum is:
//
//	.-----------------------.
//	|   b2   | max(b1, b2)  |
//	|========|==============|
//	|  ∈  ℤ  | max(b1, b2)  |
//	|--------|--------------|
//	|   -∞   |      b1      |
//	|--------|--------------|
//	|    ∞   |      ∞       |
//	 -----------------------
func (b1 FiniteBound) Max(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b1 < b2 {
			return b2
		}
		return b1
	case PlusInfinity:
		return b2
	case MinusInfinity:
		return b1
	}
	return nil
}

// Min computes min(b1, b2). The semantics of minimum is:
//
//	.-----------------------.
//	|   b2   | min(b1, b2)  |
//	|========|==============|
//	|  ∈  ℤ  | min(b1, b2)  |
//	|--------|--------------|
//	|   -∞   |     -∞       |
//	|--------|--------------|
//	|    ∞   |      b1      |
//	 -----------------------
func (b1 FiniteBound) Min(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b1 < b2 {
			return b1
		}
		return b2
	case PlusInfinity:
		return b1
	case MinusInfinity:
		return b2
	}
	return nil
}

// IsInfinite is true for ∞.
func (PlusInfinity) IsInfinite() bool {
	return true
}

func (PlusInfinity) String() string {
	return colorize.Element("+∞")
}

// Eq checks for interval bound equality.
func (PlusInfinity) Eq(b2 IntervalBound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return true
	}
	return false
}

// Leq computes ∞ ≤ b.
func (PlusInfinity) Leq(b2 IntervalBound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return true
	}
	return false
}

// Geq computes ∞ ≥ b. It is always true as ∞ is the largest possible bound.
func (PlusInfinity) Geq(IntervalBound) bool {
	return true
}

// Lt computes ∞ < b. It is always false as ∞ is the largest possible bound.
func (PlusInfinity) Lt(IntervalBound) bool {
	return false
}

// Gt computes ∞ > b.
func (PlusInfinity) Gt(b2 IntervalBound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return false
	}
	return true
}

// Max computes max(∞, b) = ∞.
func (PlusInfinity) Max(IntervalBound) IntervalBound {
	return PlusInfinity{}
}

// Min computes min(∞, b) = b.
func (PlusInfinity) Min(b2 IntervalBound) IntervalBound {
	return b2
}

// IsInfinite is true for -∞.
func (MinusInfinity) IsInfinite() bool {
	return true
}

func (MinusInfinity) String() string {
	return colorize.Element("-∞")
}

// Eq computes -∞ = b.
func (MinusInfinity) Eq(b2 IntervalBound) bool {
	switch b2.(type) {
	case MinusInfinity:
		return true
	}
	return false
}

// Leq computes -∞ ≤ b. It is always true as -∞ is the smallest possible bound.
func (MinusInfinity) Leq(IntervalBound) bool {
	return true
}

// Geq computes -∞ ≥ b.
func (MinusInfinity) Geq(b2 IntervalBound) bool {
	switch b2.(type) {
	case MinusInfinity:
		return true
	}
	return false
}

// Lt computes -∞ < b.
func (MinusInfinity) Lt(b2 IntervalBound) bool {
	switch b2.(type) {
	case MinusInfinity:
		return false
	}
	return true
}

// Gt computes -∞ > b. It is always false as -∞ is the smallest possible bound.
func (MinusInfinity) Gt(IntervalBound) bool {
	return false
}

// Max computes max(-∞, b) = b.
func (MinusInfinity) Max(b IntervalBound) IntervalBound {
	return b
}

// Min computes min(-∞, b) = -∞.
func (MinusInfinity) Min(IntervalBound) IntervalBound {
	return MinusInfinity{}
}
