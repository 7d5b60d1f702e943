package lattice

import "testing"

func TestIntervalJoin(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		a, b, expected Interval
	}{
		{lat.Bot(), lat.Bot(), lat.Bot()},
		{lat.Bot(), lat.Top(), lat.Top()},
		{lat.Top(), lat.Bot(), lat.Top()},
		{lat.Top(), lat.Top(), lat.Top()},
		{lat.Bot(), itv(b(0), b(0)), itv(b(0), b(0))},
		{itv(b(0), b(0)), lat.Bot(), itv(b(0), b(0))},
		{itv(b(0), b(0)), itv(b(1), b(1)), itv(b(0), b(1))},
		{itv(b(1), b(1)), itv(b(0), b(0)), itv(b(0), b(1))},
		{itv(b(1), b(2)), itv(b(3), b(4)), itv(b(1), b(4))},
		{itv(b(-1), b(0)), itv(b(0), b(1)), itv(b(-1), b(1))},
		{itv(b(0), b(1)), itv(b(-1), b(0)), itv(b(-1), b(1))},
		{itv(b(0), b(1024)), itv(b(0), P{}), itv(b(0), P{})},
		{itv(b(0), P{}), itv(b(0), b(1024)), itv(b(0), P{})},
		{itv(b(-1024), b(0)), itv(b(0), P{}), itv(b(-1024), P{})},
		{itv(M{}, b(0)), itv(b(-1024), b(0)), itv(M{}, b(0))},
		{itv(b(-1024), b(0)), itv(M{}, b(0)), itv(M{}, b(0))},
		{itv(M{}, b(-1024)), itv(b(1024), P{}), lat.Top()},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalMeet(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		a, b, expected Interval
	}{
		{lat.Bot(), lat.Bot(), lat.Bot()},
		{lat.Bot(), lat.Top(), lat.Bot()},
		{lat.Top(), lat.Bot(), lat.Bot()},
		{lat.Top(), lat.Top(), lat.Top()},
		{lat.Top(), itv(b(1), b(5)), itv(b(1), b(5))},
		{itv(b(1), b(10)), itv(b(5), b(15)), itv(b(5), b(10))},
		{itv(b(5), b(15)), itv(b(1), b(10)), itv(b(5), b(10))},
		{itv(b(1), b(5)), itv(b(6), b(10)), lat.Bot()},
		{itv(b(6), b(10)), itv(b(1), b(5)), lat.Bot()},
		{itv(b(1), b(10)), itv(b(3), b(7)), itv(b(3), b(7))},
		{itv(M{}, b(10)), itv(b(0), P{}), itv(b(0), b(10))},
		{itv(b(0), P{}), itv(M{}, b(10)), itv(b(0), b(10))},
		{itv(M{}, b(-1)), itv(b(0), P{}), lat.Bot()},
	}

	for _, test := range tests {
		res := test.a.Meet(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊓ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalContain(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		a, b     Interval
		expected bool
	}{
		{itv(b(1), b(10)), itv(b(3), b(7)), true},
		{itv(b(1), b(10)), itv(b(1), b(10)), true},
		{itv(b(3), b(7)), itv(b(1), b(10)), false},
		{itv(M{}, b(10)), itv(b(1), b(5)), true},
		{itv(b(1), P{}), itv(b(5), b(10)), true},
		{lat.Top(), itv(b(1), b(10)), true},
		{itv(b(1), b(10)), lat.Top(), false},
		{lat.Bot(), itv(b(1), b(5)), false},
		{itv(b(1), b(5)), lat.Bot(), true},
		{lat.Bot(), lat.Bot(), true},
	}

	for _, test := range tests {
		if res := test.a.Contain(test.b); res != test.expected {
			t.Errorf("%s ⊒ %s = %v, expected %v\n", test.a, test.b, res, test.expected)
		}
	}
}

// Antisymmetry: mutual containment coincides with equality.
func TestIntervalAntisymmetry(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	elems := []Interval{
		lat.Bot(), lat.Top(),
		itv(b(1), b(5)), itv(b(1), b(10)), itv(b(3), b(7)),
		itv(M{}, b(0)), itv(b(0), P{}),
		itv(b(10), b(5)),
	}

	for _, a := range elems {
		for _, b := range elems {
			if a.Contain(b) && b.Contain(a) && !a.Eq(b) {
				t.Errorf("%s ⊒ %s and %s ⊒ %s but %s ≠ %s", a, b, b, a, a, b)
			}
			if a.Eq(b) && !(a.Contain(b) && b.Contain(a)) {
				t.Errorf("%s = %s without mutual containment", a, b)
			}
		}
	}
}

func TestIntervalLatticeLaws(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	elems := []Interval{
		lat.Bot(), lat.Top(),
		itv(b(1), b(5)), itv(b(3), b(10)), itv(b(-4), b(2)),
		itv(M{}, b(0)), itv(b(0), P{}),
	}

	for _, a := range elems {
		if !a.Join(a).Eq(a) {
			t.Errorf("%s ⊔ %s ≠ %s", a, a, a)
		}
		if !a.Meet(a).Eq(a) {
			t.Errorf("%s ⊓ %s ≠ %s", a, a, a)
		}
		if !a.Join(lat.Bot()).Eq(a) {
			t.Errorf("%s ⊔ ⊥ ≠ %s", a, a)
		}
		if !a.Meet(lat.Bot()).Eq(lat.Bot()) {
			t.Errorf("%s ⊓ ⊥ ≠ ⊥", a)
		}
		if !a.Join(lat.Top()).Eq(lat.Top()) {
			t.Errorf("%s ⊔ ⊤ ≠ ⊤", a)
		}
		if !a.Meet(lat.Top()).Eq(a) {
			t.Errorf("%s ⊓ ⊤ ≠ %s", a, a)
		}

		for _, b := range elems {
			if !a.Join(b).Eq(b.Join(a)) {
				t.Errorf("⊔ is not commutative for %s, %s", a, b)
			}
			if !a.Meet(b).Eq(b.Meet(a)) {
				t.Errorf("⊓ is not commutative for %s, %s", a, b)
			}

			for _, c := range elems {
				if !a.Join(b).Join(c).Eq(a.Join(b.Join(c))) {
					t.Errorf("⊔ is not associative for %s, %s, %s", a, b, c)
				}
				if !a.Meet(b).Meet(c).Eq(a.Meet(b.Meet(c))) {
					t.Errorf("⊓ is not associative for %s, %s, %s", a, b, c)
				}
			}
		}
	}
}

func TestIntervalWiden(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		a, b, expected Interval
	}{
		// Growth on either side jumps straight to the infinity in that
		// direction.
		{itv(b(1), b(5)), itv(b(0), b(10)), lat.Top()},
		{itv(b(0), b(5)), itv(b(0), b(10)), itv(b(0), P{})},
		{itv(b(0), b(5)), itv(b(-1), b(5)), itv(M{}, b(5))},
		// A stable or shrinking operand leaves the bounds alone.
		{itv(b(1), b(10)), itv(b(2), b(5)), itv(b(1), b(10))},
		{itv(b(1), b(10)), itv(b(1), b(10)), itv(b(1), b(10))},
		// ⊥ operands are absorbed.
		{lat.Bot(), itv(b(1), b(5)), itv(b(1), b(5))},
		{itv(b(1), b(5)), lat.Bot(), itv(b(1), b(5))},
		// Unbounded sides stay unbounded.
		{itv(M{}, b(5)), itv(b(0), b(10)), itv(M{}, P{})},
		{itv(b(0), P{}), itv(b(-3), b(10)), lat.Top()},
	}

	for _, test := range tests {
		res := test.a.Widen(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ∇ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

// Widening a monotonically growing sequence must stabilize within one
// application per bound.
func TestIntervalWidenTermination(t *testing.T) {
	itv := Create().Element().IntervalFinite

	x := itv(0, 1)
	x = x.Widen(itv(0, 2))
	stable := x.Widen(itv(0, 3))
	if !stable.Eq(x) {
		t.Errorf("widening had not stabilized after two applications: %s then %s", x, stable)
	}

	y := itv(0, 1)
	y = y.Widen(itv(-1, 2))
	stable = y.Widen(itv(-2, 3))
	if !stable.Eq(y) {
		t.Errorf("widening had not stabilized after two applications: %s then %s", y, stable)
	}
}

func TestIntervalNarrow(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		a, b, expected Interval
	}{
		// Unbounded sides recover the other operand's finite bound.
		{lat.Top(), itv(b(1), b(5)), itv(b(1), b(5))},
		{itv(b(0), P{}), itv(b(0), b(10)), itv(b(0), b(10))},
		{itv(M{}, b(10)), itv(b(0), b(10)), itv(b(0), b(10))},
		// Already-finite bounds are never tightened.
		{itv(b(1), b(10)), itv(b(3), b(7)), itv(b(1), b(10))},
		{itv(b(1), b(5)), itv(b(1), b(5)), itv(b(1), b(5))},
		// ⊥ on either side yields ⊥.
		{lat.Bot(), itv(b(1), b(5)), lat.Bot()},
		{itv(b(1), b(5)), lat.Bot(), lat.Bot()},
		// An unbounded operand side contributes nothing.
		{itv(b(0), P{}), itv(b(5), P{}), itv(b(0), P{})},
	}

	for _, test := range tests {
		res := test.a.Narrow(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s Δ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestIntervalPredicates(t *testing.T) {
	lat := Create().Lattice().Interval()
	itv := Create().Element().Interval

	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	if !lat.Bot().IsBot() || !lat.Top().IsTop() {
		t.Fatal("extremal elements misclassified")
	}

	// Any invalid pair is ⊥, not only the canonical representative.
	for _, e := range []Interval{itv(b(10), b(5)), itv(b(1), b(0)), itv(b(3), M{})} {
		if !e.IsBot() {
			t.Errorf("%s has lower > upper but is not recognized as ⊥", e)
		}
		if !e.Eq(lat.Bot()) {
			t.Errorf("%s is not equal to the canonical ⊥", e)
		}
	}

	if itv(b(1), b(5)).IsBot() || itv(b(1), b(5)).IsTop() {
		t.Error("[1, 5] misclassified as extremal")
	}
	if itv(M{}, b(5)).IsTop() || itv(b(5), P{}).IsTop() {
		t.Error("half-bounded intervals misclassified as ⊤")
	}

	if !itv(b(5), b(5)).IsSingleton() {
		t.Error("[5, 5] is a singleton")
	}
	if itv(b(1), b(5)).IsSingleton() || lat.Top().IsSingleton() {
		t.Error("non-degenerate intervals misclassified as singletons")
	}

	if lo, hi := itv(b(1), b(5)).GetFiniteBounds(); lo != 1 || hi != 5 {
		t.Errorf("GetFiniteBounds = (%d, %d), expected (1, 5)", lo, hi)
	}
}
