package lattice

import (
	"fmt"
	"sort"

	loc "github.com/vflow-project/vflow/analysis/location"
	i "github.com/vflow-project/vflow/utils/indenter"

	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"
)

type varIDHasher loc.VarIDHasher

func (varIDHasher) Hash(k loc.VarID) uint32 {
	return k.Hash()
}
func (varIDHasher) Equal(a, b loc.VarID) bool {
	return a == b
}

type objIDHasher loc.ObjIDHasher

func (objIDHasher) Hash(k loc.ObjID) uint32 {
	return k.Hash()
}
func (objIDHasher) Equal(a, b loc.ObjID) bool {
	return a == b
}

// AbstractState is the dual-store abstract state: variable bindings and
// memory-object bindings, each lifted pointwise from the abstract value
// lattice. Absence of a key means different things to different
// operations: lookups read an unbound key as an unconstrained interval,
// JoinWith preserves the bound side unchanged, and MeetWith reads
// absence as ⊥ and deletes the key. The asymmetry is load-bearing.
//
// A state exclusively owns its bindings. The stores are persistent
// maps and no operation mutates a stored payload in place, so Copy is
// cheap and two states can never observe each other.
type AbstractState struct {
	vars *immutable.Map[loc.VarID, AbstractValue]
	objs *immutable.Map[loc.ObjID, AbstractValue]
}

// AbstractState creates an empty state for an analysis entry point.
func (elementFactory) AbstractState() *AbstractState {
	return &AbstractState{
		vars: immutable.NewMap[loc.VarID, AbstractValue](varIDHasher{}),
		objs: immutable.NewMap[loc.ObjID, AbstractValue](objIDHasher{}),
	}
}

// Copy duplicates the state. Operations on the copy cannot be observed
// through the receiver and vice versa.
func (s *AbstractState) Copy() *AbstractState {
	return &AbstractState{vars: s.vars, objs: s.objs}
}

// Get returns the value bound to a variable. An unbound variable reads
// as an unconstrained interval: no constraint yet, the most
// conservative assumption.
func (s *AbstractState) Get(id loc.VarID) AbstractValue {
	if v, found := s.vars.Get(id); found {
		return v
	}
	return Consts().TopIntervalValue()
}

// Set binds a variable to an abstract value.
func (s *AbstractState) Set(id loc.VarID, v AbstractValue) {
	s.vars = s.vars.Set(id, v)
}

// VarCount is the number of variable bindings.
func (s *AbstractState) VarCount() int {
	return s.vars.Len()
}

// ObjCount is the number of memory-object bindings.
func (s *AbstractState) ObjCount() int {
	return s.objs.Len()
}

// VarHoldsAddrs checks that the variable is bound to an address set.
func (s *AbstractState) VarHoldsAddrs(id loc.VarID) bool {
	v, found := s.vars.Get(id)
	return found && v.IsAddr()
}

// VarHoldsInterval checks that the variable is bound to an interval.
func (s *AbstractState) VarHoldsInterval(id loc.VarID) bool {
	v, found := s.vars.Get(id)
	return found && v.IsInterval()
}

// ObjHoldsAddrs checks that the memory object is bound to an address set.
func (s *AbstractState) ObjHoldsAddrs(id loc.ObjID) bool {
	v, found := s.objs.Get(id)
	return found && v.IsAddr()
}

// ObjHoldsInterval checks that the memory object is bound to an interval.
func (s *AbstractState) ObjHoldsInterval(id loc.ObjID) bool {
	v, found := s.objs.Get(id)
	return found && v.IsInterval()
}

// Store writes a value through a virtual address. Writes through the
// reserved null object are defined and silently dropped; an untagged
// address is a precondition violation.
func (s *AbstractState) Store(addr loc.VirtualAddr, v AbstractValue) error {
	if !addr.IsVirtual() {
		return fmt.Errorf("store: %w: %v", ErrInvalidAddress, addr)
	}
	obj := addr.Object()
	if obj == loc.NullObj {
		return nil
	}
	s.objs = s.objs.Set(obj, v)
	return nil
}

// Load reads a value through a virtual address. An unbound object reads
// as an unconstrained interval, like Get.
func (s *AbstractState) Load(addr loc.VirtualAddr) (AbstractValue, error) {
	if !addr.IsVirtual() {
		return AbstractValue{}, fmt.Errorf("load: %w: %v", ErrInvalidAddress, addr)
	}
	if v, found := s.objs.Get(addr.Object()); found {
		return v, nil
	}
	return Consts().TopIntervalValue(), nil
}

// joinStore merges o into m pointwise. A key bound on only one side
// keeps that side's binding unchanged; the known operand's precision is
// preserved rather than collapsed to top.
func joinStore[K constraints.Ordered](m, o *immutable.Map[K, AbstractValue]) (*immutable.Map[K, AbstractValue], error) {
	for iter := o.Iterator(); !iter.Done(); {
		k, ov, _ := iter.Next()
		mv, found := m.Get(k)
		if !found {
			m = m.Set(k, ov)
			continue
		}
		j, err := mv.Join(ov)
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", k, err)
		}
		m = m.Set(k, j)
	}
	return m, nil
}

// JoinWith merges another state into the receiver, as applied by the
// fixpoint driver at control-flow merge points in a forward pass. A
// shared key with mismatched tags signals ErrTypeMismatch and leaves
// the receiver unchanged.
func (s *AbstractState) JoinWith(o *AbstractState) error {
	vars, err := joinStore(s.vars, o.vars)
	if err != nil {
		return err
	}
	objs, err := joinStore(s.objs, o.objs)
	if err != nil {
		return err
	}
	s.vars, s.objs = vars, objs
	return nil
}

// meetStore restricts m to keys bound on both sides, dropping bindings
// whose meet carries no information. Absence on o's side reads as ⊥
// here, the opposite convention from joinStore. The iteration runs over
// a snapshot of m, never over the store being rebuilt.
func meetStore[K constraints.Ordered](m, o *immutable.Map[K, AbstractValue]) (*immutable.Map[K, AbstractValue], error) {
	res := m
	for iter := m.Iterator(); !iter.Done(); {
		k, mv, _ := iter.Next()
		ov, found := o.Get(k)
		if !found {
			res = res.Delete(k)
			continue
		}
		met, err := mv.Meet(ov)
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", k, err)
		}
		if met.uninformative() {
			res = res.Delete(k)
		} else {
			res = res.Set(k, met)
		}
	}
	return res, nil
}

// MeetWith refines the receiver with another state, as applied by the
// fixpoint driver during refinement or backward passes. The key set
// never grows, and uninformative bindings are removed.
func (s *AbstractState) MeetWith(o *AbstractState) error {
	vars, err := meetStore(s.vars, o.vars)
	if err != nil {
		return err
	}
	objs, err := meetStore(s.objs, o.objs)
	if err != nil {
		return err
	}
	s.vars, s.objs = vars, objs
	return nil
}

// stepStore applies fInt/fAddr pairwise on keys bound on both sides
// with matching tags and copies single-sided bindings unchanged. A
// shared key with mismatched tags is dropped.
func stepStore[K constraints.Ordered](
	m, o *immutable.Map[K, AbstractValue],
	hasher immutable.Hasher[K],
	fInt func(Interval, Interval) Interval,
	fAddr func(AddressSet, AddressSet) AddressSet,
) *immutable.Map[K, AbstractValue] {
	res := immutable.NewMap[K, AbstractValue](hasher)
	for iter := m.Iterator(); !iter.Done(); {
		k, mv, _ := iter.Next()
		ov, found := o.Get(k)
		switch {
		case !found:
			res = res.Set(k, mv)
		case mv.IsInterval() && ov.IsInterval():
			res = res.Set(k, elFact.AbstractInterval(fInt(mv.Interval(), ov.Interval())))
		case mv.IsAddr() && ov.IsAddr():
			res = res.Set(k, elFact.AbstractAddress(fAddr(mv.AddrSet(), ov.AddrSet())))
		}
	}
	for iter := o.Iterator(); !iter.Done(); {
		k, ov, _ := iter.Next()
		if _, found := m.Get(k); !found {
			res = res.Set(k, ov)
		}
	}
	return res
}

// Widen returns a fresh state that forces loop convergence: interval
// bindings take the single-step jump to infinity, address bindings fall
// back to union (the powerset domain needs no widening of its own).
func (s *AbstractState) Widen(o *AbstractState) *AbstractState {
	return &AbstractState{
		vars: stepStore[loc.VarID](s.vars, o.vars, varIDHasher{}, Interval.Widen, AddressSet.Join),
		objs: stepStore[loc.ObjID](s.objs, o.objs, objIDHasher{}, Interval.Widen, AddressSet.Join),
	}
}

// Narrow returns a fresh state that regains precision after widening:
// interval bindings narrow, address bindings fall back to intersection.
func (s *AbstractState) Narrow(o *AbstractState) *AbstractState {
	return &AbstractState{
		vars: stepStore[loc.VarID](s.vars, o.vars, varIDHasher{}, Interval.Narrow, AddressSet.Meet),
		objs: stepStore[loc.ObjID](s.objs, o.objs, objIDHasher{}, Interval.Narrow, AddressSet.Meet),
	}
}

func geqStore[K constraints.Ordered](m, o *immutable.Map[K, AbstractValue]) bool {
	for iter := o.Iterator(); !iter.Done(); {
		k, ov, _ := iter.Next()
		mv, found := m.Get(k)
		if !found || !mv.Contain(ov) {
			return false
		}
	}
	return true
}

// Geq computes s ⊒ o, the partial order the fixpoint driver checks for
// convergence. Every binding in o must be contained in a same-tagged
// binding in s; a key missing from s falsifies containment.
func (s *AbstractState) Geq(o *AbstractState) bool {
	return geqStore(s.vars, o.vars) && geqStore(s.objs, o.objs)
}

func eqStore[K constraints.Ordered](m, o *immutable.Map[K, AbstractValue]) bool {
	if m.Len() != o.Len() {
		return false
	}
	for iter := m.Iterator(); !iter.Done(); {
		k, mv, _ := iter.Next()
		if ov, found := o.Get(k); !found || !mv.Eq(ov) {
			return false
		}
	}
	return true
}

// Eq checks that both stores agree in size and, key by key, in value.
func (s *AbstractState) Eq(o *AbstractState) bool {
	return eqStore(s.vars, o.vars) && eqStore(s.objs, o.objs)
}

// SliceState projects the variable store onto the given keys, producing
// the minimal summary handed across a procedure boundary.
func (s *AbstractState) SliceState(ids []loc.VarID) *AbstractState {
	res := elFact.AbstractState()
	for _, id := range ids {
		if v, found := s.vars.Get(id); found {
			res.vars = res.vars.Set(id, v)
		}
	}
	return res
}

func (s *AbstractState) forceIntervals(to Interval) *AbstractState {
	res := s.Copy()
	for iter := s.vars.Iterator(); !iter.Done(); {
		k, v, _ := iter.Next()
		if v.IsInterval() {
			res.vars = res.vars.Set(k, elFact.AbstractInterval(to))
		}
	}
	return res
}

// Bottom returns a copy with every interval-tagged variable binding
// forced to ⊥. Address bindings have no universal ⊥ in this design and
// are left untouched.
func (s *AbstractState) Bottom() *AbstractState {
	return s.forceIntervals(intervalLattice.Bot())
}

// Top returns a copy with every interval-tagged variable binding forced
// to ⊤. Address bindings are left untouched.
func (s *AbstractState) Top() *AbstractState {
	return s.forceIntervals(intervalLattice.Top())
}

// GepObjAddrs resolves a structural access through a pointer. A
// pointer not known to hold addresses yields ∅. A singleton offset
// shifts every base object by that constant; a non-degenerate offset
// range conservatively keeps the base set. The offset interval comes
// already decomposed from the external object model.
func (s *AbstractState) GepObjAddrs(pointer loc.VarID, offset Interval) AddressSet {
	if !s.VarHoldsAddrs(pointer) {
		return elFact.AddressSet()
	}
	base := s.Get(pointer).AddrSet()
	if offset.IsSingleton() {
		return base.Shift(offset.Low())
	}
	return base
}

// Clear empties both stores.
func (s *AbstractState) Clear() {
	*s = *elFact.AbstractState()
}

func (s *AbstractState) String() string {
	varKeys := make([]loc.VarID, 0, s.vars.Len())
	for iter := s.vars.Iterator(); !iter.Done(); {
		k, _, _ := iter.Next()
		varKeys = append(varKeys, k)
	}
	sort.Slice(varKeys, func(i, j int) bool { return varKeys[i] < varKeys[j] })

	varBuf := make([]string, 0, len(varKeys))
	for _, k := range varKeys {
		v, _ := s.vars.Get(k)
		varBuf = append(varBuf, fmt.Sprintf("%v ↦ %v", k, v))
	}

	objKeys := make([]loc.ObjID, 0, s.objs.Len())
	for iter := s.objs.Iterator(); !iter.Done(); {
		k, _, _ := iter.Next()
		objKeys = append(objKeys, k)
	}
	sort.Slice(objKeys, func(i, j int) bool { return objKeys[i] < objKeys[j] })

	objBuf := make([]string, 0, len(objKeys))
	for _, k := range objKeys {
		v, _ := s.objs.Get(k)
		objBuf = append(objBuf, fmt.Sprintf("%v (%v) ↦ %v", k, loc.AddrOf(k), v))
	}

	return colorize.Field("Variables") + ": " +
		i.Indenter().Start("{").NestStrings(varBuf...).End("}") + "\n" +
		colorize.Field("Objects") + ": " +
		i.Indenter().Start("{").NestStrings(objBuf...).End("}")
}
