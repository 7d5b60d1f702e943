package lattice

import (
	"sort"
	"strings"

	loc "github.com/vflow-project/vflow/analysis/location"
)

// AddressSet is a member of the finite powerset lattice over abstract
// memory objects. Sets are copy-on-write: no operation mutates a set
// reachable from another abstract value, so two states never observe
// each other through a shared set.
type AddressSet struct {
	objs map[loc.ObjID]bool
}

// AddressSet constructs a set holding the given object ids.
func (elementFactory) AddressSet(ids ...loc.ObjID) AddressSet {
	s := AddressSet{objs: make(map[loc.ObjID]bool, len(ids))}
	for _, id := range ids {
		s.objs[id] = true
	}
	return s
}

func (s AddressSet) copy() AddressSet {
	res := AddressSet{objs: make(map[loc.ObjID]bool, len(s.objs))}
	for id := range s.objs {
		res.objs[id] = true
	}
	return res
}

// Size is the cardinality of the address set.
func (s AddressSet) Size() int {
	return len(s.objs)
}

// Empty checks whether the address set is ∅.
func (s AddressSet) Empty() bool {
	return len(s.objs) == 0
}

// Contains checks whether an object is included in the address set.
func (s AddressSet) Contains(id loc.ObjID) bool {
	return s.objs[id]
}

// Add returns a copy of the set extended with the given object.
func (s AddressSet) Add(id loc.ObjID) AddressSet {
	res := s.copy()
	res.objs[id] = true
	return res
}

// Entries aggregates the members of the address set in ascending order.
func (s AddressSet) Entries() []loc.ObjID {
	ret := make([]loc.ObjID, 0, len(s.objs))
	for id := range s.objs {
		ret = append(ret, id)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// ForEach performs procedure `f` on all members of the address set.
func (s AddressSet) ForEach(f func(loc.ObjID)) {
	for id := range s.objs {
		f(id)
	}
}

// Eq computes s1 = s2.
func (s1 AddressSet) Eq(s2 AddressSet) bool {
	return s1.Leq(s2) && s1.Geq(s2)
}

// Leq computes s1 ⊑ s2, i.e. s1 ⊆ s2.
func (s1 AddressSet) Leq(s2 AddressSet) bool {
	for id := range s1.objs {
		if !s2.objs[id] {
			return false
		}
	}
	return true
}

// Geq computes s1 ⊒ s2, i.e. s1 ⊇ s2.
func (s1 AddressSet) Geq(s2 AddressSet) bool {
	return s2.Leq(s1)
}

// Join computes s1 ⊔ s2 as set union.
func (s1 AddressSet) Join(s2 AddressSet) AddressSet {
	if s2.Empty() {
		return s1
	}
	res := s2.copy()
	for id := range s1.objs {
		res.objs[id] = true
	}
	return res
}

// Meet computes s1 ⊓ s2 as set intersection.
func (s1 AddressSet) Meet(s2 AddressSet) AddressSet {
	res := elFact.AddressSet()
	for id := range s1.objs {
		if s2.objs[id] {
			res.objs[id] = true
		}
	}
	return res
}

// Shift returns the set with a constant added to every member. It
// resolves structural accesses at a constant offset from a base set.
func (s AddressSet) Shift(delta int) AddressSet {
	res := elFact.AddressSet()
	for id := range s.objs {
		res.objs[loc.ObjID(int(id)+delta)] = true
	}
	return res
}

func (s AddressSet) String() string {
	if s.Empty() {
		return colorize.Element("∅")
	}
	strs := []string{}
	for _, id := range s.Entries() {
		strs = append(strs, loc.AddrOf(id).String())
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
