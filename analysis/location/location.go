// Package location defines the key space of the abstract state: variable
// and memory-object identifiers, and the virtual-address scheme that tags
// object references apart from plain numeric values. The identifiers are
// allocated and given meaning by the external object model; this package
// only owns their encoding.
package location

import (
	"fmt"

	"github.com/vflow-project/vflow/utils"

	"github.com/fatih/color"
)

// colorize is used for pretty-printing.
var colorize = struct {
	Var  func(...interface{}) string
	Obj  func(...interface{}) string
	Addr func(...interface{}) string
}{
	Var: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Obj: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiGreen).SprintFunc())(is...)
	},
	Addr: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiCyan).SprintFunc())(is...)
	},
}

type (
	// VarID identifies an abstract program variable.
	VarID int32
	// ObjID identifies an abstract memory object.
	ObjID int32
)

// NullObj is the reserved null object. Writes through it are dropped.
const NullObj ObjID = 0

// Virtual addresses mark an object id with a high tag byte, keeping
// abstract memory references apart from ordinary numeric values. The id
// field occupies the low 24 bits and never overlaps the tag.
const (
	addrTag  = 0x7F000000
	addrMask = 0xFF000000
)

// VirtualAddr is a tagged reference to an abstract memory object.
type VirtualAddr uint32

// AddrOf encodes an object id as a virtual address.
func AddrOf(id ObjID) VirtualAddr {
	return VirtualAddr(addrTag | uint32(id))
}

// IsVirtual checks the address tag.
func (v VirtualAddr) IsVirtual() bool {
	return uint32(v)&addrMask == addrTag
}

// Object strips the tag off a virtual address. Untagged values decode to
// themselves.
func (v VirtualAddr) Object() ObjID {
	if !v.IsVirtual() {
		return ObjID(v)
	}
	return ObjID(uint32(v) &^ uint32(addrMask))
}

func (v VirtualAddr) String() string {
	return colorize.Addr(fmt.Sprintf("%#x", uint32(v)))
}

func (x VarID) Hash() uint32 {
	return uint32(x) * 0x9e3779b9
}

func (x VarID) String() string {
	return colorize.Var(fmt.Sprintf("x%d", int32(x)))
}

func (o ObjID) Hash() uint32 {
	return uint32(o) * 0x9e3779b9
}

func (o ObjID) String() string {
	return colorize.Obj(fmt.Sprintf("o%d", int32(o)))
}

// VarIDHasher is needed for immutable.Map.
type VarIDHasher struct{}

func (VarIDHasher) Hash(key VarID) uint32 {
	return key.Hash()
}

func (VarIDHasher) Equal(a, b VarID) bool {
	return a == b
}

// ObjIDHasher is needed for immutable.Map.
type ObjIDHasher struct{}

func (ObjIDHasher) Hash(key ObjID) uint32 {
	return key.Hash()
}

func (ObjIDHasher) Equal(a, b ObjID) bool {
	return a == b
}
