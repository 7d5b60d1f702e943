// Package lattice implements the abstract value domains of the value-flow
// analysis and the dual-store abstract state lifted pointwise from them.
// The external fixpoint driver combines states with JoinWith/MeetWith at
// control-flow merge points, forces loop convergence with Widen, regains
// precision with Narrow, and detects convergence with Geq.
package lattice

import (
	"errors"
	"fmt"

	"github.com/vflow-project/vflow/utils"

	"github.com/fatih/color"
)

// colorize is used for pretty-printing.
var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Field   func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Field: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
}

// Caller contract violations, propagated to the fixpoint driver.
var (
	// ErrTypeMismatch signals a binary operation over abstract values
	// with differing type tags. Mismatches are never coerced.
	ErrTypeMismatch = errors.New("abstract value type mismatch")
	// ErrInvalidAddress signals a store or load through an integer that
	// fails the virtual-address tag check.
	ErrInvalidAddress = errors.New("not a virtual address")
)

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errUnsupportedOperation      = errors.New("UnsupportedOperationError")
	errPatternMatch              = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)
