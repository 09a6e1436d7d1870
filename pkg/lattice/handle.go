// Package lattice provides abstract-interpretation primitives.
// This file defines AVar, the handle identifying one projection of a
// variable into one universe instance (an "abstract domain").
package lattice

import "fmt"

// UntypedDomain is the reserved sentinel marking "no domain yet".
// It is never a valid domain id.
const UntypedDomain = -1

// AVar identifies one projection of a logical variable into one abstract
// domain. It pairs the domain id with the variable's slot inside that
// domain. Handles are small value types: they are allocated by the Env and
// index directly into per-domain storage, so both components are stable for
// the lifetime of the declaration (until a Restore rolls it back).
type AVar struct {
	dom  int
	slot int
}

// NewAVar creates a handle for the given domain id and slot.
func NewAVar(dom, slot int) AVar {
	return AVar{dom: dom, slot: slot}
}

// UntypedAVar returns the sentinel handle that belongs to no domain.
func UntypedAVar() AVar {
	return AVar{dom: UntypedDomain}
}

// Domain returns the abstract domain id of the handle.
func (av AVar) Domain() int {
	return av.dom
}

// Slot returns the handle's position inside its domain.
func (av AVar) Slot() int {
	return av.slot
}

// IsUntyped returns true if the handle carries the "no domain" sentinel.
func (av AVar) IsUntyped() bool {
	return av.dom == UntypedDomain
}

// String returns a compact "domain:slot" rendering, or "untyped" for the
// sentinel handle.
func (av AVar) String() string {
	if av.IsUntyped() {
		return "untyped"
	}
	return fmt.Sprintf("%d:%d", av.dom, av.slot)
}
