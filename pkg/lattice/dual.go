// Package lattice provides abstract-interpretation primitives.
// This file defines the generic dual adapter: the order-reversed lattice of
// any universe, obtained by reinterpretation rather than duplication.
package lattice

// Dual derives the order-reversed universe of a base universe. It stores no
// values of its own: every operation forwards to the base with Join and Meet
// exchanged, Bot and Top exchanged, and the dualize flag flipped on the
// interpretation entry points. A value produced through a Dual is therefore
// the same underlying value the base would produce, reinterpreted under the
// reversed order.
type Dual[V comparable] struct {
	base Universe[V]
}

// NewDual wraps a universe in its order-reversed adapter. Most callers want
// DualOf, which also collapses double duals.
func NewDual[V comparable](base Universe[V]) Dual[V] {
	return Dual[V]{base: base}
}

// DualOf returns the order-reversed universe of u. Applying it to a Dual
// unwraps back to the base, so the double dual is the original universe.
func DualOf[V comparable](u Universe[V]) Universe[V] {
	if d, ok := u.(Dual[V]); ok {
		return d.base
	}
	return Dual[V]{base: u}
}

// Base returns the wrapped universe.
func (d Dual[V]) Base() Universe[V] {
	return d.base
}

// Name identifies the dualized universe in diagnostics.
func (d Dual[V]) Name() string {
	return d.base.Name() + "Dual"
}

// Bot returns the base universe's Top: the least element of the reversed
// order is the greatest of the original.
func (d Dual[V]) Bot() V {
	return d.base.Top()
}

// Top returns the base universe's Bot.
func (d Dual[V]) Top() V {
	return d.base.Bot()
}

// Join returns the base universe's Meet.
func (d Dual[V]) Join(x, y V) V {
	return d.base.Meet(x, y)
}

// Meet returns the base universe's Join.
func (d Dual[V]) Meet(x, y V) V {
	return d.base.Join(x, y)
}

// Order reports the base order with its arguments swapped.
func (d Dual[V]) Order(x, y V) bool {
	return d.base.Order(y, x)
}

// StrictOrder reports the base strict order with its arguments swapped.
func (d Dual[V]) StrictOrder(x, y V) bool {
	return d.base.StrictOrder(y, x)
}

// Next returns the base universe's Prev: moving up the reversed order moves
// down the original.
func (d Dual[V]) Next(x V) V {
	return d.base.Prev(x)
}

// Prev returns the base universe's Next.
func (d Dual[V]) Prev(x V) V {
	return d.base.Next(x)
}

// SigOrder returns the converse of the base order symbol.
func (d Dual[V]) SigOrder() Sig {
	return converse(d.base.SigOrder())
}

// SigStrictOrder returns the converse of the base strict order symbol.
func (d Dual[V]) SigStrictOrder() Sig {
	return converse(d.base.SigStrictOrder())
}

// Properties returns the base properties with the bot/top and join/meet
// preservation facts exchanged.
func (d Dual[V]) Properties() Properties {
	return d.base.Properties().Dualized()
}

// InterpretTell forwards to the base universe with the dualize flag flipped.
func (d Dual[V]) InterpretTell(f *Formula, appx Approx, dualize bool) Result[V] {
	return d.base.InterpretTell(f, appx, !dualize)
}

// InterpretAsk forwards to the base universe with the dualize flag flipped.
func (d Dual[V]) InterpretAsk(f *Formula, appx Approx, dualize bool) Result[V] {
	return d.base.InterpretAsk(f, appx, !dualize)
}

// InterpretType forwards to the base universe with the dualize flag flipped,
// so a matching declaration starts at this adapter's Bot.
func (d Dual[V]) InterpretType(f *Formula, dualize bool) Result[V] {
	return d.base.InterpretType(f, !dualize)
}

// IsSupportedFun forwards to the base universe.
func (d Dual[V]) IsSupportedFun(sig Sig) bool {
	return d.base.IsSupportedFun(sig)
}

// IsOrderPreserving forwards to the base universe: a connective monotone in
// the base order is monotone in the reversed order as well.
func (d Dual[V]) IsOrderPreserving(sig Sig) bool {
	return d.base.IsOrderPreserving(sig)
}

// Fun forwards to the base universe with the dualize flag flipped.
func (d Dual[V]) Fun(sig Sig, dualize bool, operands ...V) (V, error) {
	return d.base.Fun(sig, !dualize, operands...)
}

// ConstantOf forwards to the base universe; constants denote the same
// concrete values under either order.
func (d Dual[V]) ConstantOf(v V) *Formula {
	return d.base.ConstantOf(v)
}
