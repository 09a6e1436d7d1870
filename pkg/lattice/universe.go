// Package lattice provides abstract-interpretation primitives.
// This file defines the Universe contract: the lattice interface every
// concrete value algebra implements, together with the declared
// Galois-connection facts callers rely on to decide whether a universe's
// order can stand in for exact concrete truth.
package lattice

// Properties declares how faithfully a universe's elements and operations
// reflect the concrete sets they abstract. These facts are fixed per
// universe, never computed: a universe states them once and callers trust
// them when composing results for further refinement.
type Properties struct {
	// TotallyOrdered is true if every pair of elements is comparable.
	// All shipped universes are totally ordered, so Join and Meet reduce
	// to directional max and min.
	TotallyOrdered bool

	// PreservesBot is true if the concretization of Bot is the empty
	// concrete set.
	PreservesBot bool

	// PreservesTop is true if the concretization of Top is the full
	// concrete set.
	PreservesTop bool

	// PreservesJoin is true if the concretization of Join(x, y) is the
	// union of the concretizations of x and y.
	PreservesJoin bool

	// PreservesMeet is true if the concretization of Meet(x, y) is the
	// intersection of the concretizations of x and y.
	PreservesMeet bool

	// InjectiveConcretization is true if distinct elements denote
	// distinct concrete sets.
	InjectiveConcretization bool

	// PreservesConcreteCovers is true if abstract covers mirror concrete
	// covers: x is covered by y exactly when their concretizations are.
	PreservesConcreteCovers bool
}

// Dualized returns the properties of the order-reversed universe: the roles
// of bottom and top are exchanged, as are join and meet.
func (p Properties) Dualized() Properties {
	p.PreservesBot, p.PreservesTop = p.PreservesTop, p.PreservesBot
	p.PreservesJoin, p.PreservesMeet = p.PreservesMeet, p.PreservesJoin
	return p
}

// Universe is the contract every concrete value algebra implements. A
// universe is a pure value algebra over an opaque value type V: operations
// return new values and never mutate state, so a universe value can be
// shared freely.
//
// Each concrete universe is a distinct implementing type selected at the
// call site; the set of universes used in one build is fixed at compile
// time, so no registry or runtime dispatch exists.
//
// The interpretation entry points take a dualize flag so that the Dual
// adapter can derive the order-reversed algebra from the same code: under
// dualize the roles of Bot and Top are exchanged, which flips which
// constants are safe to interpret and which side of an implication is
// tested.
type Universe[V comparable] interface {
	// Name identifies the universe in diagnostics.
	Name() string

	// Bot returns the least element under this universe's order.
	Bot() V

	// Top returns the greatest element under this universe's order.
	Top() V

	// Join returns the least upper bound of x and y. It is commutative,
	// associative and idempotent.
	Join(x, y V) V

	// Meet returns the greatest lower bound of x and y. It is
	// commutative, associative and idempotent.
	Meet(x, y V) V

	// Order reports whether x is below or equal to y. It is consistent
	// with Join: Order(x, y) holds exactly when Join(x, y) == y.
	Order(x, y V) bool

	// StrictOrder reports whether x is strictly below y.
	StrictOrder(x, y V) bool

	// Next returns the unique cover of x (its successor), or x unchanged
	// when x is Top.
	Next(x V) V

	// Prev returns the unique element x covers, or x unchanged when x is
	// Bot.
	Prev(x V) V

	// SigOrder returns the logical predicate symbol corresponding to
	// this universe's order.
	SigOrder() Sig

	// SigStrictOrder returns the logical predicate symbol corresponding
	// to this universe's strict order.
	SigStrictOrder() Sig

	// Properties returns the declared Galois-connection facts.
	Properties() Properties

	// InterpretTell converts a formula that narrows a domain into an
	// element of this universe. It rejects formulas of a shape or symbol
	// the universe cannot model, and rejects constants that cannot be
	// represented exactly when representing them would silently widen
	// instead of narrow.
	InterpretTell(f *Formula, appx Approx, dualize bool) Result[V]

	// InterpretAsk is the read-side counterpart of InterpretTell. For
	// the shipped two-valued universes it behaves identically, but it is
	// a separate entry point because richer universes diverge.
	InterpretAsk(f *Formula, appx Approx, dualize bool) Result[V]

	// InterpretType checks the sort of an existential declaration
	// against what this universe accepts. On match it returns Bot (or
	// Top under dualize) as the variable's initial value; on mismatch,
	// an error naming the variable and the required sort.
	InterpretType(f *Formula, dualize bool) Result[V]

	// IsSupportedFun reports whether this universe can evaluate the
	// connective symbol at all.
	IsSupportedFun(sig Sig) bool

	// IsOrderPreserving reports whether a supported connective is
	// monotone in this universe's order, which callers must know before
	// composing its results for further refinement.
	IsOrderPreserving(sig Sig) bool

	// Fun evaluates a supported connective over operand values. The
	// semantics of each symbol are fixed by the concrete universe; an
	// unsupported symbol or wrong operand count is a plain error, since
	// callers are expected to consult IsSupportedFun first.
	Fun(sig Sig, dualize bool, operands ...V) (V, error)

	// ConstantOf builds the constant formula denoting the given value.
	ConstantOf(v V) *Formula
}
