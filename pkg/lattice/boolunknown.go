// Package lattice provides abstract-interpretation primitives.
// This file defines BoolUnknown, the two-valued "unknown" Boolean universe.
package lattice

import "fmt"

// BoolUnknown abstracts the Boolean universe of discourse {true, false} with
// two elements ordered by implication: false below true. The element true
// does not represent the truth value true but the unknown value, as the
// Galois connection shows:
//
//	concretization(false) = {false}
//	concretization(true)  = {false, true}
//	abstraction(S)        = true if true ∈ S, else false
//
// Implementing the lattice operations as the usual logical connectors is
// only a matter of convenience, since they coincide when reading the top
// element as true. The convenience stops at Fun: connectives are computed
// with respect to the concrete domain, not this lattice's order, so the
// dualized algebra needs its own cases and the dualize flag threads through.
type BoolUnknown struct{}

// Name identifies the universe in diagnostics.
func (BoolUnknown) Name() string { return "BoolUnknown" }

// Bot returns false, denoting exactly {false}.
func (BoolUnknown) Bot() bool { return false }

// Top returns true, denoting {false, true}.
func (BoolUnknown) Top() bool { return true }

// Join returns the least upper bound, logical disjunction.
func (BoolUnknown) Join(x, y bool) bool { return x || y }

// Meet returns the greatest lower bound, logical conjunction.
func (BoolUnknown) Meet(x, y bool) bool { return x && y }

// Order reports x ≤ y, which is the Boolean implication x => y.
func (BoolUnknown) Order(x, y bool) bool { return !x || y }

// StrictOrder reports x < y, which holds only for false < true.
func (BoolUnknown) StrictOrder(x, y bool) bool { return !x && y }

// Next returns the cover of x, or x when x is already Top. On a two-element
// chain that is always true.
func (BoolUnknown) Next(x bool) bool { return true }

// Prev returns the element x covers, or x when x is already Bot.
func (BoolUnknown) Prev(x bool) bool { return false }

// SigOrder returns the implication symbol: the order of this universe.
func (BoolUnknown) SigOrder() Sig { return SigImply }

// SigStrictOrder returns the strict order symbol.
func (BoolUnknown) SigStrictOrder() Sig { return SigLt }

// Properties declares the Galois facts of this universe. Bot denotes
// {false}, not the empty set, so the empty set is not representable and
// PreservesBot is false.
func (BoolUnknown) Properties() Properties {
	return Properties{
		TotallyOrdered:          true,
		PreservesBot:            false,
		PreservesTop:            true,
		PreservesJoin:           true,
		PreservesMeet:           true,
		InjectiveConcretization: true,
		PreservesConcreteCovers: true,
	}
}

// InterpretTell converts a Boolean constant into an element of this
// universe. The constant true cannot be told exactly: its only candidate
// representation is the top element, whose concretization {false, true} also
// denotes false, so telling it would silently widen instead of narrow. It is
// therefore rejected unless the caller asked for an over-approximation.
// Under dualize the roles of bottom and top are exchanged and the unsafe
// constant is false instead.
func (u BoolUnknown) InterpretTell(f *Formula, appx Approx, dualize bool) Result[bool] {
	if f.Kind != FormulaConstant {
		return Err[bool](NewError(UniverseRejection, u.Name(),
			"only Boolean constants can be interpreted in a Boolean universe", f))
	}
	unsafe := !dualize
	if f.B == unsafe && appx != Over {
		side := "top"
		dom := u.Name()
		if dualize {
			side = "bottom"
			dom += "Dual"
		}
		return Err[bool](NewError(UniverseRejection, u.Name(),
			fmt.Sprintf("the constant `%t` would be over-approximated by the %s element of `%s`, whose concretization is {false, true}",
				f.B, side, dom), f))
	}
	return Ok(f.B)
}

// InterpretAsk is defined identically to InterpretTell for this two-valued
// universe: an element can only be asked when it represents the constant
// exactly.
func (u BoolUnknown) InterpretAsk(f *Formula, appx Approx, dualize bool) Result[bool] {
	return u.InterpretTell(f, appx, dualize)
}

// InterpretType accepts existential declarations of sort Bool and returns
// the initial value Bot, or Top under dualize.
func (u BoolUnknown) InterpretType(f *Formula, dualize bool) Result[bool] {
	if f.Kind != FormulaExists {
		return Err[bool](NewError(UnsupportedFormulaShape, u.Name(),
			"InterpretType expects an existential declaration", f))
	}
	if f.Sort != SortBool {
		return Err[bool](NewError(UniverseRejection, u.Name(),
			fmt.Sprintf("the sort of `%s` can only be `Bool` when interpreted in a Boolean universe, got `%s`", f.Name, f.Sort), f))
	}
	if dualize {
		return Ok(u.Top())
	}
	return Ok(u.Bot())
}

// IsSupportedFun reports the binary connectives this universe can evaluate.
// Negation is not supported: not(false) is over-approximated by top and
// not(top) stays top, so the function trivially maps to the top element.
func (BoolUnknown) IsSupportedFun(sig Sig) bool {
	switch sig {
	case SigAnd, SigOr, SigImply, SigEquiv, SigXor, SigEq, SigNeq:
		return true
	default:
		return false
	}
}

// IsOrderPreserving reports which supported connectives are monotone in this
// universe's order.
func (u BoolUnknown) IsOrderPreserving(sig Sig) bool {
	return u.IsSupportedFun(sig)
}

// Fun evaluates a supported binary connective. Under dualize conjunction and
// disjunction exchange roles and implication tests the converse side.
func (u BoolUnknown) Fun(sig Sig, dualize bool, operands ...bool) (bool, error) {
	if len(operands) != 2 {
		return false, fmt.Errorf("%s: %s expects 2 operands, got %d", u.Name(), sig, len(operands))
	}
	x, y := operands[0], operands[1]
	switch sig {
	case SigAnd:
		if dualize {
			return x || y, nil
		}
		return x && y, nil
	case SigOr:
		if dualize {
			return x && y, nil
		}
		return x || y, nil
	case SigImply:
		if dualize {
			return !y || x, nil
		}
		return !x || y, nil
	case SigEquiv, SigEq:
		return x == y, nil
	case SigXor, SigNeq:
		return x != y, nil
	default:
		return false, fmt.Errorf("%s: unsupported function `%s`", u.Name(), sig)
	}
}

// ConstantOf builds the Boolean constant formula denoting v.
func (BoolUnknown) ConstantOf(v bool) *Formula {
	return Bool(v)
}
