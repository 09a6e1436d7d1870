// Package lattice provides abstract-interpretation primitives.
// This file defines BoolProgress, the bounded-progress Boolean universe.
package lattice

import "fmt"

// BoolProgress abstracts Boolean variables whose truth value only ever
// progresses from false to true: the two elements are ordered false ≤ true
// and each denotes exactly one truth value. Unlike BoolUnknown there is no
// unknown element, so both constants are representable exactly; the price is
// that the universe cannot represent failure or a genuinely undetermined
// variable. A four-state Boolean domain is obtained by pairing this universe
// with its dual.
type BoolProgress struct{}

// Name identifies the universe in diagnostics.
func (BoolProgress) Name() string { return "BoolProgress" }

// Bot returns false.
func (BoolProgress) Bot() bool { return false }

// Top returns true.
func (BoolProgress) Top() bool { return true }

// Join returns the least upper bound, logical disjunction.
func (BoolProgress) Join(x, y bool) bool { return x || y }

// Meet returns the greatest lower bound, logical conjunction.
func (BoolProgress) Meet(x, y bool) bool { return x && y }

// Order reports x ≤ y under false ≤ true, the Boolean implication.
func (BoolProgress) Order(x, y bool) bool { return !x || y }

// StrictOrder reports x < y, which holds only for false < true.
func (BoolProgress) StrictOrder(x, y bool) bool { return !x && y }

// Next returns the cover of x: true from false, and true again from true
// since Top is a fixed point.
func (BoolProgress) Next(x bool) bool { return true }

// Prev returns the element x covers: false from true, and false again from
// false since Bot is a fixed point.
func (BoolProgress) Prev(x bool) bool { return false }

// SigOrder returns the non-strict comparison symbol.
func (BoolProgress) SigOrder() Sig { return SigLeq }

// SigStrictOrder returns the strict comparison symbol.
func (BoolProgress) SigStrictOrder() Sig { return SigLt }

// Properties declares the Galois facts of this universe. Each element
// denotes exactly one truth value, so the concretization is injective and
// Bot denotes the singleton {false}; the full concrete set {false, true} is
// not representable, so PreservesTop is false.
func (BoolProgress) Properties() Properties {
	return Properties{
		TotallyOrdered:          true,
		PreservesBot:            true,
		PreservesTop:            false,
		PreservesJoin:           true,
		PreservesMeet:           true,
		InjectiveConcretization: true,
		PreservesConcreteCovers: true,
	}
}

// InterpretTell converts a Boolean constant into an element of this
// universe. Both constants are representable exactly, so no approximation
// direction is ever violated; only non-constant shapes are rejected.
func (u BoolProgress) InterpretTell(f *Formula, appx Approx, dualize bool) Result[bool] {
	if f.Kind != FormulaConstant {
		return Err[bool](NewError(UniverseRejection, u.Name(),
			"only Boolean constants can be interpreted in a Boolean universe", f))
	}
	return Ok(f.B)
}

// InterpretAsk is defined identically to InterpretTell for this two-valued
// universe.
func (u BoolProgress) InterpretAsk(f *Formula, appx Approx, dualize bool) Result[bool] {
	return u.InterpretTell(f, appx, dualize)
}

// InterpretType accepts existential declarations of sort Bool and returns
// the initial value Bot, or Top under dualize.
func (u BoolProgress) InterpretType(f *Formula, dualize bool) Result[bool] {
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

// IsSupportedFun reports the connectives this universe can evaluate.
// Negation is supported here because both elements denote exact truth
// values, so nothing is lost by flipping one.
func (BoolProgress) IsSupportedFun(sig Sig) bool {
	switch sig {
	case SigAnd, SigOr, SigImply, SigEquiv, SigXor, SigNot, SigEq, SigNeq:
		return true
	default:
		return false
	}
}

// IsOrderPreserving reports which supported connectives are monotone in the
// false ≤ true order: conjunction and disjunction are, while negation,
// implication and the (dis)equality tests are not monotone in both operands.
func (BoolProgress) IsOrderPreserving(sig Sig) bool {
	switch sig {
	case SigAnd, SigOr:
		return true
	default:
		return false
	}
}

// Fun evaluates a supported connective: unary negation or one of the binary
// connectives. Under dualize conjunction and disjunction exchange roles and
// implication tests the converse side.
func (u BoolProgress) Fun(sig Sig, dualize bool, operands ...bool) (bool, error) {
	if sig == SigNot {
		if len(operands) != 1 {
			return false, fmt.Errorf("%s: %s expects 1 operand, got %d", u.Name(), sig, len(operands))
		}
		return !operands[0], nil
	}
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
func (BoolProgress) ConstantOf(v bool) *Formula {
	return Bool(v)
}
