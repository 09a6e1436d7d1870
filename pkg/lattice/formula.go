// Package lattice provides abstract-interpretation primitives.
// This file defines the formula boundary consumed by environments and
// universes. Formulas arrive pre-built from an external front end; no text
// parsing happens in this package.
package lattice

import (
	"fmt"
	"strings"
)

// Sort is the type descriptor attached to a variable declaration. This
// package only compares sorts for equality and asks a universe whether it
// accepts one.
type Sort int

// The sorts understood by the shipped universes. External front ends may
// define further sorts; universes reject the ones they cannot host.
const (
	SortBool Sort = iota
	SortInt
	SortReal
)

// String returns the sort's name.
func (s Sort) String() string {
	switch s {
	case SortBool:
		return "Bool"
	case SortInt:
		return "Int"
	case SortReal:
		return "Real"
	default:
		return fmt.Sprintf("Sort(%d)", int(s))
	}
}

// Approx is the approximation direction under which a formula may be
// interpreted: exactly, as an under-approximation (the abstract element
// denotes a subset of the formula's models), or as an over-approximation
// (a superset of the formula's models).
type Approx int

const (
	// Exact requires the abstract element to denote precisely the
	// formula's models.
	Exact Approx = iota

	// Under allows the abstract element to denote a subset of the
	// formula's models.
	Under

	// Over allows the abstract element to denote a superset of the
	// formula's models.
	Over
)

// String returns the approximation direction's name.
func (a Approx) String() string {
	switch a {
	case Exact:
		return "exact"
	case Under:
		return "under"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("Approx(%d)", int(a))
	}
}

// Sig identifies a connective or predicate symbol appearing in a formula.
type Sig int

const (
	SigAnd Sig = iota
	SigOr
	SigImply
	SigImpliedBy
	SigEquiv
	SigXor
	SigNot
	SigEq
	SigNeq
	SigLeq
	SigLt
	SigGeq
	SigGt
)

// String returns the symbol's usual notation.
func (s Sig) String() string {
	switch s {
	case SigAnd:
		return "and"
	case SigOr:
		return "or"
	case SigImply:
		return "=>"
	case SigImpliedBy:
		return "<="
	case SigEquiv:
		return "<=>"
	case SigXor:
		return "xor"
	case SigNot:
		return "not"
	case SigEq:
		return "="
	case SigNeq:
		return "!="
	case SigLeq:
		return "<="
	case SigLt:
		return "<"
	case SigGeq:
		return ">="
	case SigGt:
		return ">"
	default:
		return fmt.Sprintf("Sig(%d)", int(s))
	}
}

// converse maps an order symbol to the symbol of the reversed order. It is
// used by the dual adapter to report the order predicate of a dualized
// universe.
func converse(s Sig) Sig {
	switch s {
	case SigImply:
		return SigImpliedBy
	case SigImpliedBy:
		return SigImply
	case SigLeq:
		return SigGeq
	case SigGeq:
		return SigLeq
	case SigLt:
		return SigGt
	case SigGt:
		return SigLt
	default:
		return s
	}
}

// FormulaKind discriminates the formula shapes this core consumes.
type FormulaKind int

const (
	// FormulaExists is an existential declaration of a named variable with
	// a sort, targeted at one abstract domain.
	FormulaExists FormulaKind = iota

	// FormulaName is an occurrence of a variable by name, optionally
	// qualified with a target domain.
	FormulaName

	// FormulaResolved is an occurrence of an already-resolved handle.
	FormulaResolved

	// FormulaConstant is a Boolean constant.
	FormulaConstant

	// FormulaApply is the application of a connective to subformulas.
	FormulaApply
)

// Formula is the value crossing the boundary into this core. It is consumed,
// never produced, by environments and universes; the active fields depend on
// Kind. The zero Dom value is meaningful, so constructors set Dom to
// UntypedDomain whenever no target domain is given.
type Formula struct {
	Kind FormulaKind
	Appx Approx

	// Name and Sort describe declarations; Name alone describes name
	// occurrences.
	Name string
	Sort Sort

	// Dom is the target abstract domain of a declaration or a qualified
	// occurrence, or UntypedDomain when absent.
	Dom int

	// Var is the handle of a resolved occurrence.
	Var AVar

	// B is the value of a Boolean constant.
	B bool

	// Sig and Args describe a connective application.
	Sig  Sig
	Args []*Formula
}

// Exists builds an existential declaration of name with the given sort,
// targeted at the abstract domain dom.
func Exists(name string, sort Sort, dom int) *Formula {
	return &Formula{Kind: FormulaExists, Name: name, Sort: sort, Dom: dom}
}

// Occurrence builds an unqualified occurrence of a declared variable.
func Occurrence(name string) *Formula {
	return &Formula{Kind: FormulaName, Name: name, Dom: UntypedDomain}
}

// OccurrenceIn builds an occurrence of a declared variable qualified with
// the abstract domain it must resolve in.
func OccurrenceIn(name string, dom int) *Formula {
	return &Formula{Kind: FormulaName, Name: name, Dom: dom}
}

// Resolved builds an occurrence of an already-resolved handle.
func Resolved(av AVar) *Formula {
	return &Formula{Kind: FormulaResolved, Var: av, Dom: UntypedDomain}
}

// Bool builds a Boolean constant formula.
func Bool(b bool) *Formula {
	return &Formula{Kind: FormulaConstant, B: b, Dom: UntypedDomain}
}

// App builds the application of a connective to subformulas.
func App(sig Sig, args ...*Formula) *Formula {
	return &Formula{Kind: FormulaApply, Sig: sig, Args: args, Dom: UntypedDomain}
}

// WithApprox returns the formula with its approximation tag set. The
// receiver is returned to allow chaining off a constructor.
func (f *Formula) WithApprox(a Approx) *Formula {
	f.Appx = a
	return f
}

// Clone returns a deep copy of the formula. Errors keep clones rather than
// aliases, because they may be collected and reported long after the formula
// tree that produced them has gone away.
func (f *Formula) Clone() *Formula {
	if f == nil {
		return nil
	}
	g := *f
	if len(f.Args) > 0 {
		g.Args = make([]*Formula, len(f.Args))
		for i, a := range f.Args {
			g.Args[i] = a.Clone()
		}
	}
	return &g
}

// String renders the formula in a compact prefix notation for diagnostics.
// The exact layout is not a compatibility surface.
func (f *Formula) String() string {
	if f == nil {
		return "<nil>"
	}
	switch f.Kind {
	case FormulaExists:
		if f.Dom == UntypedDomain {
			return fmt.Sprintf("(exists %s:%s)", f.Name, f.Sort)
		}
		return fmt.Sprintf("(exists %s:%s @%d)", f.Name, f.Sort, f.Dom)
	case FormulaName:
		if f.Dom == UntypedDomain {
			return f.Name
		}
		return fmt.Sprintf("%s@%d", f.Name, f.Dom)
	case FormulaResolved:
		return fmt.Sprintf("#%s", f.Var)
	case FormulaConstant:
		return fmt.Sprintf("%t", f.B)
	case FormulaApply:
		parts := make([]string, 0, len(f.Args)+1)
		parts = append(parts, f.Sig.String())
		for _, a := range f.Args {
			parts = append(parts, a.String())
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("Formula(%d)", int(f.Kind))
	}
}
