// Package lattice provides abstract-interpretation primitives.
// This file defines the diagnostics layer: a structured, composable Error
// and a Result type returned by every interpretation entry point. An
// interpretation failure is ordinary data, similar to a compilation error;
// it explains which component refused which formula and why.
package lattice

import (
	"fmt"
	"io"
	"strings"
)

// Code classifies an interpretation failure. Callers branch on the code to
// decide whether to abort the current interpretation, skip and continue, or
// halt a whole input; this package never swallows an error silently.
type Code int

const (
	// UntypedDeclaration reports an existential declaration whose target
	// domain is the UntypedDomain sentinel.
	UntypedDeclaration Code = iota

	// SortMismatch reports a redeclaration whose sort differs from the
	// sort the variable was first declared with.
	SortMismatch

	// InvalidRedeclaration reports a redeclaration rejected outright.
	// Env follows the extending policy and never emits it, but stricter
	// environments layered on top may.
	InvalidRedeclaration

	// UndeclaredVariable reports an occurrence of an unknown name.
	UndeclaredVariable

	// UndeclaredInDomain reports a domain-qualified occurrence of a
	// variable that was never declared in that domain.
	UndeclaredInDomain

	// AmbiguousOccurrence reports an unqualified occurrence of a variable
	// declared in more than one domain.
	AmbiguousOccurrence

	// UndeclaredAbstractVariable reports a resolved-handle occurrence
	// whose handle does not index an existing declaration.
	UndeclaredAbstractVariable

	// UnsupportedFormulaShape reports a formula shape the component
	// cannot interpret at all.
	UnsupportedFormulaShape

	// UniverseRejection reports a universe refusing a formula it cannot
	// represent, or whose representation would break the requested
	// approximation direction.
	UniverseRejection
)

// String returns the code's name.
func (c Code) String() string {
	switch c {
	case UntypedDeclaration:
		return "UntypedDeclaration"
	case SortMismatch:
		return "SortMismatch"
	case InvalidRedeclaration:
		return "InvalidRedeclaration"
	case UndeclaredVariable:
		return "UndeclaredVariable"
	case UndeclaredInDomain:
		return "UndeclaredInDomain"
	case AmbiguousOccurrence:
		return "AmbiguousOccurrence"
	case UndeclaredAbstractVariable:
		return "UndeclaredAbstractVariable"
	case UnsupportedFormulaShape:
		return "UnsupportedFormulaShape"
	case UniverseRejection:
		return "UniverseRejection"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error describes why a component could not interpret a formula. An Error
// owns a clone of the offending formula, so it stays meaningful after the
// caller's formula tree has gone out of scope. Sub aggregates independent
// simultaneous failures, such as each conjunct of a compound formula failing
// on its own.
//
// An Error with Fatal=false is a warning: producers push it onto a Result's
// warning list instead of replacing the success value.
type Error struct {
	Code        Code
	Fatal       bool
	Source      string
	Description string
	Formula     *Formula
	Domain      int
	Sub         []*Error
}

// NewError creates a fatal interpretation error. The offending formula is
// cloned; the domain defaults to UntypedDomain.
func NewError(code Code, source, description string, f *Formula) *Error {
	return &Error{
		Code:        code,
		Fatal:       true,
		Source:      source,
		Description: description,
		Formula:     f.Clone(),
		Domain:      UntypedDomain,
	}
}

// NewWarning creates a non-fatal interpretation error.
func NewWarning(code Code, source, description string, f *Formula) *Error {
	e := NewError(code, source, description, f)
	e.Fatal = false
	return e
}

// WithDomain records the abstract domain the failure relates to and returns
// the error for chaining.
func (e *Error) WithDomain(dom int) *Error {
	e.Domain = dom
	return e
}

// AddSub appends an independent sub-failure and returns the error for
// chaining.
func (e *Error) AddSub(sub *Error) *Error {
	e.Sub = append(e.Sub, sub)
	return e
}

// Render writes a human-readable tree of the error to w: the top error
// first, then each sub-error recursively indented. The exact text layout is
// not a compatibility surface.
func (e *Error) Render(w io.Writer, indent int) {
	pad := strings.Repeat(" ", indent)
	tag := "[error]"
	if !e.Fatal {
		tag = "[warning]"
	}
	fmt.Fprintf(w, "%s%s uninterpretable formula\n", pad, tag)
	fmt.Fprintf(w, "%s  source: %s\n", pad, e.Source)
	if e.Domain == UntypedDomain {
		fmt.Fprintf(w, "%s  domain: untyped\n", pad)
	} else {
		fmt.Fprintf(w, "%s  domain: %d\n", pad, e.Domain)
	}
	fmt.Fprintf(w, "%s  formula: %s\n", pad, e.Formula)
	fmt.Fprintf(w, "%s  description: %s\n", pad, e.Description)
	for _, sub := range e.Sub {
		sub.Render(w, indent+2)
	}
}

// String returns the rendered error tree.
func (e *Error) String() string {
	var sb strings.Builder
	e.Render(&sb, 0)
	return sb.String()
}

// Error implements the error interface with a single-line summary.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s (formula: %s)", e.Source, e.Code, e.Description, e.Formula)
}

// Result holds exactly one of a success value or an *Error, plus an
// independent list of warnings that survives transformation. Results are
// created at the point of success or failure and consumed immediately by the
// caller; producers may append warnings before returning one.
type Result[T any] struct {
	value    T
	err      *Error
	warnings []*Error
}

// Ok creates a successful result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed result. The error must be fatal; a non-fatal error is
// a warning and belongs on a success via PushWarning.
func Err[T any](e *Error) Result[T] {
	return Result[T]{err: e}
}

// IsOk returns true if the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the success value. It panics if the result is an error;
// callers must check IsOk first.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic(fmt.Sprintf("lattice: Value() on failed result: %v", r.err))
	}
	return r.value
}

// Error returns the failure, or nil on success.
func (r Result[T]) Error() *Error {
	return r.err
}

// PushWarning appends a non-fatal error to the result's warning list. A
// warning never replaces a success value.
func (r *Result[T]) PushWarning(w *Error) {
	w.Fatal = false
	r.warnings = append(r.warnings, w)
}

// Warnings returns the accumulated warnings in production order.
func (r Result[T]) Warnings() []*Error {
	return r.warnings
}

// PrintDiagnostics writes the result's outcome and all warnings to w.
func (r Result[T]) PrintDiagnostics(w io.Writer) {
	if r.IsOk() {
		fmt.Fprintln(w, "successfully interpreted")
	} else {
		r.err.Render(w, 0)
	}
	for _, warn := range r.warnings {
		warn.Render(w, 0)
	}
}

// MapResult transforms the success value of a result, carrying the warnings
// across unchanged. On the error arm the transform is not invoked and the
// error passes through.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	out := Result[U]{warnings: r.warnings}
	if r.err != nil {
		out.err = r.err
		return out
	}
	out.value = f(r.value)
	return out
}
