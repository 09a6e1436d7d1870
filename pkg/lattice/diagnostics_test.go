package lattice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResult tests the success/failure arms of Result.
func TestResult(t *testing.T) {
	t.Run("Ok holds a value", func(t *testing.T) {
		r := Ok(NewAVar(0, 3))
		require.True(t, r.IsOk())
		require.Equal(t, NewAVar(0, 3), r.Value())
		require.Nil(t, r.Error())
	})

	t.Run("Err holds an error", func(t *testing.T) {
		e := NewError(UndeclaredVariable, "Env", "undeclared variable `x`", Occurrence("x"))
		r := Err[AVar](e)
		require.False(t, r.IsOk())
		require.Same(t, e, r.Error())
	})

	t.Run("Value panics on a failed result", func(t *testing.T) {
		r := Err[AVar](NewError(UndeclaredVariable, "Env", "nope", Occurrence("x")))
		require.Panics(t, func() { r.Value() })
	})

	t.Run("warnings never replace a success value", func(t *testing.T) {
		r := Ok(true)
		r.PushWarning(NewWarning(UniverseRejection, "BoolUnknown", "loose interpretation", Bool(true)))
		require.True(t, r.IsOk())
		require.True(t, r.Value())
		require.Len(t, r.Warnings(), 1)
		require.False(t, r.Warnings()[0].Fatal)
	})
}

// TestMapResult tests value transformation across both arms.
func TestMapResult(t *testing.T) {
	t.Run("transforms the value and keeps warnings", func(t *testing.T) {
		r := Ok(NewAVar(2, 5))
		r.PushWarning(NewWarning(UniverseRejection, "Env", "warn", Occurrence("x")))

		mapped := MapResult(r, func(av AVar) int { return av.Slot() })
		require.True(t, mapped.IsOk())
		require.Equal(t, 5, mapped.Value())
		require.Len(t, mapped.Warnings(), 1)
	})

	t.Run("passes the error arm through with warnings", func(t *testing.T) {
		e := NewError(SortMismatch, "Env", "sorts differ", Exists("x", SortInt, 0))
		r := Err[AVar](e)
		r.PushWarning(NewWarning(UniverseRejection, "Env", "warn", Occurrence("x")))

		called := false
		mapped := MapResult(r, func(av AVar) string { called = true; return "" })
		require.False(t, called, "transform must not run on the error arm")
		require.Same(t, e, mapped.Error())
		require.Len(t, mapped.Warnings(), 1)
	})
}

// TestErrorOwnership verifies that errors own a clone of the offending
// formula rather than aliasing it.
func TestErrorOwnership(t *testing.T) {
	f := App(SigAnd, Occurrence("a"), Bool(true))
	e := NewError(UnsupportedFormulaShape, "Env", "unsupported", f)

	f.Args[0].Name = "mutated"
	require.Equal(t, "a", e.Formula.Args[0].Name)
}

// TestErrorRendering verifies the tree rendering: top error first, then each
// sub-error recursively indented.
func TestErrorRendering(t *testing.T) {
	top := NewError(UnsupportedFormulaShape, "Env", "compound failure",
		App(SigAnd, Occurrence("a"), Occurrence("b")))
	top.AddSub(NewError(UndeclaredVariable, "Env", "undeclared variable `a`", Occurrence("a")))
	top.AddSub(NewWarning(UniverseRejection, "BoolUnknown", "loose", Bool(true)).WithDomain(3))

	var sb strings.Builder
	top.Render(&sb, 0)
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.True(t, strings.HasPrefix(lines[0], "[error]"), "top error must come first")
	require.Contains(t, out, "description: compound failure")
	require.Contains(t, out, "  [error]", "first sub-error indented")
	require.Contains(t, out, "  [warning]", "non-fatal sub-error tagged as warning")
	require.Contains(t, out, "domain: 3")
	require.Contains(t, out, "domain: untyped")

	subIdx := strings.Index(out, "undeclared variable `a`")
	topIdx := strings.Index(out, "compound failure")
	require.Greater(t, subIdx, topIdx, "sub-errors render after the top error")
}

// TestErrorInterface verifies *Error satisfies the error interface with a
// one-line summary.
func TestErrorInterface(t *testing.T) {
	var err error = NewError(AmbiguousOccurrence, "Env", "too many domains", Occurrence("x"))
	require.Contains(t, err.Error(), "AmbiguousOccurrence")
	require.Contains(t, err.Error(), "too many domains")
}

// TestPrintDiagnostics covers the combined outcome+warnings report.
func TestPrintDiagnostics(t *testing.T) {
	r := Ok(NewAVar(0, 0))
	r.PushWarning(NewWarning(UniverseRejection, "BoolUnknown", "loose", Bool(true)))

	var sb strings.Builder
	r.PrintDiagnostics(&sb)
	require.Contains(t, sb.String(), "successfully interpreted")
	require.Contains(t, sb.String(), "[warning]")
}
