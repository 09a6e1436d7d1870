package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoolUnknownTell tests the approximation-aware constant interpretation.
func TestBoolUnknownTell(t *testing.T) {
	var u BoolUnknown

	t.Run("false is representable exactly", func(t *testing.T) {
		for _, appx := range []Approx{Exact, Under, Over} {
			r := u.InterpretTell(Bool(false), appx, false)
			require.True(t, r.IsOk(), "approx %s", appx)
			require.False(t, r.Value())
		}
	})

	t.Run("true cannot be told exactly", func(t *testing.T) {
		// The only candidate representation of `true` is the top element,
		// whose concretization {false, true} also denotes false: telling it
		// would widen, not narrow.
		r := u.InterpretTell(Bool(true), Exact, false)
		require.False(t, r.IsOk())
		require.Equal(t, UniverseRejection, r.Error().Code)
		require.Equal(t, "BoolUnknown", r.Error().Source)

		r = u.InterpretTell(Bool(true), Under, false)
		require.False(t, r.IsOk())
	})

	t.Run("true is admitted as an over-approximation", func(t *testing.T) {
		r := u.InterpretTell(Bool(true), Over, false)
		require.True(t, r.IsOk())
		require.True(t, r.Value())
	})

	t.Run("dualize flips the unsafe constant", func(t *testing.T) {
		r := u.InterpretTell(Bool(true), Exact, true)
		require.True(t, r.IsOk())
		require.True(t, r.Value())

		r = u.InterpretTell(Bool(false), Exact, true)
		require.False(t, r.IsOk())
		require.Equal(t, UniverseRejection, r.Error().Code)
	})

	t.Run("non-constant shapes are rejected", func(t *testing.T) {
		for _, f := range []*Formula{Occurrence("x"), App(SigAnd, Bool(false), Bool(false))} {
			r := u.InterpretTell(f, Exact, false)
			require.False(t, r.IsOk(), "formula %s", f)
			require.Equal(t, UniverseRejection, r.Error().Code)
		}
	})

	t.Run("ask coincides with tell", func(t *testing.T) {
		for _, b := range []bool{false, true} {
			tell := u.InterpretTell(Bool(b), Exact, false)
			ask := u.InterpretAsk(Bool(b), Exact, false)
			require.Equal(t, tell.IsOk(), ask.IsOk(), "constant %t", b)
		}
	})
}

// TestBoolUnknownType tests sort acceptance for declarations.
func TestBoolUnknownType(t *testing.T) {
	var u BoolUnknown

	r := u.InterpretType(Exists("x", SortBool, 0), false)
	require.True(t, r.IsOk())
	require.Equal(t, u.Bot(), r.Value())

	r = u.InterpretType(Exists("x", SortBool, 0), true)
	require.True(t, r.IsOk())
	require.Equal(t, u.Top(), r.Value())

	r = u.InterpretType(Exists("n", SortInt, 0), false)
	require.False(t, r.IsOk())
	require.Equal(t, UniverseRejection, r.Error().Code)
	require.Contains(t, r.Error().Description, "`n`")
	require.Contains(t, r.Error().Description, "Bool")

	r = u.InterpretType(Occurrence("x"), false)
	require.False(t, r.IsOk())
	require.Equal(t, UnsupportedFormulaShape, r.Error().Code)
}

// TestBoolUnknownFun tests connective evaluation, including dualization.
func TestBoolUnknownFun(t *testing.T) {
	var u BoolUnknown

	t.Run("supported symbols", func(t *testing.T) {
		for _, sig := range []Sig{SigAnd, SigOr, SigImply, SigEquiv, SigXor, SigEq, SigNeq} {
			require.True(t, u.IsSupportedFun(sig), "%s", sig)
			require.True(t, u.IsOrderPreserving(sig), "%s", sig)
		}
		// Negation trivially maps to top, so it is not supported.
		require.False(t, u.IsSupportedFun(SigNot))
		require.False(t, u.IsSupportedFun(SigLeq))
	})

	t.Run("truth tables", func(t *testing.T) {
		for _, tc := range []struct {
			sig     Sig
			dualize bool
			x, y    bool
			want    bool
		}{
			{SigAnd, false, true, false, false},
			{SigAnd, true, true, false, true},
			{SigOr, false, true, false, true},
			{SigOr, true, true, false, false},
			{SigImply, false, true, false, false},
			{SigImply, false, false, true, true},
			{SigImply, true, true, false, true},
			{SigImply, true, false, true, false},
			{SigEquiv, false, true, true, true},
			{SigEq, false, true, false, false},
			{SigXor, false, true, false, true},
			{SigNeq, false, true, true, false},
		} {
			got, err := u.Fun(tc.sig, tc.dualize, tc.x, tc.y)
			require.NoError(t, err)
			require.Equal(t, tc.want, got,
				"%s(%t, %t) dualize=%t", tc.sig, tc.x, tc.y, tc.dualize)
		}
	})

	t.Run("misuse is a plain error", func(t *testing.T) {
		_, err := u.Fun(SigNot, false, true)
		require.Error(t, err)
		_, err = u.Fun(SigAnd, false, true)
		require.Error(t, err)
	})
}

// TestBoolUnknownProperties pins the declared Galois facts.
func TestBoolUnknownProperties(t *testing.T) {
	p := BoolUnknown{}.Properties()
	require.True(t, p.TotallyOrdered)
	require.False(t, p.PreservesBot, "bot denotes {false}, not the empty set")
	require.True(t, p.PreservesTop)
	require.True(t, p.PreservesJoin)
	require.True(t, p.PreservesMeet)
	require.True(t, p.InjectiveConcretization)
	require.True(t, p.PreservesConcreteCovers)
}

// TestBoolUnknownConstantOf tests the value-to-formula round trip.
func TestBoolUnknownConstantOf(t *testing.T) {
	var u BoolUnknown
	f := u.ConstantOf(false)
	require.Equal(t, FormulaConstant, f.Kind)

	r := u.InterpretTell(f, Exact, false)
	require.True(t, r.IsOk())
	require.False(t, r.Value())
}
