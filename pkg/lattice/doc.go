// Package lattice provides the abstract-interpretation substrate for a
// constraint solver in Go. It turns logical formulas (variable declarations
// and occurrences, constants, connective applications) into elements of small
// ordered value algebras called universes, and maintains the bidirectional
// mapping between user-visible variable names and the per-universe handles
// that index into those algebras.
//
// The package is built from four cooperating pieces:
//   - Diagnostics: a Result type carrying either a value or a structured,
//     tree-shaped Error, plus an independent list of warnings.
//   - The Universe contract: the lattice interface (Bot/Top/Join/Meet/Order/
//     Next/Prev and the formula-interpretation entry points) that every
//     concrete value algebra implements.
//   - The Dual adapter: a generic wrapper deriving the order-reversed lattice
//     of any universe by swapping Join/Meet and Bot/Top, without duplicating
//     any stored value.
//   - The variable Env: the name-to-handle environment with snapshot/restore
//     backtracking support.
//
// Two illustrative universes ship with the package: BoolUnknown, whose bottom
// element denotes exactly "false" and whose top element denotes "either truth
// value", and BoolProgress, a progress lattice whose truth value only ever
// moves from false to true.
//
// Everything here is plain value data: universes are pure algebras whose
// operations return new values, and Env instances may be deep-copied with
// Clone and handed to independent parallel workers. No locking is performed
// or required as long as each copy has a single mutator at a time.
package lattice
