// Package main demonstrates basic usage of the lattice interpretation core.
// This example walks through variable declaration across coexisting abstract
// domains, occurrence resolution, snapshot-based backtracking, and telling
// constants to the shipped Boolean universes and their duals.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/gitrdm/golattice/internal/parallel"
	"github.com/gitrdm/golattice/pkg/lattice"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.DebugLevel).
	With().Timestamp().Logger()

func main() {
	declarations()
	backtracking()
	universes()
	diagnostics()
	parallelEvaluation()
}

// declarations shows one variable projected into two abstract domains.
func declarations() {
	log.Info().Msg("1. declarations across domains")

	env := lattice.NewEnv()
	d1 := env.NewDomain()
	d2 := env.NewDomain()

	x1 := env.Interpret(lattice.Exists("x", lattice.SortBool, d1)).Value()
	x2 := env.Interpret(lattice.Exists("x", lattice.SortBool, d2)).Value()
	log.Info().
		Stringer("in_d1", x1).
		Stringer("in_d2", x2).
		Msg("x declared in both domains")

	// An unqualified occurrence is now ambiguous; a qualified one is not.
	if r := env.Interpret(lattice.Occurrence("x")); !r.IsOk() {
		log.Info().Str("code", r.Error().Code.String()).Msg("untyped occurrence of x")
	}
	r := env.Interpret(lattice.OccurrenceIn("x", d2))
	log.Info().Stringer("handle", r.Value()).Msg("occurrence of x in d2")
}

// backtracking shows snapshot/restore as an undo stack.
func backtracking() {
	log.Info().Msg("2. snapshot/restore backtracking")

	env := lattice.NewEnv()
	d := env.NewDomain()
	env.Interpret(lattice.Exists("x", lattice.SortBool, d))

	snap := env.Snapshot()
	env.Interpret(lattice.Exists("y", lattice.SortBool, d))
	env.Interpret(lattice.Exists("z", lattice.SortBool, d))
	log.Info().Int("vars", env.NumVars()).Msg("before restore")

	env.Restore(snap)
	log.Info().Int("vars", env.NumVars()).Msg("after restore")
}

// universes shows telling constants to both Boolean universes and a dual.
func universes() {
	log.Info().Msg("3. universes and duals")

	var bu lattice.BoolUnknown
	if r := bu.InterpretTell(lattice.Bool(false), lattice.Exact, false); r.IsOk() {
		log.Info().Bool("value", r.Value()).Msg("BoolUnknown tell false")
	}
	if r := bu.InterpretTell(lattice.Bool(true), lattice.Exact, false); !r.IsOk() {
		log.Info().Str("code", r.Error().Code.String()).Msg("BoolUnknown tell true rejected")
	}

	dual := lattice.DualOf[bool](bu)
	if r := dual.InterpretTell(lattice.Bool(true), lattice.Exact, false); r.IsOk() {
		log.Info().Bool("value", r.Value()).Msg("dual universe tell true")
	}

	var bp lattice.BoolProgress
	v, _ := bp.Fun(lattice.SigNot, false, true)
	log.Info().Bool("not_true", v).Msg("BoolProgress negation")
}

// diagnostics shows the rendered error tree of an aggregated failure.
func diagnostics() {
	log.Info().Msg("4. diagnostic trees")

	env := lattice.NewEnv()
	conj := lattice.App(lattice.SigAnd, lattice.Occurrence("a"), lattice.Occurrence("b"))
	top := lattice.NewError(lattice.UnsupportedFormulaShape, "Env",
		"every conjunct failed on its own", conj)
	for _, arg := range conj.Args {
		if r := env.Interpret(arg); !r.IsOk() {
			top.AddSub(r.Error())
		}
	}
	top.Render(os.Stdout, 0)
}

// parallelEvaluation shows independent evaluation against environment clones.
func parallelEvaluation() {
	log.Info().Msg("5. parallel batch evaluation")

	env := lattice.NewEnv()
	d := env.NewDomain()
	env.Interpret(lattice.Exists("x", lattice.SortBool, d))

	batch := []*lattice.Formula{
		lattice.Occurrence("x"),
		lattice.Exists("y", lattice.SortBool, d),
		lattice.Occurrence("missing"),
	}
	results, err := parallel.EvaluateAll(context.Background(), log, env, batch, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("batch evaluation failed")
	}
	for i, r := range results {
		if r.IsOk() {
			log.Info().Int("formula", i).Stringer("handle", r.Value()).Msg("ok")
		} else {
			log.Info().Int("formula", i).Str("code", r.Error().Code.String()).Msg("failed")
		}
	}
	// The base environment was never mutated by the batch.
	log.Info().Int("vars", env.NumVars()).Msg("base environment unchanged")
}
