// Package lattice provides abstract-interpretation primitives.
// This file defines Env, the variable environment mapping between
// user-visible variable names and the per-universe handles (AVar) that index
// into abstract domains. The environment is the only stateful machine in
// this package: it behaves as an undo stack, growing by appends during
// interpretation and shrinking only through Restore during backtracking.
package lattice

import "fmt"

// envName identifies the environment in diagnostics.
const envName = "Env"

// VarRecord is the environment's record of one declared variable: its name,
// the sort it was first declared with, and one handle per abstract domain it
// has been declared in. After first declaration Handles is never empty, and
// no two handles share a domain.
type VarRecord struct {
	Name    string
	Sort    Sort
	Handles []AVar
}

// HandleIn returns the variable's handle in the given domain, if any.
func (v *VarRecord) HandleIn(dom int) (AVar, bool) {
	for _, av := range v.Handles {
		if av.Domain() == dom {
			return av, true
		}
	}
	return AVar{}, false
}

// Env owns the bidirectional mapping between variable names and abstract
// variables across many coexisting domains. vars is append-only except
// through Restore; domIndex[d][slot] is the index into vars of the record
// owning the handle (d, slot).
//
// Environments are plain value data: Clone produces an independent deep copy
// suitable for a parallel worker, and no locking is performed as long as
// each copy has a single mutator at a time.
type Env struct {
	vars     []VarRecord
	domIndex [][]int
}

// NewEnv creates an empty environment with no domains and no variables.
func NewEnv() *Env {
	return &Env{}
}

// NewDomain allocates the next unused abstract domain id, appending an empty
// row to the domain index. It is monotonic and never fails.
func (e *Env) NewDomain() int {
	e.domIndex = append(e.domIndex, nil)
	return len(e.domIndex) - 1
}

// NumDomains returns the number of allocated abstract domains.
func (e *Env) NumDomains() int {
	return len(e.domIndex)
}

// NumVars returns the number of declared variables.
func (e *Env) NumVars() int {
	return len(e.vars)
}

// NumVarsIn returns the number of variables declared in the given domain,
// or zero for a domain that was never allocated.
func (e *Env) NumVarsIn(dom int) int {
	if dom < 0 || dom >= len(e.domIndex) {
		return 0
	}
	return len(e.domIndex[dom])
}

// ensureDomains grows the domain index so that dom is a valid row, creating
// any intermediate domains on the way.
func (e *Env) ensureDomains(dom int) {
	for dom >= len(e.domIndex) {
		e.NewDomain()
	}
}

// extendVars gives the named variable a fresh handle in dom, creating the
// record on first sight of the name. The caller has already ruled out a sort
// mismatch and an existing handle in dom.
func (e *Env) extendVars(dom int, name string, sort Sort) AVar {
	e.ensureDomains(dom)
	av := NewAVar(dom, len(e.domIndex[dom]))
	idx := e.indexOf(name)
	if idx >= 0 {
		e.vars[idx].Handles = append(e.vars[idx].Handles, av)
	} else {
		idx = len(e.vars)
		e.vars = append(e.vars, VarRecord{Name: name, Sort: sort, Handles: []AVar{av}})
	}
	e.domIndex[dom] = append(e.domIndex[dom], idx)
	return av
}

// interpretExistential handles declarations. Redeclaring a name in a new
// domain is legal and extends its handle list; redeclaring it in the same
// domain is an idempotent success. Only a sort mismatch or an untyped target
// domain fails.
func (e *Env) interpretExistential(f *Formula) Result[AVar] {
	if f.Dom == UntypedDomain {
		return Err[AVar](NewError(UntypedDeclaration, envName,
			fmt.Sprintf("untyped declaration: variable `%s` has no abstract domain", f.Name), f))
	}
	if idx := e.indexOf(f.Name); idx >= 0 {
		rec := &e.vars[idx]
		if rec.Sort != f.Sort {
			return Err[AVar](NewError(SortMismatch, envName,
				fmt.Sprintf("invalid redeclaration with different sort: variable `%s` was declared with sort `%s`, got `%s`",
					f.Name, rec.Sort, f.Sort), f).WithDomain(f.Dom))
		}
		if av, ok := rec.HandleIn(f.Dom); ok {
			return Ok(av)
		}
	}
	return Ok(e.extendVars(f.Dom, f.Name, f.Sort))
}

// interpretName handles occurrences by name. A domain-qualified occurrence
// resolves through the record's handle list; an unqualified one succeeds
// only when the variable lives in exactly one domain.
func (e *Env) interpretName(f *Formula) Result[AVar] {
	idx := e.indexOf(f.Name)
	if idx < 0 {
		return Err[AVar](NewError(UndeclaredVariable, envName,
			fmt.Sprintf("undeclared variable `%s`", f.Name), f))
	}
	rec := &e.vars[idx]
	if f.Dom != UntypedDomain {
		if av, ok := rec.HandleIn(f.Dom); ok {
			return Ok(av)
		}
		return Err[AVar](NewError(UndeclaredInDomain, envName,
			fmt.Sprintf("variable `%s` has not been declared in the abstract domain `%d`", f.Name, f.Dom), f).WithDomain(f.Dom))
	}
	if len(rec.Handles) == 1 {
		return Ok(rec.Handles[0])
	}
	return Err[AVar](NewError(AmbiguousOccurrence, envName,
		fmt.Sprintf("variable occurrence `%s` is untyped, but exists in %d abstract domains", f.Name, len(rec.Handles)), f))
}

// Interpret resolves a formula into an abstract variable. It accepts three
// shapes: an existential declaration with a valid target domain, a variable
// occurrence by name, and an occurrence of an already-resolved handle. Any
// other shape is rejected.
func (e *Env) Interpret(f *Formula) Result[AVar] {
	switch f.Kind {
	case FormulaExists:
		return e.interpretExistential(f)
	case FormulaName:
		return e.interpretName(f)
	case FormulaResolved:
		if e.ContainsHandle(f.Var) {
			return Ok(f.Var)
		}
		return Err[AVar](NewError(UndeclaredAbstractVariable, envName,
			fmt.Sprintf("undeclared abstract variable `%s`", f.Var), f).WithDomain(f.Var.Domain()))
	default:
		return Err[AVar](NewError(UnsupportedFormulaShape, envName,
			"unsupported formula: Env can only interpret declarations and occurrences of variables", f))
	}
}

// indexOf returns the record index of the named variable, or -1. The scan is
// linear: environments hold tens to low hundreds of variables.
func (e *Env) indexOf(name string) int {
	for i := range e.vars {
		if e.vars[i].Name == name {
			return i
		}
	}
	return -1
}

// VariableOf returns the record of the named variable, or nil if the name
// was never declared. The record stays valid until the next Restore.
func (e *Env) VariableOf(name string) *VarRecord {
	if idx := e.indexOf(name); idx >= 0 {
		return &e.vars[idx]
	}
	return nil
}

// VariableAt returns the record at the given declaration index.
func (e *Env) VariableAt(i int) *VarRecord {
	return &e.vars[i]
}

// Contains returns true if the name has been declared.
func (e *Env) Contains(name string) bool {
	return e.indexOf(name) >= 0
}

// ContainsHandle returns true if the handle indexes an existing declaration.
func (e *Env) ContainsHandle(av AVar) bool {
	if av.IsUntyped() {
		return false
	}
	return av.Domain() >= 0 && av.Domain() < len(e.domIndex) &&
		av.Slot() >= 0 && av.Slot() < len(e.domIndex[av.Domain()])
}

// RecordOf returns the record owning the given handle. The handle must be
// contained in the environment.
func (e *Env) RecordOf(av AVar) *VarRecord {
	return &e.vars[e.domIndex[av.Domain()][av.Slot()]]
}

// NameOf returns the name of the variable owning the given handle.
func (e *Env) NameOf(av AVar) string {
	return e.RecordOf(av).Name
}

// SortOf returns the sort of the variable owning the given handle.
func (e *Env) SortOf(av AVar) Sort {
	return e.RecordOf(av).Sort
}

// FirstVarIn returns the record of the first variable occurring in the
// formula, or nil if the formula mentions no variable known to this
// environment. Connective applications are searched left to right.
func (e *Env) FirstVarIn(f *Formula) *VarRecord {
	switch f.Kind {
	case FormulaExists, FormulaName:
		return e.VariableOf(f.Name)
	case FormulaResolved:
		if e.ContainsHandle(f.Var) {
			return e.RecordOf(f.Var)
		}
		return nil
	case FormulaApply:
		for _, a := range f.Args {
			if rec := e.FirstVarIn(a); rec != nil {
				return rec
			}
		}
	}
	return nil
}

// Snapshot captures the environment's occupancy at a point in time: the
// handle-list length of every record and the length of every domain row.
// Together with the append-only/truncate-only access pattern this is enough
// to reproduce the externally observable state exactly on Restore, without
// persistent data structures.
type Snapshot struct {
	varHandles []int
	domSizes   []int
}

// Snapshot captures the current state of the environment.
func (e *Env) Snapshot() Snapshot {
	snap := Snapshot{
		varHandles: make([]int, len(e.vars)),
		domSizes:   make([]int, len(e.domIndex)),
	}
	for i := range e.vars {
		snap.varHandles[i] = len(e.vars[i].Handles)
	}
	for i := range e.domIndex {
		snap.domSizes[i] = len(e.domIndex[i])
	}
	return snap
}

// Restore rolls the environment back to a previously captured snapshot,
// truncating the record list, every surviving record's handle list, and
// every domain row to their captured lengths. Work is proportional to the
// amount rolled back; unaffected entries are not touched.
//
// Restoring to a snapshot the environment has not actually reached (any
// current size smaller than the captured one) is a programming error and
// panics; it is never reported as a Result.
func (e *Env) Restore(snap Snapshot) {
	if len(e.vars) < len(snap.varHandles) || len(e.domIndex) < len(snap.domSizes) {
		panic("lattice: Restore to a snapshot ahead of the environment")
	}
	e.vars = e.vars[:len(snap.varHandles)]
	for i := range e.vars {
		if len(e.vars[i].Handles) < snap.varHandles[i] {
			panic("lattice: Restore to a snapshot ahead of the environment")
		}
		e.vars[i].Handles = e.vars[i].Handles[:snap.varHandles[i]]
	}
	e.domIndex = e.domIndex[:len(snap.domSizes)]
	for i := range e.domIndex {
		if len(e.domIndex[i]) < snap.domSizes[i] {
			panic("lattice: Restore to a snapshot ahead of the environment")
		}
		e.domIndex[i] = e.domIndex[i][:snap.domSizes[i]]
	}
}

// Clone returns an independent deep copy of the environment. Two copies
// derived from the same state may be mutated independently thereafter, e.g.
// by parallel workers evaluating different formulas.
func (e *Env) Clone() *Env {
	out := &Env{
		vars:     make([]VarRecord, len(e.vars)),
		domIndex: make([][]int, len(e.domIndex)),
	}
	for i, v := range e.vars {
		out.vars[i] = VarRecord{
			Name:    v.Name,
			Sort:    v.Sort,
			Handles: append([]AVar(nil), v.Handles...),
		}
	}
	for i, row := range e.domIndex {
		out.domIndex[i] = append([]int(nil), row...)
	}
	return out
}
