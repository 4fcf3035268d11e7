package core

import (
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/team23/typing-arguments/errors"
)

// Merge builds the substitution map for a class-creation or parameterization
// step. Ancestor maps are applied in declaration order, then the local
// bindings introduced at this step, and the result is transitively reduced so
// no variable points at another bound variable. The returned map is freshly
// allocated; inputs are never mutated.
func Merge(ancestors []*Bindings, local []Entry) (*Bindings, error) {
	m := NewBindings()
	for _, a := range ancestors {
		for _, e := range a.Entries() {
			if err := apply(m, e, false); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range local {
		if err := apply(m, e, true); err != nil {
			return nil, err
		}
	}
	if err := reduce(m); err != nil {
		return nil, err
	}
	return m, nil
}

// apply inserts e into m under the conflict rules: equal bindings coalesce, a
// concrete binding replaces a still-variable one, and two distinct concrete
// bindings conflict. A local binding additionally replaces any still-variable
// ancestor binding; refining a concrete type to a different concrete type is
// always a conflict.
func apply(m *Bindings, e Entry, local bool) error {
	prev, ok := m.Get(e.Var)
	if !ok {
		m.set(e.Var, e.Arg)
		return nil
	}
	switch {
	case prev.Equal(e.Arg):
		// equal bindings are silently coalesced
		return nil
	case prev.Var() && !e.Arg.Var():
		m.set(e.Var, e.Arg)
		return nil
	case !prev.Var() && e.Arg.Var():
		// keep the concrete binding
		return nil
	case prev.Var() && e.Arg.Var() && local:
		m.set(e.Var, e.Arg)
		return nil
	default:
		return errorc.With(
			errors.ErrConflictingBindings,
			errorc.String(errors.ErrorFieldVariable, e.Var.String()),
			errorc.String(errors.ErrorFieldFirstBinding, prev.String()),
			errorc.String(errors.ErrorFieldSecondBinding, e.Arg.String()),
		)
	}
}

// reduce collapses variable-to-variable chains so every bound variable points
// directly at its ultimate argument. A self-binding V -> V marks a variable
// that is still unresolved and is left alone; any longer loop is a cycle.
func reduce(m *Bindings) error {
	for _, e := range m.Entries() {
		seen := map[Arg]bool{e.Var: true}
		path := []string{e.Var.String()}
		cur := e.Arg
		for cur.Var() {
			next, ok := m.Get(cur)
			if !ok || next.Equal(cur) {
				break
			}
			if seen[cur] {
				return errorc.With(
					errors.ErrCyclicBinding,
					errorc.String(errors.ErrorFieldVariable, e.Var.String()),
					errorc.String(errors.ErrorFieldCycle, strings.Join(append(path, cur.String()), " -> ")),
				)
			}
			seen[cur] = true
			path = append(path, cur.String())
			cur = next
		}
		m.set(e.Var, cur)
	}
	return nil
}
