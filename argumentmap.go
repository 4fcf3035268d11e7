package typingarguments

import (
	"strings"

	"github.com/team23/typing-arguments/internal/core"
)

// Binding is a single TypeVar-to-Argument substitution, as exposed by
// ArgumentMap.Entries.
type Binding struct {
	Var *TypeVar
	Arg Argument
}

// ArgumentMap is the mapping from type variables to the arguments currently
// bound to them, attached to a class under the reserved
// "__typing_arguments__" attribute and shared by reference with every
// instance of the class. It is never mutated after attachment; further
// specialization produces a new map on a new class.
type ArgumentMap struct {
	bindings *core.Bindings
}

func newArgumentMap(b *core.Bindings) *ArgumentMap {
	return &ArgumentMap{bindings: b}
}

func (m *ArgumentMap) Len() int { return m.bindings.Len() }

// Get returns the argument bound to v. The result may itself be a TypeVar
// when substitution is still partial.
func (m *ArgumentMap) Get(v *TypeVar) (Argument, bool) {
	if v == nil {
		return nil, false
	}
	return m.bindings.Get(v)
}

// Vars returns the bound variables in binding order.
func (m *ArgumentMap) Vars() []*TypeVar {
	entries := m.bindings.Entries()
	vars := make([]*TypeVar, 0, len(entries))
	for _, e := range entries {
		vars = append(vars, e.Var.(*TypeVar))
	}
	return vars
}

// Entries returns the substitutions in binding order.
func (m *ArgumentMap) Entries() []Binding {
	entries := m.bindings.Entries()
	out := make([]Binding, 0, len(entries))
	for _, e := range entries {
		out = append(out, Binding{Var: e.Var.(*TypeVar), Arg: e.Arg})
	}
	return out
}

// Equal reports whether both maps hold the same substitutions.
func (m *ArgumentMap) Equal(other *ArgumentMap) bool {
	if other == nil {
		return m.Len() == 0
	}
	return m.bindings.Equal(other.bindings)
}

func (m *ArgumentMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, e := range m.bindings.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Var.String())
		b.WriteString(": ")
		b.WriteString(e.Arg.String())
	}
	b.WriteString("}")
	return b.String()
}
