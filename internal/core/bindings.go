package core

// Arg is one side of a substitution: either a still-unresolved type variable
// or a resolved type expression. Implementations live in the public package;
// the kernel only needs identity, equality, and rendering.
type Arg interface {
	// Var reports whether the argument is an unresolved type variable.
	Var() bool
	// Equal reports whether two arguments denote the same type or variable.
	Equal(other Arg) bool
	// String renders the argument for error fields.
	String() string
}

// Entry is a single variable-to-argument substitution.
type Entry struct {
	Var Arg
	Arg Arg
}

// Bindings is an identity-keyed substitution map from type variables to the
// arguments currently bound to them. Variable implementations are pointers,
// so interface-value map keys compare by identity. Insertion order is kept so
// reduction and rendering are deterministic.
type Bindings struct {
	order  []Arg
	values map[Arg]Arg
}

func NewBindings() *Bindings {
	return &Bindings{values: make(map[Arg]Arg)}
}

func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	return len(b.order)
}

// Get returns the argument bound to v.
func (b *Bindings) Get(v Arg) (Arg, bool) {
	if b == nil {
		return nil, false
	}
	a, ok := b.values[v]
	return a, ok
}

// Entries returns the substitutions in insertion order.
func (b *Bindings) Entries() []Entry {
	if b == nil {
		return nil
	}
	entries := make([]Entry, 0, len(b.order))
	for _, v := range b.order {
		entries = append(entries, Entry{Var: v, Arg: b.values[v]})
	}
	return entries
}

// Equal reports whether both maps hold the same substitutions, regardless of
// insertion order.
func (b *Bindings) Equal(other *Bindings) bool {
	if b.Len() != other.Len() {
		return false
	}
	for _, e := range b.Entries() {
		a, ok := other.Get(e.Var)
		if !ok || !a.Equal(e.Arg) {
			return false
		}
	}
	return true
}

// set inserts or replaces a binding, keeping the original insertion position
// on replacement.
func (b *Bindings) set(v, a Arg) {
	if _, ok := b.values[v]; !ok {
		b.order = append(b.order, v)
	}
	b.values[v] = a
}
