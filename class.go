package typingarguments

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ygrebnov/errorc"

	"github.com/team23/typing-arguments/constants"
	"github.com/team23/typing-arguments/errors"
	"github.com/team23/typing-arguments/internal/core"
)

// Class is a runtime class record: a name, the type parameters it declares,
// its base classes, the accessors placed on its body, and, once any binding
// information exists, the argument map under "__typing_arguments__".
//
// A Class is built once via NewClass and never changes afterwards; every
// specialization produces a new Class through Parameterize.
type Class struct {
	id        uuid.UUID
	name      string
	params    []*TypeVar
	bases     []*Class
	accessors map[string]Accessor

	// arguments is nil only when the class takes part in no generic
	// protocol: no own parameters and no parameterized ancestor. A generic
	// but unbound class carries an empty, non-nil map.
	arguments *ArgumentMap

	// args holds the actual argument tuple for specialized classes.
	args []Argument

	mu    sync.Mutex
	cache map[string][]*Class
}

// ClassOption configures a Class under construction.
type ClassOption func(*Class) error

// WithTypeParams declares the class's own type parameters, in order.
func WithTypeParams(vars ...*TypeVar) ClassOption {
	return func(c *Class) error {
		for _, v := range vars {
			if v == nil {
				return errorc.With(errors.ErrNilTypeVar, errorc.String(errors.ErrorFieldClass, c.name))
			}
			for _, existing := range c.params {
				if existing == v {
					return errorc.With(
						errors.ErrDuplicateTypeParam,
						errorc.String(errors.ErrorFieldVariable, v.String()),
						errorc.String(errors.ErrorFieldClass, c.name),
					)
				}
			}
			c.params = append(c.params, v)
		}
		return nil
	}
}

// WithBases declares the direct base classes, in order. Earlier bases bind
// first when their argument maps are merged.
func WithBases(bases ...*Class) ClassOption {
	return func(c *Class) error {
		for _, b := range bases {
			if b == nil {
				return errorc.With(errors.ErrNilClass, errorc.String(errors.ErrorFieldClass, c.name))
			}
			c.bases = append(c.bases, b)
		}
		return nil
	}
}

// WithAccessor places an accessor on the class body under the given name.
func WithAccessor(name string, acc Accessor) ClassOption {
	return func(c *Class) error {
		if name == constants.TypingArgumentsAttribute {
			return errorc.With(
				errors.ErrReservedAttribute,
				errorc.String(errors.ErrorFieldAttribute, name),
				errorc.String(errors.ErrorFieldClass, c.name),
			)
		}
		if acc.variable == nil {
			return errorc.With(errors.ErrNilTypeVar, errorc.String(errors.ErrorFieldClass, c.name))
		}
		if _, ok := c.accessors[name]; ok {
			return errorc.With(
				errors.ErrDuplicateAccessor,
				errorc.String(errors.ErrorFieldAttribute, name),
				errorc.String(errors.ErrorFieldClass, c.name),
			)
		}
		c.accessors[name] = acc
		return nil
	}
}

// NewClass is the class-creation event. The argument maps of all bases are
// merged in declaration order; conflicting concrete bindings across bases
// fail here, before the class becomes reachable. A class with no generic
// participation anywhere in its ancestry carries no argument map.
func NewClass(name string, opts ...ClassOption) (*Class, error) {
	c := &Class{
		id:        uuid.New(),
		name:      name,
		accessors: make(map[string]Accessor),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	participates := len(c.params) > 0
	ancestors := make([]*core.Bindings, 0, len(c.bases))
	for _, b := range c.bases {
		if b.arguments != nil {
			participates = true
			ancestors = append(ancestors, b.arguments.bindings)
		}
	}
	if !participates {
		return c, nil
	}

	merged, err := core.Merge(ancestors, nil)
	if err != nil {
		return nil, err
	}
	c.arguments = newArgumentMap(merged)
	return c, nil
}

// Parameterize is the parameterization event: it substitutes args for the
// class's own type parameters, positionally, and returns a new specialized
// class whose argument map extends the receiver's. Arguments may themselves
// be TypeVars; the still-unresolved variables among them become the
// specialization's own parameters, so a partial specialization can be
// refined later. Results are memoized per argument tuple, so repeated
// parameterization with identical arguments returns the identical class.
func (c *Class) Parameterize(args ...Argument) (*Class, error) {
	if len(c.params) == 0 {
		return nil, errorc.With(errors.ErrNotGeneric, errorc.String(errors.ErrorFieldClass, c.name))
	}
	if len(args) != len(c.params) {
		return nil, errorc.With(
			errors.ErrParameterCount,
			errorc.String(errors.ErrorFieldClass, c.name),
			errorc.String(errors.ErrorFieldExpected, strconv.Itoa(len(c.params))),
			errorc.String(errors.ErrorFieldActual, strconv.Itoa(len(args))),
		)
	}
	for _, a := range args {
		if a == nil {
			return nil, errorc.With(errors.ErrNilArgument, errorc.String(errors.ErrorFieldClass, c.name))
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(args)
	if c.cache == nil {
		c.cache = make(map[string][]*Class)
	}
	for _, cached := range c.cache[key] {
		if argsEqual(cached.args, args) {
			return cached, nil
		}
	}

	local := make([]core.Entry, 0, len(args))
	for i, v := range c.params {
		local = append(local, core.Entry{Var: v, Arg: args[i]})
	}
	merged, err := core.Merge([]*core.Bindings{c.arguments.bindings}, local)
	if err != nil {
		return nil, err
	}

	specialized := &Class{
		id:        uuid.New(),
		name:      specializedName(c.name, args),
		params:    unresolvedVars(args),
		bases:     []*Class{c},
		accessors: make(map[string]Accessor),
		arguments: newArgumentMap(merged),
		args:      append([]Argument(nil), args...),
	}
	c.cache[key] = append(c.cache[key], specialized)
	return specialized, nil
}

// Arg resolves the argument bound to v on this class; this is the read path
// behind every accessor. A class outside the generic protocol has no map at
// all, which is a different failure from a map that does not (yet) resolve v
// to a concrete type.
func (c *Class) Arg(v *TypeVar) (Argument, error) {
	if v == nil {
		return nil, errorc.With(errors.ErrNilTypeVar, errorc.String(errors.ErrorFieldClass, c.name))
	}
	if c.arguments == nil {
		return nil, errorc.With(errors.ErrMissingMap, errorc.String(errors.ErrorFieldClass, c.name))
	}
	a, ok := c.arguments.Get(v)
	if !ok || a.Var() {
		return nil, errorc.With(
			errors.ErrUnresolvedArgument,
			errorc.String(errors.ErrorFieldVariable, v.String()),
			errorc.String(errors.ErrorFieldClass, c.name),
		)
	}
	return a, nil
}

// Attr resolves a named attribute: an accessor declared on the class or any
// base, or the reserved "__typing_arguments__" attribute. Accessors resolve
// against the reading class's map, so a subclass refinement of a variable is
// visible through an accessor declared on an ancestor.
func (c *Class) Attr(name string) (any, error) {
	if name == constants.TypingArgumentsAttribute {
		if c.arguments == nil {
			return nil, errorc.With(errors.ErrMissingMap, errorc.String(errors.ErrorFieldClass, c.name))
		}
		return c.arguments, nil
	}
	acc, ok := c.lookupAccessor(name)
	if !ok {
		return nil, errorc.With(
			errors.ErrUnknownAttribute,
			errorc.String(errors.ErrorFieldAttribute, name),
			errorc.String(errors.ErrorFieldClass, c.name),
		)
	}
	return c.Arg(acc.variable)
}

// lookupAccessor walks the class and then its bases depth-first in
// declaration order, the way attribute lookup walks an inheritance chain.
func (c *Class) lookupAccessor(name string) (Accessor, bool) {
	if acc, ok := c.accessors[name]; ok {
		return acc, true
	}
	for _, b := range c.bases {
		if acc, ok := b.lookupAccessor(name); ok {
			return acc, true
		}
	}
	return Accessor{}, false
}

func (c *Class) Name() string { return c.name }

// TypeParams returns the class's own, still-unresolved type parameters.
func (c *Class) TypeParams() []*TypeVar {
	return append([]*TypeVar(nil), c.params...)
}

// Bases returns the direct base classes.
func (c *Class) Bases() []*Class {
	return append([]*Class(nil), c.bases...)
}

// Args returns the actual argument tuple for a specialized class, or nil.
func (c *Class) Args() []Argument {
	return append([]Argument(nil), c.args...)
}

// TypingArguments returns the argument map attached to the class, or nil
// when the class takes part in no generic protocol.
func (c *Class) TypingArguments() *ArgumentMap { return c.arguments }

// Var implements Argument; a class used as an argument is a resolved
// parameterized type expression.
func (c *Class) Var() bool { return false }

// Equal implements Argument. Class equality is identity.
func (c *Class) Equal(other Argument) bool {
	o, ok := other.(*Class)
	return ok && o == c
}

func (c *Class) String() string { return c.name }

func specializedName(base string, args []Argument) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.String())
	}
	return base + "[" + strings.Join(parts, ", ") + "]"
}

// unresolvedVars returns the distinct TypeVars among args, in order.
func unresolvedVars(args []Argument) []*TypeVar {
	var vars []*TypeVar
	for _, a := range args {
		v, ok := a.(*TypeVar)
		if !ok {
			continue
		}
		dup := false
		for _, existing := range vars {
			if existing == v {
				dup = true
				break
			}
		}
		if !dup {
			vars = append(vars, v)
		}
	}
	return vars
}

func cacheKey(args []Argument) string {
	keys := make([]string, 0, len(args))
	for _, a := range args {
		keys = append(keys, argKey(a))
	}
	return strings.Join(keys, ";")
}

func argsEqual(a, b []Argument) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
