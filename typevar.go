package typingarguments

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/team23/typing-arguments/internal/core"
)

// Argument is the right-hand side of a substitution: a concrete type (see
// Type and TypeOf), a parameterized *Class, or a still-unresolved *TypeVar.
type Argument = core.Arg

// TypeVar is a symbolic placeholder for a type, declared once and substituted
// at parameterization time. TypeVars are compared by identity: two variables
// declared with the same name are distinct.
type TypeVar struct {
	id    uuid.UUID
	name  string
	bound reflect.Type
}

// TypeVarOption configures a TypeVar at declaration time.
type TypeVarOption func(*TypeVar)

// WithBound attaches an upper bound to the variable. The bound is carried for
// introspection only; substitutions are never checked against it.
func WithBound(t reflect.Type) TypeVarOption {
	return func(v *TypeVar) {
		v.bound = t
	}
}

// NewTypeVar declares a fresh type variable.
func NewTypeVar(name string, opts ...TypeVarOption) *TypeVar {
	v := &TypeVar{id: uuid.New(), name: name}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *TypeVar) Name() string { return v.name }

// Bound returns the upper bound declared for the variable, or nil.
func (v *TypeVar) Bound() reflect.Type { return v.bound }

// Var implements Argument; a TypeVar is always unresolved.
func (v *TypeVar) Var() bool { return true }

// Equal implements Argument. Equality is identity.
func (v *TypeVar) Equal(other Argument) bool {
	o, ok := other.(*TypeVar)
	return ok && o == v
}

func (v *TypeVar) String() string { return "~" + v.name }

// concreteType wraps a reflect.Type as an Argument. reflect.Type values are
// canonical, so == gives the host's equality on types.
type concreteType struct {
	typ reflect.Type
}

// Type wraps a concrete reflect.Type as an Argument.
func Type(t reflect.Type) Argument { return concreteType{typ: t} }

// TypeOf is shorthand for Type driven by a type parameter, so interface types
// can be named without a value: TypeOf[string](), TypeOf[io.Reader]().
func TypeOf[T any]() Argument {
	return concreteType{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

func (c concreteType) Var() bool { return false }

func (c concreteType) Equal(other Argument) bool {
	o, ok := other.(concreteType)
	return ok && o.typ == c.typ
}

func (c concreteType) String() string { return c.typ.String() }

// ReflectType unwraps an Argument produced by Type or TypeOf.
func ReflectType(a Argument) (reflect.Type, bool) {
	c, ok := a.(concreteType)
	if !ok {
		return nil, false
	}
	return c.typ, true
}

// argKey renders a cache-key token for an argument. TypeVars and classes key
// by their identity token; concrete types key by the canonical reflect name.
func argKey(a Argument) string {
	switch t := a.(type) {
	case *TypeVar:
		return "var:" + t.id.String()
	case *Class:
		return "class:" + t.id.String()
	case concreteType:
		return "type:" + t.typ.PkgPath() + "|" + t.typ.String()
	default:
		return "arg:" + a.String()
	}
}
