package typingarguments

import "github.com/team23/typing-arguments/errors"

// Accessor is a named, read-only class attribute bound to one type variable.
// Reading it resolves the variable through the argument map of whatever
// class it is read on, at read time, so a later refinement of a
// still-variable binding is observed. Accessors carry no write path.
type Accessor struct {
	variable *TypeVar
}

// TypingArg declares an accessor for v, to be placed on a class body with
// WithAccessor.
//
// When the accessor's class is also bound to a model-framework struct (see
// NewStructBinding), the accessor lives on the Class, never on the struct,
// so the framework's field-collection pass cannot mistake it for a field.
func TypingArg(v *TypeVar) Accessor {
	return Accessor{variable: v}
}

// Variable returns the type variable the accessor was bound to at
// declaration.
func (a Accessor) Variable() *TypeVar { return a.variable }

// Get resolves the accessor against cls.
func (a Accessor) Get(cls *Class) (Argument, error) {
	if cls == nil {
		return nil, errors.ErrNilClass
	}
	return cls.Arg(a.variable)
}

// GetInstance resolves the accessor against an instance's class.
func (a Accessor) GetInstance(i *Instance) (Argument, error) {
	if i == nil {
		return nil, errors.ErrNilClass
	}
	return i.class.Arg(a.variable)
}
