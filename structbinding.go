package typingarguments

import (
	"context"
	"reflect"
	"sync"

	"github.com/ygrebnov/errorc"
	"github.com/ygrebnov/model"

	"github.com/team23/typing-arguments/errors"
)

// Mixin is embedded into user structs whose type stands for a specialized
// class, so each constructed value carries a reference to the class's
// argument map. It holds no exported fields and no tags, which keeps a
// model framework's field-collection pass from ever treating it as a
// validated field; this is the declaration-only opt-out the framework
// cooperation requires. Users writing their own carriers by hand must
// preserve that property.
type Mixin struct {
	arguments *ArgumentMap
}

// TypingArguments returns the map installed at construction, or nil when the
// value was not built through a StructBinding.
func (m *Mixin) TypingArguments() *ArgumentMap {
	if m == nil {
		return nil
	}
	return m.arguments
}

func (m *Mixin) setTypingArguments(a *ArgumentMap) { m.arguments = a }

type argumentsCarrier interface {
	setTypingArguments(*ArgumentMap)
}

var mixinType = reflect.TypeOf(Mixin{})

// classRegistry associates struct types with the specialized classes they
// were bound to, so values that do not embed Mixin can still be resolved
// through their type. Registration is idempotent per (type, class) pair.
type classRegistry struct {
	mu      sync.RWMutex
	classes map[reflect.Type]*Class
}

var structClasses = classRegistry{classes: make(map[reflect.Type]*Class)}

func (r *classRegistry) bind(t reflect.Type, cls *Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.classes[t]; ok {
		if existing == cls {
			return nil
		}
		return errorc.With(
			errors.ErrRebound,
			errorc.String(errors.ErrorFieldStructType, t.String()),
			errorc.String(errors.ErrorFieldClass, cls.name),
		)
	}
	r.classes[t] = cls
	return nil
}

func (r *classRegistry) lookup(t reflect.Type) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cls, ok := r.classes[t]
	return cls, ok
}

// StructBinding ties a specialized class to a struct type S, so values of S
// constructed through it observe the class's typing arguments. Defaulting
// and validation of the struct's own fields are delegated to the model
// framework; the binding itself never touches them.
type StructBinding[S any] struct {
	class      *Class
	mixinIndex []int
	defaults   bool
	validate   bool
	binding    *model.Binding[S]
}

// StructOption configures a StructBinding at construction time.
type StructOption[S any] func(*StructBinding[S])

// WithDefaults applies the model framework's `default` tags to every value
// built through the binding.
func WithDefaults[S any]() StructOption[S] {
	return func(sb *StructBinding[S]) { sb.defaults = true }
}

// WithValidation runs the model framework's `validate` tag rules on every
// value built through the binding.
func WithValidation[S any]() StructOption[S] {
	return func(sb *StructBinding[S]) { sb.validate = true }
}

// NewStructBinding binds cls to the struct type S and registers the
// association. Binding the same type to a different class is an error; the
// same (type, class) pair may be bound repeatedly.
func NewStructBinding[S any](cls *Class, opts ...StructOption[S]) (*StructBinding[S], error) {
	if cls == nil {
		return nil, errors.ErrNilClass
	}
	typ := reflect.TypeOf((*S)(nil)).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldStructType, typ.String()),
			errorc.String(errors.ErrorFieldClass, cls.name),
		)
	}
	if err := structClasses.bind(typ, cls); err != nil {
		return nil, err
	}

	sb := &StructBinding[S]{class: cls}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous && f.Type == mixinType {
			sb.mixinIndex = f.Index
			break
		}
	}
	for _, opt := range opts {
		opt(sb)
	}
	if sb.defaults || sb.validate {
		b, err := model.NewBinding[S]()
		if err != nil {
			return nil, err
		}
		sb.binding = b
	}
	return sb, nil
}

// Class returns the bound class.
func (sb *StructBinding[S]) Class() *Class { return sb.class }

// New constructs a value of S carrying the class's argument map, then runs
// the model framework's defaulting and validation if configured. The context
// is handed to the framework's validation pass.
func (sb *StructBinding[S]) New(ctx context.Context) (*S, error) {
	obj := new(S)
	sb.install(obj)
	if sb.defaults {
		if err := sb.binding.ApplyDefaults(obj); err != nil {
			return nil, err
		}
	}
	if sb.validate {
		if err := sb.binding.Validate(ctx, obj); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// Install attaches the class's argument map to an already-constructed value.
// Values of types without an embedded Mixin still resolve through ClassOf.
func (sb *StructBinding[S]) Install(obj *S) {
	if obj == nil {
		return
	}
	sb.install(obj)
}

func (sb *StructBinding[S]) install(obj *S) {
	if sb.mixinIndex == nil {
		return
	}
	field := reflect.ValueOf(obj).Elem().FieldByIndex(sb.mixinIndex)
	field.Addr().Interface().(argumentsCarrier).setTypingArguments(sb.class.arguments)
}

// ClassOf resolves the class a value's struct type was bound to.
func ClassOf(v any) (*Class, error) {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	cls, ok := structClasses.lookup(t)
	if !ok {
		name := "<nil>"
		if t != nil {
			name = t.String()
		}
		return nil, errorc.With(errors.ErrMissingMap, errorc.String(errors.ErrorFieldStructType, name))
	}
	return cls, nil
}

// ArgumentsOf returns the typing arguments for a bound value, preferring the
// reference installed on an embedded Mixin and falling back to the value's
// class when per-instance state is unavailable.
func ArgumentsOf(v any) (*ArgumentMap, error) {
	if carrier, ok := v.(interface{ TypingArguments() *ArgumentMap }); ok {
		if m := carrier.TypingArguments(); m != nil {
			return m, nil
		}
	}
	cls, err := ClassOf(v)
	if err != nil {
		return nil, err
	}
	if cls.arguments == nil {
		return nil, errorc.With(errors.ErrMissingMap, errorc.String(errors.ErrorFieldClass, cls.name))
	}
	return cls.arguments, nil
}
