package typingarguments

import (
	"context"
	"errors"
	"reflect"
	"testing"

	pkgerrors "github.com/team23/typing-arguments/errors"
)

type payloadModel struct {
	Mixin

	Name string `default:"payload" validate:"min(2)"`
}

func TestStructBinding_InstallsMixin(t *testing.T) {
	t1 := NewTypeVar("T1")
	cls := mustParameterize(t,
		mustClass(t, "Payload", WithTypeParams(t1)),
		TypeOf[string](),
	)

	sb, err := NewStructBinding[payloadModel](cls,
		WithDefaults[payloadModel](),
		WithValidation[payloadModel](),
	)
	if err != nil {
		t.Fatalf("NewStructBinding error: %v", err)
	}
	if sb.Class() != cls {
		t.Fatal("binding must keep the bound class")
	}

	obj, err := sb.New(context.Background())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if obj.TypingArguments() != cls.TypingArguments() {
		t.Fatal("constructed value must share the class's map by reference")
	}
	// the model framework still ran: the default tag was applied and the
	// validate tag passed despite the embedded Mixin
	if obj.Name != "payload" {
		t.Fatalf("expected defaulted Name, got %q", obj.Name)
	}

	arg, ok := obj.TypingArguments().Get(t1)
	if !ok {
		t.Fatal("expected T1 to be bound")
	}
	if actual, _ := ReflectType(arg); actual != reflect.TypeOf("") {
		t.Fatalf("expected string, got %v", actual)
	}
}

type invalidModel struct {
	Mixin

	Name string `validate:"min(5)"`
}

func TestStructBinding_ValidationFailureSurfaces(t *testing.T) {
	t1 := NewTypeVar("T1")
	cls := mustParameterize(t,
		mustClass(t, "Invalid", WithTypeParams(t1)),
		TypeOf[int](),
	)

	sb, err := NewStructBinding[invalidModel](cls, WithValidation[invalidModel]())
	if err != nil {
		t.Fatalf("NewStructBinding error: %v", err)
	}
	if _, err = sb.New(context.Background()); err == nil {
		t.Fatal("expected validation failure for zero Name")
	}
}

type bareRecord struct {
	N int
}

func TestStructBinding_WithoutMixinResolvesThroughClass(t *testing.T) {
	t1 := NewTypeVar("T1")
	cls := mustParameterize(t,
		mustClass(t, "Bare", WithTypeParams(t1)),
		TypeOf[bool](),
	)

	sb, err := NewStructBinding[bareRecord](cls)
	if err != nil {
		t.Fatalf("NewStructBinding error: %v", err)
	}
	obj, err := sb.New(context.Background())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	resolved, err := ClassOf(obj)
	if err != nil {
		t.Fatalf("ClassOf error: %v", err)
	}
	if resolved != cls {
		t.Fatal("ClassOf must resolve the bound class for pointer values")
	}
	if resolved, err = ClassOf(*obj); err != nil || resolved != cls {
		t.Fatalf("ClassOf must resolve the bound class for plain values, got %v (%v)", resolved, err)
	}

	m, err := ArgumentsOf(*obj)
	if err != nil {
		t.Fatalf("ArgumentsOf error: %v", err)
	}
	if m != cls.TypingArguments() {
		t.Fatal("ArgumentsOf must fall back to the class's map")
	}
}

type reboundRecord struct {
	Mixin
}

func TestStructBinding_ReboundConflict(t *testing.T) {
	t1 := NewTypeVar("T1")
	generic := mustClass(t, "Rebound", WithTypeParams(t1))
	first := mustParameterize(t, generic, TypeOf[string]())
	second := mustParameterize(t, generic, TypeOf[int]())

	if _, err := NewStructBinding[reboundRecord](first); err != nil {
		t.Fatalf("NewStructBinding error: %v", err)
	}
	// binding the same pair again is fine
	if _, err := NewStructBinding[reboundRecord](first); err != nil {
		t.Fatalf("repeated NewStructBinding error: %v", err)
	}
	if _, err := NewStructBinding[reboundRecord](second); !errors.Is(err, pkgerrors.ErrRebound) {
		t.Fatalf("expected ErrRebound, got %v", err)
	}
}

func TestStructBinding_Misuses(t *testing.T) {
	t1 := NewTypeVar("T1")
	cls := mustParameterize(t,
		mustClass(t, "Misuse", WithTypeParams(t1)),
		TypeOf[string](),
	)

	if _, err := NewStructBinding[int](cls); !errors.Is(err, pkgerrors.ErrNotStruct) {
		t.Fatalf("expected ErrNotStruct, got %v", err)
	}
	if _, err := NewStructBinding[bareRecord](nil); !errors.Is(err, pkgerrors.ErrNilClass) {
		t.Fatalf("expected ErrNilClass, got %v", err)
	}

	type unbound struct{ N int }
	if _, err := ClassOf(unbound{}); !errors.Is(err, pkgerrors.ErrMissingMap) {
		t.Fatalf("expected ErrMissingMap, got %v", err)
	}
	if _, err := ArgumentsOf(unbound{}); !errors.Is(err, pkgerrors.ErrMissingMap) {
		t.Fatalf("expected ErrMissingMap, got %v", err)
	}
}

type installedRecord struct {
	Mixin

	N int
}

func TestStructBinding_InstallOnExistingValue(t *testing.T) {
	t1 := NewTypeVar("T1")
	cls := mustParameterize(t,
		mustClass(t, "Installed", WithTypeParams(t1)),
		TypeOf[float64](),
	)

	sb, err := NewStructBinding[installedRecord](cls)
	if err != nil {
		t.Fatalf("NewStructBinding error: %v", err)
	}

	obj := &installedRecord{N: 42}
	if obj.TypingArguments() != nil {
		t.Fatal("map must not exist before Install")
	}
	sb.Install(obj)
	if obj.TypingArguments() != cls.TypingArguments() {
		t.Fatal("Install must attach the class's map")
	}
	if obj.N != 42 {
		t.Fatal("Install must not touch user fields")
	}

	m, err := ArgumentsOf(obj)
	if err != nil {
		t.Fatalf("ArgumentsOf error: %v", err)
	}
	if m != cls.TypingArguments() {
		t.Fatal("ArgumentsOf must prefer the Mixin reference")
	}
}
