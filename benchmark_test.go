package typingarguments

import (
	"reflect"
	"testing"
)

func BenchmarkParameterize_Cached(b *testing.B) {
	t1 := NewTypeVar("T1")
	t2 := NewTypeVar("T2")
	cls, err := NewClass("Bench", WithTypeParams(t1, t2))
	if err != nil {
		b.Fatalf("NewClass error: %v", err)
	}
	args := []Argument{TypeOf[string](), TypeOf[int]()}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cls.Parameterize(args...); err != nil {
			b.Fatalf("Parameterize error: %v", err)
		}
	}
}

func BenchmarkArg(b *testing.B) {
	t1 := NewTypeVar("T1")
	cls, err := NewClass("Bench", WithTypeParams(t1))
	if err != nil {
		b.Fatalf("NewClass error: %v", err)
	}
	concrete, err := cls.Parameterize(Type(reflect.TypeOf("")))
	if err != nil {
		b.Fatalf("Parameterize error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = concrete.Arg(t1); err != nil {
			b.Fatalf("Arg error: %v", err)
		}
	}
}
