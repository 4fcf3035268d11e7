// Package typingarguments makes the concrete type arguments bound to a
// parameterized class observable at runtime.
//
// Go offers no hook that fires when a type is defined or instantiated, so
// the two lifecycle events are explicit builder calls: NewClass declares a
// class (optionally generic over TypeVars, optionally inheriting from other
// classes), and Parameterize substitutes arguments for its parameters,
// yielding a new specialized class. Every class that takes part in the
// protocol carries a canonical map from each type variable declared anywhere
// in its ancestry to the argument currently bound to it, exposed under the
// reserved "__typing_arguments__" attribute and shared by reference with
// every instance.
//
//	T1 := typingarguments.NewTypeVar("T1")
//	T2 := typingarguments.NewTypeVar("T2")
//
//	Something, _ := typingarguments.NewClass("Something",
//		typingarguments.WithTypeParams(T1, T2),
//		typingarguments.WithAccessor("t1", typingarguments.TypingArg(T1)),
//		typingarguments.WithAccessor("t2", typingarguments.TypingArg(T2)),
//	)
//
//	Concrete, _ := Something.Parameterize(
//		typingarguments.TypeOf[string](),
//		typingarguments.TypeOf[int](),
//	)
//	Concrete.Attr("t1") // string
//	Concrete.Attr("t2") // int
//
// Bindings flow through inheritance: a class may pass a variable of its own
// as the argument of a base; the maps of all bases are merged, and
// variable-to-variable chains collapsed, whenever a class is created.
// Distinct concrete bindings for the same variable across bases fail loudly
// at class-creation time with ErrConflictingBindings.
//
// Classes may also be tied to ordinary Go structs with NewStructBinding, so
// struct values observe the map of the class their type was bound to. Such
// structs can embed Mixin to carry the reference per value; Mixin exposes no
// fields to a model framework's collection pass, so defaulting and
// validation of the struct's real fields behave exactly as without it.
package typingarguments
