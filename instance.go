package typingarguments

// Instance is a constructed value of a Class. It holds a reference to the
// class's argument map, the same map and not a copy, established during
// construction.
type Instance struct {
	class     *Class
	arguments *ArgumentMap
}

// New constructs an instance of the class.
func (c *Class) New() *Instance {
	return &Instance{class: c, arguments: c.arguments}
}

// Class returns the class the instance was constructed from.
func (i *Instance) Class() *Class { return i.class }

// TypingArguments returns the argument map shared with the instance's class,
// or nil when the class carries none.
func (i *Instance) TypingArguments() *ArgumentMap { return i.arguments }

// Arg resolves the argument bound to v through the instance's class.
func (i *Instance) Arg(v *TypeVar) (Argument, error) {
	return i.class.Arg(v)
}

// Attr resolves a named attribute through the instance's class.
func (i *Instance) Attr(name string) (any, error) {
	return i.class.Attr(name)
}
