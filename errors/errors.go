package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/team23/typing-arguments/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	// Raised at class-creation or parameterization time. Fatal, no recovery.
	ErrConflictingBindings = namespace.NewError("conflicting bindings for type variable")
	ErrCyclicBinding       = namespace.NewError("cyclic binding between type variables")

	// Raised at attribute-read time. Recoverable by the caller.
	ErrUnresolvedArgument = namespace.NewError("type argument is not resolved")
	ErrMissingMap         = namespace.NewError("class carries no typing arguments")

	// Builder and parameterization misuses.
	ErrNotGeneric         = namespace.NewError("cannot provide type arguments to a non-generic class")
	ErrParameterCount     = namespace.NewError("wrong number of type arguments")
	ErrNilTypeVar         = namespace.NewError("type variable must be non-nil")
	ErrNilArgument        = namespace.NewError("type argument must be non-nil")
	ErrNilClass           = namespace.NewError("class must be non-nil")
	ErrDuplicateTypeParam = namespace.NewError("duplicate type parameter")
	ErrDuplicateAccessor  = namespace.NewError("duplicate accessor name")
	ErrReservedAttribute  = namespace.NewError("attribute name is reserved")
	ErrUnknownAttribute   = namespace.NewError("unknown attribute")

	// Struct binding misuses.
	ErrNotStruct = namespace.NewError("bound type must be a struct")
	ErrRebound   = namespace.NewError("struct type is already bound to a different class")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentVariable  = "variable"
	keySegmentBinding   = "binding"
	keySegmentAttribute = "attribute"
	keySegmentStruct    = "struct"
)

// Exported structured error field keys
var (
	ErrorFieldVariable      = newKey("name", keySegmentVariable)  // typingarguments.variable.name
	ErrorFieldFirstBinding  = newKey("first", keySegmentBinding)  // typingarguments.binding.first
	ErrorFieldSecondBinding = newKey("second", keySegmentBinding) // typingarguments.binding.second
	ErrorFieldCycle         = newKey("cycle", keySegmentBinding)  // typingarguments.binding.cycle
)

var (
	ErrorFieldAttribute = newKey("name", keySegmentAttribute) // typingarguments.attribute.name
)

var (
	ErrorFieldStructType = newKey("type", keySegmentStruct) // typingarguments.struct.type
)

var (
	ErrorFieldClass    = newKey("class")
	ErrorFieldExpected = newKey("expected")
	ErrorFieldActual   = newKey("actual")
)
