package constants

const Namespace = "typingarguments"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// TypingArgumentsAttribute is the reserved attribute name under which a
// class and its instances expose their argument map. It cannot be shadowed
// by a user-declared accessor.
const TypingArgumentsAttribute = "__typing_arguments__"
