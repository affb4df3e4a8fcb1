package errors

import "fmt"

// Kind tags an error with the game rule that failed. Kinds are coarser than messages and
// finer than codes: several kinds share CodeInvalidArgument.
type Kind string

// Rule failure kinds
const (
	KindInvalidName           Kind = "invalid_name"
	KindInvalidClass          Kind = "invalid_class"
	KindInvalidValue          Kind = "invalid_value"
	KindInsufficientCredits   Kind = "insufficient_credits"
	KindNotFound              Kind = "not_found"
	KindPreconditionViolation Kind = "precondition_violation"
	KindOwnershipViolation    Kind = "ownership_violation"
	KindCorruptState          Kind = "corrupt_state"
)

// MetaKind is the metadata key the kind is stored under
const MetaKind = "kind"

// Code returns the code an error of this kind is reported with
func (k Kind) Code() Code {
	switch k {
	case KindInvalidName, KindInvalidClass, KindInvalidValue:
		return CodeInvalidArgument
	case KindInsufficientCredits, KindPreconditionViolation:
		return CodeFailedPrecondition
	case KindNotFound:
		return CodeNotFound
	case KindOwnershipViolation:
		return CodePermissionDenied
	case KindCorruptState:
		return CodeDataLoss
	default:
		return CodeInternal
	}
}

// NewKind creates an error of the given kind using the kind's code
func NewKind(kind Kind, message string) *Error {
	return New(kind.Code(), message).WithMeta(MetaKind, string(kind))
}

// InvalidName reports a character or item name that breaks the naming rules
func InvalidName(message string) *Error {
	return NewKind(KindInvalidName, message)
}

// InvalidClass reports an unknown character or item class
func InvalidClass(message string) *Error {
	return NewKind(KindInvalidClass, message)
}

// InvalidClassf reports an unknown class with a formatted message
func InvalidClassf(format string, args ...interface{}) *Error {
	return InvalidClass(fmt.Sprintf(format, args...))
}

// InvalidValue reports a numeric value outside its allowed bounds
func InvalidValue(message string) *Error {
	return NewKind(KindInvalidValue, message)
}

// InvalidValuef reports an out of bounds value with a formatted message
func InvalidValuef(format string, args ...interface{}) *Error {
	return InvalidValue(fmt.Sprintf(format, args...))
}

// InsufficientCredits reports a purchase the user cannot pay for
func InsufficientCredits(message string) *Error {
	return NewKind(KindInsufficientCredits, message)
}

// ItemNotFound reports a missing item or character in a rule operation
func ItemNotFound(message string) *Error {
	return NewKind(KindNotFound, message)
}

// PreconditionViolation reports a request that can never be valid in the current state
func PreconditionViolation(message string) *Error {
	return NewKind(KindPreconditionViolation, message)
}

// OwnershipViolation reports an id that is not in the acting user's ownership list
func OwnershipViolation(message string) *Error {
	return NewKind(KindOwnershipViolation, message)
}

// OwnershipViolationf reports an ownership failure with a formatted message
func OwnershipViolationf(format string, args ...interface{}) *Error {
	return OwnershipViolation(fmt.Sprintf(format, args...))
}

// CorruptState reports a malformed record that reached the rules
func CorruptState(message string) *Error {
	return NewKind(KindCorruptState, message)
}

// CorruptStatef reports a malformed record with a formatted message
func CorruptStatef(format string, args ...interface{}) *Error {
	return CorruptState(fmt.Sprintf(format, args...))
}

// GetKind extracts the kind of an error, or "" if it carries none
func GetKind(err error) Kind {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	switch v := meta[MetaKind].(type) {
	case string:
		return Kind(v)
	case Kind:
		return v
	default:
		return ""
	}
}

// IsKind checks if an error carries the given kind
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
