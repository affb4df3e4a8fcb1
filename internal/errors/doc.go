// Package errors is the structured error type shared by every layer of rpg-arena.
//
// An *Error carries a Code (aligned with gRPC codes), a user-facing Message, an optional
// Cause and free-form Meta. Game rule failures are additionally tagged with a Kind so a
// caller can tell an invalid character name from an unaffordable purchase without parsing
// messages:
//
//	err := errors.InvalidName("name must not be empty")
//	errors.IsKind(err, errors.KindInvalidName) // true
//	errors.GetCode(err)                        // CodeInvalidArgument
//
// Wrapping keeps both the code and the kind of the innermost *Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load character")
//	}
//
// Handlers convert to gRPC with ToGRPCError; clients convert back with FromGRPCError and
// get the same Code, Kind and Meta.
//
// Layer guidelines:
//   - repositories return NotFound / AlreadyExists / Internal and include ids in Meta
//   - rules (stats, items, economy, inventory) return Kind-tagged errors and never I/O errors
//   - orchestrators check ownership and preconditions and wrap repository errors
//   - handlers only translate
package errors
