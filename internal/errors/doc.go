// Package errors provides a comprehensive error handling solution for the coc-api service.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - gRPC integration with bidirectional conversion; metadata travels as a
//     google.protobuf.Struct status detail
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("investigator not found")
//	err := errors.InvalidArgumentf("invalid characteristic value: %d", value)
//
// Adding metadata:
//
//	err := errors.NotFound("investigator not found").
//	    WithMeta("investigator_id", id).
//	    WithMeta("owner_id", ownerID)
//
// Wrapping errors:
//
//	if err := repo.Get(id); err != nil {
//	    return errors.Wrap(err, "failed to get investigator")
//	}
//
// Changing error semantics:
//
//	if err := db.Query(); err != nil {
//	    if isNotFound(err) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "investigator not found")
//	    }
//	    return errors.Wrap(err, "database error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("age", input.Age, 15, 90, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Converting to gRPC:
//
//	func (h *Handler) GetInvestigator(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
//	    out, err := h.service.GetInvestigator(ctx, input)
//	    if err != nil {
//	        return nil, errors.ToGRPCError(err)
//	    }
//	    return respond(out)
//	}
//
// Converting from gRPC:
//
//	resp, err := client.Call(ctx, "GetInvestigator", req)
//	if err != nil {
//	    return nil, errors.FromGRPCError(err)
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap database errors with context
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to gRPC format
//   - Extract user-friendly messages
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Investigator, skill or roll log not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - PermissionDenied: Insufficient permissions
//   - FailedPrecondition: Operation requirements not met
//   - Unimplemented: Feature not implemented
//   - Internal: Internal server error
//   - Unavailable: Service temporarily unavailable
//   - Unauthenticated: Authentication required
//   - Canceled: Operation canceled (also context.Canceled)
//   - DeadlineExceeded: Operation timeout (also context.DeadlineExceeded)
package errors
