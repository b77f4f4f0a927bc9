package apperrors

// ErrorCode identifies an error class in API responses.
type ErrorCode string

const (
	// System level
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError   ErrorCode = "DATABASE_ERROR"
	CodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"

	// Business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeDuplicateAction  ErrorCode = "DUPLICATE_ACTION"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)
