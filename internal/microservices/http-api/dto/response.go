package dto

import "time"

// ErrorCode is the numeric code carried by every mutation envelope.
type ErrorCode int32

const (
	CodeOK                  ErrorCode = 200
	CodeBadUserInput        ErrorCode = 400
	CodeUnauthenticated     ErrorCode = 401
	CodeUnauthorized        ErrorCode = 403
	CodeNotFound            ErrorCode = 404
	CodeAlreadyExists       ErrorCode = 409
	CodeInternalServerError ErrorCode = 500
)

func (c ErrorCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeBadUserInput:
		return "BAD_USER_INPUT"
	case CodeUnauthenticated:
		return "UNAUTHENTICATED"
	case CodeUnauthorized:
		return "UNAUTHORIZED"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeAlreadyExists:
		return "ALREADY_EXISTS"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

const defaultSuccessMessage = "Operation successful"

// MutationResponse is the envelope every mutation result embeds.
type MutationResponse struct {
	Code    ErrorCode `json:"code"`
	Success bool      `json:"success"`
	Message string    `json:"message"`
}

// NewSuccessResponse returns a 200 envelope. An empty message falls back to
// "Operation successful".
func NewSuccessResponse(message string) MutationResponse {
	if message == "" {
		message = defaultSuccessMessage
	}
	return MutationResponse{Code: CodeOK, Success: true, Message: message}
}

func NewErrorResponse(code ErrorCode, message string) MutationResponse {
	return MutationResponse{Code: code, Success: false, Message: message}
}

// FormatTime renders t as ISO-8601 in UTC with millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
