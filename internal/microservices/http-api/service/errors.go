package service

import (
	"errors"
	"fmt"
	"strings"

	"bloghub/internal/microservices/http-api/dto"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	// a malformed uuid never matches a row
	pgInvalidTextRepresentation = "22P02"
)

// Error is a failure that already carries its envelope code and message.
type Error struct {
	Code    dto.ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Response renders the error as a mutation envelope.
func (e *Error) Response() dto.MutationResponse {
	return dto.NewErrorResponse(e.Code, e.Message)
}

func newError(code dto.ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrUnauthenticated    = newError(dto.CodeUnauthenticated, "Not authenticated")
	ErrInvalidCredentials = newError(dto.CodeUnauthenticated, "Invalid email or password")
)

// NotFound, Forbidden and BadInput build rule violations for the services.
func NotFound(message string) *Error  { return newError(dto.CodeNotFound, message) }
func Forbidden(message string) *Error { return newError(dto.CodeUnauthorized, message) }
func BadInput(message string) *Error  { return newError(dto.CodeBadUserInput, message) }

// HandleDataAccessError classifies err into an envelope error: unique
// violations become ALREADY_EXISTS naming the columns, foreign key
// violations BAD_USER_INPUT, missing rows NOT_FOUND and the rest
// INTERNAL_SERVER_ERROR with the underlying message.
func HandleDataAccessError(err error) *Error {
	if err == nil {
		return nil
	}

	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &Error{Code: dto.CodeAlreadyExists, Message: uniqueViolationMessage(pgErr), Err: err}
		case pgForeignKeyViolation:
			return &Error{Code: dto.CodeBadUserInput, Message: "Related record not found.", Err: err}
		case pgInvalidTextRepresentation:
			return &Error{Code: dto.CodeNotFound, Message: "Record not found.", Err: err}
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Code: dto.CodeAlreadyExists, Message: "field already exists.", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Code: dto.CodeBadUserInput, Message: "Related record not found.", Err: err}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Code: dto.CodeNotFound, Message: "Record not found.", Err: err}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &Error{Code: dto.CodeBadUserInput, Message: validationMessage(verrs), Err: err}
	}

	msg := err.Error()
	if msg == "" {
		msg = "An unexpected error occurred"
	}
	return &Error{Code: dto.CodeInternalServerError, Message: msg, Err: err}
}

// IsNotFound reports a missing row, including a lookup by an id that is
// not a valid uuid.
func IsNotFound(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation
}

// uniqueViolationMessage builds "<fields> already exists." from the
// constraint detail, e.g. `Key (email)=(a@b.c) already exists.`
func uniqueViolationMessage(pgErr *pgconn.PgError) string {
	fields := constraintFields(pgErr.Detail)
	if len(fields) == 0 && pgErr.ConstraintName != "" {
		fields = []string{pgErr.ConstraintName}
	}
	if len(fields) == 0 {
		fields = []string{"field"}
	}
	return strings.Join(fields, ", ") + " already exists."
}

func constraintFields(detail string) []string {
	start := strings.Index(detail, "Key (")
	end := strings.Index(detail, ")=(")
	if start < 0 || end < start+len("Key (") {
		return nil
	}

	var fields []string
	for _, f := range strings.Split(detail[start+len("Key ("):end], ",") {
		f = strings.TrimSpace(f)
		// lower(name::text) -> name
		if i := strings.LastIndex(f, "("); i >= 0 {
			f = f[i+1:]
		}
		if i := strings.IndexAny(f, ":)"); i >= 0 {
			f = f[:i]
		}
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func validationMessage(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
