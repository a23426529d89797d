package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError is the single error type crossing layer boundaries. Repositories
// wrap infrastructure failures with Database, usecases return the NotFound
// sentinels, and the gRPC layer maps everything through GRPCStatus.
type AppError struct {
	Code    string
	Message string
	Status  codes.Code
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// GRPCStatus makes AppError implement the interface recognised by
// status.FromError, so returning one from a handler yields the right code.
func (e *AppError) GRPCStatus() *status.Status {
	return status.New(e.Status, e.Message)
}

func New(code, message string, grpcCode codes.Code) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  grpcCode,
	}
}

// Database wraps an infrastructure failure, keeping the underlying message
// intact on the wire.
func Database(err error) *AppError {
	return &AppError{
		Code:    "DATABASE_ERROR",
		Message: err.Error(),
		Status:  codes.Internal,
		Err:     err,
	}
}

// Unexpected marks a broken assumption inside the usecase layer.
func Unexpected(message string) *AppError {
	return &AppError{
		Code:    "UNEXPECTED",
		Message: message,
		Status:  codes.Internal,
	}
}
