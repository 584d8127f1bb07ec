package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrClockMovedBackwards is returned per generate call when the wall
	// clock is observed behind the generator's last-seen timestamp. The call
	// fails without mutating state; retry is the caller's decision.
	ErrClockMovedBackwards = errors.New("clock moved backwards")

	// Startup failures. All of these are fatal: the process must not serve
	// with an unverified worker id or an unverified clock.
	ErrWorkerIdExhausted       = errors.New("no free worker id in range")
	ErrPeerMismatch            = errors.New("peer worker id disagrees with registry")
	ErrPeerUnreachable         = errors.New("peer unreachable")
	ErrClockSkewExceeded       = errors.New("clock skew against fleet exceeds tolerance")
	ErrCoordinationUnavailable = errors.New("coordination store unavailable")
	ErrNoDatacenterId          = errors.New("datacenter id not configured and not present in store")
)

type AppError struct {
	Code    codes.Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Message)
}

func NewAppError(code codes.Code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func ClockMovedBackwards(message string) *AppError {
	return &AppError{
		Code:    codes.FailedPrecondition,
		Message: message,
		Err:     ErrClockMovedBackwards,
	}
}

func Unavailable(message string, err error) *AppError {
	return &AppError{
		Code:    codes.Unavailable,
		Message: message,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    codes.Internal,
		Message: message,
		Err:     err,
	}
}

func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.GRPCStatus().Err()
	}

	if errors.Is(err, ErrClockMovedBackwards) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	if st, ok := status.FromError(err); ok {
		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

func IsClockMovedBackwards(err error) bool {
	return errors.Is(err, ErrClockMovedBackwards)
}
