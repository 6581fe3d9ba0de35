package types

import (
	"errors"
	"fmt"
	"strings"
)

// Failure is implemented by every simulator error kind.
type Failure interface {
	error
	Code() int
	Message() string
}

// SimulatorError is the base simulator failure: a result code and a
// description. The code is stored as given and may fall outside the named
// ResultCode set.
type SimulatorError struct {
	code    int
	message string
}

// NewSimulatorError creates a SimulatorError from a raw result-code ordinal.
func NewSimulatorError(code int, message string) *SimulatorError {
	return &SimulatorError{code: code, message: message}
}

// NewSimulatorErrorFromResult creates a SimulatorError from a result code.
func NewSimulatorErrorFromResult(code ResultCode, message string) *SimulatorError {
	return NewSimulatorError(int(code), message)
}

// Code returns the result-code ordinal.
func (e *SimulatorError) Code() int { return e.code }

// Result returns the code as a ResultCode. It is not guaranteed to be Known.
func (e *SimulatorError) Result() ResultCode { return ResultCode(e.code) }

// Message returns the description exactly as it was constructed.
func (e *SimulatorError) Message() string { return e.message }

func (e *SimulatorError) Error() string {
	return formatFailure("simulator error", e.code, e.message)
}

func formatFailure(prefix string, code int, message string) string {
	return fmt.Sprintf("%s: %s (%s)", prefix, message, ResultCode(code))
}

// specialized carries the base value of a SimulatorError specialization and
// lets errors.As extract it as a *SimulatorError.
type specialized struct {
	base SimulatorError
}

func newSpecialized(code int, message string) specialized {
	return specialized{base: SimulatorError{code: code, message: message}}
}

// Code returns the result-code ordinal.
func (s *specialized) Code() int { return s.base.code }

// Result returns the code as a ResultCode.
func (s *specialized) Result() ResultCode { return ResultCode(s.base.code) }

// Message returns the description exactly as it was constructed.
func (s *specialized) Message() string { return s.base.message }

// As matches a **SimulatorError target with the base value.
func (s *specialized) As(target any) bool {
	t, ok := target.(**SimulatorError)
	if !ok {
		return false
	}
	*t = &s.base
	return true
}

// InvalidArgsError reports that a caller supplied invalid arguments.
type InvalidArgsError struct {
	specialized
}

// NewInvalidArgsError creates an InvalidArgsError with a raw ordinal. The
// code is not range checked.
func NewInvalidArgsError(code int, message string) *InvalidArgsError {
	return &InvalidArgsError{newSpecialized(code, message)}
}

// NewInvalidArgsErrorFromResult creates an InvalidArgsError with a result code.
func NewInvalidArgsErrorFromResult(code ResultCode, message string) *InvalidArgsError {
	return NewInvalidArgsError(int(code), message)
}

// InvalidArgs creates an InvalidArgsError with code ResultInvalidParam.
func InvalidArgs(message string) *InvalidArgsError {
	return NewInvalidArgsErrorFromResult(ResultInvalidParam, message)
}

// InvalidArgsf is InvalidArgs with a formatted message.
func InvalidArgsf(format string, args ...any) *InvalidArgsError {
	return InvalidArgs(fmt.Sprintf(format, args...))
}

func (e *InvalidArgsError) Error() string {
	return formatFailure("invalid args", e.base.code, e.base.message)
}

// NoSupportError reports that the simulator does not support an operation.
type NoSupportError struct {
	specialized
}

// NewNoSupportError creates a NoSupportError with a raw ordinal.
func NewNoSupportError(code int, message string) *NoSupportError {
	return &NoSupportError{newSpecialized(code, message)}
}

// NewNoSupportErrorFromResult creates a NoSupportError with a result code.
func NewNoSupportErrorFromResult(code ResultCode, message string) *NoSupportError {
	return NewNoSupportError(int(code), message)
}

// NoSupport creates a NoSupportError with code ResultNotSupported.
func NoSupport(message string) *NoSupportError {
	return NewNoSupportErrorFromResult(ResultNotSupported, message)
}

func (e *NoSupportError) Error() string {
	return formatFailure("not supported", e.base.code, e.base.message)
}

// OperationInProgressError reports that a conflicting operation is running.
type OperationInProgressError struct {
	specialized
}

// NewOperationInProgressError creates an OperationInProgressError with a raw
// ordinal.
func NewOperationInProgressError(code int, message string) *OperationInProgressError {
	return &OperationInProgressError{newSpecialized(code, message)}
}

// NewOperationInProgressErrorFromResult creates an OperationInProgressError
// with a result code.
func NewOperationInProgressErrorFromResult(code ResultCode, message string) *OperationInProgressError {
	return NewOperationInProgressError(int(code), message)
}

// OperationInProgress creates an OperationInProgressError with code
// ResultOperationInProgress.
func OperationInProgress(message string) *OperationInProgressError {
	return NewOperationInProgressErrorFromResult(ResultOperationInProgress, message)
}

func (e *OperationInProgressError) Error() string {
	return formatFailure("operation in progress", e.base.code, e.base.message)
}

// Kind names a simulator failure kind.
type Kind string

const (
	KindUnknown             Kind = "UNKNOWN"
	KindSimulator           Kind = "SIMULATOR_ERROR"
	KindInvalidArgs         Kind = "INVALID_ARGS"
	KindNoSupport           Kind = "NO_SUPPORT"
	KindOperationInProgress Kind = "OPERATION_IN_PROGRESS"
)

// ParseKind parses a kind name case-insensitively. KindUnknown is not
// accepted.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindSimulator, KindInvalidArgs, KindNoSupport, KindOperationInProgress:
		return k, true
	}
	return KindUnknown, false
}

// NewFailure builds a failure of the given kind with a raw ordinal. An
// unsupported kind yields an *InvalidArgsError.
func NewFailure(kind Kind, code int, message string) (Failure, error) {
	switch kind {
	case KindSimulator:
		return NewSimulatorError(code, message), nil
	case KindInvalidArgs:
		return NewInvalidArgsError(code, message), nil
	case KindNoSupport:
		return NewNoSupportError(code, message), nil
	case KindOperationInProgress:
		return NewOperationInProgressError(code, message), nil
	}
	return nil, InvalidArgsf("unsupported error kind %q", string(kind))
}

// KindOf returns the kind of the first simulator failure in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var f Failure
	if !errors.As(err, &f) {
		return KindUnknown
	}
	switch f.(type) {
	case *InvalidArgsError:
		return KindInvalidArgs
	case *NoSupportError:
		return KindNoSupport
	case *OperationInProgressError:
		return KindOperationInProgress
	case *SimulatorError:
		return KindSimulator
	}
	return KindUnknown
}

// CodeOf returns the result code of the first simulator failure in err's
// chain.
func CodeOf(err error) (int, bool) {
	var f Failure
	if !errors.As(err, &f) {
		return 0, false
	}
	return f.Code(), true
}

// IsInvalidArgs reports whether err's chain contains an *InvalidArgsError.
func IsInvalidArgs(err error) bool {
	var e *InvalidArgsError
	return errors.As(err, &e)
}
