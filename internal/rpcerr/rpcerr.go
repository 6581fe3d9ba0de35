// Package rpcerr maps simulator failures to and from gRPC statuses.
//
// The status message carries the simulator code and the original message as
// "<RESULT_NAME>: <message>", or "code <n>: <message>" when the code is not a
// named result, so FromStatus can rebuild the typed error.
package rpcerr

import (
	"errors"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eytandecker/simresult-mcp/pkg/types"
)

const rawCodePrefix = "code "

// GRPCCode returns the gRPC code used for err.
func GRPCCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	switch types.KindOf(err) {
	case types.KindInvalidArgs:
		return codes.InvalidArgument
	case types.KindNoSupport:
		return codes.Unimplemented
	case types.KindOperationInProgress:
		return codes.Unavailable
	case types.KindSimulator:
		code, _ := types.CodeOf(err)
		switch types.ResultCode(code) {
		case types.ResultTimeout, types.ResultPresenceTimeout:
			return codes.DeadlineExceeded
		case types.ResultNoResource, types.ResultObserverNotFound:
			return codes.NotFound
		case types.ResultUnauthorizedRequest:
			return codes.PermissionDenied
		}
		return codes.Internal
	}
	return codes.Unknown
}

// ToStatus converts err to a gRPC status. Errors that carry no simulator
// failure map to codes.Unknown with err's text.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	var f types.Failure
	if !errors.As(err, &f) {
		return status.New(codes.Unknown, err.Error())
	}
	return status.New(GRPCCode(err), encodeMessage(f.Code(), f.Message()))
}

// Err is shorthand for ToStatus(err).Err().
func Err(err error) error {
	if err == nil {
		return nil
	}
	return ToStatus(err).Err()
}

// FromStatus rebuilds the simulator failure encoded by ToStatus. Statuses
// it did not produce come back as st.Err().
func FromStatus(st *status.Status) error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	code, msg, ok := decodeMessage(st.Message())
	if !ok {
		return st.Err()
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return types.NewInvalidArgsError(code, msg)
	case codes.Unimplemented:
		return types.NewNoSupportError(code, msg)
	case codes.Unavailable:
		return types.NewOperationInProgressError(code, msg)
	case codes.Internal, codes.DeadlineExceeded, codes.NotFound, codes.PermissionDenied:
		return types.NewSimulatorError(code, msg)
	}
	return st.Err()
}

func encodeMessage(code int, msg string) string {
	if rc := types.ResultCode(code); rc.Known() {
		return rc.String() + ": " + msg
	}
	return rawCodePrefix + strconv.Itoa(code) + ": " + msg
}

func decodeMessage(s string) (int, string, bool) {
	head, msg, found := strings.Cut(s, ": ")
	if !found {
		return 0, "", false
	}
	if n, ok := strings.CutPrefix(head, rawCodePrefix); ok {
		code, err := strconv.Atoi(n)
		if err != nil {
			return 0, "", false
		}
		return code, msg, true
	}
	if !strings.HasPrefix(head, "SIMULATOR_") {
		return 0, "", false
	}
	rc, ok := types.ParseResultCode(head)
	if !ok {
		return 0, "", false
	}
	return int(rc), msg, true
}
