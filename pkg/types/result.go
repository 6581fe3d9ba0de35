package types

import (
	"sort"
	"strconv"
	"strings"
)

// ResultCode is a simulator result code. Values are ordinals of the
// simulator's result enumeration; values outside the named set are allowed
// and carried through untouched.
type ResultCode int

const (
	ResultOK ResultCode = iota
	ResultResourceCreated
	ResultResourceDeleted
	ResultContinue
	ResultInvalidURI
	ResultInvalidQuery
	ResultInvalidIP
	ResultInvalidPort
	ResultInvalidCallback
	ResultInvalidMethod
	ResultInvalidParam
	ResultInvalidObserveParam
	ResultNoMemory
	ResultCommError
	ResultTimeout
	ResultAdapterNotEnabled
	ResultNotImplemented
	ResultNoResource
	ResultResourceError
	ResultSlowResource
	ResultDuplicateRequest
	ResultNoObservers
	ResultObserverNotFound
	ResultVirtualDoNotHandle
	ResultInvalidOption
	ResultMalformedResponse
	ResultPersistentBufferRequired
	ResultInvalidRequestHandle
	ResultInvalidDeviceInfo
	ResultInvalidJSON
	ResultUnauthorizedRequest
	ResultPresenceTimeout
	ResultPresenceStopped
	ResultPresenceDoNotHandle
	ResultPresenceNotHandled
	ResultInvalidResponseCode
	ResultNotSupported
	ResultBadInput
	ResultBadObject
	ResultBadSchema
	ResultBadValueType
	ResultOperationNotAllowed
	ResultOperationInProgress
	ResultInvalidType
	ResultUnknownProperty
	ResultError
)

const resultPrefix = "SIMULATOR_"

var resultNames = map[ResultCode]string{
	ResultOK:                       "SIMULATOR_OK",
	ResultResourceCreated:          "SIMULATOR_RESOURCE_CREATED",
	ResultResourceDeleted:          "SIMULATOR_RESOURCE_DELETED",
	ResultContinue:                 "SIMULATOR_CONTINUE",
	ResultInvalidURI:               "SIMULATOR_INVALID_URI",
	ResultInvalidQuery:             "SIMULATOR_INVALID_QUERY",
	ResultInvalidIP:                "SIMULATOR_INVALID_IP",
	ResultInvalidPort:              "SIMULATOR_INVALID_PORT",
	ResultInvalidCallback:          "SIMULATOR_INVALID_CALLBACK",
	ResultInvalidMethod:            "SIMULATOR_INVALID_METHOD",
	ResultInvalidParam:             "SIMULATOR_INVALID_PARAM",
	ResultInvalidObserveParam:      "SIMULATOR_INVALID_OBSERVE_PARAM",
	ResultNoMemory:                 "SIMULATOR_NO_MEMORY",
	ResultCommError:                "SIMULATOR_COMM_ERROR",
	ResultTimeout:                  "SIMULATOR_TIMEOUT",
	ResultAdapterNotEnabled:        "SIMULATOR_ADAPTER_NOT_ENABLED",
	ResultNotImplemented:           "SIMULATOR_NOTIMPL",
	ResultNoResource:               "SIMULATOR_NO_RESOURCE",
	ResultResourceError:            "SIMULATOR_RESOURCE_ERROR",
	ResultSlowResource:             "SIMULATOR_SLOW_RESOURCE",
	ResultDuplicateRequest:         "SIMULATOR_DUPLICATE_REQUEST",
	ResultNoObservers:              "SIMULATOR_NO_OBSERVERS",
	ResultObserverNotFound:         "SIMULATOR_OBSERVER_NOT_FOUND",
	ResultVirtualDoNotHandle:       "SIMULATOR_VIRTUAL_DO_NOT_HANDLE",
	ResultInvalidOption:            "SIMULATOR_INVALID_OPTION",
	ResultMalformedResponse:        "SIMULATOR_MALFORMED_RESPONSE",
	ResultPersistentBufferRequired: "SIMULATOR_PERSISTENT_BUFFER_REQUIRED",
	ResultInvalidRequestHandle:     "SIMULATOR_INVALID_REQUEST_HANDLE",
	ResultInvalidDeviceInfo:        "SIMULATOR_INVALID_DEVICE_INFO",
	ResultInvalidJSON:              "SIMULATOR_INVALID_JSON",
	ResultUnauthorizedRequest:      "SIMULATOR_UNAUTHORIZED_REQ",
	ResultPresenceTimeout:          "SIMULATOR_PRESENCE_TIMEOUT",
	ResultPresenceStopped:          "SIMULATOR_PRESENCE_STOPPED",
	ResultPresenceDoNotHandle:      "SIMULATOR_PRESENCE_DO_NOT_HANDLE",
	ResultPresenceNotHandled:       "SIMULATOR_PRESENCE_NOT_HANDLED",
	ResultInvalidResponseCode:      "SIMULATOR_INVALID_RESPONSE_CODE",
	ResultNotSupported:             "SIMULATOR_NOT_SUPPORTED",
	ResultBadInput:                 "SIMULATOR_BAD_INPUT",
	ResultBadObject:                "SIMULATOR_BAD_OBJECT",
	ResultBadSchema:                "SIMULATOR_BAD_SCHEMA",
	ResultBadValueType:             "SIMULATOR_BAD_VALUE_TYPE",
	ResultOperationNotAllowed:      "SIMULATOR_OPERATION_NOT_ALLOWED",
	ResultOperationInProgress:      "SIMULATOR_OPERATION_IN_PROGRESS",
	ResultInvalidType:              "SIMULATOR_INVALID_TYPE",
	ResultUnknownProperty:          "SIMULATOR_UNKNOWN_PROPERTY",
	ResultError:                    "SIMULATOR_ERROR",
}

var resultsByName = func() map[string]ResultCode {
	m := make(map[string]ResultCode, len(resultNames))
	for rc, name := range resultNames {
		m[name] = rc
	}
	return m
}()

// String returns the canonical name, e.g. SIMULATOR_INVALID_PARAM, or
// ResultCode(n) for values outside the named set.
func (rc ResultCode) String() string {
	if name, ok := resultNames[rc]; ok {
		return name
	}
	return "ResultCode(" + strconv.Itoa(int(rc)) + ")"
}

// Known reports whether rc is a named member of the enumeration.
func (rc ResultCode) Known() bool {
	_, ok := resultNames[rc]
	return ok
}

// ParseResultCode looks up a result code by name. Matching is
// case-insensitive and the SIMULATOR_ prefix may be omitted.
func ParseResultCode(name string) (ResultCode, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "" {
		return 0, false
	}
	if !strings.HasPrefix(n, resultPrefix) {
		n = resultPrefix + n
	}
	rc, ok := resultsByName[n]
	return rc, ok
}

// ResultCodes returns every named result code in ascending order.
func ResultCodes() []ResultCode {
	out := make([]ResultCode, 0, len(resultNames))
	for rc := range resultNames {
		out = append(out, rc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
