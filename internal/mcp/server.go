package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/eytandecker/simresult-mcp/internal/catalog"
	"github.com/eytandecker/simresult-mcp/internal/config"
	"github.com/eytandecker/simresult-mcp/internal/logging"
	"github.com/eytandecker/simresult-mcp/internal/rpcerr"
	"github.com/eytandecker/simresult-mcp/pkg/types"
)

const (
	toolLookup   = "lookup_result_code"
	toolList     = "list_result_codes"
	toolClassify = "classify_error"
)

// Server wraps the MCP SDK server and exposes the simulator result codes as tools.
type Server struct {
	sdk *mcpsdk.Server
	log logrus.FieldLogger
}

// NewServer creates a Server and registers its tools.
func NewServer(cfg config.ServerConfig, log logrus.FieldLogger) *Server {
	s := &Server{
		sdk: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		log: log,
	}

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        toolLookup,
		Description: "Resolves a simulator result code by name (e.g. SIMULATOR_INVALID_PARAM) or by number.",
	}, s.handleLookup)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        toolList,
		Description: "Lists every named simulator result code.",
	}, s.handleList)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        toolClassify,
		Description: "Builds a simulator error of the given kind from a code and message and reports how handlers see it.",
	}, s.handleClassify)
	return s
}

// Run starts the MCP server over stdio and blocks until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.sdk.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect connects the server to an existing transport (used in tests).
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.sdk.Connect(ctx, t, nil)
}

// lookupInput holds arguments for the lookup_result_code tool.
type lookupInput struct {
	Name string `json:"name,omitempty"`
	Code *int   `json:"code,omitempty"`
}

type listInput struct{}

// classifyInput holds arguments for the classify_error tool.
type classifyInput struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// ListResponse is the JSON payload of list_result_codes.
type ListResponse struct {
	Codes []catalog.Entry `json:"codes"`
}

// ClassifyResponse is the JSON payload of classify_error.
type ClassifyResponse struct {
	Kind     string `json:"kind"`
	Code     int    `json:"code"`
	Name     string `json:"name"`
	Known    bool   `json:"known"`
	Message  string `json:"message"`
	GRPCCode string `json:"grpc_code"`

	// MatchesBase reports whether a *SimulatorError handler catches the failure.
	MatchesBase bool `json:"matches_base"`
}

// ErrorResponse is returned when a tool call fails.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Code      *int   `json:"code,omitempty"`
	Name      string `json:"name,omitempty"`
	Message   string `json:"message,omitempty"`
	GRPCCode  string `json:"grpc_code"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleLookup(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input lookupInput,
) (*mcpsdk.CallToolResult, any, error) {
	entry, err := catalog.Lookup(input.Name, input.Code)
	if err != nil {
		return s.errorResult(toolLookup, err), nil, nil
	}
	return textResult(entry)
}

func (s *Server) handleList(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input listInput,
) (*mcpsdk.CallToolResult, any, error) {
	return textResult(ListResponse{Codes: catalog.List()})
}

func (s *Server) handleClassify(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input classifyInput,
) (*mcpsdk.CallToolResult, any, error) {
	kind := types.KindInvalidArgs
	if input.Kind != "" {
		k, ok := types.ParseKind(input.Kind)
		if !ok {
			return s.errorResult(toolClassify, types.InvalidArgsf("unknown error kind %q", input.Kind)), nil, nil
		}
		kind = k
	}

	failure, err := types.NewFailure(kind, input.Code, input.Message)
	if err != nil {
		return s.errorResult(toolClassify, err), nil, nil
	}

	// Handlers only ever see failures through a wrapped chain.
	propagated := fmt.Errorf("%s: %w", toolClassify, failure)

	var base *types.SimulatorError
	matchesBase := errors.As(propagated, &base)
	entry := catalog.EntryFor(failure.Code())
	return textResult(ClassifyResponse{
		Kind:        string(types.KindOf(propagated)),
		Code:        entry.Code,
		Name:        entry.Name,
		Known:       entry.Known,
		Message:     failure.Message(),
		MatchesBase: matchesBase,
		GRPCCode:    rpcerr.GRPCCode(propagated).String(),
	})
}

func textResult(v any) (*mcpsdk.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil, nil
}

func (s *Server) errorResult(tool string, err error) *mcpsdk.CallToolResult {
	resp := ErrorResponse{
		Error:     err.Error(),
		Kind:      string(types.KindOf(err)),
		GRPCCode:  rpcerr.GRPCCode(err).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	var f types.Failure
	if errors.As(err, &f) {
		code := f.Code()
		resp.Code = &code
		resp.Name = types.ResultCode(code).String()
		resp.Message = f.Message()
	}

	s.log.WithFields(logging.FailureFields(err)).WithField("tool", tool).Warn(err.Error())

	data, _ := json.Marshal(resp)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
		IsError: true,
	}
}
