package mcp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eytandecker/simresult-mcp/internal/config"
	internalmcp "github.com/eytandecker/simresult-mcp/internal/mcp"
	"github.com/eytandecker/simresult-mcp/pkg/types"
)

// callTool connects the MCP server via in-memory transports and calls the tool.
func callTool(t *testing.T, logOut *bytes.Buffer, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()
	ctx := context.Background()

	log := logrus.New()
	log.SetOutput(logOut)
	log.SetFormatter(&logrus.JSONFormatter{})

	srv := internalmcp.NewServer(config.ServerConfig{Name: "simresult-mcp", Version: "test"}, log)
	st, ct := mcpsdk.NewInMemoryTransports()

	_, err := srv.Connect(ctx, st)
	require.NoError(t, err)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "1.0"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })

	res, err := cs.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func decode(t *testing.T, res *mcpsdk.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, res.Content, 1)
	text := res.Content[0].(*mcpsdk.TextContent).Text
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &m))
	return m
}

func TestLookupByName(t *testing.T) {
	res := callTool(t, &bytes.Buffer{}, "lookup_result_code", map[string]any{"name": "invalid_param"})

	require.False(t, res.IsError)
	m := decode(t, res)
	assert.Equal(t, float64(types.ResultInvalidParam), m["code"])
	assert.Equal(t, "SIMULATOR_INVALID_PARAM", m["name"])
	assert.Equal(t, true, m["known"])
}

func TestLookupUnknownCodeIsReported(t *testing.T) {
	res := callTool(t, &bytes.Buffer{}, "lookup_result_code", map[string]any{"code": 4200})

	require.False(t, res.IsError)
	m := decode(t, res)
	assert.Equal(t, float64(4200), m["code"])
	assert.Equal(t, false, m["known"])
}

func TestLookupMissingArgumentsIsInvalidArgs(t *testing.T) {
	var logOut bytes.Buffer
	res := callTool(t, &logOut, "lookup_result_code", map[string]any{})

	require.True(t, res.IsError)
	m := decode(t, res)
	assert.Equal(t, "INVALID_ARGS", m["kind"])
	assert.Equal(t, float64(types.ResultInvalidParam), m["code"])
	assert.Equal(t, "SIMULATOR_INVALID_PARAM", m["name"])
	assert.Equal(t, "either name or code is required", m["message"])
	assert.Equal(t, "InvalidArgument", m["grpc_code"])

	ts, ok := m["timestamp"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logOut.Bytes(), &entry))
	assert.Equal(t, "lookup_result_code", entry["tool"])
	assert.Equal(t, "INVALID_ARGS", entry["kind"])
	assert.Equal(t, "warning", entry["level"])
}

func TestLookupUnknownName(t *testing.T) {
	res := callTool(t, &bytes.Buffer{}, "lookup_result_code", map[string]any{"name": "bogus"})

	require.True(t, res.IsError)
	m := decode(t, res)
	assert.Equal(t, "INVALID_ARGS", m["kind"])
	assert.Equal(t, `unknown result code name "bogus"`, m["message"])
}

func TestListResultCodes(t *testing.T) {
	res := callTool(t, &bytes.Buffer{}, "list_result_codes", nil)

	require.False(t, res.IsError)
	m := decode(t, res)
	codes, ok := m["codes"].([]any)
	require.True(t, ok)
	assert.Len(t, codes, len(types.ResultCodes()))

	first := codes[0].(map[string]any)
	assert.Equal(t, "SIMULATOR_OK", first["name"])
}

func TestClassifyDefaultsToInvalidArgs(t *testing.T) {
	res := callTool(t, &bytes.Buffer{}, "classify_error", map[string]any{
		"code":    4200,
		"message": "bad ordinal",
	})

	require.False(t, res.IsError)
	m := decode(t, res)
	assert.Equal(t, "INVALID_ARGS", m["kind"])
	assert.Equal(t, float64(4200), m["code"])
	assert.Equal(t, false, m["known"])
	assert.Equal(t, "bad ordinal", m["message"])
	assert.Equal(t, "InvalidArgument", m["grpc_code"])
	assert.Equal(t, true, m["matches_base"])
}

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		kind     string
		code     types.ResultCode
		wantGRPC string
	}{
		{kind: "simulator_error", code: types.ResultTimeout, wantGRPC: "DeadlineExceeded"},
		{kind: "NO_SUPPORT", code: types.ResultNotSupported, wantGRPC: "Unimplemented"},
		{kind: "operation_in_progress", code: types.ResultOperationInProgress, wantGRPC: "Unavailable"},
		{kind: "invalid_args", code: types.ResultInvalidParam, wantGRPC: "InvalidArgument"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			res := callTool(t, &bytes.Buffer{}, "classify_error", map[string]any{
				"code":    int(tt.code),
				"message": "device id missing",
				"kind":    tt.kind,
			})

			require.False(t, res.IsError)
			m := decode(t, res)
			k, ok := types.ParseKind(tt.kind)
			require.True(t, ok)
			assert.Equal(t, string(k), m["kind"])
			assert.Equal(t, tt.code.String(), m["name"])
			assert.Equal(t, "device id missing", m["message"])
			assert.Equal(t, tt.wantGRPC, m["grpc_code"])
			assert.Equal(t, true, m["matches_base"], "every kind must be caught by a base handler")
		})
	}
}

func TestClassifyUnknownKind(t *testing.T) {
	res := callTool(t, &bytes.Buffer{}, "classify_error", map[string]any{
		"code":    1,
		"message": "x",
		"kind":    "meltdown",
	})

	require.True(t, res.IsError)
	m := decode(t, res)
	assert.Equal(t, "INVALID_ARGS", m["kind"])
	assert.Equal(t, `unknown error kind "meltdown"`, m["message"])
}
