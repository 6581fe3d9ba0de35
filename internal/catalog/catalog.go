// Package catalog resolves simulator result codes for the MCP tools and the
// CLI.
package catalog

import (
	"strconv"
	"strings"

	"github.com/eytandecker/simresult-mcp/pkg/types"
)

// Entry describes one result code.
type Entry struct {
	Code  int    `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Known bool   `json:"known" yaml:"known"`
}

// EntryFor describes code. Codes outside the named set are reported with
// Known false rather than rejected.
func EntryFor(code int) Entry {
	rc := types.ResultCode(code)
	return Entry{Code: code, Name: rc.String(), Known: rc.Known()}
}

// List returns an entry for every named result code, in code order.
func List() []Entry {
	codes := types.ResultCodes()
	out := make([]Entry, 0, len(codes))
	for _, rc := range codes {
		out = append(out, EntryFor(int(rc)))
	}
	return out
}

// Lookup resolves exactly one of name or code.
func Lookup(name string, code *int) (Entry, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "" && code == nil:
		return Entry{}, types.InvalidArgs("either name or code is required")
	case name != "" && code != nil:
		return Entry{}, types.InvalidArgs("name and code are mutually exclusive")
	case code != nil:
		return EntryFor(*code), nil
	}
	rc, ok := types.ParseResultCode(name)
	if !ok {
		return Entry{}, types.InvalidArgsf("unknown result code name %q", name)
	}
	return EntryFor(int(rc)), nil
}

// Resolve resolves a command-line argument that is either a decimal code or
// a result code name.
func Resolve(arg string) (Entry, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		return Lookup("", &n)
	}
	return Lookup(arg, nil)
}
