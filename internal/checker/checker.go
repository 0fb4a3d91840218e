package checker

import (
	"context"

	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/output"
)

// Checker is one user-facing operation of the tool. The CLI selects checkers
// with flags; the MCP server exposes each one as a tool.
type Checker interface {
	Name() string
	Description() string
	Icon() string
	// Flag is the command-line flag that selects the checker, "" for the default.
	Flag() string
	Run(ctx context.Context, getter *extip.Getter, out output.Output) (*Report, error)
	MCPToolDefinition() *MCPTool
}

type MCPTool struct {
	Name        string
	Description string
}

// Report is the structured result of a checker run.
type Report struct {
	IP        string            `json:"ip,omitempty"`
	Endpoint  string            `json:"endpoint,omitempty"`
	Attempts  int               `json:"attempts,omitempty"`
	Servers   int               `json:"servers,omitempty"`
	Counts    map[string]int    `json:"counts,omitempty"`
	Endpoints map[string]string `json:"endpoints,omitempty"` // Address per endpoint, "" when it failed
	Summary   string            `json:"summary"`
}
