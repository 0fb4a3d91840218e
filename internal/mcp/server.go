package mcp

import (
	"context"
	"log/slog"
	"sort"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// CheckFunction runs one tool. A non-nil output alongside an error is returned
// to the client as a tool error carrying the report.
type CheckFunction func(ctx context.Context, input *ToolInput) (*ToolOutput, error)

type registration struct {
	description string
	fn          CheckFunction
}

type CheckerRegistry struct {
	checkers map[string]registration
}

func NewCheckerRegistry() *CheckerRegistry {
	return &CheckerRegistry{
		checkers: make(map[string]registration),
	}
}

func (r *CheckerRegistry) Register(name, description string, fn CheckFunction) {
	r.checkers[name] = registration{description: description, fn: fn}
}

// Names returns the registered tool names in sorted order.
func (r *CheckerRegistry) Names() []string {
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewServer builds an MCP server exposing every registered tool.
func NewServer(registry *CheckerRegistry, version string) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "ipgetter",
		Version: version,
	}, nil)

	for _, name := range registry.Names() {
		reg := registry.checkers[name]
		addChecker(server, name, reg.description, reg.fn)
	}
	return server
}

// RunServer serves the registry over stdio until ctx is done or the client
// disconnects.
func RunServer(ctx context.Context, registry *CheckerRegistry, version string) error {
	server := NewServer(registry, version)

	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		slog.Error("MCP server failed", "err", err)
		return err
	}

	return nil
}

func addChecker(server *mcpsdk.Server, name, description string, fn CheckFunction) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, input ToolInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
		return callTool(ctx, fn, input)
	})
}

func callTool(ctx context.Context, fn CheckFunction, input ToolInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
	output, err := fn(ctx, &input)
	if output == nil {
		return nil, ToolOutput{}, err
	}

	return &mcpsdk.CallToolResult{
		IsError: err != nil,
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: output.Report},
		},
	}, *output, nil
}
