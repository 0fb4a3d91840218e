// Package output renders human-readable reports for the CLI and the MCP server.
//
// The Output interface lets the same checker code write either to a terminal or
// into memory:
//
//   - StreamingOutput: Writes directly to io.Writer (CLI)
//   - BufferedOutput: Collects lines so a report can be returned as a value (MCP)
//   - NoOpOutput: Discards everything (tests)
//
// Usage Example:
//
//	out := output.NewStreamingOutput(os.Stdout)
//	out.Section("🌍", "External Address Discovery")
//	out.Success("External IPv4: %s", ip)
//	out.Warning("Endpoints disagree")
//
// Debug lines are only emitted after SetDebugMode(true).
//
// All implementations are safe for concurrent use.
package output
