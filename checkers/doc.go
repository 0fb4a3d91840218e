// Package checkers registers the operations ipgetter offers.
//
// Each checker is a self-contained module that can be invoked via a CLI flag or
// exposed as an MCP tool.
package checkers
