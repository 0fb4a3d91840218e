package checkers

import (
	"github.com/R167/ipgetter/checkers/consistency"
	"github.com/R167/ipgetter/checkers/external"
	"github.com/R167/ipgetter/internal/checker"
)

func AllCheckers() []checker.Checker {
	return []checker.Checker{
		external.NewExternalChecker(),
		consistency.NewConsistencyChecker(),
	}
}

func GetChecker(name string) checker.Checker {
	for _, c := range AllCheckers() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// GetCheckerByTool finds the checker exposed under an MCP tool name.
func GetCheckerByTool(tool string) checker.Checker {
	for _, c := range AllCheckers() {
		if def := c.MCPToolDefinition(); def != nil && def.Name == tool {
			return c
		}
	}
	return nil
}
