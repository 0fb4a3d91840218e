package mcp

// ToolInput carries optional per-call overrides of the CLI configuration.
type ToolInput struct {
	Endpoints      []string `json:"endpoints,omitempty" jsonschema:"endpoint URLs to query instead of the configured server list"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty" jsonschema:"per-attempt timeout in seconds"`
	MaxTries       int      `json:"max_tries,omitempty" jsonschema:"number of endpoints to try before giving up"`
	Exhaustive     bool     `json:"exhaustive,omitempty" jsonschema:"try every endpoint in random order"`
}

type ToolOutput struct {
	IP        string            `json:"ip,omitempty"`
	Endpoint  string            `json:"endpoint,omitempty"`
	Attempts  int               `json:"attempts,omitempty"`
	Servers   int               `json:"servers,omitempty"`
	Counts    map[string]int    `json:"counts,omitempty"`
	Endpoints map[string]string `json:"endpoints,omitempty"` // Address per endpoint, "" when it failed
	Summary   string            `json:"summary"`
	Report    string            `json:"report"`
}
