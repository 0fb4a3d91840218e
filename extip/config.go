package extip

import (
	"fmt"
	"time"

	"github.com/R167/ipgetter/serverlist"
)

// Policy selects how many candidates a lookup tries.
type Policy int

const (
	// PolicySampled tries a random sample of MaxTries endpoints.
	PolicySampled Policy = iota
	// PolicyExhaustive tries every endpoint in random order.
	PolicyExhaustive
)

func (p Policy) String() string {
	switch p {
	case PolicySampled:
		return "sampled"
	case PolicyExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxTries = 5

	// DefaultAbandonAfter is how long a lookup waits for a fetcher to return
	// once its attempt deadline has fired.
	DefaultAbandonAfter = 5 * time.Second

	// DefaultCallTimeout bounds a whole MyIP call.
	DefaultCallTimeout = 120 * time.Second

	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:24.0) Gecko/20100101 Firefox/24.0"
)

// Config is the single configuration surface for lookups.
type Config struct {
	// ServerFile is a path to a server list. Empty means the built-in list.
	ServerFile string
	// LoadMode decides what happens when ServerFile cannot be used.
	LoadMode serverlist.Mode
	// Servers, when non-empty, is used as-is and ServerFile is ignored.
	Servers []string

	Policy   Policy
	MaxTries int // Only used with PolicySampled; clamped to the list length.

	// Timeout is the deadline for a single attempt.
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns a sampled policy of 5 tries, 30s per attempt, and the
// built-in server list with fallback loading.
func DefaultConfig() Config {
	return Config{
		LoadMode:  serverlist.ModeFallback,
		Policy:    PolicySampled,
		MaxTries:  DefaultMaxTries,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

func (c Config) Validate() error {
	switch c.Policy {
	case PolicySampled:
		if c.MaxTries < 1 {
			return fmt.Errorf("%w: max tries must be at least 1, got %d", ErrInvalidConfig, c.MaxTries)
		}
	case PolicyExhaustive:
	default:
		return fmt.Errorf("%w: unknown policy %v", ErrInvalidConfig, c.Policy)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %v", ErrInvalidConfig, c.Timeout)
	}
	switch c.LoadMode {
	case serverlist.ModeFallback, serverlist.ModeStrict:
	default:
		return fmt.Errorf("%w: unknown load mode %v", ErrInvalidConfig, c.LoadMode)
	}
	return nil
}

// tries is the maxTries value handed to Select.
func (c Config) tries() int {
	if c.Policy == PolicyExhaustive {
		return 0
	}
	return c.MaxTries
}
