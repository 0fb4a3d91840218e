package extip

import (
	"context"
	"sort"
)

// AbsentLabel is the tally key for endpoints that produced no address.
const AbsentLabel = "broken server"

// Tally holds the outcome of every endpoint queried by Audit, in list order.
type Tally struct {
	Results []Outcome
}

// Count is the number of endpoints that produced Value.
type Count struct {
	Value   string // IPv4 address, or AbsentLabel
	Present bool
	N       int
}

// Audit queries every endpoint of the server list, one after another, and
// tallies the answers. Only the fetcher's own client timeout applies. Audit
// never fails: broken endpoints show up as absent outcomes.
func (g *Getter) Audit(ctx context.Context) *Tally {
	tally := &Tally{Results: make([]Outcome, 0, len(g.servers))}
	for _, endpoint := range g.servers {
		var outcome Outcome
		if err := ctx.Err(); err != nil {
			outcome = Outcome{Err: &AttemptError{Endpoint: endpoint, Err: err}}
		} else {
			outcome = g.fetcher.Fetch(ctx, endpoint)
		}
		if outcome.Present() && !ValidIPv4(outcome.IP) {
			outcome = Outcome{Err: &AttemptError{Endpoint: endpoint, Err: ErrNoAddress}}
		}
		outcome.Endpoint = endpoint

		g.logger.Debug("audited endpoint",
			"endpoint", endpoint,
			"ip", outcome.IP,
			"err", outcome.Err)
		tally.Results = append(tally.Results, outcome)
	}

	g.metrics.SetAudit(tally.Frequencies())
	return tally
}

// Total is the number of endpoints queried.
func (t *Tally) Total() int {
	return len(t.Results)
}

// Frequencies maps each distinct value, AbsentLabel included, to the number of
// endpoints that produced it.
func (t *Tally) Frequencies() map[string]int {
	freq := make(map[string]int)
	for _, r := range t.Results {
		freq[label(r)]++
	}
	return freq
}

// Counts returns the frequencies ordered by count, highest first, then by value.
func (t *Tally) Counts() []Count {
	freq := t.Frequencies()
	counts := make([]Count, 0, len(freq))
	for value, n := range freq {
		counts = append(counts, Count{Value: value, Present: value != AbsentLabel, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Value < counts[j].Value
	})
	return counts
}

// ByEndpoint maps each endpoint to its address, "" for absent outcomes.
// Duplicate endpoints collapse to their last outcome.
func (t *Tally) ByEndpoint() map[string]string {
	m := make(map[string]string, len(t.Results))
	for _, r := range t.Results {
		m[r.Endpoint] = r.IP
	}
	return m
}

// Consistent reports whether every endpoint produced the same present address.
func (t *Tally) Consistent() bool {
	counts := t.Counts()
	return len(counts) == 1 && counts[0].Present
}

func label(o Outcome) string {
	if o.Present() {
		return o.IP
	}
	return AbsentLabel
}
