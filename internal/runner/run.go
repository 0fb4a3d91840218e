package runner

import (
	"github.com/R167/ipgetter/internal/checker"
)

// Run builds a Getter for rc and runs c against it. Configuration errors are
// returned with a nil report.
func Run(rc *RunContext, c checker.Checker) (*checker.Report, error) {
	getter, err := rc.Getter()
	if err != nil {
		return nil, err
	}
	return c.Run(rc.Ctx, getter, rc.Output)
}
