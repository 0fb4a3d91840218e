// Package runner wires a checker to a configured extip.Getter.
//
// The CLI and the MCP server both describe a run with a RunContext: the
// lookup configuration, Getter options such as a fixed seed or a metrics
// registerer, and the output sink the checker writes its report to.
//
//	rc := runner.NewRunContext(ctx, cfg).
//	    WithOutput(output.NewStreamingOutput(os.Stdout)).
//	    WithRegisterer(prometheus.NewRegistry())
//
//	report, err := runner.Run(rc, consistency.NewConsistencyChecker())
package runner
