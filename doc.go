// Package procvalidator validates care-process plugin projects before
// deployment: BPMN process definitions with vendor extension blocks and
// the clinical-resource documents (task templates, value-sets,
// code-systems, form templates, structural profiles) they reference.
//
// # Quick Start
//
//	import (
//	    pv "github.com/careproc/validator"
//	    "github.com/careproc/validator/engine"
//	)
//
//	runner := engine.New(pv.WithProjectRoot("/path/to/plugin"))
//	res, err := runner.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Report.HasErrors() {
//	    for _, f := range res.Report.Others() {
//	        fmt.Println(f)
//	    }
//	}
//
// # Architecture
//
//   - One validator per process-node kind and per clinical-resource
//     kind; each is a pure function from document to findings
//   - A registry dispatches each resource document to the first
//     validator whose capability predicate accepts it
//   - A concurrency-safe terminology cache answers controlled-vocabulary
//     lookups, seeded from the project's code-system folder
//   - A reference resolver correlates symbolic message names and
//     canonical identifiers with the resource files that define them
//   - Findings accumulate into one severity-ranked, append-only report
//
// Failures of individual files never abort a run; they surface as
// findings and the run continues with the remaining files.
package procvalidator
