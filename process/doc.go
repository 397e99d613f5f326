// Package process validates parsed process-definition graphs. A
// Validator walks every node of every process, applies the per-kind
// rules, resolves message names and canonical references through the
// resolve package and checks implementation classes through the
// reflection collaborator. Every outcome, passing or failing, is
// reported as a finding; validation never aborts a run.
package process
