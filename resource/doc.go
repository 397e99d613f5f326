// Package resource validates clinical-resource documents: task
// templates, terminology value-sets and code-systems, form templates
// and structural profiles. A registry dispatches each parsed document
// to the first validator whose capability predicate accepts it.
package resource
