// Package bpmn parses process-definition documents into a typed graph
// of flow nodes. The validators consume the parsed graph; this package
// performs no validation itself.
package bpmn
