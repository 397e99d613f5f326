// Package element provides the generic document tree the resource
// validators operate on. XML documents parse into it directly; JSON
// documents are first normalized into the equivalent XML form so one
// set of path queries serves both serializations.
package element
