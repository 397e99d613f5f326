// Package resolve answers cross-reference queries: does a
// clinical-resource document with a given canonical identifier or
// symbolic message name exist under the project root, which file
// defines it, and which fixed values does it declare.
package resolve
