package procvalidator

// Generation identifies the process-engine API generation a plugin
// project is built against. Some checks only apply to the current
// generation.
type Generation string

// Supported API generations.
const (
	// Gen1 is the legacy API generation.
	Gen1 Generation = "v1"
	// Gen2 is the current API generation.
	Gen2 Generation = "v2"
)

// String returns the generation string.
func (g Generation) String() string {
	return string(g)
}

// IsValid returns true if this is a supported generation.
func (g Generation) IsValid() bool {
	switch g {
	case Gen1, Gen2:
		return true
	default:
		return false
	}
}

// IsCurrent returns true for the current generation. Checks that only
// make sense under the current API (capability interfaces, message-name
// resolution against templates) are suppressed for older generations.
func (g Generation) IsCurrent() bool {
	return g == Gen2
}
