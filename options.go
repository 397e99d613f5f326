package procvalidator

// Option configures a validation run.
type Option func(*Options)

// Options holds all configuration for a validation run.
type Options struct {
	// ProjectRoot anchors relative resource lookups. Empty means the
	// root is discovered by walking upward from the validated files
	// until a project marker file is found.
	ProjectRoot string

	// Generation overrides API generation detection. Empty means the
	// generation is detected from the project marker file.
	Generation Generation

	// SeedTerminology controls whether the terminology cache is
	// extended from the project's code-system folder at the start of
	// the run.
	SeedTerminology bool

	// ValidateClasses controls whether implementation class references
	// are checked through the reflection collaborator.
	ValidateClasses bool

	// BuildOutputDir is the relative directory holding the target
	// project's compiled classes, consulted by the reflection
	// collaborator.
	BuildOutputDir string
}

// DefaultOptions returns the default run configuration.
func DefaultOptions() *Options {
	return &Options{
		SeedTerminology: true,
		ValidateClasses: true,
		BuildOutputDir:  "target/classes",
	}
}

// WithProjectRoot supplies the project root explicitly instead of
// discovering it from a marker file.
func WithProjectRoot(root string) Option {
	return func(o *Options) {
		o.ProjectRoot = root
	}
}

// WithGeneration overrides API generation detection.
func WithGeneration(g Generation) Option {
	return func(o *Options) {
		o.Generation = g
	}
}

// WithTerminologySeeding controls terminology cache seeding from the
// project folder.
func WithTerminologySeeding(enable bool) Option {
	return func(o *Options) {
		o.SeedTerminology = enable
	}
}

// WithClassValidation controls implementation class checks.
func WithClassValidation(enable bool) Option {
	return func(o *Options) {
		o.ValidateClasses = enable
	}
}

// WithBuildOutputDir sets the relative build-output directory.
func WithBuildOutputDir(dir string) Option {
	return func(o *Options) {
		o.BuildOutputDir = dir
	}
}
