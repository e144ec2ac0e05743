package config

// Defaults holds report preferences loaded from the configuration file.
// These apply to every run unless overridden by CLI flags.
type Defaults struct {
	// Format is the default report format: "simple", "json", or "markdown".
	// An empty value means the simple human-readable format.
	Format string `yaml:"format,omitempty"`

	// DuplicatePolicy is the default resolution for duplicate block kinds.
	// One of "first", "last", or "reject".
	DuplicatePolicy string `yaml:"duplicatePolicy,omitempty"`

	// Verbose enables metric help texts and debug logging by default.
	Verbose bool `yaml:"verbose,omitempty"`

	// Output is the default report file path.
	// An empty value means write to stdout.
	Output string `yaml:"output,omitempty"`
}

// File represents the structure of the .satlens configuration file.
type File struct {
	// Defaults contains report preferences applied to every invocation
	// unless overridden by CLI flags.
	Defaults Defaults `yaml:"defaults,omitempty"`
}
