package settings

import "sync"

type Arguments struct {
	// The directory where the entity store snapshot lives
	DataDir string

	// File to import from / export to, set by the CLI flags
	ImportFile string
	ExportFile string

	// Which record kind to export (e.g. "Recipe", "Hop")
	ExportKind string

	LogFile string

	// Strongly verbose logging
	Verbose bool

	// Enable debug mode (dumps parsed parameter bundles)
	Debug bool

	Version string
}

var (
	instance *Arguments
	once     sync.Once
)

// GetSettings returns the global settings instance
func GetSettings() *Arguments {
	once.Do(func() {
		instance = &Arguments{}
	})
	return instance
}
