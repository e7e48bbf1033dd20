package config

// Config is the effective sortdir configuration
type Config struct {
	Organize  Organize  `koanf:"organize" toml:"organize" json:"organize"`
	ChangeLog ChangeLog `koanf:"changelog" toml:"changelog" json:"changelog"`
	Output    Output    `koanf:"output" toml:"output" json:"output"`
}

// Organize holds settings of the organize command
type Organize struct {
	// Workers bounds concurrent moves; 0 means one per CPU
	Workers             int    `koanf:"workers" toml:"workers" json:"workers"`
	NoExtensionDir      string `koanf:"no_extension_dir" toml:"no_extension_dir" json:"noExtensionDir"`
	LowercaseExtensions bool   `koanf:"lowercase_extensions" toml:"lowercase_extensions" json:"lowercaseExtensions"`
}

// ChangeLog holds change log parsing settings
type ChangeLog struct {
	Strict bool `koanf:"strict" toml:"strict" json:"strict"`
}

// Output holds rendering settings
type Output struct {
	Format string `koanf:"format" toml:"format" json:"format"`
}

// Keys accepted from flags and the environment
const (
	KeyWorkers             = "organize.workers"
	KeyNoExtensionDir      = "organize.no_extension_dir"
	KeyLowercaseExtensions = "organize.lowercase_extensions"
	KeyStrict              = "changelog.strict"
	KeyFormat              = "output.format"
)

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"auto", "term", "text", "json"}
