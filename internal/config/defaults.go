package config

// DefaultContentInclude selects page files inside content_dir.
var DefaultContentInclude = []string{"**/*.yaml", "**/*.yml"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentInclude: append([]string(nil), DefaultContentInclude...),
		OutputDir:      "dist",
		Port:           8080,
		LiveSearch:     true,
		MaxQueryLength: 256,
		HighlightClass: "hl",
	}
}
