package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".casefile.yml"

// Config is the top-level casefile configuration, corresponding to .casefile.yml.
type Config struct {
	SiteName        string   `yaml:"site_name" koanf:"site_name"`
	ContentDir      string   `yaml:"content_dir" koanf:"content_dir"`
	ContentInclude  []string `yaml:"content_include" koanf:"content_include"`
	AssetDir        string   `yaml:"asset_dir" koanf:"asset_dir"`
	OutputDir       string   `yaml:"output_dir" koanf:"output_dir"`
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LiveSearch      bool     `yaml:"live_search" koanf:"live_search"`
	MaxQueryLength  int      `yaml:"max_query_length" koanf:"max_query_length"`
	HighlightClass  string   `yaml:"highlight_class" koanf:"highlight_class"`
}
