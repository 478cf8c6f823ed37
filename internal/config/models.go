package config

// CurrentVersion is the only schema version this build reads and writes.
const CurrentVersion = 1

// Default values written for a fresh configuration.
const (
	DefaultLanguage = "de"
	DefaultKeyboard = "de"
	DefaultTheme    = "Terminal Spirit"
	DefaultLogLevel = "info"
)

// Config represents the entire user configuration file.
type Config struct {
	Version   int      `yaml:"version"`
	Language  string   `yaml:"current_lang"`        // Language code ("de", "en")
	Keyboard  string   `yaml:"keyboard"`            // Last applied keyboard layout
	DebugMode bool     `yaml:"debug_mode"`          // Forces debug level logging
	LogFile   string   `yaml:"log_file,omitempty"`  // Overrides the default log file location
	LogLevel  string   `yaml:"log_level,omitempty"` // debug, info, warn, error
	UI        UIConfig `yaml:"ui"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	Theme    string `yaml:"theme"`     // Palette name, "default" allowed
	AutoSize bool   `yaml:"auto_size"` // Follow terminal resizes
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version:  CurrentVersion,
		Language: DefaultLanguage,
		Keyboard: DefaultKeyboard,
		LogLevel: DefaultLogLevel,
		UI: UIConfig{
			Theme:    DefaultTheme,
			AutoSize: true,
		},
	}
}

// applyDefaults fills empty fields of a loaded configuration.
func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Keyboard == "" {
		c.Keyboard = DefaultKeyboard
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.UI.Theme == "" {
		c.UI.Theme = DefaultTheme
	}
}

// KeyboardOrder returns the keyboard candidates for a language, native
// layout first.
func KeyboardOrder(language string) []string {
	if language == "en" {
		return []string{"us", "de"}
	}
	return []string{"de", "us"}
}
