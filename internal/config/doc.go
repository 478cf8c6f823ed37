// Package config provides user configuration management for lunitool.
//
// This package manages a YAML-based configuration file that stores the last
// used language, keyboard layout and theme together with logging preferences.
// The configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/lunitool/config.yaml or $HOME/.config/lunitool/config.yaml
//   - macOS: $HOME/.config/lunitool/config.yaml
//   - Windows: %LOCALAPPDATA%\lunitool\config.yaml
//
// # Usage Example
//
//	store, err := config.DefaultStore("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := store.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.Language = "en"
//	if err := store.Save(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Filesystem Access
//
// A Store works on an afero.Fs so tests can use an in-memory filesystem.
// Writes go to a temporary file that is renamed over the target, and are
// serialized by a mutex.
package config
