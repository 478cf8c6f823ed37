package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/lunitool/lunitool/internal/config"
	"github.com/lunitool/lunitool/internal/disk"
	"github.com/lunitool/lunitool/internal/keyboard"
	"github.com/lunitool/lunitool/internal/lang"
	"github.com/lunitool/lunitool/internal/logging"
	"github.com/lunitool/lunitool/internal/sysinfo"
	"github.com/lunitool/lunitool/internal/theme"
	"github.com/lunitool/lunitool/internal/ui"
	"github.com/lunitool/lunitool/internal/version"
	"github.com/lunitool/lunitool/internal/wizard"
	"github.com/lunitool/lunitool/internal/wizard/tui"
)

var disksYAML bool

func init() {
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(disksCmd)
	rootCmd.AddCommand(sysinfoCmd)
	rootCmd.AddCommand(configCmd)

	disksCmd.Flags().BoolVar(&disksYAML, "yaml", false, "Print the raw snapshot as YAML")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
}

// loadConfig opens the store and reads the file, applying the per-run flags.
func loadConfig() (*config.Store, *config.Config, error) {
	store, err := config.DefaultStore(configPath)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return store, nil, fmt.Errorf("failed to load config %s: %w", store.Path(), err)
	}

	if langFlag != "" {
		cfg.Language = langFlag
	}
	if themeFlag != "" {
		cfg.UI.Theme = themeFlag
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	return store, cfg, nil
}

// effectiveLogLevel applies flag, debug mode, environment and file in that
// order.
func effectiveLogLevel(cfg *config.Config) string {
	switch {
	case logLevel != "":
		return logLevel
	case cfg.DebugMode:
		return "debug"
	case os.Getenv(logging.LogLevelEnvVar) != "":
		return ""
	default:
		return cfg.LogLevel
	}
}

func themeIndex(registry *theme.Registry, name string) (int, bool) {
	if i, ok := registry.IndexOf(name); ok {
		return i, true
	}
	return registry.DefaultIndex(), false
}

// newPrinter returns a printer colored with the configured theme. A broken
// config file falls back to the default theme.
func newPrinter(cmd *cobra.Command) *ui.Printer {
	registry := theme.NewRegistry()
	name := themeFlag
	if name == "" {
		if _, cfg, err := loadConfig(); err == nil {
			name = cfg.UI.Theme
		}
	}
	idx, _ := themeIndex(registry, name)
	return ui.NewPrinter(cmd.OutOrStdout(), ui.ColorsFromPalette(registry.Palette(idx)))
}

func runShell(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return fmt.Errorf("lunitool needs an interactive terminal")
	}

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logBuffer := logging.NewBuffer(logging.DefaultBufferLines)
	if err := logging.Initialize(logging.Options{
		Level:  effectiveLogLevel(cfg),
		File:   cfg.LogFile,
		Buffer: logBuffer,
	}); err != nil {
		return err
	}
	defer logging.Sync()
	logger := logging.GetLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info("Starting lunitool",
		zap.String("version", version.Full()),
		zap.String("user", os.Getenv("USER")),
		zap.String("config", store.Path()),
		zap.String("log_file", logging.FilePath()))
	if !sysinfo.IsRoot() {
		logger.Warn("Not running as root, system changes will fail")
	}

	info, err := sysinfo.NewCollector().Collect(ctx)
	if err != nil {
		logger.Warn("Some system facts are unavailable", zap.Error(err))
	}
	logger.Info("System facts",
		zap.String("os", info.OS),
		zap.String("kernel", info.Kernel),
		zap.String("arch", info.Architecture),
		zap.Int("cpus", info.CPUCount),
		zap.Uint64("memory_total", info.MemoryTotal),
		zap.Bool("live", info.Live),
		zap.String("package_manager", info.PackageManager))

	catalog, err := lang.New(cfg.Language)
	if err != nil {
		logger.Warn("Configured language unavailable, using default",
			zap.String("language", cfg.Language), zap.Error(err))
		catalog = lang.Default()
	}

	registry := theme.NewRegistry()
	idx, ok := themeIndex(registry, cfg.UI.Theme)
	if !ok {
		logger.Warn("Unknown theme, using default", zap.String("theme", cfg.UI.Theme))
	}

	machine := wizard.NewMachine(wizard.Options{
		Localizer:      catalog,
		Keyboard:       keyboard.NewSystemApplier(logger),
		Disks:          disk.NewSampleProvider(),
		Themes:         registry,
		ThemeIndex:     idx,
		KeyboardLayout: cfg.Keyboard,
		System:         info,
		Logger:         logger,
	})

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 0, 0
	}

	model := tui.NewAppModel(tui.Options{
		Machine: machine,
		Themes:  registry,
		Logs:    logBuffer,
		Logger:  logger,
		Context: ctx,
		Width:   width,
		Height:  height,
	})

	start := shellChoices{
		Language: catalog.Language(),
		Keyboard: cfg.Keyboard,
		Theme:    registry.Palette(idx).Name,
	}

	final, runErr := tui.Run(ctx, model)

	st := final.Machine().State()
	end := shellChoices{
		Language: final.Machine().Language(),
		Keyboard: st.Keyboard,
		Theme:    registry.Palette(st.ThemeIndex).Name,
	}
	saved, err := saveShellChoices(store, start, end)
	if err != nil {
		logger.Error("Failed to save configuration", zap.Error(err))
		if runErr == nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
	} else if saved {
		logger.Info("Configuration saved", zap.String("path", store.Path()))
	}

	if runErr != nil {
		logger.Error("Shell terminated with error", zap.Error(runErr))
		return fmt.Errorf("shell error: %w", runErr)
	}
	logger.Info("Shell exited")
	return nil
}

// shellChoices are the settings a user can change inside the shell.
type shellChoices struct {
	Language string
	Keyboard string
	Theme    string
}

// saveShellChoices writes the choices that differ between start and end into
// the stored file. Values that only came from command line flags and were not
// changed in the shell are left out. It reports whether the file was written.
func saveShellChoices(store *config.Store, start, end shellChoices) (bool, error) {
	if end == start {
		return false, nil
	}

	cfg, err := store.Load()
	if err != nil {
		return false, err
	}
	if end.Language != "" && end.Language != start.Language {
		cfg.Language = end.Language
	}
	if end.Keyboard != "" && end.Keyboard != start.Keyboard {
		cfg.Keyboard = end.Keyboard
	}
	if end.Theme != "" && end.Theme != start.Theme {
		cfg.UI.Theme = end.Theme
	}
	if err := store.Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// themesCmd lists the built-in palettes
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List the built-in color themes in the order the theme selector shows them.

The default theme and the one selected in the configuration file are marked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := theme.NewRegistry()
		configured := -1
		if _, cfg, err := loadConfig(); err == nil {
			if i, ok := registry.IndexOf(cfg.UI.Theme); ok {
				configured = i
			}
		}

		p := newPrinter(cmd)
		p.PrintHeader(ui.Header{Title: "Themes", Command: "lunitool themes"})

		items := make([]ui.ListItem, 0, registry.Count())
		for i, name := range registry.Names() {
			text := name
			if i == registry.DefaultIndex() {
				text += " (default)"
			}
			if i == configured {
				text += " (configured)"
			}
			items = append(items, ui.ListItem{Text: text, Dim: i != configured})
		}
		p.PrintList(items)
		return nil
	},
}

// disksCmd prints the disk topology the installer offers
var disksCmd = &cobra.Command{
	Use:   "disks",
	Short: "Show the disk snapshot",
	Long: `Print the flattened disk topology exactly as the installation wizard lists it.

Rows that cannot be chosen as an installation target are dimmed.`,
	Example: `  # Show the display list
  lunitool disks

  # Dump the raw snapshot
  lunitool disks --yaml`,
	RunE: runDisks,
}

func runDisks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	info, err := disk.NewSampleProvider().Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read disk snapshot: %w", err)
	}

	if disksYAML {
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	p := newPrinter(cmd)
	p.PrintHeader(ui.Header{
		Title:   "Disk snapshot",
		Command: "lunitool disks",
		Params: []ui.Field{
			{Key: "Source", Value: "sample"},
			{Key: "Disks", Value: strconv.Itoa(len(info.Disks))},
			{Key: "Volume groups", Value: strconv.Itoa(len(info.LvmVolumeGroups))},
		},
	})

	if info.IsEmpty() {
		p.Println("No disks found.")
		return nil
	}

	rows := disk.BuildDisplayList(info)
	items := make([]ui.ListItem, len(rows))
	for i, row := range rows {
		items[i] = ui.ListItem{Text: row.DisplayText, Dim: !row.Selectable}
	}
	p.PrintList(items)
	return nil
}

// sysinfoCmd prints the facts shown on the welcome step
var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show collected system facts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		info, err := sysinfo.NewCollector().Collect(ctx)
		fields := []ui.Field{
			{Key: "Operating system", Value: info.OS},
			{Key: "Kernel", Value: info.Kernel},
			{Key: "Architecture", Value: info.Architecture},
			{Key: "CPUs", Value: strconv.Itoa(info.CPUCount)},
			{Key: "Memory", Value: fmt.Sprintf("%s free of %s", disk.FormatSize(info.MemoryFree), disk.FormatSize(info.MemoryTotal))},
			{Key: "Free on /", Value: fmt.Sprintf("%s of %s", disk.FormatSize(info.RootFree), disk.FormatSize(info.RootTotal))},
			{Key: "Live environment", Value: strconv.FormatBool(info.Live)},
			{Key: "Package manager", Value: info.PackageManager},
			{Key: "Root", Value: strconv.FormatBool(sysinfo.IsRoot())},
		}

		p := newPrinter(cmd)
		if err != nil {
			fields = append(fields, ui.Field{Key: "Errors", Value: err.Error()})
			p.PrintWarning("Some system facts are unavailable", fields)
			return nil
		}
		p.PrintSuccess("System facts collected", fields)
		return nil
	},
}

// configCmd groups configuration file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or reset the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.DefaultStore(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Path())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the configuration file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.DefaultStore(configPath)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if _, err := store.Reset(); err != nil {
			p.PrintError("Reset configuration", err, []string{
				"Check that the configuration directory is writable",
				"Use --config to choose another file",
			})
			return err
		}
		p.PrintSuccess("Configuration reset", []ui.Field{{Key: "Path", Value: store.Path()}})
		return nil
	},
}
