package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/config"
	"github.com/abhisek/lessonbook/internal/logging"
	"github.com/abhisek/lessonbook/internal/source"
	"github.com/abhisek/lessonbook/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lessonbook [lesson-location]",
	Short: "Terminal viewer for robotics lesson books",
	Long: `Lessonbook renders a lesson_data.json lesson with its shared library as an
interactive page: build guides with discovered step images, learn cards,
animated mission demos and the mission report that unlocks the home mission.

The lesson location is a lesson directory, its lesson_data.json, or an
http(s) URL. It defaults to the current directory.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runViewer,
}

// ExecuteContext runs the command line with ctx as every command's context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/lessonbook/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides LESSONBOOK_DB)")
	pf.String("library", "", "Library path relative to the lesson (default ../master_library/)")
	pf.String("log-file", "", "Log file (default $XDG_STATE_HOME/lessonbook/lessonbook.log)")
	pf.BoolP("verbose", "v", false, "Debug logging")
	pf.Int("probe-max", 0, "Step images probed per build part")
	pf.Int("probe-concurrency", 0, "Concurrent step probes (0 = unbounded)")

	rootCmd.Flags().Bool("sound", false, "Start with sound on")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies the
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Origin = args[0]
	}
	if flags.Changed("library") {
		cfg.LibraryPath, _ = flags.GetString("library")
	}
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("log-file") {
		cfg.Log.Path, _ = flags.GetString("log-file")
	}
	if v, _ := flags.GetBool("verbose"); v {
		cfg.Log.Level = "debug"
	}
	if flags.Changed("probe-max") {
		cfg.Probe.Max, _ = flags.GetInt("probe-max")
	}
	if flags.Changed("probe-concurrency") {
		cfg.Probe.Concurrency, _ = flags.GetInt("probe-concurrency")
	}
	if flags.Changed("sound") {
		sound, _ := flags.GetBool("sound")
		cfg.Muted = !sound
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the file logger. The terminal belongs to the viewer, so
// nothing is logged to stdout or stderr.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.Log.Path
	if path == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return logging.New(cfg.Log.Level, path)
}

// openStore opens the telemetry database.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openOrigin opens the configured lesson location. For a directory
// origin, absolute filesystem lesson and library paths are rewritten
// relative to it since a leading "/" means the origin root.
func openOrigin(cfg *config.Config) (source.Origin, error) {
	location := cfg.Origin
	if location == "" {
		location = "."
	}
	origin, err := source.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open lesson: %w", err)
	}
	if dir, ok := origin.(*source.Dir); ok {
		if cfg.LessonPath, err = dir.Rel(cfg.LessonPath); err != nil {
			return nil, err
		}
		if cfg.LibraryPath, err = dir.Rel(cfg.LibraryPath); err != nil {
			return nil, err
		}
	}
	return origin, nil
}

// loadBundle fetches and validates the lesson.
func loadBundle(cmd *cobra.Command, cfg *config.Config, origin source.Origin, logger *zap.Logger) (*source.Bundle, error) {
	loader := &source.Loader{
		Origin:      origin,
		LessonPath:  cfg.LessonPath,
		LibraryPath: cfg.LibraryPath,
		Logger:      logger,
	}
	return loader.Load(cmd.Context())
}
