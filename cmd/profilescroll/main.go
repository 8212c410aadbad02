package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jask/profilescroll/internal/config"
	"github.com/jask/profilescroll/internal/database"
	"github.com/jask/profilescroll/internal/database/repository"
	"github.com/jask/profilescroll/internal/logging"
	"github.com/jask/profilescroll/internal/tui"
)

var (
	cfgFile string
	v       *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "profilescroll",
	Short: "Collapsing profile header over paged, coordinated scroll lists",
	Long: `profilescroll renders a profile with a collapsing header above a row of
tabs. Scrolling any tab's list first collapses or reveals the header, then
scrolls the list, so the whole screen behaves as one scroll surface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		v = config.New(cfgFile)
		return bindFlags(cmd, v)
	},
	RunE: runUI,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the profile view (the default command)",
	RunE:  runUI,
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	binds := map[string]string{
		"db":               "database.path",
		"log-level":        "log.level",
		"page":             "ui.initial_page",
		"handle":           "ui.profile",
		"header-height":    "header.full_height",
		"collapsed-height": "header.collapsed_height",
	}
	for flag, key := range binds {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind %s flag: %w", flag, err)
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().String("db", "", "path to the sqlite database")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error|trace)")
	rootCmd.PersistentFlags().String("page", "", "tab to open first (fuzzy matched)")
	rootCmd.PersistentFlags().String("handle", "", "profile handle to show (default: first profile)")
	rootCmd.PersistentFlags().Float64("header-height", 0, "header height in lines when expanded")
	rootCmd.PersistentFlags().Float64("collapsed-height", 0, "header lines left visible when collapsed")

	rootCmd.AddCommand(runCmd, seedCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, flush, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer flush()

	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	app := tui.New(ctx, tui.Options{
		Config: cfg,
		Handle: cfg.UI.Profile,
		Logger: log,
		Repos: tui.Repos{
			Profiles: repository.NewProfileRepo(db),
			Posts:    repository.NewPostRepo(db),
			Scroll:   repository.NewScrollStateRepo(db),
		},
	})
	logStartup(log, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func logStartup(log logr.Logger, cfg config.Config) {
	log.Info("starting",
		"db", cfg.Database.Path,
		"fullHeight", cfg.Header.FullHeight,
		"collapsedHeight", cfg.Header.CollapsedHeight,
		"overscroll", cfg.Scroll.Overscroll)
}
