package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/profilescroll/internal/config"
	"github.com/jask/profilescroll/internal/nested"
)

var configWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration, optionally writing it to disk",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadFrom(v)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "header.full_height      = %g\n", cfg.Header.FullHeight)
		fmt.Fprintf(out, "header.collapsed_height = %g\n", cfg.Header.CollapsedHeight)
		fmt.Fprintf(out, "scroll.overscroll       = %g\n", cfg.Scroll.Overscroll)
		fmt.Fprintf(out, "scroll.settle_ms        = %d\n", cfg.Scroll.SettleMS)
		fmt.Fprintf(out, "scroll.wheel_step       = %g\n", cfg.Scroll.WheelStep)
		fmt.Fprintf(out, "database.path           = %s\n", cfg.Database.Path)
		fmt.Fprintf(out, "log.path                = %s\n", cfg.Log.Path)
		fmt.Fprintf(out, "log.level               = %s\n", cfg.Log.Level)

		g := nested.Geometry{Full: cfg.Header.FullHeight, Collapsed: cfg.Header.CollapsedHeight}
		if err := g.Validate(); errors.Is(err, nested.ErrNegativeCollapseRange) {
			fmt.Fprintf(out, "warning: %v; the header will not collapse\n", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if configWrite {
			path := cfgFile
			if path == "" {
				path = config.Path()
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configWrite, "write", false, "write the effective configuration to the config file")
}
