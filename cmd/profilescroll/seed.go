package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/profilescroll/internal/database"
	"github.com/jask/profilescroll/internal/database/repository"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the database and the demo profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := database.OpenMigrated(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		p, err := database.SeedDefaults(ctx, db)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if seedReset {
			if err := repository.NewScrollStateRepo(db).Clear(ctx, p.ID); err != nil {
				return fmt.Errorf("reset scroll state: %w", err)
			}
		}
		counts, err := repository.NewPostRepo(db).CountByPage(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "profile @%s in %s\n", p.Handle, cfg.Database.Path)
		for _, page := range []string{repository.PagePosts, repository.PageReplies, repository.PageMedia, repository.PageAbout} {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %d\n", page, counts[page])
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset-scroll", false, "forget the saved scroll position")
}
