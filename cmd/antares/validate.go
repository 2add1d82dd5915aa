package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/antaresengine/antares/internal/config"
	"github.com/antaresengine/antares/internal/domain/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [campaign-dir ...]",
	Short: "Validate content cross-references",
	Long: `Validate loads the core content and every named campaign directory,
then reports dangling references: unknown races, classes, items, monsters,
maps, broken dialogue graphs, and malformed quest stages. With no arguments
it validates the directories from the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dirs := args
		if len(dirs) == 0 && cfg.Content.CampaignPath != "" {
			dirs = []string{cfg.Content.CampaignPath}
		}

		if len(dirs) == 0 {
			db, err := content.LoadCore(cfg.Content.BaseDataPath)
			if err != nil {
				return err
			}
			return printReport("core", db)
		}

		// Each campaign merges onto its own copy of the core data, so the
		// loads are independent and can fan out.
		var mu sync.Mutex
		results := make(map[string]*content.ContentDatabase, len(dirs))

		var g errgroup.Group
		for _, dir := range dirs {
			dir := dir
			g.Go(func() error {
				db, err := content.LoadCampaign(cfg.Content.BaseDataPath, dir)
				if err != nil {
					return fmt.Errorf("campaign %s: %w", dir, err)
				}
				mu.Lock()
				results[dir] = db
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		failed := false
		for _, dir := range dirs {
			if err := printReport(dir, results[dir]); err != nil {
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func printReport(label string, db *content.ContentDatabase) error {
	stats := db.Stats()
	slog.Info("content loaded",
		"source", label,
		"items", stats.ItemCount,
		"monsters", stats.MonsterCount,
		"quests", stats.QuestCount,
		"dialogues", stats.DialogueCount,
		"characters", stats.CharacterCount,
		"creatures", stats.CreatureCount,
	)

	report := db.Validate()
	if report.IsEmpty() {
		fmt.Printf("%s: OK\n", label)
		return nil
	}

	fmt.Printf("%s: %d issues\n", label, report.Len())
	for _, issue := range report.CharacterIssues {
		fmt.Printf("  %s\n", issue)
	}
	for _, issue := range report.QuestIssues {
		fmt.Printf("  %s\n", issue)
	}
	for _, issue := range report.DialogueIssues {
		fmt.Printf("  %s\n", issue)
	}
	return fmt.Errorf("%d issues", report.Len())
}
