package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antaresengine/antares/internal/config"
	"github.com/antaresengine/antares/internal/domain/content"
	"github.com/antaresengine/antares/internal/repositories/campaigns"
	"github.com/antaresengine/antares/internal/services/authoring"
)

// loadAuthoring loads content per the environment and wraps it in an
// authoring service. Browse and suggest never touch the snapshot store,
// so they get an in-memory one.
func loadAuthoring() (authoring.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var db *content.ContentDatabase
	if cfg.Content.CampaignPath != "" {
		db, err = content.LoadCampaign(cfg.Content.BaseDataPath, cfg.Content.CampaignPath)
	} else {
		db, err = content.LoadCore(cfg.Content.BaseDataPath)
	}
	if err != nil {
		return nil, err
	}

	return authoring.NewService(&authoring.ServiceConfig{
		Content:   db,
		Documents: campaigns.NewInMemoryRepository(),
	}), nil
}

var browseCmd = &cobra.Command{
	Use:   "browse [kind]",
	Short: "List content entries of one kind",
	Long: `Browse lists every entry of a content kind (race, class, item, spell,
monster, map, quest, dialogue, character, creature), sorted by name.
Without a kind it lists entity counts for every kind.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadAuthoring()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			stats := svc.Stats()
			fmt.Printf("races      %d\n", stats.RaceCount)
			fmt.Printf("classes    %d\n", stats.ClassCount)
			fmt.Printf("items      %d\n", stats.ItemCount)
			fmt.Printf("spells     %d\n", stats.SpellCount)
			fmt.Printf("monsters   %d\n", stats.MonsterCount)
			fmt.Printf("maps       %d\n", stats.MapCount)
			fmt.Printf("quests     %d\n", stats.QuestCount)
			fmt.Printf("dialogues  %d\n", stats.DialogueCount)
			fmt.Printf("characters %d\n", stats.CharacterCount)
			fmt.Printf("creatures  %d\n", stats.CreatureCount)
			return nil
		}

		entries, err := svc.Browse(authoring.Kind(args[0]))
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Printf("%-8s %s\n", entry.ID, entry.Name)
		}
		return nil
	},
}
