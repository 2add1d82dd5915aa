package main

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/antaresengine/antares/internal/config"
	"github.com/antaresengine/antares/internal/domain/content"
	"github.com/antaresengine/antares/internal/repositories/campaigns"
	"github.com/antaresengine/antares/internal/services/authoring"
)

var packageDraft bool

var packageCmd = &cobra.Command{
	Use:   "package <campaign-dir>",
	Short: "Package a campaign snapshot into the document store",
	Long: `Package loads a campaign, validates it, and stores a snapshot in
Redis. Published snapshots must validate cleanly; pass --draft to stash
work in progress (drafts expire).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := content.LoadCampaign(cfg.Content.BaseDataPath, args[0])
		if err != nil {
			return err
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = client.Close() }()

		svc := authoring.NewService(&authoring.ServiceConfig{
			Content:   db,
			Documents: campaigns.NewRedis(client),
		})

		doc, err := svc.PackageCampaign(cmd.Context(), packageDraft)
		if err != nil {
			return err
		}

		fmt.Printf("packaged %s %s as %s\n", doc.CampaignID, doc.Version, doc.ID)
		return nil
	},
}

func init() {
	packageCmd.Flags().BoolVar(&packageDraft, "draft", false, "store as an expiring draft snapshot")
}
