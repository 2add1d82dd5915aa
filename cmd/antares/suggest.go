package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antaresengine/antares/internal/services/authoring"
)

var suggestKinds []string

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest content IDs by name substring",
	Long: `Suggest searches entry names case-insensitively across the loaded
content and prints matching IDs, for filling ID fields in content files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadAuthoring()
		if err != nil {
			return err
		}

		kinds := make([]authoring.Kind, 0, len(suggestKinds))
		for _, k := range suggestKinds {
			kinds = append(kinds, authoring.Kind(k))
		}

		matches := svc.Suggest(args[0], kinds...)
		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%-10s %-8s %s\n", m.Kind, m.ID, m.Name)
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringSliceVar(&suggestKinds, "kind", nil, "restrict to content kinds (repeatable)")
}
