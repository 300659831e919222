package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shaptic/sep-39/pkg/storage/recordstore"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived assets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.NewStore(cmdCtx, cfg.GetArchiveDir())
		if err != nil {
			return err
		}
		defer store.Close()

		assets, err := store.ListAssets(cmdCtx)
		if err != nil {
			return err
		}
		if len(assets) == 0 {
			fmt.Println("archive is empty")
			return nil
		}

		for _, asset := range assets {
			fmt.Printf("%s  size=%d records=%d checksum=%d created=%s\n",
				asset.ID, asset.Manifest.Size, asset.Manifest.Records,
				asset.Manifest.Checksum, asset.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
