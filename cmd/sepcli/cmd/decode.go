package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sep39 "github.com/Shaptic/sep-39"
	"github.com/Shaptic/sep-39/pkg/storage/bundle"
	"github.com/Shaptic/sep-39/pkg/storage/recordstore"
)

var flagBundleIn string

var decodeCmd = &cobra.Command{
	Use:   "decode <asset-id> <output-file>",
	Short: "Reconstruct and verify a file from archived records",
	Long: "decode loads the records and manifest for an asset, reassembles them\n" +
		"in index order, and writes the payload only if its checksum matches.\n" +
		"With --bundle, records are read from a JSON bundle instead and the\n" +
		"asset ID may be omitted.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			manifest sep39.Manifest
			records  []sep39.Record
			output   string
		)

		if flagBundleIn != "" {
			if len(args) != 1 {
				return fmt.Errorf("with --bundle, pass only the output file")
			}
			b, err := bundle.Read(cmdCtx, flagBundleIn)
			if err != nil {
				return err
			}
			manifest, records, output = b.Manifest, b.Records, args[0]
		} else {
			if len(args) != 2 {
				return fmt.Errorf("pass the asset ID and the output file")
			}
			output = args[1]

			store, err := recordstore.NewStore(cmdCtx, cfg.GetArchiveDir())
			if err != nil {
				return err
			}
			defer store.Close()

			manifest, records, err = store.LoadAsset(cmdCtx, args[0])
			if err != nil {
				return err
			}
		}

		resp, err := sep39.Decode(cmdCtx, sep39.DecodeRequest{
			Records:  records,
			Manifest: manifest,
		})
		if err != nil {
			return err
		}

		if err := os.WriteFile(output, resp.Data, 0o644); err != nil {
			return err
		}

		fmt.Printf("Decoded %d bytes to '%s' (took %.2fms)\n",
			resp.Stats.OriginalSize, output, float64(resp.Stats.Elapsed.Microseconds())/1000)
		fmt.Printf("  checksum: %d (verified)\n", resp.Stats.Checksum)
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVar(&flagBundleIn, "bundle", "", "Read records and manifest from a JSON bundle")
	rootCmd.AddCommand(decodeCmd)
}
