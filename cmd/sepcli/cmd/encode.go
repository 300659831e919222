package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sep39 "github.com/Shaptic/sep-39"
	"github.com/Shaptic/sep-39/pkg/crypto"
	"github.com/Shaptic/sep-39/pkg/logtrace"
	"github.com/Shaptic/sep-39/pkg/storage/bundle"
	"github.com/Shaptic/sep-39/pkg/storage/recordstore"
)

var (
	flagNamespace string
	flagBundleOut string
)

var encodeCmd = &cobra.Command{
	Use:   "encode <file>",
	Short: "Encode a file into ledger records and archive them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return err
		}

		// Content-derived namespaces keep distinct files from
		// colliding under one account, and double as archive IDs.
		assetID := crypto.ContentID(data)
		namespace := flagNamespace
		if namespace == "" {
			namespace = assetID
		}

		fmt.Printf("Encoding file '%s' ...\n", filename)
		resp, err := sep39.Encode(cmdCtx, sep39.EncodeRequest{
			Data:        data,
			Namespace:   namespace,
			MaxKeyLen:   cfg.MaxKeyLen,
			MaxValueLen: cfg.MaxValueLen,
		})
		if err != nil {
			return err
		}
		fmt.Printf("  done (took %.2fms)\n", float64(resp.Stats.Elapsed.Microseconds())/1000)

		store, err := recordstore.NewStore(cmdCtx, cfg.GetArchiveDir())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveAsset(cmdCtx, assetID, resp.Manifest, resp.Records); err != nil {
			return err
		}

		if flagBundleOut != "" {
			if err := bundle.Write(cmdCtx, flagBundleOut, resp.Manifest, resp.Records); err != nil {
				return err
			}
		}

		logtrace.Debug(cmdCtx, "encode finished", logtrace.Fields{
			logtrace.FieldModule:  logtrace.ValueCLI,
			logtrace.FieldAssetID: assetID,
		})

		fmt.Printf("  asset:    %s\n", assetID)
		fmt.Printf("  checksum: %d\n", resp.Stats.Checksum)
		fmt.Println("  stats:")
		fmt.Printf("   - original size: %d\n", resp.Stats.OriginalSize)
		fmt.Printf("   - records:       %d\n", resp.Stats.Records)
		fmt.Printf("   - encoded size:  %d\n", resp.Stats.EncodedSize)
		fmt.Printf("   - record bytes:  %d\n", resp.Stats.TotalRecordBytes)
		fmt.Printf("   - ratio:         %.2fx\n", resp.Stats.Ratio)
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&flagNamespace, "namespace", "", "Record key namespace (default: content-derived)")
	encodeCmd.Flags().StringVar(&flagBundleOut, "bundle", "", "Also write records and manifest to a JSON bundle")
	rootCmd.AddCommand(encodeCmd)
}
