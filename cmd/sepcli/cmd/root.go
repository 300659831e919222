package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Shaptic/sep-39/config"
	"github.com/Shaptic/sep-39/pkg/logtrace"
)

var (
	flagConfig  string
	flagArchive string

	cfg    *config.Config
	cmdCtx context.Context
)

var rootCmd = &cobra.Command{
	Use:           "sepcli",
	Short:         "Encode files into bounded ledger data records and back",
	Long:          "sepcli turns a binary file into a sequence of 64/64 key-value records\nsuitable for a ledger's data-entry operation, and reconstructs verified\nfiles from archived records.",
	SilenceUsage:  true,
	SilenceErrors: false,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logtrace.Setup("sepcli")
		cmdCtx = logtrace.CtxWithCorrelationID(context.Background(), uuid.NewString())

		baseDir, err := os.Getwd()
		if err != nil {
			return err
		}

		if flagConfig != "" {
			cfg, err = config.LoadConfig(flagConfig, baseDir)
			if err != nil {
				return err
			}
		} else {
			cfg = config.DefaultConfig()
			cfg.BaseDir = baseDir
		}
		if flagArchive != "" {
			cfg.ArchiveConfig.DataDir = flagArchive
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagArchive, "archive", "", "Path to the record archive directory")
}
