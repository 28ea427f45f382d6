package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/go-zippack/pkg/zippack"
)

func newUnzipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unzip [archive] [dest]",
		Short: "Extract a ZIP archive into a directory",
		Long: `Extract every entry of a ZIP archive into the destination directory,
creating the destination and any missing intermediate directories.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			archivePath := args[0]
			destDir := args[1]

			opts := commandOptions()
			extractor := zippack.NewExtractor(opts).WithLogger(commandLogger())
			if err := extractor.ExtractFile(archivePath, destDir); err != nil {
				return err
			}

			if !viper.GetBool("quiet") {
				fmt.Printf("\nextracted to %s\n", destDir)
			}
			return nil
		},
	}

	return cmd
}
