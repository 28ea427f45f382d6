package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/go-zippack/pkg/zippack"
)

func newZipCommand() *cobra.Command {
	var noBaseFolder bool

	cmd := &cobra.Command{
		Use:   "zip [archive] [path]...",
		Short: "Pack files and folders into a ZIP archive",
		Long: `Pack one or more files and folders into a single ZIP archive.
With a single folder input, --no-base-folder packs the folder's contents
without the folder's own name as a prefix.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			archivePath := args[0]
			inputs := args[1:]

			opts := commandOptions().WithBaseFolderName(!noBaseFolder)
			packer := zippack.NewPacker(opts).WithLogger(commandLogger())
			if err := packer.PackFile(archivePath, inputs...); err != nil {
				return err
			}

			if !viper.GetBool("quiet") {
				fmt.Printf("\n%s written\n", archivePath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBaseFolder, "no-base-folder", false, "do not include a single input folder's name in entry paths")

	return cmd
}

// commandOptions builds library options from the resolved CLI configuration.
func commandOptions() zippack.Options {
	opts := zippack.DefaultOptions().WithBufferSize(viper.GetInt("buffer-size"))
	if !viper.GetBool("quiet") {
		opts = opts.WithProgress(printProgress)
	}
	return opts
}

// commandLogger maps the -v count onto a console logger.
func commandLogger() zerolog.Logger {
	verbose, _ := rootCmd.PersistentFlags().GetCount("verbose")
	var level zerolog.Level
	switch verbose {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	default:
		level = zerolog.DebugLevel
	}
	return zippack.NewLogger(os.Stderr, level)
}

// printProgress renders one progress line per processed entry.
func printProgress(percentage float64, label string) {
	fmt.Printf("\r%6.2f%%  %s\x1b[K", percentage, label)
}
