package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("lst.cli")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	settings := viper.New()
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "lst",
		Short:        "Lossless Java syntax trees and a style-driven formatter",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)
			return loadSettings(settings, cmd)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more; repeat for debug output")
	rootCmd.PersistentFlags().String("style", "", "built-in style name or a .yaml/.toml style file")

	rootCmd.AddCommand(newFmtCmd(settings))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newStylesCmd(settings))
	rootCmd.AddCommand(newLSPCmd(settings))

	return rootCmd
}
