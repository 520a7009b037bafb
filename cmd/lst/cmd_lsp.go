package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dhamidi/lst/java/lsp"
)

func newLSPCmd(settings *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the formatting language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			styles, err := loadStyles(settings)
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, styles)
			return server.RunStdio()
		},
	}
}
