package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dhamidi/lst/java/style"
)

func newStylesCmd(settings *viper.Viper) *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the effective code style",
		Long: `Print the effective code style as YAML.

Without --style this is the built-in IntelliJ IDEA style. A style file
is shown with every setting it leaves out filled in from the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := loadStyles(settings)
			if err != nil {
				return err
			}
			enc := style.YAML
			if asTOML {
				enc = style.TOML
			}
			data, err := style.Marshal(ns, enc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print TOML instead of YAML")

	return cmd
}
