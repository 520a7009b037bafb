package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dhamidi/lst/java/format"
	"github.com/dhamidi/lst/java/style"
)

// loadSettings layers command line flags over LST_* environment variables
// over an optional .lst.yaml in the working directory.
func loadSettings(settings *viper.Viper, cmd *cobra.Command) error {
	settings.SetDefault("style", "intellij")
	settings.SetDefault("cycles", format.MaxCycles)

	settings.SetEnvPrefix("LST")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	settings.SetConfigName(".lst")
	settings.SetConfigType("yaml")
	settings.AddConfigPath(".")
	if err := settings.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Debugf("using config %s", settings.ConfigFileUsed())
	}

	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// loadStyles resolves the style setting, either the name of a built-in
// collection or the path of a style file.
func loadStyles(settings *viper.Viper) (style.NamedStyles, error) {
	name := settings.GetString("style")
	if _, err := style.FormatOf(name); err == nil {
		return style.Load(name)
	}
	ns, err := style.Lookup(name)
	if err != nil {
		return style.NamedStyles{}, fmt.Errorf("load styles: %w", err)
	}
	return ns, nil
}
