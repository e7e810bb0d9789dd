package main

import (
	"errors"
	"strings"

	"github.com/alovak/cardcheck/verifier"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadConfig merges, lowest first: defaults, cardcheck.yaml, CARDCHECK_*
// environment variables and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*verifier.Config, error) {
	def := verifier.DefaultConfig()
	v := viper.New()
	v.SetDefault("http_addr", def.HTTPAddr)
	v.SetDefault("mode", def.Mode)
	v.SetDefault("pan_hash_key", def.PANHashKey)

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("cardcheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix("cardcheck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"http_addr":    "http-addr",
		"mode":         "mode",
		"pan_hash_key": "pan-hash-key",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	cfg := &verifier.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
