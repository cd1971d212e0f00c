/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "sareview",
	Short: "Client Practical Reviewer",
	Long: `A tool that turns rough trainer assessment notes into polished client
practical reviews, translates them to French or Dutch, and exports styled
Word documents.

Configuration is read from flags, then SAREVIEW_* environment variables
(ANTHROPIC_API_KEY is also honoured for the API key), then ~/.sareview.yaml.

Use "sareview generate --help" to get started.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-key", "", "LLM API key (or ANTHROPIC_API_KEY)")
	rootCmd.PersistentFlags().String("model", "", "Model override for the selected service")
	rootCmd.PersistentFlags().String("service", "anthropic", "Generation/translation backend: anthropic, openrouter, google")
	rootCmd.PersistentFlags().Int("max-tokens", 2000, "Maximum tokens for generated output")
	rootCmd.PersistentFlags().String("db", "./data/sareview.db", "Database path for history and translation memory")

	viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("service", rootCmd.PersistentFlags().Lookup("service"))
	viper.BindPFlag("max_tokens", rootCmd.PersistentFlags().Lookup("max-tokens"))
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigName(".sareview")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SAREVIEW")
	viper.AutomaticEnv()
	viper.BindEnv("api_key", "SAREVIEW_API_KEY", "ANTHROPIC_API_KEY")

	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}
