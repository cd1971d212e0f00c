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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/prompt"
	"github.com/valpere/sareview/internal/review"
	"github.com/valpere/sareview/internal/server"
	"github.com/valpere/sareview/internal/store"
	"github.com/valpere/sareview/internal/validator"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the review web interface",
	Long: `Run the review web interface.

Serves the assessment form on the configured address, with JSON endpoints
for generation, translation, document download, and history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer log.Sync()

		completer, cfg, err := buildCompleter()
		if err != nil {
			return err
		}
		if cfg.APIKey == "" {
			fmt.Fprintln(os.Stderr, "Warning: no API key configured; generation will be unavailable")
		}

		var db *store.Store
		if path := viper.GetString("db"); path != "" {
			db, err = store.New(path)
			if err != nil {
				log.Warn("running without history persistence", zap.Error(err))
				db = nil
			} else {
				defer db.Close()
				if err := db.SeedGlossary(context.Background(), string(internal.LanguageFrench), prompt.FrenchGlossary); err != nil {
					log.Warn("glossary seed failed", zap.Error(err))
				}
			}
		}

		svc := review.New(completer, cfg, nil)
		srv := server.New(server.Config{
			Addr:      serveAddr,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		}, svc, db, validator.New(), log)

		return srv.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Listen address")
}
