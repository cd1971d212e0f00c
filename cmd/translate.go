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
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/prompt"
	"github.com/valpere/sareview/internal/store"
	"github.com/valpere/sareview/internal/translator"
	"github.com/valpere/sareview/internal/validator"
)

var (
	trInputFile   string
	trOutputFile  string
	trLanguage    string
	trCredentials string
	trNoCache     bool
	trNoValidate  bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a review draft to French or Dutch",
	Long: `Translate a review draft to French or Dutch.

Feedback headers stay in English regardless of backend. Glossary entries and
the translation memory cache live in the database given by --db.

Available backends (via --service):
  - anthropic   Claude (default)
  - openrouter  OpenRouter chat models
  - google      Google Cloud Translation (requires --credentials)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(trInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text := string(raw)

		lang := internal.Language(trLanguage)
		if !lang.Supported() {
			return fmt.Errorf("unsupported language %q (use French or Dutch)", trLanguage)
		}

		ctx := context.Background()

		var db *store.Store
		if !trNoCache {
			db, err = store.New(viper.GetString("db"))
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if cached, found, cacheErr := db.GetCachedTranslation(ctx, text, string(lang)); cacheErr == nil && found {
				fmt.Fprintln(os.Stderr, "Using cached translation")
				return writeTranslation(cached)
			}
		}

		var glossary map[string]string
		if db != nil {
			if lang == internal.LanguageFrench {
				if err := db.SeedGlossary(ctx, string(lang), prompt.FrenchGlossary); err != nil {
					fmt.Fprintf(os.Stderr, "Glossary seed failed: %v\n", err)
				}
			}
			if terms, err := db.GetGlossaryTerms(ctx, string(lang)); err == nil {
				glossary = terms
			}
		}

		svc, err := buildTranslator(trCredentials)
		if err != nil {
			return err
		}

		result, err := svc.Translate(ctx, translator.Request{
			Text:           text,
			TargetLanguage: lang,
			GlossaryTerms:  glossary,
		})
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		if !trNoValidate {
			if ok, verr := validator.New().IsValid(result.TranslatedText, lang); !ok {
				fmt.Fprintf(os.Stderr, "Warning: output may not be %s: %v\n", lang, verr)
			}
		}

		if db != nil {
			if err := db.SaveTranslation(ctx, text, string(lang), result.TranslatedText, result.ServiceName); err != nil {
				fmt.Fprintf(os.Stderr, "Translation memory not updated: %v\n", err)
			}
		}

		return writeTranslation(result.TranslatedText)
	},
}

func writeTranslation(text string) error {
	if trOutputFile == "" || trOutputFile == "-" {
		fmt.Println(text)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(trOutputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(trOutputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Translation written to %s\n", trOutputFile)
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&trInputFile, "input", "i", "", "Draft file to translate (required)")
	translateCmd.Flags().StringVarP(&trOutputFile, "output", "o", "-", "Output file (- for stdout)")
	translateCmd.Flags().StringVarP(&trLanguage, "language", "l", "", "Target language: French or Dutch (required)")
	translateCmd.Flags().StringVarP(&trCredentials, "credentials", "c", "", "Path to Google Cloud credentials (google backend)")
	translateCmd.Flags().BoolVar(&trNoCache, "no-cache", false, "Disable the translation memory cache")
	translateCmd.Flags().BoolVar(&trNoValidate, "no-validate", false, "Skip the output language check")

	translateCmd.MarkFlagRequired("input")
	translateCmd.MarkFlagRequired("language")
}
