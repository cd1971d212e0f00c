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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/prompt"
	"github.com/valpere/sareview/internal/store"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Manage the terminology glossary",
	Long: `Add, list, and delete terminology glossary entries.

Glossary entries pin specific source terms to a fixed translation. Protocol
names and behaviour jargon ("Door is a Bore", threshold, push-drop) stay
consistent across every translated review.`,
}

var glossaryListLang string

var glossaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List glossary entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		// An empty language lists everything; the flag narrows the filter.
		entries, err := db.ListGlossaryTerms(context.Background(), glossaryListLang)
		if err != nil {
			return fmt.Errorf("failed to list glossary: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("Glossary is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLANGUAGE\tSOURCE TERM\tTARGET TERM")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.TargetLang, e.SourceTerm, e.TargetTerm)
		}
		return w.Flush()
	},
}

var glossaryAddLang string

var glossaryAddCmd = &cobra.Command{
	Use:   "add <source-term> <target-term>",
	Short: "Add or update a glossary entry",
	Long: `Add a glossary entry mapping an English term to its fixed translation.

Example:
  sareview glossary add "threshold" "seuil" --language French`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !internal.Language(glossaryAddLang).Supported() {
			return fmt.Errorf("unsupported language %q (use French or Dutch)", glossaryAddLang)
		}

		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.AddGlossaryTerm(context.Background(), glossaryAddLang, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to add glossary entry: %w", err)
		}
		fmt.Printf("Added: [%s] %q -> %q\n", glossaryAddLang, args[0], args[1])
		return nil
	},
}

var glossaryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a glossary entry by ID",
	Long:  `Delete a glossary entry by its ID (shown in "sareview glossary list").`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.DeleteGlossaryTerm(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete glossary entry: %w", err)
		}
		fmt.Printf("Deleted glossary entry: %s\n", args[0])
		return nil
	},
}

var glossarySeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the built-in French terminology",
	Long: `Seed the built-in French terminology glossary.

Existing entries are kept; only missing terms are added.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.SeedGlossary(context.Background(), string(internal.LanguageFrench), prompt.FrenchGlossary); err != nil {
			return fmt.Errorf("failed to seed glossary: %w", err)
		}
		fmt.Printf("Seeded %d French terms.\n", len(prompt.FrenchGlossary))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(glossaryCmd)

	glossaryListCmd.Flags().StringVarP(&glossaryListLang, "language", "l", "", "Filter by target language (French or Dutch)")
	glossaryAddCmd.Flags().StringVarP(&glossaryAddLang, "language", "l", "", "Target language (required)")
	glossaryAddCmd.MarkFlagRequired("language")

	glossaryCmd.AddCommand(glossaryListCmd)
	glossaryCmd.AddCommand(glossaryAddCmd)
	glossaryCmd.AddCommand(glossaryDeleteCmd)
	glossaryCmd.AddCommand(glossarySeedCmd)
}
