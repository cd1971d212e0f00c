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

	"github.com/valpere/sareview/internal/markdown"
	"github.com/valpere/sareview/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage stored reviews and the translation memory",
	Long:  `List, inspect, and clear the SQLite review history and translation memory.`,
}

var historyListLimit int

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		records, err := db.ListReviews(context.Background(), historyListLimit)
		if err != nil {
			return fmt.Errorf("failed to list reviews: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No reviews in history.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTUDENT\tSTATUS\tLANGUAGE\tCREATED\tEXCERPT")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				rec.ID, rec.StudentName, rec.Status, rec.Language,
				rec.CreatedAt.Format("2006-01-02 15:04"),
				markdown.Excerpt(rec.DraftText, 40))
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored review draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		rec, err := db.GetReview(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load review: %w", err)
		}

		fmt.Printf("Student:  %s\n", rec.StudentName)
		fmt.Printf("Status:   %s\n", rec.Status)
		fmt.Printf("Language: %s\n", rec.Language)
		fmt.Printf("Created:  %s\n\n", rec.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Println(rec.DraftText)
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		stats, err := db.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Total reviews:       %d\n", stats.TotalReviews)
		for status, n := range stats.ByStatus {
			fmt.Printf("  %-18s %d\n", status+":", n)
		}
		fmt.Printf("Cached translations: %d\n", stats.Translations)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		n, err := db.ClearReviews(context.Background())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Printf("Cleared %d reviews from history.\n", n)
		return nil
	},
}

var historyClearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Remove all translation memory entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		n, err := db.ClearTranslations(context.Background())
		if err != nil {
			return fmt.Errorf("failed to clear translation memory: %w", err)
		}
		fmt.Printf("Cleared %d entries from translation memory.\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyListCmd.Flags().IntVar(&historyListLimit, "limit", 20, "Maximum number of reviews to list")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyClearCacheCmd)
}
