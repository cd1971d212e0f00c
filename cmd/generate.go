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
	"github.com/valpere/sareview/internal/docword"
	"github.com/valpere/sareview/internal/review"
	"github.com/valpere/sareview/internal/store"
)

var (
	genNotesFile string
	genOutput    string
	genDocx      string
	genNoSave    bool

	genStudent  string
	genClient   string
	genDog      string
	genDate     string
	genReviewer string
	genStatus   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a polished review from raw assessment notes",
	Long: `Generate a polished client practical review from raw assessment notes.

Reads the notes file, synthesizes the three-section review (what went well,
what to do differently, overall), and writes the markdown draft. With --docx
the styled Word document is written as well.

Example:
  sareview generate --notes notes.txt --student "Amanda Dwyer" --status Passed --docx out/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := os.ReadFile(genNotesFile)
		if err != nil {
			return fmt.Errorf("failed to read notes file: %w", err)
		}

		if genStatus != "" && !internal.ValidStatus(genStatus) {
			return fmt.Errorf("unknown status %q (use Passed, Cleared, or Resubmit)", genStatus)
		}

		completer, cfg, err := buildCompleter()
		if err != nil {
			return err
		}
		if cfg.APIKey == "" {
			return internal.ErrAPIKeyMissing
		}

		meta := internal.AssessmentMeta{
			StudentName:  genStudent,
			ClientName:   genClient,
			DogName:      genDog,
			ReviewDate:   genDate,
			ReviewerName: genReviewer,
			Status:       internal.Status(genStatus),
		}

		ctx := context.Background()
		svc := review.New(completer, cfg, nil)

		draft, err := svc.Synthesize(ctx, meta, string(notes))
		if err != nil {
			return err
		}

		if genOutput == "" || genOutput == "-" {
			fmt.Println(draft)
		} else {
			if err := os.MkdirAll(filepath.Dir(genOutput), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(genOutput, []byte(draft), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Printf("Draft written to %s\n", genOutput)
		}

		if genDocx != "" {
			data, err := docword.Assemble(meta, draft)
			if err != nil {
				return fmt.Errorf("failed to assemble document: %w", err)
			}
			docxPath := genDocx
			if info, err := os.Stat(genDocx); err == nil && info.IsDir() {
				docxPath = filepath.Join(genDocx, docword.Filename(meta.StudentName))
			}
			if err := os.WriteFile(docxPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write document: %w", err)
			}
			fmt.Printf("Document written to %s\n", docxPath)
		}

		if !genNoSave {
			db, err := store.New(viper.GetString("db"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "History not saved: %v\n", err)
				return nil
			}
			defer db.Close()

			if _, err := db.SaveReview(ctx, internal.ReviewRecord{
				StudentName:  meta.StudentName,
				ClientName:   meta.ClientName,
				DogName:      meta.DogName,
				ReviewDate:   meta.ReviewDate,
				ReviewerName: meta.ReviewerName,
				Status:       meta.Status,
				RawNotes:     string(notes),
				DraftText:    draft,
				Language:     "English",
			}); err != nil {
				fmt.Fprintf(os.Stderr, "History not saved: %v\n", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genNotesFile, "notes", "n", "", "Raw notes file (required)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "-", "Draft output file (- for stdout)")
	generateCmd.Flags().StringVar(&genDocx, "docx", "", "Write the styled Word document to this file or directory")
	generateCmd.Flags().BoolVar(&genNoSave, "no-save", false, "Do not record the review in history")

	generateCmd.Flags().StringVar(&genStudent, "student", "", "Student name (required)")
	generateCmd.Flags().StringVar(&genClient, "client", "", "Client name from the video")
	generateCmd.Flags().StringVar(&genDog, "dog", "", "Dog name")
	generateCmd.Flags().StringVar(&genDate, "date", "", "Review date")
	generateCmd.Flags().StringVar(&genReviewer, "reviewer", "", "Reviewer name")
	generateCmd.Flags().StringVar(&genStatus, "status", "", "Assessment status: Passed, Cleared, or Resubmit")

	generateCmd.MarkFlagRequired("notes")
	generateCmd.MarkFlagRequired("student")
}
