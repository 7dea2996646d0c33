package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyquest-backend/internal/app/cardimport"
	"github.com/heartmarshall/studyquest-backend/internal/service/study"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

func newImportCardsCmd() *cobra.Command {
	var (
		userFlag string
		sheet    string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import-cards FILE",
		Short: "Import flashcards for a user from an .xlsx or .csv file",
		Long: `Columns: front, back, subject, difficulty, tags (separated by ';'), notes.
A header row starting with "front" is skipped. Invalid rows are reported and
left out; the remaining rows are imported in one batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}

			res, err := parseCardFile(args[0], sheet)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, re := range res.Errors {
				fmt.Fprintf(out, "skipped %s\n", re.Error())
			}
			if len(res.Cards) == 0 {
				return fmt.Errorf("%s: no valid rows", args[0])
			}
			if dryRun {
				fmt.Fprintf(out, "%d cards valid, %d rows skipped (dry run)\n", len(res.Cards), len(res.Errors))
				return nil
			}

			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			ctx := ctxutil.WithUserID(cmd.Context(), userID)
			n, err := e.svcs.Study.ImportCards(ctx, study.ImportCardsInput{Cards: res.Cards})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "imported %d cards, %d rows skipped\n", n, len(res.Errors))
			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "owner user ID (required)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for .xlsx files (default: first sheet)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func parseCardFile(path, sheet string) (*cardimport.Result, error) {
	format, err := cardimport.FormatFromFilename(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return cardimport.Parse(f, format, sheet)
}
