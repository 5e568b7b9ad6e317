package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashlingo/internal/content"
)

var errValidation = errors.New("content validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check question sets against the schema and vocab files for duplicates",
	Long: `Fetch every question set listed in the catalog, validate it against the
question-set schema and decode it. Then scan each language's vocab files for
entries repeated by word and part of speech.

With a directory argument the check runs on that directory; otherwise it runs
on the configured content source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger, closeLog, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer closeLog()

		var fetcher content.Fetcher
		if len(args) == 1 {
			fetcher = content.NewDirFetcher(args[0])
		} else {
			src, err := openContent(cmd, logger)
			if err != nil {
				return err
			}
			defer src.Close()
			fetcher = src.Fetcher
		}

		catalog, err := content.LoadCatalog(ctx, fetcher)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		report, err := content.CheckSets(ctx, fetcher, catalog)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Checked %d sets, %d questions\n", report.Checked, report.Questions)
		for _, p := range report.Missing {
			fmt.Fprintf(out, "  missing  %s/%s  %s\n", p.Language, p.Key, p.Path)
		}
		for _, p := range report.Invalid {
			fmt.Fprintf(out, "  invalid  %s/%s  %v\n", p.Language, p.Key, p.Err)
		}

		skipVocab, _ := cmd.Flags().GetBool("skip-vocab")
		duplicates := 0
		if !skipVocab {
			for _, lang := range catalog.LanguageNames() {
				dr, err := content.FindDuplicates(ctx, fetcher, content.VocabPaths(lang))
				if err != nil {
					return err
				}
				duplicates += len(dr.Duplicates)
				printDuplicates(cmd, lang, dr)
			}
		}

		if !report.OK() || duplicates > 0 {
			return errValidation
		}
		fmt.Fprintln(out, "OK")
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("skip-vocab", false, "Skip the vocab duplicate check")
}

func printDuplicates(cmd *cobra.Command, lang string, dr *content.DuplicateReport) {
	out := cmd.OutOrStdout()
	if dr.Total == 0 {
		return
	}
	fmt.Fprintf(out, "%s vocab: %d entries, %d duplicates\n", lang, dr.Total, len(dr.Duplicates))
	for _, d := range dr.Duplicates {
		fmt.Fprintf(out, "  duplicate %q  %s[%d], first at %s[%d]\n", d.Key, d.Path, d.Index, d.FirstPath, d.FirstIndex)
	}
	for _, s := range dr.Skipped {
		// Languages rarely have all twenty vocab files.
		if errors.Is(s.Err, fs.ErrNotExist) {
			continue
		}
		fmt.Fprintf(out, "  skipped  %s  %v\n", s.Path, s.Err)
	}
}
