package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashlingo/internal/content"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the languages and question sets in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer closeLog()

		src, err := openContent(cmd, logger)
		if err != nil {
			return err
		}
		defer src.Close()

		return printSets(cmd, src.Catalog, src.Origin, language(cmd))
	},
}

func printSets(cmd *cobra.Command, catalog *content.Catalog, origin, only string) error {
	out := cmd.OutOrStdout()
	if only != "" && !catalog.HasLanguage(only) {
		return fmt.Errorf("unknown language %q", only)
	}

	fmt.Fprintf(out, "Catalog %s (%s)\n", catalog.Version, origin)
	fmt.Fprintln(out, strings.Repeat("─", 48))

	for _, lang := range catalog.LanguageNames() {
		if only != "" && lang != only {
			continue
		}
		entries := catalog.Sets(lang)
		fmt.Fprintf(out, "%-10s  %d sets\n", lang, len(entries))
		if len(entries) == 0 {
			fmt.Fprintln(out, "  No exam available for this language.")
			continue
		}
		for _, e := range entries {
			fmt.Fprintf(out, "  %-10s  %-12s  %s\n", e.Key, e.Title, e.Path)
		}
	}
	return nil
}
