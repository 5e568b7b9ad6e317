package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashlingo/internal/content"
	"github.com/abhisek/flashlingo/internal/store"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build and inspect packed SQLite content files",
}

var packBuildCmd = &cobra.Command{
	Use:   "build <dir> [out.db]",
	Short: "Pack a content directory into a SQLite file",
	Long: `Validate every question set the catalog in <dir> lists and store it,
together with the catalog and the vocab files, in a SQLite pack. Without
[out.db] the pack is written to the default location
($XDG_DATA_HOME/flashlingo/content.db).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		dst := ""
		if len(args) == 2 {
			dst = args[1]
		} else {
			p, err := store.DefaultPackPath()
			if err != nil {
				return fmt.Errorf("resolve pack path: %w", err)
			}
			dst = p
		}

		src := content.NewDirFetcher(args[0])
		catalog, err := content.LoadCatalog(ctx, src)
		if err != nil {
			return err
		}

		st, err := store.Open(dst)
		if err != nil {
			return fmt.Errorf("open pack: %w", err)
		}
		defer st.Close()
		repo := st.Sets()

		manifest, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		if err := repo.Put(ctx, content.ManifestName, manifest); err != nil {
			return err
		}

		var packed, questions int
		for _, path := range catalog.Paths() {
			data, err := src.Fetch(ctx, path)
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(out, "  skip     %s (missing)\n", path)
				continue
			}
			if err != nil {
				return err
			}
			qs, err := content.DecodeSet(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := repo.Put(ctx, path, data); err != nil {
				return err
			}
			packed++
			questions += len(qs)
		}

		vocab := 0
		for _, lang := range catalog.LanguageNames() {
			for _, path := range content.VocabPaths(lang) {
				data, err := src.Fetch(ctx, path)
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				if err != nil {
					return err
				}
				if err := repo.Put(ctx, path, data); err != nil {
					return err
				}
				vocab++
			}
		}

		fmt.Fprintf(out, "Packed %d sets (%d questions) and %d vocab files into %s\n", packed, questions, vocab, dst)
		return nil
	},
}

var packListCmd = &cobra.Command{
	Use:   "list <pack.db>",
	Short: "List the files in a pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(args[0])
		if err != nil {
			return fmt.Errorf("open pack: %w", err)
		}
		defer st.Close()

		files, err := st.Sets().List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(files) == 0 {
			fmt.Fprintln(out, "Pack is empty.")
			return nil
		}
		for _, f := range files {
			fmt.Fprintf(out, "%-32s  %8d  %s\n", f.Path, f.Size, f.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	packCmd.AddCommand(packBuildCmd)
	packCmd.AddCommand(packListCmd)
}
