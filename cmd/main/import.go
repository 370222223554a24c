package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CTAG07/Glossolalia/pkg/wordlist"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		dbPath  string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a text word list into a SQLite word store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			words, err := wordlist.LoadFile(ctx, args[0])
			if err != nil {
				return err
			}

			store, closeStore, err := openStore(dbPath, a.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			if replace {
				if err = store.Truncate(ctx); err != nil {
					return err
				}
			}
			if err = store.Insert(ctx, words); err != nil {
				return err
			}
			total, err := store.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d words, %d in store\n", len(words), total)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "./words.db", "SQLite database to import into")
	cmd.Flags().BoolVar(&replace, "replace", false, "remove existing words before importing")
	return cmd
}
