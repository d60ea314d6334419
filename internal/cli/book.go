package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

func newBookCmd(a *app) *cobra.Command {
	var (
		pays, gets string
		levels     bool
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Walk an order book best quality first",
		Long: `Print every offer of an order book, one "<quality> <offer> <page>" per line,
lowest quality first. With --levels only the price levels and their sizes are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := parseBook(pays, gets)
			if err != nil {
				return err
			}
			base := keylet.BookDir(book).Key
			out := cmd.OutOrStdout()

			return a.withSnapshot(cmd.Context(), func(v view.ReadView) error {
				if levels {
					return printLevels(cmd, v, base)
				}
				it := directory.NewBookDirs(v, base)
				for it.Next() {
					fmt.Fprintf(out, "%d %X %d\n", it.Quality(), it.Entry(), it.Page())
				}
				return it.Err()
			})
		},
	}
	cmd.Flags().StringVar(&pays, "pays", "", "taker pays issue (XRP or CUR/issuer)")
	cmd.Flags().StringVar(&gets, "gets", "", "taker gets issue (XRP or CUR/issuer)")
	cmd.Flags().BoolVar(&levels, "levels", false, "print price levels only")
	_ = cmd.MarkFlagRequired("pays")
	_ = cmd.MarkFlagRequired("gets")
	return cmd
}

func printLevels(cmd *cobra.Command, v view.ReadView, base [32]byte) error {
	q, ok, err := directory.FirstLevel(v, base)
	for ; ok && err == nil; q, ok, err = directory.Successor(v, base, q) {
		n, cerr := directory.Count(v, keylet.Quality(base, q).Key)
		if cerr != nil {
			return cerr
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", q, n)
	}
	return err
}
