package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

func newInsertCmd(a *app) *cobra.Command {
	var dir dirFlags

	cmd := &cobra.Command{
		Use:   "insert <entry>...",
		Short: "Add entries to a directory",
		Long: `Add one or more entry keys to a directory in a single transaction.
The page each entry lands in is printed. Nothing is written if any entry fails.

Examples:
    xrpldir insert --owner rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh <key>
    xrpldir insert --pays USD/rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B --gets XRP --quality 1000 <key>`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := dir.resolve()
			if err != nil {
				return err
			}
			keys := make([][32]byte, len(args))
			for i, arg := range args {
				if keys[i], err = parseHash(arg); err != nil {
					return err
				}
			}

			rules, err := a.cfg.Rules()
			if err != nil {
				return err
			}
			opts := a.cfg.DirectoryOptions(rules).WithDescribe(target.describe)

			pages := make([]uint64, len(keys))
			err = a.withLedger(cmd.Context(), func(l *view.Ledger) error {
				for i, key := range keys {
					page, err := directory.Insert(l, target.base, key, opts)
					if err != nil {
						return errors.Wrapf(err, "insert %X", key)
					}
					pages[i] = page
				}
				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, key := range keys {
				fmt.Fprintf(out, "%X %d\n", key, pages[i])
			}
			a.logger.Infow("entries inserted", "directory", fmt.Sprintf("%X", target.base), "count", len(keys))
			return nil
		},
	}
	dir.register(cmd)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var (
		dir  dirFlags
		hint uint64
	)

	cmd := &cobra.Command{
		Use:   "remove <entry>...",
		Short: "Remove entries from a directory",
		Long: `Remove one or more entry keys from a directory in a single transaction.
Pages left empty are unlinked; a directory left with no entries is erased.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := dir.resolve()
			if err != nil {
				return err
			}
			keys := make([][32]byte, len(args))
			for i, arg := range args {
				if keys[i], err = parseHash(arg); err != nil {
					return err
				}
			}

			err = a.withLedger(cmd.Context(), func(l *view.Ledger) error {
				for _, key := range keys {
					if err := directory.Remove(l, target.base, hint, key); err != nil {
						return errors.Wrapf(err, "remove %X", key)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			a.logger.Infow("entries removed", "directory", fmt.Sprintf("%X", target.base), "count", len(keys))
			return nil
		},
	}
	dir.register(cmd)
	cmd.Flags().Uint64Var(&hint, "hint", 0, "page expected to hold the entries")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var (
		dir   dirFlags
		pages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the entries of a directory",
		Long:  `Print every entry of a directory in chain order, one "<entry> <page>" per line.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := dir.resolve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return a.withSnapshot(cmd.Context(), func(v view.ReadView) error {
				if pages {
					return printPages(cmd, v, target.base)
				}
				return directory.ForEach(v, target.base, func(entry [32]byte, page uint64) error {
					_, err := fmt.Fprintf(out, "%X %d\n", entry, page)
					return err
				})
			})
		},
	}
	dir.register(cmd)
	cmd.Flags().BoolVar(&pages, "pages", false, "print the page layout instead of the entries")
	return cmd
}

// printPages prints one line per page: index, entry count and links.
func printPages(cmd *cobra.Command, v view.ReadView, base [32]byte) error {
	out := cmd.OutOrStdout()
	root, err := directory.ReadPage(v, base, 0)
	if errors.Is(err, view.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "root last=%d high=%d\n", root.IndexLast, root.IndexHigh)

	idx, p := uint64(0), root
	for i := 0; ; i++ {
		fmt.Fprintf(out, "page %d entries=%d prev=%d next=%d\n",
			idx, len(p.Indexes), p.IndexPrevious, p.IndexNext)
		if p.IndexNext == 0 {
			return nil
		}
		if i > int(root.IndexHigh)+1 {
			return errors.Newf("page chain of %X does not terminate", base)
		}
		idx = p.IndexNext
		if p, err = directory.ReadPage(v, base, idx); err != nil {
			return err
		}
	}
}

func newEmptyCmd(a *app) *cobra.Command {
	var dir dirFlags

	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Report whether a directory has no entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := dir.resolve()
			if err != nil {
				return err
			}
			return a.withSnapshot(cmd.Context(), func(v view.ReadView) error {
				empty, err := directory.IsEmpty(v, target.base)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), empty)
				return nil
			})
		},
	}
	dir.register(cmd)
	return cmd
}
