package cli

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		unsorted bool
		jobs     int
	)

	cmd := &cobra.Command{
		Use:   "verify <owner|root>...",
		Short: "Check the structure of directories",
		Long: `Check that each directory has no duplicate entries, no empty or overfull
pages, consistent links and a root that names its tail. Directories are read
from one snapshot and checked in parallel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bases := make([][32]byte, len(args))
			for i, arg := range args {
				var err error
				if bases[i], err = parseDirectory(arg); err != nil {
					return err
				}
			}

			if jobs < 1 {
				jobs = 1
			}
			rules, err := a.cfg.Rules()
			if err != nil {
				return err
			}
			sorted := rules.SortedDirectoriesEnabled() && !unsorted
			capacity := a.cfg.Directory.PageCapacity

			stats := make([]directory.Stats, len(bases))
			err = a.withSnapshot(cmd.Context(), func(v view.ReadView) error {
				g, ctx := errgroup.WithContext(cmd.Context())
				g.SetLimit(jobs)
				for i, base := range bases {
					g.Go(func() error {
						if err := ctx.Err(); err != nil {
							return err
						}
						s, err := directory.Verify(v, base, capacity, sorted)
						if err != nil {
							return errors.Wrapf(err, "directory %X", base)
						}
						stats[i] = s
						return nil
					})
				}
				return g.Wait()
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, base := range bases {
				fmt.Fprintf(out, "%X pages=%d entries=%d tail=%d ok\n",
					base, stats[i].Pages, stats[i].Entries, stats[i].Tail)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unsorted, "unsorted", false, "skip the ordering check")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "directories checked at once")
	return cmd
}
