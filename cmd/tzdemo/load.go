package main

import (
	"bufio"
	"fmt"

	"github.com/g-m-twostay/go-containers/Maps/ChainTable"
	"github.com/g-m-twostay/go-containers/internal/diag"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var log = diag.For("tzdemo")

// loadStats describes a table filled by load.
type loadStats struct {
	stored, rejected uint
	used, longest    uint
}

func newLoadCmd(load func() (settings, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Store every line of stdin as a key and report the chain distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			t, err := ChainTable.NewCustom[int](s.length, s.hash, nil, nil)
			if err != nil {
				return err
			}
			defer t.Free()

			var st loadStats
			sc := bufio.NewScanner(cmd.InOrStdin())
			for line := 1; sc.Scan(); line++ {
				if sc.Text() == "" {
					continue
				}
				if t.Store(sc.Text(), line) {
					st.stored++
					continue
				}
				st.rejected++
				first, _ := t.Fetch(sc.Text())
				log.WithField("line", line).WithField("first", first).Debug("key already stored")
			}
			if err := sc.Err(); err != nil {
				return errors.Wrap(err, "reading keys")
			}
			for _, l := range t.Chains() {
				if l > 0 {
					st.used++
				}
				st.longest = max(st.longest, l)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d, rejected %d, slots used %d/%d, longest chain %d\n",
				st.stored, st.rejected, st.used, t.Length(), st.longest)
			return nil
		},
	}
}
