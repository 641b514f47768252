package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newUTCCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "utc <zone> <unix-seconds>",
		Short: "Resolve the period active in zone at a UTC instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := args[0]
			unixTime, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing unix seconds %q: %w", args[1], err)
			}

			ix, err := buildIndex(cmd.Context())
			if err != nil {
				return err
			}
			outcome, err := ix.LookupByUTC(zone, unixTime)
			if err != nil {
				return err
			}

			p := outcome.Period
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s total_offset=%ds std_offset=%ds\n",
				zone, p.Abbr, p.Offsets.UTCOffset+p.Offsets.StdOffset, p.Offsets.StdOffset)
			return nil
		},
	}
}
