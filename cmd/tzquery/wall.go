package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jorisvandenbos/tzengine/index"
	"github.com/jorisvandenbos/tzengine/internal/calendar"
)

func newWallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wall <zone> <civil-datetime>",
		Short: "Resolve a naive civil datetime in zone, reporting Ok, Gap, or Ambiguous",
		Long:  "civil-datetime is RFC3339 without a zone offset, e.g. 2024-03-31T02:30:00",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := args[0]
			civil, err := parseCivil(args[1])
			if err != nil {
				return fmt.Errorf("parsing civil datetime %q: %w", args[1], err)
			}

			ix, err := buildIndex(cmd.Context())
			if err != nil {
				return err
			}
			outcome, err := ix.LookupByWall(zone, civil)
			if err != nil {
				return err
			}

			printWallOutcome(cmd, zone, outcome)
			return nil
		},
	}
}

const civilLayout = "2006-01-02T15:04:05"

func parseCivil(s string) (calendar.Civil, error) {
	t, err := time.Parse(civilLayout, s)
	if err != nil {
		return calendar.Civil{}, err
	}
	return calendar.Civil{
		Year: t.Year(), Month: t.Month(), Day: t.Day(),
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
	}, nil
}

func printWallOutcome(cmd *cobra.Command, zone string, outcome index.WallOutcome) {
	out := cmd.OutOrStdout()
	switch outcome.Kind {
	case index.WallOk:
		p := outcome.Period
		fmt.Fprintf(out, "%s ok %s total_offset=%ds\n",
			zone, p.Abbr, p.Offsets.UTCOffset+p.Offsets.StdOffset)
	case index.WallGap:
		fmt.Fprintf(out, "%s gap before=%ds after=%ds\n",
			zone, outcome.Before.UTCOffset+outcome.Before.StdOffset, outcome.After.UTCOffset+outcome.After.StdOffset)
	case index.WallAmbiguous:
		fmt.Fprintf(out, "%s ambiguous earlier=%s(%ds) later=%s(%ds)\n", zone,
			outcome.Earlier.Abbr, outcome.Earlier.Offsets.UTCOffset+outcome.Earlier.Offsets.StdOffset,
			outcome.Later.Abbr, outcome.Later.Offsets.UTCOffset+outcome.Later.Offsets.StdOffset)
	}
}
