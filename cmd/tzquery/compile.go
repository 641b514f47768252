package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [tzdata-dir]",
		Short: "Parse and compile a tzdata source directory, reporting any structural errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				viper.Set("tzdata-dir", args[0])
			}
			dir := tzdataDir()

			db, err := loadDatabase(dir)
			if err != nil {
				return err
			}

			if _, err := compileDatabase(cmd.Context(), db); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "compiled %d zone lines, %d rule lines, %d links from %s\n",
				len(db.ZoneLines), len(db.RuleLines), len(db.LinkLines), dir)
			return nil
		},
	}
}
