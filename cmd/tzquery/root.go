// Command tzquery compiles a tzdata source directory into a PeriodIndex
// and queries it by UTC instant or wall-clock datetime, plus a helper
// for fetching IANA releases.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tzquery"})

var rootCmd = &cobra.Command{
	Use:   "tzquery",
	Short: "Compile and query IANA time zone data",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("tzdata-dir", "", "directory of tzdata source files (default: .tzquery/tzdata)")
	rootCmd.PersistentFlags().Duration("extend-ttl", 0, "cache TTL for dynamically extended zone tails (0 = never expire)")
	rootCmd.PersistentFlags().String("format", "text", "output format: text or json")
	for _, name := range []string{"tzdata-dir", "extend-ttl", "format"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(newUTCCommand())
	rootCmd.AddCommand(newWallCommand())
	rootCmd.AddCommand(newCompileCommand())
	rootCmd.AddCommand(newFetchCommand())
}

func initConfig() {
	viper.SetEnvPrefix("TZQUERY")
	viper.AutomaticEnv()
	viper.SetConfigName("tzquery")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/tzquery")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Warn("reading config file", "err", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
