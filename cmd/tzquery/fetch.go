package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jorisvandenbos/tzengine/tzdb/ianadist"
)

const etagFilename = ".etag"

func newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the latest IANA time zone database into the tzdata directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := tzdataDir()
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %q: %w", dir, err)
			}

			etag := readEtag(dir)
			release, newEtag, err := ianadist.Latest(cmd.Context(), etag)
			if err != nil {
				return fmt.Errorf("fetching latest release: %w", err)
			}
			if release == nil {
				logger.Info("already up to date", "etag", etag)
				return nil
			}

			for name, data := range release.DataFiles {
				if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
					return fmt.Errorf("writing %q: %w", name, err)
				}
			}
			if err := os.WriteFile(filepath.Join(dir, etagFilename), []byte(newEtag), 0o644); err != nil {
				return fmt.Errorf("writing etag: %w", err)
			}

			logger.Info("fetched release", "version", release.Version, "files", len(release.DataFiles), "dir", dir)
			return nil
		},
	}
}

func readEtag(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, etagFilename))
	if err != nil {
		return ""
	}
	return string(data)
}
