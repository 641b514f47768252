package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jorisvandenbos/tzengine/index"
	"github.com/jorisvandenbos/tzengine/tzc"
	"github.com/jorisvandenbos/tzengine/tzdata"
)

func tzdataDir() string {
	if dir := viper.GetString("tzdata-dir"); dir != "" {
		return dir
	}
	return filepath.Join(".tzquery", "tzdata")
}

// loadDatabase parses every regular file in dir as a tzdata source file
// and concatenates their zone, rule, and link lines into one Database.
func loadDatabase(dir string) (tzc.Database, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return tzc.Database{}, fmt.Errorf("reading tzdata directory %q: %w", dir, err)
	}

	var db tzc.Database
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return tzc.Database{}, fmt.Errorf("opening %q: %w", path, err)
		}
		file, err := tzdata.Parse(f)
		_ = f.Close()
		if err != nil {
			return tzc.Database{}, fmt.Errorf("parsing %q: %w", path, err)
		}
		db.ZoneLines = append(db.ZoneLines, file.ZoneLines...)
		db.RuleLines = append(db.RuleLines, file.RuleLines...)
		db.LinkLines = append(db.LinkLines, file.LinkLines...)
	}
	return db, nil
}

// buildIndex loads and compiles the tzdata directory named by the
// --tzdata-dir flag into a ready-to-query PeriodIndex.
func buildIndex(ctx context.Context) (*index.PeriodIndex, error) {
	db, err := loadDatabase(tzdataDir())
	if err != nil {
		return nil, err
	}
	return compileDatabase(ctx, db)
}

func compileDatabase(ctx context.Context, db tzc.Database) (*index.PeriodIndex, error) {
	extender := index.NewExtender(viper.GetDuration("extend-ttl"))
	ix, err := tzc.Compile(ctx, db, extender)
	if err != nil {
		return nil, fmt.Errorf("compiling tzdata: %w", err)
	}
	return ix, nil
}
