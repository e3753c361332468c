// importfreq.go
//
// One-shot importer for word-frequency data: loads a "word zipf" text file
// into the SQLite commonality database named by COMMONALITY_DB.

package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lexio/wordle-assist/internal/commonality"
)

const importTimeout = 5 * time.Minute

// runImport opens the commonality database and bulk-loads path into it.
func runImport(path string) error {
	dsn := getEnv("COMMONALITY_DB", "./data/commonality.db")
	db, err := commonality.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	n, err := db.ImportFile(ctx, path)
	if err != nil {
		return err
	}
	log.Info().Str("db", dsn).Str("file", path).Int("words", n).Msg("frequency table imported")
	return nil
}
