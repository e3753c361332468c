// main.go
//
// Entry point for wordle-assist.
// Modes:
//   - default: serve the HTTP session API.
//   - -play:  interactive terminal assistant (play.go).
//   - -import-freq FILE: load a "word zipf" file into the commonality
//     database and exit (importfreq.go).
//
// Environment variables:
//   LOG_LEVEL       zerolog level (default "info")
//   PORT            HTTP listen port (default "8080")
//   WORDS_FILE      dictionary file (default: embedded list)
//   COMMONALITY_DB  SQLite commonality database (default: embedded table)
//   JWT_SECRET      enables session tokens on the API when set

package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lexio/wordle-assist/assets"
	"github.com/lexio/wordle-assist/internal/commonality"
	"github.com/lexio/wordle-assist/internal/httpserver"
	"github.com/lexio/wordle-assist/internal/solver"
	"github.com/lexio/wordle-assist/internal/store"
	"github.com/lexio/wordle-assist/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		play       bool
		k          int
		importFreq string
	)
	flag.BoolVar(&play, "play", false, "run the interactive assistant instead of the HTTP service")
	flag.IntVar(&k, "k", 4, "number of recommendations per turn in -play mode")
	flag.StringVar(&importFreq, "import-freq", "", "import a \"word zipf\" file into the commonality database and exit")
	flag.Parse()

	if importFreq != "" {
		if err := runImport(importFreq); err != nil {
			log.Fatal().Err(err).Str("file", importFreq).Msg("import failed")
		}
		return
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	oracle, cleanup, err := openOracle()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open commonality lookup")
	}
	defer cleanup()

	if play {
		if err := runPlay(words.Dictionary(), oracle, k); err != nil {
			log.Fatal().Err(err).Msg("assistant exited")
		}
		return
	}

	srv := httpserver.New(store.NewMemoryStore(), words.Dictionary(), oracle)
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Int("dictionary", words.Count()).Msg("starting wordle-assist")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openOracle picks the commonality backend: the SQLite database named by
// COMMONALITY_DB, or the embedded static table.
func openOracle() (solver.Commonality, func(), error) {
	if dsn := os.Getenv("COMMONALITY_DB"); dsn != "" {
		db, err := commonality.Open(dsn)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("db", dsn).Msg("using sqlite commonality lookup")
		return db, func() { _ = db.Close() }, nil
	}

	lines, err := assets.ZipfLines()
	if err != nil {
		return nil, nil, err
	}
	table, err := commonality.ParseLines(lines)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Int("words", len(table)).Msg("using embedded commonality table")
	return table, func() {}, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
