package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/palavradodia/go-server/assets"
	"github.com/palavradodia/go-server/internal/challenge"
	"github.com/palavradodia/go-server/internal/config"
	"github.com/palavradodia/go-server/internal/game"
	"github.com/palavradodia/go-server/internal/httpserver"
	"github.com/palavradodia/go-server/internal/lexicon"
	"github.com/palavradodia/go-server/internal/similarity"
	"github.com/palavradodia/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	loc, err := time.LoadLocation(cfg.ChallengeTZ)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.ChallengeTZ).Msg("load challenge time zone")
	}
	clock := challenge.NewClock(loc)

	lex, err := lexicon.Load(cfg.DictionaryFile, cfg.AnswersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load lexicon")
	}

	emb, err := loadEmbeddings(cfg.EmbeddingsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load embeddings")
	}
	log.Info().Int("words", lex.Size()).Int("vectors", emb.Len()).Int("dim", emb.Dim()).Msg("word data loaded")

	// Only scoreable words may become a day's secret.
	answers := lo.Filter(lex.Answers(), func(w string, _ int) bool { return emb.Has(w) })
	secrets, err := challenge.NewSecretProvider(cfg.ChallengeSalt, answers)
	if err != nil {
		log.Fatal().Err(err).Msg("build secret provider")
	}
	log.Info().Int("pool", secrets.PoolSize()).Str("day", clock.DayKey()).Msg("challenge ready")

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	engine := game.New(clock, secrets, emb, lex, store.NewCompletionStore(db))

	srv := httpserver.New(httpserver.Options{
		Engine:      engine,
		Clock:       clock,
		Config:      cfg,
		LexiconSize: lex.Size(),
		ModelWords:  emb.Len(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting palavra-do-dia server")
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server shutdown complete")
}

// loadEmbeddings reads the configured vector table, or the embedded
// demo table when no path is set.
func loadEmbeddings(path string) (*similarity.Embeddings, error) {
	if path != "" {
		return similarity.Open(path)
	}
	log.Warn().Msg("EMBEDDINGS_FILE not set, using embedded demo vectors")
	f, err := assets.DemoVectors()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return similarity.Read(f)
}
