package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordorder-go/internal/audio"
	"wordorder-go/internal/config"
	"wordorder-go/internal/game"
	"wordorder-go/internal/sentences"
	"wordorder-go/internal/store"
	"wordorder-go/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("wordorder exited")
		fmt.Fprintf(os.Stderr, "wordorder: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	listDecks := flag.Bool("list-decks", false, "print the decks in the library and exit")
	flag.StringVar(&cfg.Game.SentencesFile, "file", cfg.Game.SentencesFile, "JSON sentence file to import at start")
	flag.StringVar(&cfg.Library.Path, "library", cfg.Library.Path, "sqlite deck library (empty disables it)")
	flag.StringVar(&cfg.Library.Deck, "deck", cfg.Library.Deck, "library deck to play")
	flag.DurationVar(&cfg.Game.CompletionDelay, "delay", cfg.Game.CompletionDelay, "pause after a solved sentence")
	flag.BoolVar(&cfg.Audio.Enabled, "audio", cfg.Audio.Enabled, "play sound cues and speak words")
	flag.Int64Var(&cfg.Game.Seed, "seed", cfg.Game.Seed, "shuffle seed (0 uses the clock)")
	flag.Parse()

	closeLog, err := setupLogging(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	defaults, err := sentences.Default()
	if err != nil {
		return fmt.Errorf("failed to load default sentences: %w", err)
	}

	var library *store.Store
	if cfg.LibraryEnabled() {
		library, err = openLibrary(cfg.Library.Path)
		if err != nil {
			return err
		}
		defer library.Close()
	}

	if *listDecks {
		if library == nil {
			return errors.New("-list-decks needs a library (-library or WORDORDER_LIBRARY)")
		}
		return printDecks(os.Stdout, library)
	}

	sink := audio.New(audio.Options{Enabled: cfg.Audio.Enabled, Lang: cfg.Audio.SpeechLang}, log.Logger)
	if c, ok := sink.(io.Closer); ok {
		defer c.Close()
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	queue := &game.Queue{}
	g := game.New(game.Options{
		Defaults:  defaults,
		Sink:      sink,
		Scheduler: queue,
		Delay:     cfg.Game.CompletionDelay,
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    log.Logger,
	})
	log.Info().Str("session", g.ID).Int64("seed", seed).Dur("delay", cfg.Game.CompletionDelay).Msg("starting wordorder")

	opts := tui.Options{Game: g, Queue: queue, Library: library, Logger: log.Logger}
	opts.Notice, opts.NoticeIsError = startSession(g, library, cfg)
	if cfg.Game.SentencesFile != "" {
		opts.StartDir = filepath.Dir(cfg.Game.SentencesFile)
	}

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func setupLogging(cfg config.LoggingConfig) (func(), error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// The terminal belongs to the TUI, so logs only go to a file.
	if cfg.File == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

func openLibrary(path string) (*store.Store, error) {
	library, err := store.Open(path, log.Logger)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := library.Migrate(ctx); err != nil {
		library.Close()
		return nil, err
	}
	return library, nil
}

func printDecks(w io.Writer, library *store.Store) error {
	decks, err := library.ListDecks(context.Background())
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		fmt.Fprintln(w, "No decks in the library yet.")
		return nil
	}
	for _, d := range decks {
		fmt.Fprintf(w, "%-24s %4d sentences  imported %s\n", d.Name, d.Count, d.ImportedAt.Format(time.DateTime))
	}
	return nil
}

// startSession begins the first round from the startup file, the chosen
// deck or the defaults, in that order. It returns a notice for the first
// frame.
func startSession(g *game.Game, library *store.Store, cfg *config.Config) (string, bool) {
	if path := cfg.Game.SentencesFile; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to read sentence file")
			g.Start()
			return fmt.Sprintf("Could not read %s. Playing the default sentences.", filepath.Base(path)), true
		}
		if err := g.Import(data); err != nil {
			return fmt.Sprintf("Invalid JSON file %s. Playing the default sentences.", filepath.Base(path)), true
		}
		if library != nil {
			name := store.DeckName(path)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if _, err := library.SaveDeck(ctx, name, g.Session().Sentences()); err != nil {
				log.Error().Err(err).Str("deck", name).Msg("failed to save deck")
			}
		}
		return fmt.Sprintf("Imported %d sentences from %s.", g.Session().Len(), filepath.Base(path)), false
	}

	if cfg.Library.Deck != "" && library == nil {
		log.Warn().Str("deck", cfg.Library.Deck).Msg("deck requested without a library, ignoring")
	}
	if name := cfg.Library.Deck; name != "" && library != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deck, err := library.LoadDeck(ctx, name)
		if err != nil {
			log.Error().Err(err).Str("deck", name).Msg("failed to load deck")
			g.Start()
			return fmt.Sprintf("Deck %q is not available. Playing the default sentences.", name), true
		}
		g.Load(deck.Sentences)
		return fmt.Sprintf("Playing deck %q.", deck.Name), false
	}

	g.Start()
	return "", false
}
