package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/CTAG07/kgram/pkg/corpus"
	"github.com/CTAG07/kgram/pkg/markov"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	errNoSource          = errors.New("one of --file or --corpus is required")
	errConflictingSource = errors.New("--file and --corpus cannot be combined")
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, builds a model from the requested source and prints its
// diagnostics to stdout. It never generates text beyond a single sample.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	config, err := LoadConfig(flags.config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.changed("order") {
		config.Order = flags.order
	}
	if flags.changed("seed") {
		config.Seed = flags.seed
	}
	if flags.changed("db") {
		config.DatabasePath = flags.dbPath
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))
	logger.Debug("Starting kgram", "version", Version, "commit", Commit, "build_date", BuildDate)

	var store *corpus.Store
	if flags.list || flags.importName != "" || flags.corpus != "" {
		var db *sql.DB
		db, store, err = openCorpus(config.DatabasePath, logger)
		if err != nil {
			return err
		}
		defer func() {
			store.Close()
			_ = db.Close()
		}()
	}

	switch {
	case flags.list:
		return listCorpus(ctx, store, stdout)
	case flags.importName != "":
		return importFile(ctx, store, flags.importName, flags.file)
	}

	opts := []markov.Option{markov.WithLogger(logger)}
	if config.Seed != 0 {
		opts = append(opts, markov.WithRand(rand.New(rand.NewPCG(config.Seed, config.Seed))))
	}

	var model *markov.Model
	switch {
	case flags.file != "" && flags.corpus != "":
		return errConflictingSource
	case flags.file != "":
		model, err = markov.NewFromFile(config.Order, flags.file, opts...)
	case flags.corpus != "":
		var r io.Reader
		if r, err = store.Open(ctx, flags.corpus); err != nil {
			return err
		}
		model, err = markov.NewFromReader(config.Order, r, opts...)
	default:
		return errNoSource
	}
	if err != nil {
		if !errors.Is(err, markov.ErrSourceUnavailable) || model == nil {
			return err
		}
		// Unreadable sources leave an empty model; report it and carry on.
		logger.Warn("Continuing with empty model", "error", err)
	}

	printModel(model, flags.dump, stdout)
	return nil
}

func openCorpus(path string, logger *slog.Logger) (*sql.DB, *corpus.Store, error) {
	db, err := initDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open corpus database: %w", err)
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup corpus schema: %w", err)
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create corpus store: %w", err)
	}
	store.SetLogger(logger)
	return db, store, nil
}

func importFile(ctx context.Context, store *corpus.Store, name, path string) error {
	if path == "" {
		return errors.New("--import needs --file")
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	return store.Add(ctx, name, f)
}

func listCorpus(ctx context.Context, store *corpus.Store, w io.Writer) error {
	texts, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list corpus: %w", err)
	}
	for _, t := range texts {
		fmt.Fprintf(w, "%s\t%d\t%s\n", t.Name, t.Length, t.AddedAt.UTC().Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

func printModel(model *markov.Model, dump bool, w io.Writer) {
	st := model.Stats()
	fmt.Fprintf(w, "order: %d\n", st.Order)
	fmt.Fprintf(w, "first: %q\n", model.FirstKgram())
	fmt.Fprintf(w, "kgrams: %d\n", st.Kgrams)
	fmt.Fprintf(w, "transitions: %d\n", st.Transitions)
	fmt.Fprintf(w, "dead ends: %d\n", st.DeadEnds)

	if kgram, err := model.RandomKgram(); err == nil {
		if c, err := model.NextChar(kgram); err == nil {
			fmt.Fprintf(w, "sample: %q -> %q\n", kgram, c)
		}
	}
	if dump {
		fmt.Fprintln(w, model.String())
	}
}
