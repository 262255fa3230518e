package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// SetupSchema creates the corpus table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaTexts = `
CREATE TABLE IF NOT EXISTS corpus_texts (
    text_id INTEGER PRIMARY KEY,
    text_name TEXT NOT NULL UNIQUE,
    body TEXT NOT NULL,
    added_at INTEGER NOT NULL
);
`
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaTexts); err != nil {
		return fmt.Errorf("could not create corpus schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// TextInfo describes a stored text without its body.
type TextInfo struct {
	Id      int
	Name    string
	Length  int // in characters
	AddedAt time.Time
}

// Store reads and writes named texts. It holds prepared statements and must
// be closed when no longer needed.
type Store struct {
	stmtGetText    *sql.Stmt
	stmtUpsertText *sql.Stmt
	stmtListTexts  *sql.Stmt
	stmtRemoveText *sql.Stmt
	logger         *slog.Logger
}

// NewStore prepares all statements against db. SetupSchema must have been
// called on db first.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	var err error
	// Statements prepared before a failure are released by Close.
	if s.stmtGetText, err = db.Prepare(`SELECT body FROM corpus_texts WHERE text_name = ?;`); err != nil {
		s.Close()
		return nil, err
	}

	if s.stmtUpsertText, err = db.Prepare(`INSERT INTO corpus_texts (text_name, body, added_at) VALUES (?, ?, ?) ON CONFLICT(text_name) DO UPDATE SET body = excluded.body, added_at = excluded.added_at;`); err != nil {
		s.Close()
		return nil, err
	}

	if s.stmtListTexts, err = db.Prepare(`SELECT text_id, text_name, length(body), added_at FROM corpus_texts ORDER BY text_name;`); err != nil {
		s.Close()
		return nil, err
	}

	if s.stmtRemoveText, err = db.Prepare(`DELETE FROM corpus_texts WHERE text_name = ?;`); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the prepared statements. It is safe to call on a Store
// whose construction failed part way.
func (s *Store) Close() {
	for _, stmt := range []*sql.Stmt{s.stmtGetText, s.stmtUpsertText, s.stmtListTexts, s.stmtRemoveText} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Add reads r to the end and stores it under name, replacing any text already
// stored with that name.
func (s *Store) Add(ctx context.Context, name string, r io.Reader) error {
	if name == "" {
		return ErrInvalidName
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read text '%s': %w", name, err)
	}
	if _, err = s.stmtUpsertText.ExecContext(ctx, name, string(data), time.Now().Unix()); err != nil {
		return fmt.Errorf("could not store text '%s': %w", name, err)
	}

	s.logger.InfoContext(ctx, "Text added to corpus",
		slog.String("text_name", name),
		slog.Int("bytes", len(data)),
	)
	return nil
}

// Get returns the body stored under name.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var body string
	err := s.stmtGetText.QueryRowContext(ctx, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: '%s'", ErrTextNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("could not load text '%s': %w", name, err)
	}
	return body, nil
}

// Open is like Get but returns the body as a reader, ready for
// markov.NewFromReader.
func (s *Store) Open(ctx context.Context, name string) (io.Reader, error) {
	body, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(body), nil
}

// List returns every stored text ordered by name.
func (s *Store) List(ctx context.Context) ([]TextInfo, error) {
	rows, err := s.stmtListTexts.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var texts []TextInfo
	for rows.Next() {
		var info TextInfo
		var addedAt int64
		if err = rows.Scan(&info.Id, &info.Name, &info.Length, &addedAt); err != nil {
			return nil, err
		}
		info.AddedAt = time.Unix(addedAt, 0)
		texts = append(texts, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

// Remove deletes the text stored under name.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.stmtRemoveText.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("could not remove text '%s': %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not confirm removal of text '%s': %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: '%s'", ErrTextNotFound, name)
	}

	s.logger.InfoContext(ctx, "Text removed from corpus",
		slog.String("text_name", name),
	)
	return nil
}
