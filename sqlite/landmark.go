package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/litmap"
)

// Compile-time interface verification.
var _ litmap.LandmarkService = (*LandmarkService)(nil)

// LandmarkService implements litmap.LandmarkService using SQLite.
type LandmarkService struct {
	db *DB
}

// NewLandmarkService creates a new LandmarkService.
func NewLandmarkService(db *DB) *LandmarkService {
	return &LandmarkService{db: db}
}

// landmarkHash identifies a location within a book regardless of the ID the
// backend assigned to it.
func landmarkHash(l *litmap.Landmark) string {
	h := xxhash.Sum64String(fmt.Sprintf("%s\x00%s\x00%.5f\x00%.5f", l.Book, l.Title, l.Coordinates.Lng, l.Coordinates.Lat))
	return fmt.Sprintf("%016x", h)
}

// CreateLandmarks stores landmarks in a single transaction. Landmarks whose
// content hash is already stored are skipped. IDs that collide with curated
// or stored landmarks are suffixed with part of the content hash.
func (s *LandmarkService) CreateLandmarks(ctx context.Context, landmarks []*litmap.Landmark) (int, error) {
	for _, l := range landmarks {
		if l.ID == "" {
			l.ID = "lm-" + landmarkHash(l)[:8]
		}
		if err := l.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	curatedIDs := make(map[string]bool)
	for _, l := range litmap.CuratedLandmarks() {
		curatedIDs[l.ID] = true
	}

	now := time.Now().UTC()
	var saved int
	for _, l := range landmarks {
		hash := landmarkHash(l)

		var exists int
		err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM landmarks WHERE content_hash = ?", hash).Scan(&exists)
		if err != nil {
			return 0, err
		}
		if exists > 0 {
			continue
		}

		id := l.ID
		taken := curatedIDs[id]
		if !taken {
			if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM landmarks WHERE id = ?", id).Scan(&exists); err != nil {
				return 0, err
			}
			taken = exists > 0
		}
		if taken {
			id = id + "-" + hash[:6]
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO landmarks (id, title, book, era, year, quote, historical_context, mood, relevance, rank, lng, lat, content_hash, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, l.Title, l.Book, l.Era, l.Year, l.Quote, l.HistoricalContext, l.Mood, l.Relevance, l.Rank,
			l.Coordinates.Lng, l.Coordinates.Lat, hash, formatTimestamp(now))
		if err != nil {
			return 0, err
		}

		l.ID = id
		l.Source = litmap.SourceImport
		l.ContentHash = hash
		l.CreatedAt = now
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return saved, nil
}

const landmarkColumns = "id, title, book, era, year, quote, historical_context, mood, relevance, rank, lng, lat, content_hash, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLandmark(row rowScanner) (*litmap.Landmark, error) {
	var l litmap.Landmark
	var createdAt string
	if err := row.Scan(&l.ID, &l.Title, &l.Book, &l.Era, &l.Year, &l.Quote, &l.HistoricalContext, &l.Mood,
		&l.Relevance, &l.Rank, &l.Coordinates.Lng, &l.Coordinates.Lat, &l.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if l.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	l.Source = litmap.SourceImport
	return &l, nil
}

// FindLandmarkByID retrieves a landmark by ID.
func (s *LandmarkService) FindLandmarkByID(ctx context.Context, id string) (*litmap.Landmark, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+landmarkColumns+" FROM landmarks WHERE id = ?", id)
	l, err := scanLandmark(row)
	if err == sql.ErrNoRows {
		return nil, litmap.Errorf(litmap.ENOTFOUND, "landmark not found")
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// FindLandmarks retrieves landmarks matching the filter in import order.
func (s *LandmarkService) FindLandmarks(ctx context.Context, filter litmap.LandmarkFilter) ([]*litmap.Landmark, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + landmarkColumns + " FROM landmarks WHERE 1=1")

	if filter.Era != nil {
		query.WriteString(" AND era = ?")
		args = append(args, *filter.Era)
	}
	if filter.Book != nil {
		query.WriteString(" AND book = ?")
		args = append(args, *filter.Book)
	}
	if filter.FromYear != nil {
		query.WriteString(" AND year >= ?")
		args = append(args, *filter.FromYear)
	}
	if filter.ToYear != nil {
		query.WriteString(" AND year <= ?")
		args = append(args, *filter.ToYear)
	}

	query.WriteString(" ORDER BY rowid ASC")
	if filter.Offset > 0 && filter.Limit <= 0 {
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var landmarks []*litmap.Landmark
	for rows.Next() {
		l, err := scanLandmark(rows)
		if err != nil {
			return nil, err
		}
		landmarks = append(landmarks, l)
	}

	return landmarks, rows.Err()
}

// FindBooks lists imported books in import order.
func (s *LandmarkService) FindBooks(ctx context.Context) ([]*litmap.BookSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT book, COUNT(*), GROUP_CONCAT(DISTINCT era), MIN(created_at)
		FROM landmarks
		GROUP BY book
		ORDER BY MIN(rowid) ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*litmap.BookSummary
	for rows.Next() {
		var b litmap.BookSummary
		var eras, createdAt string
		if err := rows.Scan(&b.Title, &b.Landmarks, &eras, &createdAt); err != nil {
			return nil, err
		}
		if b.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		b.Eras = strings.Split(eras, ",")
		slices.Sort(b.Eras)
		books = append(books, &b)
	}

	return books, rows.Err()
}

// DeleteLandmarksByBook removes every landmark imported for a book.
func (s *LandmarkService) DeleteLandmarksByBook(ctx context.Context, book string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM landmarks WHERE book = ?", book)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, litmap.Errorf(litmap.ENOTFOUND, "book %q has no imported landmarks", book)
	}
	return int(n), nil
}
