package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/reviewpulse/reviewpulse/internal/domain"
)

// ReviewRepository owns the persisted history of accepted classifications.
// The table is append-only: no update or delete operations are exposed, and
// id assignment is serialized by the database.
type ReviewRepository struct {
	db     *sqlx.DB
	driver string
}

// NewReviewRepository creates a new review history repository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db, driver: db.DriverName()}
}

// HistoryStats summarizes the persisted history.
type HistoryStats struct {
	TotalClassified int                           `json:"total_classified"`
	AvgConfidence   float64                       `json:"avg_confidence"`
	Sentiments      map[domain.SentimentLabel]int `json:"sentiments"`
}

// EnsureSchema creates the reviews table if it does not exist. Absence of
// the table afterwards is a fatal startup condition, so errors are not
// retried here.
func (r *ReviewRepository) EnsureSchema(ctx context.Context) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.driver == DriverPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS reviews (
			id %s,
			review TEXT NOT NULL,
			sentiment TEXT NOT NULL,
			confidence REAL NOT NULL,
			timestamp TEXT NOT NULL
		)
	`, idColumn)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create reviews table: %w", err)
	}
	return nil
}

// Append inserts a history record and returns its assigned id. The id is
// also written back into record.ID.
func (r *ReviewRepository) Append(ctx context.Context, record *domain.HistoryRecord) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO reviews (review, sentiment, confidence, timestamp)
		VALUES (?, ?, ?, ?)
	`)

	if r.driver == DriverPostgres {
		err := r.db.QueryRowContext(ctx, query+" RETURNING id",
			record.Review, record.Sentiment, record.Confidence, record.Timestamp,
		).Scan(&record.ID)
		if err != nil {
			return 0, fmt.Errorf("append history record: %w", err)
		}
		return record.ID, nil
	}

	res, err := r.db.ExecContext(ctx, query,
		record.Review, record.Sentiment, record.Confidence, record.Timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("append history record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read assigned history id: %w", err)
	}
	record.ID = id
	return id, nil
}

// List returns all history records, newest first.
func (r *ReviewRepository) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	records := []domain.HistoryRecord{}
	query := `
		SELECT id, review, sentiment, confidence, timestamp
		FROM reviews
		ORDER BY id DESC
	`

	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list history records: %w", err)
	}
	return records, nil
}

// Stats aggregates the history: total count, average confidence, and a
// per-sentiment breakdown.
func (r *ReviewRepository) Stats(ctx context.Context) (*HistoryStats, error) {
	stats := &HistoryStats{Sentiments: make(map[domain.SentimentLabel]int)}

	query := `
		SELECT COUNT(*), COALESCE(AVG(confidence), 0)
		FROM reviews
	`
	if err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalClassified, &stats.AvgConfidence); err != nil {
		return nil, fmt.Errorf("aggregate history stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT sentiment, COUNT(*)
		FROM reviews
		GROUP BY sentiment
	`)
	if err != nil {
		return nil, fmt.Errorf("aggregate sentiment distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sentiment domain.SentimentLabel
		var count int
		if err := rows.Scan(&sentiment, &count); err != nil {
			return nil, fmt.Errorf("scan sentiment count: %w", err)
		}
		stats.Sentiments[sentiment] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sentiment counts: %w", err)
	}

	return stats, nil
}
