package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/readme-games/omok-engine/internal/entity"
)

// MoveRecord - one accepted move as archived in the history log. The log
// is purely additive bookkeeping; engine correctness never depends on it.
type MoveRecord struct {
	MoveNumber  int
	Color       string
	Coordinate  entity.Coordinate
	RawTitle    string
	IssueNumber int
	PlayedAt    time.Time
}

type HistoryRepository interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, record *MoveRecord) error
	Recent(ctx context.Context, limit int) ([]MoveRecord, error)
}

type sqliteHistory struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &sqliteHistory{
		db: db,
	}
}

func (that *sqliteHistory) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS moves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		move_number INTEGER NOT NULL,
		color TEXT NOT NULL,
		board_col INTEGER NOT NULL,
		board_row INTEGER NOT NULL,
		raw_title TEXT NOT NULL,
		issue_number INTEGER NOT NULL,
		played_at TIMESTAMP NOT NULL
	)`

	if _, err := that.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create moves table: %w", err)
	}

	return nil
}

func (that *sqliteHistory) Append(ctx context.Context, record *MoveRecord) error {
	query := `INSERT INTO moves (move_number, color, board_col, board_row, raw_title, issue_number, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := that.db.ExecContext(ctx, query,
		record.MoveNumber,
		record.Color,
		record.Coordinate.Col,
		record.Coordinate.Row,
		record.RawTitle,
		record.IssueNumber,
		record.PlayedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to append move record: %w", err)
	}

	return nil
}

func (that *sqliteHistory) Recent(ctx context.Context, limit int) ([]MoveRecord, error) {
	query := `SELECT move_number, color, board_col, board_row, raw_title, issue_number, played_at
		FROM moves ORDER BY id DESC LIMIT ?`

	rows, err := that.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query move records: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var record MoveRecord
		if err = rows.Scan(
			&record.MoveNumber,
			&record.Color,
			&record.Coordinate.Col,
			&record.Coordinate.Row,
			&record.RawTitle,
			&record.IssueNumber,
			&record.PlayedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan move record: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read move records: %w", err)
	}

	return records, nil
}
