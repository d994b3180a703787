package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"eventsBoard/internal/config"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"fmt"
	"github.com/lib/pq"
	"time"
)

const uniqueViolation = "23505"

// Storage talks to the project database directly. Connections authenticate as a database
// role, so row level security does not apply and tokens are ignored.
type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", ConnString(dbCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func ConnString(dbCfg *config.Database) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

const eventColumns = `id, title, description, category, date::text, "endDate"::text, location,
	link, "imageUrl", organizer, status, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event     models.Event
		endDate   sql.NullString
		imageURL  sql.NullString
		location  []byte
		createdAt time.Time
	)

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Date,
		&endDate,
		&location,
		&event.Link,
		&imageURL,
		&event.Organizer,
		&event.Status,
		&createdAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	if len(location) > 0 {
		if err := json.Unmarshal(location, &event.Location); err != nil {
			return models.Event{}, fmt.Errorf("failed to decode location: %w", err)
		}
	}

	event.EndDate = endDate.String
	event.ImageURL = imageURL.String
	event.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	return event, nil
}

// ListEvents returns every row. The connection has no end-user identity, so status
// visibility is left to the caller.
func (s *Storage) ListEvents(ctx context.Context, _ string) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) CreateEvent(ctx context.Context, _ string, in models.EventInput) (models.Event, error) {
	location, err := json.Marshal(in.Location)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to encode location: %w", err)
	}

	query := `
		INSERT INTO events (title, description, category, date, "endDate", location, link, "imageUrl", organizer, status)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::date, $6, $7, NULLIF($8, ''), $9, $10)
		RETURNING ` + eventColumns

	row := s.DB.QueryRowContext(ctx, query,
		in.Title,
		in.Description,
		in.Category,
		in.Date,
		in.EndDate,
		location,
		in.Link,
		in.ImageURL,
		in.Organizer,
		models.StatusPending,
	)

	event, err := scanEvent(row)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// UpdateEventStatus overwrites the status. An unknown id is not an error.
func (s *Storage) UpdateEventStatus(ctx context.Context, _ string, id string, status models.EventStatus) error {
	_, err := s.DB.ExecContext(ctx, `UPDATE events SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	return nil
}

func (s *Storage) DeleteEvent(ctx context.Context, _ string, id string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (s *Storage) ListCategories(ctx context.Context, _ string) ([]models.Category, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, slug, description, color FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var (
			c           models.Category
			description sql.NullString
			color       sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &description, &color); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Description = description.String
		c.Color = color.String
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (s *Storage) CreateCategory(ctx context.Context, _ string, in models.CategoryInput) (models.Category, error) {
	query := `
		INSERT INTO categories (name, slug, description, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, slug, description, color`

	var c models.Category
	err := s.DB.QueryRowContext(ctx, query, in.Name, in.Slug, in.Description, in.Color).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Category{}, storage.ErrCategoryExists
		}
		return models.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return c, nil
}

func (s *Storage) DeleteCategory(ctx context.Context, _ string, id string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// Exec runs a multi-statement script in one transaction.
func (s *Storage) Exec(ctx context.Context, script string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("failed to execute script: %w", err)
	}

	return tx.Commit()
}

// Tables checked by TableCounts.
var Tables = []string{"users", "categories", "events"}

// TableCounts returns row counts per table. A table that cannot be read maps to its error.
func (s *Storage) TableCounts(ctx context.Context) (map[string]int64, map[string]error) {
	counts := make(map[string]int64, len(Tables))
	failures := make(map[string]error)

	for _, table := range Tables {
		var n int64
		err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+pq.QuoteIdentifier(table)).Scan(&n)
		if err != nil {
			failures[table] = err
			continue
		}
		counts[table] = n
	}

	return counts, failures
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
