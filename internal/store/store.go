package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"car-market-backend/internal/models"
)

var (
	// ErrNotFound is returned when a point lookup or delete matches no row.
	ErrNotFound = errors.New("submission not found")

	// ErrInvalidSubmission is the backstop for missing required fields.
	// Callers validate payloads before reaching the store, but the store
	// still refuses rows that would violate its NOT NULL constraints.
	ErrInvalidSubmission = errors.New("submission is missing required fields")
)

type SubmissionStore struct {
	db *sql.DB
}

func New(connectionString string) (*SubmissionStore, error) {
	db, err := sql.Open("postgres", withDefaultSSLMode(connectionString))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SubmissionStore{db: db}, nil
}

// withDefaultSSLMode appends sslmode=require when the connection string
// does not choose one. Managed Postgres offerings terminate TLS with
// certificates that do not verify against the system pool, so "require"
// (encrypted, unverified) matches what the hosting side expects.
func withDefaultSSLMode(connectionString string) string {
	if strings.Contains(connectionString, "sslmode=") {
		return connectionString
	}
	u, err := url.Parse(connectionString)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return connectionString
	}
	q := u.Query()
	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SubmissionStore) Create(sub *models.Submission) (int64, error) {
	if sub.Server == "" || sub.Car == "" || sub.Price == 0 || sub.PhotoFileID == "" {
		return 0, ErrInvalidSubmission
	}

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO submissions (user_id, user_name, server, car, price, photo_file_id, file_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, sub.UserID, sub.UserName, sub.Server, sub.Car, sub.Price, sub.PhotoFileID, sub.FilePath).Scan(
		&id, &sub.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create submission: %w", err)
	}

	sub.ID = id
	sub.Status = models.StatusPending
	return id, nil
}

func (s *SubmissionStore) ListPending() ([]models.Submission, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, user_name, server, car, price, photo_file_id, file_path, status, created_at
		FROM submissions
		WHERE status = 'pending'
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var sub models.Submission
		err := rows.Scan(
			&sub.ID, &sub.UserID, &sub.UserName, &sub.Server, &sub.Car,
			&sub.Price, &sub.PhotoFileID, &sub.FilePath, &sub.Status, &sub.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	return submissions, nil
}

func (s *SubmissionStore) Get(id int64) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.QueryRow(`
		SELECT id, user_id, user_name, server, car, price, photo_file_id, file_path, status, created_at
		FROM submissions
		WHERE id = $1
	`, id).Scan(
		&sub.ID, &sub.UserID, &sub.UserName, &sub.Server, &sub.Car,
		&sub.Price, &sub.PhotoFileID, &sub.FilePath, &sub.Status, &sub.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &sub, nil
}

// Delete removes a submission row. The row-level atomicity of a single
// DELETE is what guarantees that concurrent approve/reject on the same id
// resolve to exactly one winner: the loser sees ErrNotFound.
func (s *SubmissionStore) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SubmissionStore) Close() error {
	return s.db.Close()
}
