// Package share queues gallery templates for delivery to an inbox, so a
// browsed template can be tried in a real email client.
package share

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"maragu.dev/goqite"
)

// Job is one template queued for delivery.
type Job struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Language  string    `json:"language"`
	Recipient string    `json:"recipient"`
	CreatedAt time.Time `json:"created_at"`
}

// Status describes the tracked delivery state of a share.
type Status struct {
	ID        string
	Subject   string
	Recipient string
	Language  string
	State     string
	Attempts  int
	Error     string
	CreatedAt time.Time
}

// Queue manages share jobs using goqite, with a tracking table for status
// lookups.
type Queue struct {
	db    *sql.DB
	queue *goqite.Queue
}

// NewQueue creates the share queue over an open database.
func NewQueue(db *sql.DB, maxAttempts int) (*Queue, error) {
	if err := goqite.Setup(context.Background(), db); err != nil {
		return nil, fmt.Errorf("setup goqite: %w", err)
	}

	q := goqite.New(goqite.NewOpts{
		DB:   db,
		Name: "shares",
	})

	if maxAttempts > 0 {
		if _, err := db.Exec("UPDATE shares SET max_attempts = ? WHERE status = 'pending'", maxAttempts); err != nil {
			return nil, fmt.Errorf("update pending max attempts: %w", err)
		}
	}

	return &Queue{db: db, queue: q}, nil
}

// Enqueue adds a share job to the queue and records it as pending.
func (q *Queue) Enqueue(ctx context.Context, job Job, maxAttempts int) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	job.CreatedAt = time.Now()

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	if err := q.queue.Send(ctx, goqite.Message{Body: body}); err != nil {
		return "", fmt.Errorf("send to queue: %w", err)
	}

	_, err = q.db.ExecContext(ctx, `
		INSERT INTO shares (id, subject, recipient, language, status, attempts, max_attempts, created_at)
		VALUES (?, ?, ?, ?, 'pending', 0, ?, CURRENT_TIMESTAMP)
	`, job.ID, job.Subject, job.Recipient, job.Language, maxAttempts)
	if err != nil {
		return "", fmt.Errorf("track share: %w", err)
	}

	return job.ID, nil
}

// Receive gets the next job from the queue. Returns nil without error when
// nothing is waiting.
func (q *Queue) Receive(ctx context.Context) (*Job, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job Job
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal job: %w", err)
	}

	return &job, msg, nil
}

// Delete removes a message from the queue (job finished, sent or given up).
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}

// Extend extends the processing timeout for a message.
func (q *Queue) Extend(ctx context.Context, msg *goqite.Message, d time.Duration) error {
	return q.queue.Extend(ctx, msg.ID, d)
}

// MarkSent records a successful delivery.
func (q *Queue) MarkSent(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE shares
		SET status = 'sent', sent_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP,
		    attempts = attempts + 1
		WHERE id = ?
	`, id)
	return err
}

// MarkFailed records a permanent failure.
func (q *Queue) MarkFailed(ctx context.Context, id, reason string) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE shares
		SET status = 'failed', error = ?, updated_at = CURRENT_TIMESTAMP,
		    attempts = attempts + 1
		WHERE id = ?
	`, reason, id)
	return err
}

// MarkRetry records a transient failure; the queue will redeliver the job.
func (q *Queue) MarkRetry(ctx context.Context, id, reason string) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE shares
		SET status = 'retry', error = ?, updated_at = CURRENT_TIMESTAMP,
		    attempts = attempts + 1
		WHERE id = ?
	`, reason, id)
	return err
}

// GetStatus returns the tracked state of a share by ID, or nil when unknown.
func (q *Queue) GetStatus(ctx context.Context, id string) (*Status, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, subject, recipient, language, status, attempts, error, created_at
		FROM shares WHERE id = ?
	`, id)

	var s Status
	var errStr sql.NullString
	err := row.Scan(&s.ID, &s.Subject, &s.Recipient, &s.Language, &s.State, &s.Attempts, &errStr, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if errStr.Valid {
		s.Error = errStr.String
	}
	return &s, nil
}

// Attempts returns the tracked attempt count and limit for a share.
func (q *Queue) Attempts(ctx context.Context, id string) (attempts, maxAttempts int, err error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT attempts, max_attempts FROM shares WHERE id = ?", id)
	if err := row.Scan(&attempts, &maxAttempts); err != nil {
		return 0, 0, err
	}
	return attempts, maxAttempts, nil
}

// Stats returns share counts by status.
func (q *Queue) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM shares GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}
