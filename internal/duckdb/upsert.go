package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"qbank/internal/question"
)

// BankKey returns a deterministic fingerprint for a bank's contents.
// Re-ingesting an unchanged document maps to the same key.
func BankKey(bank question.Bank) (string, error) {
	return FingerprintJSON(bank)
}

// QuestionKey returns a deterministic fingerprint for one question's content,
// independent of its position in the document.
func QuestionKey(q question.Question) (string, error) {
	payload := map[string]interface{}{
		"topic":  question.NormalizeTopic(q.Topic),
		"points": q.Points,
		"body":   q.Body,
	}
	return FingerprintJSON(payload)
}

// UpsertBank inserts a bank by its fingerprint key and returns (id, key).
// An existing bank with the same key keeps its id.
func UpsertBank(ctx context.Context, db *sql.DB, name string, bank question.Bank) (string, string, error) {
	if ctx == nil {
		return "", "", errors.New("duckdb: context is nil")
	}
	if db == nil {
		return "", "", errors.New("duckdb: db is nil")
	}
	key, err := BankKey(bank)
	if err != nil {
		return "", "", err
	}
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO banks (bank_id, bank_key, name, question_count, created_at)
		 VALUES (?, ?, ?, ?, now())
		 ON CONFLICT (bank_key) DO NOTHING`,
		id,
		key,
		name,
		bank.Len(),
	); err != nil {
		return "", "", fmt.Errorf("upsert bank: %w", err)
	}
	outID, err := lookupID(ctx, db, "banks", "bank_id", "bank_key", key)
	if err != nil {
		return "", "", fmt.Errorf("lookup bank id: %w", err)
	}
	return outID, key, nil
}

// ReplaceQuestions rewrites the question rows for a bank in document order.
func ReplaceQuestions(ctx context.Context, db *sql.DB, bankID string, bank question.Bank) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if bankID == "" {
		return errors.New("duckdb: bank id is required")
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM questions WHERE bank_id = ?`, bankID); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}
	for _, q := range bank.Questions {
		key, err := QuestionKey(q)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(
			ctx,
			`INSERT INTO questions (question_id, question_key, bank_id, position, topic, points, body)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			key,
			bankID,
			q.ID,
			question.NormalizeTopic(q.Topic),
			q.Points,
			q.Body,
		); err != nil {
			return fmt.Errorf("insert question %d: %w", q.ID, err)
		}
	}
	return nil
}

// IngestBank upserts a bank and replaces its question rows.
func IngestBank(ctx context.Context, db *sql.DB, name string, bank question.Bank) (string, error) {
	bankID, _, err := UpsertBank(ctx, db, name, bank)
	if err != nil {
		return "", err
	}
	if err := ReplaceQuestions(ctx, db, bankID, bank); err != nil {
		return "", err
	}
	return bankID, nil
}

func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
