package cases

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateCase inserts a new case record.
func (r *PGRepo) CreateCase(ctx context.Context, c Case) error {
	const query = `
INSERT INTO cases (
    id,
    user_id,
    case_number,
    parties,
    subject,
    case_class,
    area,
    filed_date,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		c.ID,
		c.UserID,
		c.CaseNumber,
		c.Parties,
		c.Subject,
		c.CaseClass,
		c.Area,
		c.FiledDate,
		c.CreatedAt,
	)
	return err
}

// CreateDocument inserts a document belonging to a case.
func (r *PGRepo) CreateDocument(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO case_documents (
    id,
    case_id,
    name,
    url,
    content_text,
    summary,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var summary sql.NullString
	if doc.Summary != "" {
		summary = sql.NullString{String: doc.Summary, Valid: true}
	}
	var url sql.NullString
	if doc.URL != "" {
		url = sql.NullString{String: doc.URL, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.CaseID,
		doc.Name,
		url,
		doc.ContentText,
		summary,
		doc.CreatedAt,
	)
	return err
}

// ListByUser returns the user's cases newest-first, without documents.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Case, error) {
	const query = `
SELECT id, user_id, case_number, parties, subject, case_class, area, filed_date, created_at
FROM cases
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID fetches a case and its documents.
func (r *PGRepo) GetByID(ctx context.Context, caseID string) (Case, error) {
	const query = `
SELECT id, user_id, case_number, parties, subject, case_class, area, filed_date, created_at
FROM cases
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, caseID)
	c, err := scanCase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Case{}, ErrNotFound
		}
		return Case{}, err
	}

	docs, err := r.listDocuments(ctx, caseID)
	if err != nil {
		return Case{}, err
	}
	c.Documents = docs
	return c, nil
}

func (r *PGRepo) listDocuments(ctx context.Context, caseID string) ([]Document, error) {
	const query = `
SELECT id, case_id, name, url, content_text, summary, created_at
FROM case_documents
WHERE case_id = $1
ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		var url sql.NullString
		var summary sql.NullString
		if err := rows.Scan(
			&doc.ID,
			&doc.CaseID,
			&doc.Name,
			&url,
			&doc.ContentText,
			&summary,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		if url.Valid {
			doc.URL = url.String
		}
		if summary.Valid {
			doc.Summary = summary.String
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// GetDocument fetches one document of a case.
func (r *PGRepo) GetDocument(ctx context.Context, caseID, documentID string) (Document, error) {
	const query = `
SELECT id, case_id, name, url, content_text, summary, created_at
FROM case_documents
WHERE case_id = $1 AND id = $2
LIMIT 1`

	var doc Document
	var url sql.NullString
	var summary sql.NullString
	err := r.DB.QueryRowContext(ctx, query, caseID, documentID).Scan(
		&doc.ID,
		&doc.CaseID,
		&doc.Name,
		&url,
		&doc.ContentText,
		&summary,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrDocumentNotFound
		}
		return Document{}, err
	}
	if url.Valid {
		doc.URL = url.String
	}
	if summary.Valid {
		doc.Summary = summary.String
	}
	return doc, nil
}

// SaveSummary overwrites the summary of a document.
func (r *PGRepo) SaveSummary(ctx context.Context, caseID, documentID, summary string) error {
	const query = `
UPDATE case_documents
SET summary = $1
WHERE case_id = $2 AND id = $3`

	res, err := r.DB.ExecContext(ctx, query, summary, caseID, documentID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (Case, error) {
	var c Case
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.CaseNumber,
		&c.Parties,
		&c.Subject,
		&c.CaseClass,
		&c.Area,
		&c.FiledDate,
		&c.CreatedAt,
	)
	return c, err
}

var _ Repo = (*PGRepo)(nil)
