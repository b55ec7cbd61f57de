package cases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateCase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	c := Case{
		ID:         "case-1",
		UserID:     "user-1",
		CaseNumber: "0001234-55.2024.8.12.0001",
		Parties:    "Maria Silva vs. Banco Nacional S.A.",
		Subject:    "Rescisão do contrato",
		CaseClass:  "Procedimento Comum Cível",
		Area:       "Cível",
		FiledDate:  "2024-03-15T00:00:00.000Z",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO cases").
		WithArgs(
			c.ID,
			c.UserID,
			c.CaseNumber,
			c.Parties,
			c.Subject,
			c.CaseClass,
			c.Area,
			c.FiledDate,
			c.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateCase(context.Background(), c); err != nil {
		t.Fatalf("CreateCase: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateDocumentNullableSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:          "doc-1",
		CaseID:      "case-1",
		Name:        "Petição Inicial.pdf",
		ContentText: "corpo do documento",
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO case_documents").
		WithArgs(
			doc.ID,
			doc.CaseID,
			doc.Name,
			nil, // url
			doc.ContentText,
			nil, // summary starts absent
			doc.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateDocument(context.Background(), doc); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "case_number", "parties", "subject", "case_class", "area", "filed_date", "created_at",
	}).AddRow("case-1", "user-1", "123", "A vs. B", "Assunto", "Classe", "Cível", "2024-01-01", created)

	mock.ExpectQuery("SELECT id, user_id, case_number").
		WithArgs("user-1").
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 case, got %d", len(list))
	}
	if list[0].CaseNumber != "123" {
		t.Fatalf("CaseNumber = %q", list[0].CaseNumber)
	}
	if list[0].Documents != nil {
		t.Fatalf("list must not populate documents")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSaveSummaryMissingDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE case_documents").
		WithArgs("resumo", "case-1", "doc-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.SaveSummary(context.Background(), "case-1", "doc-missing", "resumo")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
