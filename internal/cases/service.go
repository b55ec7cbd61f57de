package cases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"processo-backend/internal/datajud"
	"processo-backend/internal/extract"
	"processo-backend/internal/llm"
	"processo-backend/internal/shared/metrics"
	"processo-backend/internal/shared/storage/object"
	"processo-backend/internal/shared/telemetry"
)

// Fetcher retrieves one raw case record from the upstream case-records API.
type Fetcher interface {
	FetchCase(ctx context.Context, caseNumber string) (datajud.RawProcess, error)
}

// ImportResult reports the outcome of one import, including partial success
// on the document children.
type ImportResult struct {
	CaseID            string
	DocumentsImported int
	DocumentsFailed   int
}

const (
	fetchRetries     = 2
	fetchBackoffBase = 500 * time.Millisecond
)

// Service contains business logic for case import, listing, document upload
// and summary generation.
type Service struct {
	Repo       Repo
	Fetcher    Fetcher
	Summarizer llm.Summarizer
	Store      object.ObjectStore

	// Sleep is swapped in tests to skip real backoff waits. Nil means
	// time.Sleep.
	Sleep func(time.Duration)
}

// ImportCase runs the full ingestion for one case number: fetch, normalize,
// persist the case, then persist each document child one at a time. A child
// failure after the case write leaves a visible partial state rather than
// rolling back; the counts in ImportResult expose it.
func (s *Service) ImportCase(ctx context.Context, userID, caseNumber string) (ImportResult, error) {
	caseNumber = strings.TrimSpace(caseNumber)
	if userID == "" || caseNumber == "" {
		return ImportResult{}, &ImportError{CaseNumber: caseNumber, Err: fmt.Errorf("%w: user id and case number are required", ErrInvalidInput)}
	}

	metrics.IncImportStarted()
	start := time.Now()

	raw, err := s.fetchWithRetry(ctx, caseNumber)
	if err != nil {
		metrics.IncImportFailed()
		return ImportResult{}, &ImportError{CaseNumber: caseNumber, Err: err}
	}

	norm := datajud.Normalize(raw)

	now := time.Now().UTC()
	c := Case{
		ID:         uuid.NewString(),
		UserID:     userID,
		CaseNumber: caseNumber,
		Parties:    norm.Parties,
		Subject:    norm.Subject,
		CaseClass:  norm.CaseClass,
		Area:       norm.Area,
		FiledDate:  norm.FiledDate,
		CreatedAt:  now,
	}
	if err := s.Repo.CreateCase(ctx, c); err != nil {
		metrics.IncImportFailed()
		return ImportResult{}, &ImportError{CaseNumber: caseNumber, Err: fmt.Errorf("persist case: %w", err)}
	}

	result := ImportResult{CaseID: c.ID}
	for _, rawDoc := range raw.Documentos {
		doc := Document{
			ID:          uuid.NewString(),
			CaseID:      c.ID,
			Name:        rawDoc.Nome,
			URL:         rawDoc.URL,
			ContentText: rawDoc.Texto,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.Repo.CreateDocument(ctx, doc); err != nil {
			result.DocumentsFailed++
			telemetry.Error("case.import.document_failed", map[string]any{
				"case_id":     c.ID,
				"case_number": caseNumber,
				"document":    rawDoc.Nome,
				"error":       err.Error(),
			})
			continue
		}
		result.DocumentsImported++
	}

	metrics.IncImportCompleted()
	metrics.ObserveImportDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("case.import.complete", map[string]any{
		"case_id":            c.ID,
		"case_number":        caseNumber,
		"user_id":            userID,
		"documents_imported": result.DocumentsImported,
		"documents_failed":   result.DocumentsFailed,
	})
	return result, nil
}

// fetchWithRetry retries transport-level upstream failures with exponential
// backoff. Not-found, auth, and configuration failures surface immediately.
func (s *Service) fetchWithRetry(ctx context.Context, caseNumber string) (datajud.RawProcess, error) {
	sleep := s.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 0; attempt <= fetchRetries; attempt++ {
		if attempt > 0 {
			sleep(fetchBackoffBase << (attempt - 1))
		}
		raw, err := s.Fetcher.FetchCase(ctx, caseNumber)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !errors.Is(err, datajud.ErrUpstream) {
			return datajud.RawProcess{}, err
		}
		telemetry.Info("case.import.retry", map[string]any{
			"case_number": caseNumber,
			"attempt":     attempt + 1,
			"error":       err.Error(),
		})
	}
	return datajud.RawProcess{}, lastErr
}

// ListForUser returns the user's cases without documents.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Case, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Details returns one case with its documents. A case owned by another user
// is reported as not found rather than forbidden.
func (s *Service) Details(ctx context.Context, userID, caseID string) (Case, error) {
	if userID == "" || caseID == "" {
		return Case{}, ErrInvalidInput
	}
	c, err := s.Repo.GetByID(ctx, caseID)
	if err != nil {
		return Case{}, err
	}
	if c.UserID != userID {
		return Case{}, ErrNotFound
	}
	return c, nil
}

// UploadDocument stores an uploaded file, extracts its text, and records it
// as a document of the case.
func (s *Service) UploadDocument(ctx context.Context, userID, caseID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if _, err := s.Details(ctx, userID, caseID); err != nil {
		return Document{}, err
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("store document: %w", err)
	}

	contentText, err := extract.Text(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		// The stored file is still useful without text; summaries just
		// won't be available for it.
		telemetry.Error("case.document.extract_failed", map[string]any{
			"case_id": caseID,
			"file":    fileName,
			"error":   err.Error(),
		})
		contentText = ""
	}

	doc := Document{
		ID:          uuid.NewString(),
		CaseID:      caseID,
		Name:        fileName,
		URL:         storageKey,
		ContentText: contentText,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.CreateDocument(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("persist document: %w", err)
	}
	return doc, nil
}

// GenerateSummary calls the summarization gateway for one document and
// persists the result, overwriting any previous summary. On failure the
// stored summary is left untouched.
func (s *Service) GenerateSummary(ctx context.Context, userID, caseID, documentID string) (string, error) {
	if _, err := s.Details(ctx, userID, caseID); err != nil {
		return "", err
	}
	doc, err := s.Repo.GetDocument(ctx, caseID, documentID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(doc.ContentText) == "" {
		return "", fmt.Errorf("%w: document has no text content", ErrInvalidInput)
	}

	summary, err := s.Summarizer.Summarize(ctx, doc.ContentText)
	if err != nil {
		metrics.IncSummaryFailed()
		return "", err
	}
	if err := s.Repo.SaveSummary(ctx, caseID, documentID, summary); err != nil {
		metrics.IncSummaryFailed()
		return "", fmt.Errorf("persist summary: %w", err)
	}
	metrics.IncSummaryCompleted()
	return summary, nil
}
