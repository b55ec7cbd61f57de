package cases

import "context"

// Repo defines persistence for cases and their documents. Each write is
// atomic per record; there is no multi-record transaction, so a case may
// exist with only part of its documents (accepted partial-import state).
type Repo interface {
	CreateCase(ctx context.Context, c Case) error
	CreateDocument(ctx context.Context, doc Document) error
	ListByUser(ctx context.Context, userID string) ([]Case, error)
	GetByID(ctx context.Context, caseID string) (Case, error)
	GetDocument(ctx context.Context, caseID, documentID string) (Document, error)
	SaveSummary(ctx context.Context, caseID, documentID, summary string) error
}
