package cases

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is the in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	cases map[string]Case
	docs  map[string][]Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		cases: make(map[string]Case),
		docs:  make(map[string][]Document),
	}
}

func (r *MemoryRepo) CreateCase(ctx context.Context, c Case) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c.Documents = nil
	r.cases[c.ID] = c
	return nil
}

func (r *MemoryRepo) CreateDocument(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cases[doc.CaseID]; !ok {
		return ErrNotFound
	}
	r.docs[doc.CaseID] = append(r.docs[doc.CaseID], doc)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Case
	for _, c := range r.cases {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, caseID string) (Case, error) {
	if err := ctx.Err(); err != nil {
		return Case{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cases[caseID]
	if !ok {
		return Case{}, ErrNotFound
	}
	c.Documents = append([]Document(nil), r.docs[caseID]...)
	return c, nil
}

func (r *MemoryRepo) GetDocument(ctx context.Context, caseID, documentID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.docs[caseID] {
		if doc.ID == documentID {
			return doc, nil
		}
	}
	return Document{}, ErrDocumentNotFound
}

func (r *MemoryRepo) SaveSummary(ctx context.Context, caseID, documentID, summary string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	docs := r.docs[caseID]
	for i := range docs {
		if docs[i].ID == documentID {
			docs[i].Summary = summary
			return nil
		}
	}
	return ErrDocumentNotFound
}

var _ Repo = (*MemoryRepo)(nil)
