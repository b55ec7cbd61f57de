package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertPreservesProfileAndCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}
	ctx := context.Background()

	err := svc.UpsertFromAuth(ctx, User{ID: "google:1", Email: "a@example.com", FullName: "Ana"})
	if err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}
	first, err := svc.GetByID(ctx, "google:1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, "google:1", "2ª Vara Cível de Campo Grande", "Assessor"); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	// A later login must not wipe the profile.
	err = svc.UpsertFromAuth(ctx, User{ID: "google:1", Email: "a@example.com", FullName: "Ana Paula"})
	if err != nil {
		t.Fatalf("UpsertFromAuth second: %v", err)
	}

	user, err := svc.GetByID(ctx, "google:1")
	if err != nil {
		t.Fatalf("GetByID second: %v", err)
	}
	if user.FullName != "Ana Paula" {
		t.Fatalf("expected refreshed name, got %q", user.FullName)
	}
	if user.JudgingBody != "2ª Vara Cível de Campo Grande" || user.Role != "Assessor" {
		t.Fatalf("profile was not preserved: %+v", user)
	}
	if !user.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("CreatedAt changed across upserts")
	}
	if !user.ProfileComplete() {
		t.Fatalf("expected complete profile")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}
	ctx := context.Background()

	if err := svc.UpsertFromAuth(ctx, User{ID: "google:1", Email: "a@example.com"}); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, "google:1", "  ", "Assessor"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank judging body, got %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, "google:1", "Vara Única", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank role, got %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, "google:2", "Vara Única", "Juiz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestProfileCompleteRequiresBothFields(t *testing.T) {
	u := User{JudgingBody: "Vara Única"}
	if u.ProfileComplete() {
		t.Fatalf("expected incomplete profile without role")
	}
	u.Role = "Juiz"
	if !u.ProfileComplete() {
		t.Fatalf("expected complete profile")
	}
}
