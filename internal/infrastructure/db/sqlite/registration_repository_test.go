package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fairlink/careerfair-api/internal/core/domain"
)

func TestRegistrationRepository_CreateAndDuplicate(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.sqlite"))
	seedFixture(t, store)
	repo := NewRegistrationRepository(store, zerolog.Nop())
	ctx := context.Background()

	id, err := repo.Create(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected a row id")
	}

	if _, err := repo.Create(ctx, 1, 1); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// A different user registers for the same fair without conflict.
	if _, err := repo.Create(ctx, 2, 1); err != nil {
		t.Fatalf("Create second user: %v", err)
	}
}

func TestRegistrationRepository_ListByUser(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.sqlite"))
	seedFixture(t, store)
	repo := NewRegistrationRepository(store, zerolog.Nop())
	ctx := context.Background()

	if _, err := repo.Create(ctx, 1, 1); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(got))
	}
	if got[0].Title != "Spring Tech Fair" {
		t.Fatalf("fair title not joined: %+v", got[0])
	}
	if got[0].Status != domain.FairUpcoming {
		t.Fatalf("fair status not joined: %+v", got[0])
	}
	if got[0].StartDate.IsZero() || got[0].EndDate.IsZero() {
		t.Fatalf("fair dates not parsed: %+v", got[0])
	}
}

func TestRegistrationRepository_ListByFair(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.sqlite"))
	seedFixture(t, store)
	repo := NewRegistrationRepository(store, zerolog.Nop())
	ctx := context.Background()

	if _, err := repo.Create(ctx, 1, 1); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, 2, 1); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByFair(ctx, 1)
	if err != nil {
		t.Fatalf("ListByFair: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 registrants, got %d", len(got))
	}
	for _, item := range got {
		if item.Email == "" {
			t.Fatalf("registrant email not joined: %+v", item)
		}
	}
}
