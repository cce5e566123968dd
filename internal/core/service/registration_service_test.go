package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

type stubRegistrationRepo struct {
	seen   map[[2]int64]int64
	nextID int64
}

func newStubRegistrationRepo() *stubRegistrationRepo {
	return &stubRegistrationRepo{seen: make(map[[2]int64]int64), nextID: 1}
}

func (r *stubRegistrationRepo) Create(_ context.Context, userID, fairID int64) (int64, error) {
	key := [2]int64{userID, fairID}
	if _, ok := r.seen[key]; ok {
		return 0, domain.ErrAlreadyRegistered
	}
	id := r.nextID
	r.nextID++
	r.seen[key] = id
	return id, nil
}

func (r *stubRegistrationRepo) ListByUser(_ context.Context, userID int64) ([]ports.UserRegistration, error) {
	var out []ports.UserRegistration
	for key, id := range r.seen {
		if key[0] == userID {
			out = append(out, ports.UserRegistration{
				Registration: domain.Registration{ID: id, UserID: key[0], CareerFairID: key[1]},
			})
		}
	}
	return out, nil
}

func (r *stubRegistrationRepo) ListByFair(_ context.Context, fairID int64) ([]ports.FairRegistration, error) {
	var out []ports.FairRegistration
	for key, id := range r.seen {
		if key[1] == fairID {
			out = append(out, ports.FairRegistration{
				Registration: domain.Registration{ID: id, UserID: key[0], CareerFairID: key[1]},
			})
		}
	}
	return out, nil
}

func TestRegister_Success(t *testing.T) {
	svc := NewRegistrationService(newStubRegistrationRepo(), zerolog.Nop())

	id, err := svc.Register(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	svc := NewRegistrationService(newStubRegistrationRepo(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), 7, 1); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := svc.Register(context.Background(), 7, 1)
	if !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// Same user, different fair is fine.
	if _, err := svc.Register(context.Background(), 7, 2); err != nil {
		t.Fatalf("registration for second fair: %v", err)
	}
}

func TestRegister_Listings(t *testing.T) {
	repo := newStubRegistrationRepo()
	svc := NewRegistrationService(repo, zerolog.Nop())

	_, _ = svc.Register(context.Background(), 7, 1)
	_, _ = svc.Register(context.Background(), 8, 1)

	byUser, err := svc.ListForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(byUser) != 1 {
		t.Fatalf("expected 1 registration for user, got %d", len(byUser))
	}

	byFair, err := svc.ListForFair(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForFair: %v", err)
	}
	if len(byFair) != 2 {
		t.Fatalf("expected 2 registrants for fair, got %d", len(byFair))
	}
}
