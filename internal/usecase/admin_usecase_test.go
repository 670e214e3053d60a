package usecase

import (
	"context"
	"errors"
	"testing"

	"funilaria_autocolor/internal/adapter/persistence/repository"
)

func TestAdminUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("list seeds the default workshop login", func(t *testing.T) {
		store := repository.NewMemoryDocumentStore()
		uc := NewAdminUseCase(repository.NewAdminRepository(store))

		admins, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(admins) != 1 || admins[0].Username != "admin" {
			t.Fatalf("expected the seeded admin, got %+v", admins)
		}
	})

	t.Run("create appends with a generated id", func(t *testing.T) {
		store := repository.NewMemoryDocumentStore()
		uc := NewAdminUseCase(repository.NewAdminRepository(store))

		admin, err := uc.Create(ctx, "Filial Centro", "filial", "4321")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if admin.ID == "" {
			t.Fatalf("expected generated id")
		}

		admins, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(admins) != 2 || admins[1].ID != admin.ID {
			t.Fatalf("expected seed plus new admin, got %+v", admins)
		}
	})

	t.Run("create rejects blank fields", func(t *testing.T) {
		store := repository.NewMemoryDocumentStore()
		uc := NewAdminUseCase(repository.NewAdminRepository(store))

		for _, in := range [][3]string{
			{"  ", "filial", "4321"},
			{"Filial", "", "4321"},
			{"Filial", "filial", ""},
		} {
			if _, err := uc.Create(ctx, in[0], in[1], in[2]); !errors.Is(err, ErrInvalidAdminInput) {
				t.Fatalf("input %v: expected ErrInvalidAdminInput, got %v", in, err)
			}
		}
	})

	t.Run("delete removes and tolerates unknown ids", func(t *testing.T) {
		store := repository.NewMemoryDocumentStore()
		uc := NewAdminUseCase(repository.NewAdminRepository(store))

		admin, err := uc.Create(ctx, "Filial Centro", "filial", "4321")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := uc.Delete(ctx, admin.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		admins, _ := uc.List(ctx)
		if len(admins) != 1 {
			t.Fatalf("expected only the seed left, got %+v", admins)
		}

		// Deleting again, or deleting a ghost, is a no-op.
		if err := uc.Delete(ctx, admin.ID); err != nil {
			t.Fatalf("second delete must not fail, got %v", err)
		}
		if err := uc.Delete(ctx, "ghost"); err != nil {
			t.Fatalf("unknown id must not fail, got %v", err)
		}
	})

	t.Run("delete rejects blank id", func(t *testing.T) {
		store := repository.NewMemoryDocumentStore()
		uc := NewAdminUseCase(repository.NewAdminRepository(store))

		if err := uc.Delete(ctx, "  "); !errors.Is(err, ErrInvalidAdminID) {
			t.Fatalf("expected ErrInvalidAdminID, got %v", err)
		}
	})
}
