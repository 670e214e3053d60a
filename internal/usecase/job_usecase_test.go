package usecase

import (
	"context"
	"errors"
	"testing"

	"funilaria_autocolor/internal/adapter/persistence/repository"
	"funilaria_autocolor/internal/domain/entities"
)

// stubNarrator records calls and answers with canned text, standing in for
// the Gemini gateway.
type stubNarrator struct {
	describeCalls []string
	description   string
	message       string
}

func (s *stubNarrator) DescribeDamage(_ context.Context, imageRef string) string {
	s.describeCalls = append(s.describeCalls, imageRef)
	return s.description
}

func (s *stubNarrator) ComposeStatusMessage(_ context.Context, job entities.Job, _ *entities.Photo) string {
	if s.message != "" {
		return s.message
	}
	return FallbackStatusMessage(job)
}

func newJobFixture() (*JobUseCase, *repository.MemoryDocumentStore, *stubNarrator) {
	store := repository.NewMemoryDocumentStore()
	narrator := &stubNarrator{description: "Amassado no para-lama direito."}
	uc := NewJobUseCase(repository.NewJobRepository(store), repository.NewClientRepository(store), narrator)
	return uc, store, narrator
}

func TestJobUseCase_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("valid intake lands in the funnel entry status", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		job, err := uc.CreateJob(ctx, ClientInput{
			Name:     "Maria Souza",
			Phone:    "11 98888-7777",
			Email:    "maria@email.com",
			CPF:      "529.982.247-25",
			Password: "abcd",
		}, entities.Vehicle{Plate: "XYZ-9876", Model: "Fiat Uno", Color: "Branco"}, "Troca do para-choque")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusRecebido {
			t.Fatalf("expected status %s, got %s", entities.JobStatusRecebido, job.Status)
		}
		if len(job.Photos) != 0 {
			t.Fatalf("expected empty photo list, got %d", len(job.Photos))
		}
		if job.Client.CPF != "529.982.247-25" {
			t.Fatalf("expected normalized cpf, got %q", job.Client.CPF)
		}

		// The job must be readable back, after the seeded one.
		jobs, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 {
			t.Fatalf("expected seeded job plus new one, got %d", len(jobs))
		}
		if jobs[1].ID != job.ID {
			t.Fatalf("new job must append at the end, got order %s, %s", jobs[0].ID, jobs[1].ID)
		}
	})

	t.Run("unformatted cpf is stored formatted", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		job, err := uc.CreateJob(ctx, ClientInput{
			Name:     "Maria Souza",
			Phone:    "11 98888-7777",
			Email:    "maria@email.com",
			CPF:      "52998224725",
			Password: "abcd",
		}, entities.Vehicle{Plate: "XYZ-9876", Model: "Fiat Uno", Color: "Branco"}, "Troca do para-choque")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Client.CPF != "529.982.247-25" {
			t.Fatalf("expected formatted cpf, got %q", job.Client.CPF)
		}
	})

	t.Run("repeated-digit cpf rejected before anything persists", func(t *testing.T) {
		uc, store, _ := newJobFixture()

		_, err := uc.CreateJob(ctx, ClientInput{
			Name:     "Maria Souza",
			Phone:    "11 98888-7777",
			Email:    "maria@email.com",
			CPF:      "111.111.111-11",
			Password: "abcd",
		}, entities.Vehicle{Plate: "XYZ-9876", Model: "Fiat Uno", Color: "Branco"}, "Troca do para-choque")
		if !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}

		// Validation runs before any storage access: not even the seed ran.
		if _, found, _ := store.Get(ctx, repository.DocumentJobs); found {
			t.Fatalf("rejected intake must not touch the jobs document")
		}
		if _, found, _ := store.Get(ctx, repository.DocumentClients); found {
			t.Fatalf("rejected intake must not touch the clients document")
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		_, err := uc.CreateJob(ctx, ClientInput{
			Name:     "Maria Souza",
			Phone:    "11 98888-7777",
			Email:    "maria@email.com",
			CPF:      "529.982.247-25",
			Password: "abc",
		}, entities.Vehicle{Plate: "XYZ-9876", Model: "Fiat Uno", Color: "Branco"}, "Troca do para-choque")
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})
}

func TestJobUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("any valid status overwrites, order is convention", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		// Seeded job starts in Preparação; jump straight to the end.
		job, err := uc.SetStatus(ctx, "job-1", entities.JobStatusConcluido)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusConcluido {
			t.Fatalf("expected %s, got %s", entities.JobStatusConcluido, job.Status)
		}

		// And straight back to the beginning.
		job, err = uc.SetStatus(ctx, "job-1", entities.JobStatusRecebido)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusRecebido {
			t.Fatalf("expected %s, got %s", entities.JobStatusRecebido, job.Status)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		_, err := uc.SetStatus(ctx, "job-1", entities.JobStatus("Lavagem"))
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown job id", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		_, err := uc.SetStatus(ctx, "nope", entities.JobStatusPintura)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_AddPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("photo appends after the seeded one", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		job, err := uc.AddPhoto(ctx, "job-1", AddPhotoInput{
			Stage:    entities.PhotoStageBefore,
			ImageRef: "data:image/jpeg;base64,abc",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(job.Photos) != 2 {
			t.Fatalf("expected 2 photos, got %d", len(job.Photos))
		}
		if job.Photos[0].ID != "p1" {
			t.Fatalf("existing photo must keep its position")
		}
		if job.Photos[1].Stage != entities.PhotoStageBefore {
			t.Fatalf("expected stage before, got %s", job.Photos[1].Stage)
		}
		if job.Photos[1].Description != nil {
			t.Fatalf("description must stay unset without describe")
		}
	})

	t.Run("describe asks the narrator and stores its text", func(t *testing.T) {
		uc, _, narrator := newJobFixture()

		job, err := uc.AddPhoto(ctx, "job-1", AddPhotoInput{
			Stage:    entities.PhotoStageDuring,
			ImageRef: "data:image/jpeg;base64,abc",
			Describe: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		added := job.Photos[len(job.Photos)-1]
		if added.Description == nil || *added.Description != "Amassado no para-lama direito." {
			t.Fatalf("expected narrator text on the photo, got %+v", added.Description)
		}
		if len(narrator.describeCalls) != 1 || narrator.describeCalls[0] != "data:image/jpeg;base64,abc" {
			t.Fatalf("narrator must receive the image reference, got %v", narrator.describeCalls)
		}
	})

	t.Run("invalid stage", func(t *testing.T) {
		uc, _, narrator := newJobFixture()

		_, err := uc.AddPhoto(ctx, "job-1", AddPhotoInput{Stage: entities.PhotoStage("final"), ImageRef: "x"})
		if !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
		if len(narrator.describeCalls) != 0 {
			t.Fatalf("narrator must not run for rejected input")
		}
	})

	t.Run("missing image reference", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		_, err := uc.AddPhoto(ctx, "job-1", AddPhotoInput{Stage: entities.PhotoStageAfter, ImageRef: "   "})
		if !errors.Is(err, ErrMissingImage) {
			t.Fatalf("expected ErrMissingImage, got %v", err)
		}
	})
}

func TestJobUseCase_EditAndDeletePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("edit patches only the sent fields", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		comment := "Dano maior do que parecia."
		job, err := uc.EditPhoto(ctx, "job-1", "p1", PhotoPatch{Comment: &comment})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Photos[0].Comment == nil || *job.Photos[0].Comment != comment {
			t.Fatalf("expected comment updated, got %+v", job.Photos[0].Comment)
		}
		if job.Photos[0].Description == nil {
			t.Fatalf("description must survive a comment-only patch")
		}
	})

	t.Run("edit can clear a field to empty", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		empty := ""
		job, err := uc.EditPhoto(ctx, "job-1", "p1", PhotoPatch{Description: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Photos[0].Description == nil || *job.Photos[0].Description != "" {
			t.Fatalf("expected explicit empty description, got %+v", job.Photos[0].Description)
		}
	})

	t.Run("edit of unknown photo id is a silent no-op", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		comment := "nada"
		job, err := uc.EditPhoto(ctx, "job-1", "ghost", PhotoPatch{Comment: &comment})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *job.Photos[0].Comment == comment {
			t.Fatalf("no photo should have changed")
		}
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		job, err := uc.DeletePhoto(ctx, "job-1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(job.Photos) != 0 {
			t.Fatalf("expected no photos left, got %d", len(job.Photos))
		}

		job, err = uc.DeletePhoto(ctx, "job-1", "p1")
		if err != nil {
			t.Fatalf("second delete must not fail, got %v", err)
		}
		if len(job.Photos) != 0 {
			t.Fatalf("expected no photos, got %d", len(job.Photos))
		}
	})

	t.Run("blank photo id rejected", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		if _, err := uc.EditPhoto(ctx, "job-1", "  ", PhotoPatch{}); !errors.Is(err, ErrMissingPhotoID) {
			t.Fatalf("expected ErrMissingPhotoID, got %v", err)
		}
		if _, err := uc.DeletePhoto(ctx, "job-1", ""); !errors.Is(err, ErrMissingPhotoID) {
			t.Fatalf("expected ErrMissingPhotoID, got %v", err)
		}
	})
}

func TestJobUseCase_UpdateJobDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cpf skips validation", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		job, err := uc.UpdateJobDetails(ctx, "job-1", ClientInput{
			Name:     "João Silva",
			Phone:    "11988887777",
			Email:    "joao@email.com",
			CPF:      "  ",
			Password: "123",
		}, entities.Vehicle{Plate: "ABC-1234", Model: "Honda Civic", Color: "Azul"}, "Repintura completa")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Client.CPF != "" {
			t.Fatalf("expected cpf cleared, got %q", job.Client.CPF)
		}
		if job.Vehicle.Color != "Azul" {
			t.Fatalf("expected vehicle updated, got %q", job.Vehicle.Color)
		}
	})

	t.Run("non-empty cpf still validated", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		_, err := uc.UpdateJobDetails(ctx, "job-1", ClientInput{
			Name:  "João Silva",
			Email: "joao@email.com",
			CPF:   "123",
		}, entities.Vehicle{}, "x")
		if !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})

	t.Run("snapshot and client record can diverge from other jobs", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		// The clients document is rewritten with the new name, and so is the
		// embedded snapshot of job-1. A second job created for the same person
		// beforehand would keep the old snapshot; here we just assert the
		// record itself moved.
		job, err := uc.UpdateJobDetails(ctx, "job-1", ClientInput{
			Name:     "João S. Silva",
			Phone:    "11999999999",
			Email:    "joao@email.com",
			CPF:      "529.982.247-25",
			Password: "123",
		}, entities.Vehicle{Plate: "ABC-1234", Model: "Honda Civic", Color: "Prata"}, "Repintura")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Client.Name != "João S. Silva" {
			t.Fatalf("expected snapshot renamed, got %q", job.Client.Name)
		}
		if job.Client.ID != "client-1" {
			t.Fatalf("client id must never change on edit, got %q", job.Client.ID)
		}
	})
}

func TestJobUseCase_ComposeStatusUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the narrator when present", func(t *testing.T) {
		uc, _, narrator := newJobFixture()
		narrator.message = "Seu Honda Civic está quase pronto!"

		message, err := uc.ComposeStatusUpdate(ctx, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if message != "Seu Honda Civic está quase pronto!" {
			t.Fatalf("unexpected message %q", message)
		}
	})

	t.Run("falls back to the template without a narrator", func(t *testing.T) {
		store := repository.NewMemoryDocumentStore()
		uc := NewJobUseCase(repository.NewJobRepository(store), repository.NewClientRepository(store), nil)

		message, err := uc.ComposeStatusUpdate(ctx, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Olá João Silva, o status do seu Honda Civic mudou para Preparação."
		if message != want {
			t.Fatalf("expected %q, got %q", want, message)
		}
	})

	t.Run("unknown job id", func(t *testing.T) {
		uc, _, _ := newJobFixture()

		if _, err := uc.ComposeStatusUpdate(ctx, "nope"); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}
