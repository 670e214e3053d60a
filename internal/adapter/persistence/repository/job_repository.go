package repository

import (
	"context"
	"log"
	"time"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
)

// JobRepository persists the "jobs" collection as one whole document.
//
// First access seeds the bootstrap job (and its client record) when the
// document has never been written. Save is an upsert by id that preserves the
// job's position in store order.

type JobRepository struct {
	store DocumentStore
}

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(store DocumentStore) *JobRepository {
	return &JobRepository{store: store}
}

func (r *JobRepository) GetAll(ctx context.Context) ([]entities.Job, error) {
	payload, found, err := r.store.Get(ctx, DocumentJobs)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.seed(ctx)
	}
	return decodeCollection[entities.Job](DocumentJobs, payload)
}

func (r *JobRepository) Save(ctx context.Context, job entities.Job) error {
	jobs, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range jobs {
		if jobs[i].ID == job.ID {
			jobs[i] = job
			replaced = true
			break
		}
	}
	if !replaced {
		jobs = append(jobs, job)
	}

	return putCollection(ctx, r.store, DocumentJobs, jobs)
}

func (r *JobRepository) seed(ctx context.Context) ([]entities.Job, error) {
	jobs := seedJobs(time.Now().UTC())
	if err := putCollection(ctx, r.store, DocumentJobs, jobs); err != nil {
		return nil, err
	}

	// The seeded job's client also becomes a login: mirror it into the clients
	// document, but never clobber client data that already exists.
	if _, found, err := r.store.Get(ctx, DocumentClients); err != nil {
		return nil, err
	} else if !found {
		if err := putCollection(ctx, r.store, DocumentClients, []entities.Client{seedClient()}); err != nil {
			return nil, err
		}
	}

	log.Printf("[storage][jobs] seeded bootstrap job and client")
	return jobs, nil
}
