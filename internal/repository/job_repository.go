package repository

import (
	"context"

	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/persistence"
)

// JobRepository encapsulates job persistence.
type JobRepository interface {
	GetAll(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) (bool, error)
}

type jobRepository struct {
	store *persistence.Store
}

// NewJobRepository instantiates the repository.
func NewJobRepository(store *persistence.Store) JobRepository {
	return &jobRepository{store: store}
}

func (r *jobRepository) GetAll(ctx context.Context) ([]domain.Job, error) {
	return readAll[domain.Job](r.store, persistence.TableJobs)
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	jobs, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, persistence.ErrNotFound
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	return mutate(r.store, persistence.TableJobs, func(jobs []domain.Job) ([]domain.Job, error) {
		return append(jobs, *job), nil
	})
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	return mutate(r.store, persistence.TableJobs, func(jobs []domain.Job) ([]domain.Job, error) {
		for i := range jobs {
			if jobs[i].ID == job.ID {
				jobs[i] = *job
				return jobs, nil
			}
		}
		return nil, persistence.ErrNotFound
	})
}

func (r *jobRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := mutate(r.store, persistence.TableJobs, func(jobs []domain.Job) ([]domain.Job, error) {
		kept := jobs[:0]
		for _, j := range jobs {
			if j.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, j)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
