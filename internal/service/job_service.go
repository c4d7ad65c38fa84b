package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/persistence"
	"github.com/fieldops/crew-scheduler/internal/repository"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// JobService handles job operations and read-only job queries.
type JobService struct {
	jobs        repository.JobRepository
	employees   repository.EmployeeRepository
	assignments repository.AssignmentRepository
	cache       Cache
	logger      *zap.Logger
	now         func() time.Time
}

// JobDependencies bundles the service's collaborators.
type JobDependencies struct {
	JobRepo        repository.JobRepository
	EmployeeRepo   repository.EmployeeRepository
	AssignmentRepo repository.AssignmentRepository
	Cache          Cache
	Logger         *zap.Logger
	Now            func() time.Time
}

// NewJobService creates the service. Now defaults to time.Now.
func NewJobService(deps JobDependencies) *JobService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &JobService{
		jobs:        deps.JobRepo,
		employees:   deps.EmployeeRepo,
		assignments: deps.AssignmentRepo,
		cache:       deps.Cache,
		logger:      deps.Logger,
		now:         now,
	}
}

// JobFilter carries raw list query parameters; empty strings mean unset.
type JobFilter struct {
	StartDate   string
	EndDate     string
	MinDuration string
	MaxDuration string
}

// JobStatistics summarizes the job table. All fields are zero when the table
// is empty.
type JobStatistics struct {
	Count                int     `json:"count"`
	AverageDurationHours float64 `json:"averageDurationHours"`
	MinDurationHours     float64 `json:"minDurationHours"`
	MaxDurationHours     float64 `json:"maxDurationHours"`
	TotalHours           float64 `json:"totalHours"`
}

// Create validates and persists a new job. Start and end times are ISO 8601
// strings, with or without a zone offset.
func (s *JobService) Create(ctx context.Context, name, startTime, endTime string) (*domain.Job, error) {
	start, err := parseDateTime(startTime)
	if err != nil {
		return nil, apperrors.NewInvalidDateTime("startTime", startTime)
	}
	end, err := parseDateTime(endTime)
	if err != nil {
		return nil, apperrors.NewInvalidDateTime("endTime", endTime)
	}

	job, err := domain.NewJob(name, start, end)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, persistence.CacheKeyJobStatistics)
	}

	s.logger.Info("created job",
		zap.String("job_id", job.ID),
		zap.Time("start", job.StartTime),
		zap.Time("end", job.EndTime),
	)
	return job, nil
}

// Update replaces a job's fields after re-validation, keeping its id.
func (s *JobService) Update(ctx context.Context, jobID, name, startTime, endTime string) (*domain.Job, error) {
	start, err := parseDateTime(startTime)
	if err != nil {
		return nil, apperrors.NewInvalidDateTime("startTime", startTime)
	}
	end, err := parseDateTime(endTime)
	if err != nil {
		return nil, apperrors.NewInvalidDateTime("endTime", endTime)
	}

	job, err := domain.UpdatedJob(jobID, name, start, end)
	if err != nil {
		return nil, err
	}
	if err := s.checkAssignmentConflicts(ctx, job); err != nil {
		s.logger.Warn("job update rejected",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return nil, err
	}
	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, apperrors.NewJobNotFound(jobID)
		}
		return nil, apperrors.NewStorageError(err)
	}

	// Enriched schedule embeds job details, so both caches are stale now.
	if s.cache != nil {
		s.cache.Invalidate(ctx, persistence.CacheKeyJobStatistics, persistence.CacheKeySchedule)
	}

	s.logger.Info("updated job", zap.String("job_id", jobID))
	return job, nil
}

// checkAssignmentConflicts rejects a replacement time window that would make
// an existing assignment of this job overlap another assignment held by the
// same employee. Without it a job update could break an already-validated
// schedule.
func (s *JobService) checkAssignmentConflicts(ctx context.Context, updated *domain.Job) error {
	assigned, err := s.assignments.GetByJobID(ctx, updated.ID)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if len(assigned) == 0 {
		return nil
	}

	all, err := s.assignments.GetAll(ctx)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return apperrors.NewStorageError(err)
	}

	jobsByID := make(map[string]*domain.Job, len(jobs))
	for i := range jobs {
		jobsByID[jobs[i].ID] = &jobs[i]
	}
	namesByID := make(map[string]string, len(employees))
	for _, e := range employees {
		namesByID[e.ID] = e.Name
	}

	for _, a := range assigned {
		for _, other := range all {
			if other.EmployeeID != a.EmployeeID || other.JobID == updated.ID {
				continue
			}
			otherJob := jobsByID[other.JobID]
			if otherJob == nil {
				// Stale reference; nothing to overlap with.
				continue
			}
			if updated.OverlapsWith(otherJob) {
				name := namesByID[a.EmployeeID]
				if name == "" {
					name = a.EmployeeID
				}
				return apperrors.NewTimeOverlap(name, updated.Name, otherJob.Name)
			}
		}
	}
	return nil
}

// List returns jobs matching the filter, sorted by start time descending.
// Malformed filter values produce typed parameter errors.
func (s *JobService) List(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if filter.StartDate != "" {
		start, err := parseDateTime(filter.StartDate)
		if err != nil {
			return nil, apperrors.NewInvalidDateTime("startDate", filter.StartDate)
		}
		jobs = filterJobs(jobs, func(j domain.Job) bool { return !j.StartTime.Before(start) })
	}
	if filter.EndDate != "" {
		end, err := parseDateTime(filter.EndDate)
		if err != nil {
			return nil, apperrors.NewInvalidDateTime("endDate", filter.EndDate)
		}
		jobs = filterJobs(jobs, func(j domain.Job) bool { return !j.EndTime.After(end) })
	}
	if filter.MinDuration != "" {
		minHours, err := strconv.ParseFloat(filter.MinDuration, 64)
		if err != nil {
			return nil, apperrors.NewInvalidParameter("minDuration", filter.MinDuration)
		}
		jobs = filterJobs(jobs, func(j domain.Job) bool { return j.DurationHours() >= minHours })
	}
	if filter.MaxDuration != "" {
		maxHours, err := strconv.ParseFloat(filter.MaxDuration, 64)
		if err != nil {
			return nil, apperrors.NewInvalidParameter("maxDuration", filter.MaxDuration)
		}
		jobs = filterJobs(jobs, func(j domain.Job) bool { return j.DurationHours() <= maxHours })
	}

	sort.SliceStable(jobs, func(i, k int) bool {
		return jobs[i].StartTime.After(jobs[k].StartTime)
	})
	return jobs, nil
}

// GetByID looks up a single job.
func (s *JobService) GetByID(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, apperrors.NewJobNotFound(jobID)
		}
		return nil, apperrors.NewStorageError(err)
	}
	return job, nil
}

// Upcoming returns jobs starting after now, soonest first.
func (s *JobService) Upcoming(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	now := s.now()
	upcoming := filterJobs(jobs, func(j domain.Job) bool { return j.StartTime.After(now) })
	sort.SliceStable(upcoming, func(i, k int) bool {
		return upcoming[i].StartTime.Before(upcoming[k].StartTime)
	})
	return upcoming, nil
}

// Statistics computes duration summaries over all jobs.
func (s *JobService) Statistics(ctx context.Context) (*JobStatistics, error) {
	var cached JobStatistics
	if s.cache != nil && s.cache.GetJSON(ctx, persistence.CacheKeyJobStatistics, &cached) {
		return &cached, nil
	}

	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	stats := &JobStatistics{}
	if len(jobs) == 0 {
		return stats, nil
	}

	minHours := jobs[0].DurationHours()
	maxHours := minHours
	total := 0.0
	for _, j := range jobs {
		hours := j.DurationHours()
		total += hours
		if hours < minHours {
			minHours = hours
		}
		if hours > maxHours {
			maxHours = hours
		}
	}

	stats.Count = len(jobs)
	stats.AverageDurationHours = round2(total / float64(len(jobs)))
	stats.MinDurationHours = round2(minHours)
	stats.MaxDurationHours = round2(maxHours)
	stats.TotalHours = round2(total)

	if s.cache != nil {
		s.cache.SetJSON(ctx, persistence.CacheKeyJobStatistics, stats)
	}
	return stats, nil
}

func filterJobs(jobs []domain.Job, keep func(domain.Job) bool) []domain.Job {
	filtered := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if keep(j) {
			filtered = append(filtered, j)
		}
	}
	return filtered
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseDateTime accepts RFC 3339 and zone-less ISO 8601 timestamps, plus bare
// dates, which parse as midnight.
func parseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
