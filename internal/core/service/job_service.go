package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// JobService implements the careers board workflows.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) Create(ctx context.Context, input ports.JobInput) (*domain.Job, error) {
	jobType := input.JobType
	if jobType == "" {
		jobType = domain.DefaultJobType
	}

	job := &domain.Job{
		Title:       input.Title,
		Location:    input.Location,
		JobType:     jobType,
		Description: input.Description,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("title", created.Title).Msg("job created")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.FindAll(ctx)
}

func (s *JobService) Update(ctx context.Context, id string, input ports.JobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.Location = input.Location
	job.JobType = input.JobType
	job.Description = input.Description

	if err := s.repo.Update(ctx, job); err != nil {
		s.logger.Error().Err(err).Str("job_id", id).Msg("failed to update job")
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job deleted")
	return nil
}
