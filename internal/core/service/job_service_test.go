package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

type stubJobRepo struct {
	jobs   []*domain.Job
	nextID int
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	clone := *job
	r.nextID++
	clone.ID = fmt.Sprintf("j%d", r.nextID)
	r.jobs = append(r.jobs, &clone)
	stored := clone
	return &stored, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			clone := *j
			return &clone, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) FindAll(_ context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	for _, j := range r.jobs {
		jobs = append(jobs, *j)
	}
	return jobs, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job) error {
	for i, j := range r.jobs {
		if j.ID == job.ID {
			clone := *job
			r.jobs[i] = &clone
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	for i, j := range r.jobs {
		if j.ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func TestJobService_Create_DefaultType(t *testing.T) {
	svc := NewJobService(&stubJobRepo{}, zerolog.Nop())

	job, err := svc.Create(context.Background(), ports.JobInput{
		Title:       "Site Reliability Engineer",
		Location:    "Remote",
		Description: "Keep the lights on.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if job.JobType != domain.DefaultJobType {
		t.Fatalf("expected default job type, got %q", job.JobType)
	}
}

func TestJobService_ListInsertionOrder(t *testing.T) {
	svc := NewJobService(&stubJobRepo{}, zerolog.Nop())

	for _, title := range []string{"First opening", "Second opening", "Third opening"} {
		if _, err := svc.Create(context.Background(), ports.JobInput{Title: title, Location: "Pune", JobType: "Contract", Description: "d"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	jobs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 3 || jobs[0].Title != "First opening" || jobs[2].Title != "Third opening" {
		t.Fatalf("insertion order not preserved: %v", jobs)
	}
}

func TestJobService_Update(t *testing.T) {
	svc := NewJobService(&stubJobRepo{}, zerolog.Nop())

	job, _ := svc.Create(context.Background(), ports.JobInput{Title: "SRE", Location: "Pune", JobType: "Contract", Description: "d"})
	updated, err := svc.Update(context.Background(), job.ID, ports.JobInput{
		Title: "Senior SRE", Location: "Remote", JobType: "Full-time", Description: "bigger",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Senior SRE" || updated.Location != "Remote" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc := NewJobService(&stubJobRepo{}, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.JobInput{Title: "x"}); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Delete_ThenGetNotFound(t *testing.T) {
	svc := NewJobService(&stubJobRepo{}, zerolog.Nop())

	job, _ := svc.Create(context.Background(), ports.JobInput{Title: "SRE", Location: "Pune", JobType: "Contract", Description: "d"})
	if err := svc.Delete(context.Background(), job.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), job.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound after delete, got %v", err)
	}
}
