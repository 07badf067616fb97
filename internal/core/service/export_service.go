package service

import (
	"context"
	"time"

	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// ExportService materializes the full dataset as one document. Password
// hashes never enter the export types, and the post author relation is
// resolved to a username with an explicit lookup.
type ExportService struct {
	users ports.UserRepository
	posts ports.PostRepository
	jobs  ports.JobRepository
}

func NewExportService(users ports.UserRepository, posts ports.PostRepository, jobs ports.JobRepository) *ExportService {
	return &ExportService{users: users, posts: posts, jobs: jobs}
}

func (s *ExportService) Export(ctx context.Context) (*ports.ExportDocument, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	doc := &ports.ExportDocument{
		Users: make([]ports.ExportUser, 0, len(users)),
		Posts: make([]ports.ExportPost, 0, len(posts)),
		Jobs:  make([]ports.ExportJob, 0, len(jobs)),
	}

	usernames := make(map[string]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
		doc.Users = append(doc.Users, ports.ExportUser{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			IsAdmin:  u.IsAdmin,
		})
	}

	for _, p := range posts {
		doc.Posts = append(doc.Posts, ports.ExportPost{
			ID:             p.ID,
			Title:          p.Title,
			Content:        p.Content,
			Timestamp:      p.CreatedAt.UTC().Format(time.RFC3339),
			AuthorUsername: usernames[p.AuthorID],
			Slug:           p.Slug,
			ImageFile:      p.ImageFile,
		})
	}

	for _, j := range jobs {
		doc.Jobs = append(doc.Jobs, ports.ExportJob{
			ID:          j.ID,
			Title:       j.Title,
			Location:    j.Location,
			JobType:     j.JobType,
			Description: j.Description,
		})
	}

	return doc, nil
}
