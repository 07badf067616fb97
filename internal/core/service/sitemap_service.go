package service

import (
	"context"
	"strings"
	"time"

	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// staticRoutes are the fixed public pages included in every sitemap.
var staticRoutes = []string{
	"/", "/about", "/services", "/for-clients", "/for-hire",
	"/careers", "/blog", "/contact", "/terms", "/privacy",
	"/auth/login", "/auth/register",
}

// SitemapService derives the sitemap from current posts and jobs.
type SitemapService struct {
	posts ports.PostRepository
	jobs  ports.JobRepository
}

func NewSitemapService(posts ports.PostRepository, jobs ports.JobRepository) *SitemapService {
	return &SitemapService{posts: posts, jobs: jobs}
}

// Entries lists the static routes plus one detail URL per post and per job.
// Static pages and jobs carry the generation time as lastmod; posts use
// their creation timestamp.
func (s *SitemapService) Entries(ctx context.Context, baseURL string) ([]ports.SitemapEntry, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	now := time.Now().UTC().Format(time.RFC3339)

	entries := make([]ports.SitemapEntry, 0, len(staticRoutes))
	for _, route := range staticRoutes {
		entries = append(entries, ports.SitemapEntry{Loc: baseURL + route, LastMod: now})
	}

	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		entries = append(entries, ports.SitemapEntry{
			Loc:     baseURL + "/post/" + p.ID,
			LastMod: p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		entries = append(entries, ports.SitemapEntry{Loc: baseURL + "/career/" + j.ID, LastMod: now})
	}

	return entries, nil
}
