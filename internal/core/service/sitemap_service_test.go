package service

import (
	"context"
	"testing"
	"time"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

func TestSitemapService_Entries(t *testing.T) {
	posts := newStubPostRepo()
	created := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	posts.posts["p1"] = &domain.Post{ID: "p1", Title: "Welcome", Slug: "welcome", CreatedAt: created}

	jobs := &stubJobRepo{}
	job, err := jobs.Create(context.Background(), &domain.Job{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}

	svc := NewSitemapService(posts, jobs)
	entries, err := svc.Entries(context.Background(), "https://spi.example/")
	if err != nil {
		t.Fatalf("entries failed: %v", err)
	}

	want := len(staticRoutes) + 2
	if len(entries) != want {
		t.Fatalf("got %d entries, want %d", len(entries), want)
	}

	byLoc := make(map[string]string, len(entries))
	for _, e := range entries {
		byLoc[e.Loc] = e.LastMod
	}

	// trailing slash on the base must not produce double slashes
	if _, ok := byLoc["https://spi.example/blog"]; !ok {
		t.Fatalf("missing static entry, have %v", byLoc)
	}
	if lastMod, ok := byLoc["https://spi.example/post/p1"]; !ok {
		t.Fatal("missing post entry")
	} else if lastMod != "2025-01-15T12:00:00Z" {
		t.Fatalf("post lastmod = %q", lastMod)
	}
	if _, ok := byLoc["https://spi.example/career/"+job.ID]; !ok {
		t.Fatal("missing job entry")
	}
}
