package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

func TestExportService_ResolvesAuthorUsername(t *testing.T) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Username: "admin", Email: "admin@spi.example", PasswordHash: "$2a$10$secret", IsAdmin: true}

	posts := newStubPostRepo()
	created := time.Date(2025, time.March, 4, 9, 30, 0, 0, time.UTC)
	posts.posts["p1"] = &domain.Post{
		ID:        "p1",
		Title:     "Welcome",
		Content:   "First post.",
		Slug:      "welcome",
		ImageFile: domain.DefaultPostImage,
		AuthorID:  "u1",
		CreatedAt: created,
	}

	jobs := &stubJobRepo{}
	if _, err := jobs.Create(context.Background(), &domain.Job{Title: "Backend Engineer", Location: "Pune", JobType: "Full-time", Description: "Go services."}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	svc := NewExportService(users, posts, jobs)
	doc, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if len(doc.Users) != 1 || len(doc.Posts) != 1 || len(doc.Jobs) != 1 {
		t.Fatalf("unexpected counts: %d users, %d posts, %d jobs", len(doc.Users), len(doc.Posts), len(doc.Jobs))
	}
	if doc.Posts[0].AuthorUsername != "admin" {
		t.Fatalf("author username = %q, want admin", doc.Posts[0].AuthorUsername)
	}
	if doc.Posts[0].Timestamp != "2025-03-04T09:30:00Z" {
		t.Fatalf("timestamp = %q", doc.Posts[0].Timestamp)
	}
}

func TestExportService_NeverLeaksPasswordHashes(t *testing.T) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Username: "admin", Email: "admin@spi.example", PasswordHash: "$2a$10$secret", IsAdmin: true}

	svc := NewExportService(users, newStubPostRepo(), &stubJobRepo{})
	doc, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "secret") || strings.Contains(body, "password") {
		t.Fatalf("export leaked credential material: %s", body)
	}
}
