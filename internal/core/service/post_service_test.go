package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

type stubPostRepo struct {
	posts      map[string]*domain.Post
	nextID     int
	takenSlugs map[string]bool
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post), takenSlugs: make(map[string]bool)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	if r.takenSlugs[post.Slug] {
		return nil, domain.ErrSlugTaken
	}
	r.takenSlugs[post.Slug] = true
	clone := *post
	r.nextID++
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.posts[clone.ID] = &clone
	stored := clone
	return &stored, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	for _, p := range r.posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubImageStore struct {
	saved []string
	fail  error
}

func (s *stubImageStore) Save(_ io.Reader, originalName string) (string, error) {
	if s.fail != nil {
		return "", s.fail
	}
	name := fmt.Sprintf("stored-%d%s", len(s.saved), strings.ToLower(originalName[strings.LastIndex(originalName, "."):]))
	s.saved = append(s.saved, name)
	return name, nil
}

func newPostService(repo ports.PostRepository, images ports.ImageStore) *PostService {
	return NewPostService(repo, images, zerolog.Nop())
}

func TestPostService_Create_UploadWinsOverURL(t *testing.T) {
	repo := newStubPostRepo()
	images := &stubImageStore{}
	svc := newPostService(repo, images)

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "Launch announcement",
		Content:  "We are live.",
		AuthorID: "u1",
		Image: ports.ImageInput{
			Upload:   strings.NewReader("fake image bytes"),
			Filename: "photo.PNG",
			URL:      "https://example.com/pasted.jpg",
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(images.saved) != 1 {
		t.Fatalf("expected one stored upload, got %d", len(images.saved))
	}
	if post.ImageFile != images.saved[0] {
		t.Fatalf("uploaded image should win: got %q", post.ImageFile)
	}
}

func TestPostService_Create_URLWhenNoUpload(t *testing.T) {
	svc := newPostService(newStubPostRepo(), &stubImageStore{})

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "Launch announcement",
		Content:  "We are live.",
		AuthorID: "u1",
		Image:    ports.ImageInput{URL: "https://example.com/pasted.jpg"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ImageFile != "https://example.com/pasted.jpg" {
		t.Fatalf("pasted URL should be used: got %q", post.ImageFile)
	}
}

func TestPostService_Create_DefaultPlaceholder(t *testing.T) {
	svc := newPostService(newStubPostRepo(), &stubImageStore{})

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "Launch announcement",
		Content:  "We are live.",
		AuthorID: "u1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ImageFile != domain.DefaultPostImage {
		t.Fatalf("expected placeholder, got %q", post.ImageFile)
	}
}

func TestPostService_Create_SlugFromTitle(t *testing.T) {
	svc := newPostService(newStubPostRepo(), &stubImageStore{})

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "Hiring: Senior Gophers!",
		Content:  "Plenty of detail here.",
		AuthorID: "u1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Slug != "hiring-senior-gophers" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
}

func TestPostService_Create_SlugCollisionRetries(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubImageStore{})

	first, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Growing pains", Content: "First take on it.", AuthorID: "u1",
	})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Growing pains", Content: "Second take on it.", AuthorID: "u1",
	})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.Slug == first.Slug {
		t.Fatalf("slugs must be unique, both are %q", first.Slug)
	}
	if !strings.HasPrefix(second.Slug, "growing-pains-") {
		t.Fatalf("retry should suffix original slug, got %q", second.Slug)
	}
}

func TestPostService_Update_KeepsImageWithoutNewData(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubImageStore{})

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "Launch announcement",
		Content:  "We are live.",
		AuthorID: "u1",
		Image:    ports.ImageInput{URL: "https://example.com/original.jpg"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), post.ID, ports.UpdatePostInput{
		Title:   "Launch announcement, revised",
		Content: "We are very much live.",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ImageFile != "https://example.com/original.jpg" {
		t.Fatalf("image must be untouched without new data, got %q", updated.ImageFile)
	}
	if updated.Title != "Launch announcement, revised" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
}

func TestPostService_Update_TimestampAndSlugImmutable(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubImageStore{})

	post, _ := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Launch announcement", Content: "We are live.", AuthorID: "u1",
	})

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update(context.Background(), post.ID, ports.UpdatePostInput{
		Title: "Different title entirely", Content: "New content for it.",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.CreatedAt.Equal(post.CreatedAt) {
		t.Fatalf("timestamp changed on edit: %v != %v", updated.CreatedAt, post.CreatedAt)
	}
	if updated.Slug != post.Slug {
		t.Fatalf("slug changed on edit: %q != %q", updated.Slug, post.Slug)
	}
}

func TestPostService_Update_NewUploadReplacesImage(t *testing.T) {
	repo := newStubPostRepo()
	images := &stubImageStore{}
	svc := newPostService(repo, images)

	post, _ := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Launch announcement", Content: "We are live.", AuthorID: "u1",
	})

	updated, err := svc.Update(context.Background(), post.ID, ports.UpdatePostInput{
		Title:   "Launch announcement",
		Content: "We are live, with pictures.",
		Image:   ports.ImageInput{Upload: strings.NewReader("bytes"), Filename: "new.jpg"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(images.saved) != 1 || updated.ImageFile != images.saved[0] {
		t.Fatalf("new upload should replace image, got %q", updated.ImageFile)
	}
}

func TestPostService_ListNewestFirst(t *testing.T) {
	repo := newStubPostRepo()
	now := time.Now().UTC()
	repo.posts["p1"] = &domain.Post{ID: "p1", Title: "old", CreatedAt: now.Add(-time.Hour)}
	repo.posts["p2"] = &domain.Post{ID: "p2", Title: "new", CreatedAt: now}
	repo.posts["p3"] = &domain.Post{ID: "p3", Title: "middle", CreatedAt: now.Add(-time.Minute)}
	svc := newPostService(repo, &stubImageStore{})

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if posts[0].ID != "p2" || posts[1].ID != "p3" || posts[2].ID != "p1" {
		t.Fatalf("wrong order: %v", posts)
	}

	recent, err := svc.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "p2" {
		t.Fatalf("recent should truncate newest-first, got %v", recent)
	}
}

func TestPostService_Delete(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubImageStore{})

	post, _ := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Launch announcement", Content: "We are live.", AuthorID: "u1",
	})
	if err := svc.Delete(context.Background(), post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":        "hello-world",
		"  spaced   out  ":     "spaced-out",
		"Already-hyphenated":   "already-hyphenated",
		"Ünïcode Tïtle":        "ünïcode-tïtle",
		"100% Growth in 2025!": "100-growth-in-2025",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
