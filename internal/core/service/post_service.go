package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// PostService implements the blog post workflows.
type PostService struct {
	repo   ports.PostRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, images ports.ImageStore, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, images: images, logger: logger}
}

// Create stores a new post. The image source is resolved with precedence
// upload > URL > default placeholder; the creation timestamp and slug are
// fixed here and never change afterwards.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	image, err := s.resolveImage(input.Image, domain.DefaultPostImage)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
		ImageFile: image,
		Slug:      slugify(input.Title),
		AuthorID:  input.AuthorID,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil && isSlugCollision(err) {
		post.Slug = post.Slug + "-" + randomToken(4)
		created, err = s.repo.Create(ctx, post)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("slug", created.Slug).Msg("post created")
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.repo.FindAll(ctx)
}

// Recent returns the n newest posts for the home page.
func (s *PostService) Recent(ctx context.Context, n int) ([]domain.Post, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) > n {
		posts = posts[:n]
	}
	return posts, nil
}

// Update mutates title, content, and the image of an existing post. When no
// new image data is supplied the stored image is left untouched; timestamp
// and slug are immutable.
func (s *PostService) Update(ctx context.Context, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image, err := s.resolveImage(input.Image, post.ImageFile)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.ImageFile = image

	if err := s.repo.Update(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to update post")
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// resolveImage applies the image precedence rule. fallback is the default
// placeholder on create and the current image on update.
func (s *PostService) resolveImage(input ports.ImageInput, fallback string) (string, error) {
	switch {
	case input.Upload != nil:
		return s.images.Save(input.Upload, input.Filename)
	case input.URL != "":
		return input.URL, nil
	default:
		return fallback, nil
	}
}

func isSlugCollision(err error) bool {
	return errors.Is(err, domain.ErrSlugTaken)
}

// slugify turns a title into a lowercase hyphenated URL fragment.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// randomToken returns n random bytes hex-encoded, with a time-based fallback
// if the system randomness source fails.
func randomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
