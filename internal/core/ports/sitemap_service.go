package ports

import "context"

// SitemapEntry is one <url> element of the sitemap.
type SitemapEntry struct {
	Loc     string
	LastMod string
}

// SitemapService enumerates every reachable public page: the static routes
// plus one detail URL per post and per job. Read-only.
type SitemapService interface {
	Entries(ctx context.Context, baseURL string) ([]SitemapEntry, error)
}
