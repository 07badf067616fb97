package ports

import "context"

// ExportUser is a user record stripped for export. The password hash is
// deliberately absent from the type so it cannot leak.
type ExportUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// ExportPost is a post record with the author relation resolved to a name.
type ExportPost struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Timestamp      string `json:"timestamp"`
	AuthorUsername string `json:"author_username"`
	Slug           string `json:"slug"`
	ImageFile      string `json:"image_file"`
}

// ExportJob mirrors the full job record.
type ExportJob struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	JobType     string `json:"job_type"`
	Description string `json:"description"`
}

// ExportDocument is the single JSON document produced by an export run.
type ExportDocument struct {
	Users []ExportUser `json:"users"`
	Posts []ExportPost `json:"posts"`
	Jobs  []ExportJob  `json:"jobs"`
}

// ExportService materializes the whole dataset in memory.
type ExportService interface {
	Export(ctx context.Context) (*ExportDocument, error)
}
