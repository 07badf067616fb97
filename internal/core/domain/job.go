package domain

// DefaultJobType is applied when a job posting does not state one.
const DefaultJobType = "Full-time"

// Job is an open position on the careers board. Jobs have no owner.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	JobType     string `json:"job_type"`
	Description string `json:"description"`
}
