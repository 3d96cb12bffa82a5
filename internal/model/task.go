package model

// CompletionDateLayout is the layout the service expects in the
// PUT /complete-task/{id} body and returns in completed_at.
const CompletionDateLayout = "02 Jan 2006"

// Task as returned by GET /organizations/{id}/tasks. The completion
// metadata is only present when Completed is true.
type Task struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Completed        bool   `json:"completed"`
	CompletedBy      *int64 `json:"completed_by"`
	CompletedByEmail string `json:"completed_by_email"`
	CompletedAt      string `json:"completed_at"`
}
