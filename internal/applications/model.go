package applications

import "time"

// Application dispatch states.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
	StatusQueued = "queued"
)

// Application records one dispatch attempt for a job.
type Application struct {
	ID            string    `json:"id"`
	JobID         int64     `json:"job_id"`
	ApplicantName string    `json:"applicant_name"`
	JobTitle      string    `json:"job_title"`
	Company       string    `json:"company"`
	Recipient     string    `json:"recipient"`
	Status        string    `json:"status"`
	Simulated     bool      `json:"simulated"`
	Letter        string    `json:"letter"`
	Detail        string    `json:"detail"`
	CreatedAt     time.Time `json:"created_at"`
}
