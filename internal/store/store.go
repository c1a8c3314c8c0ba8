// Package store keeps comparison job results between submission and
// retrieval. The service layer owns no other state; swapping this interface
// for a durable backend does not touch the pipeline.
package store

import (
	"time"

	"github.com/clausematch/clausematch/internal/model"
)

// Job is one comparison job's lifecycle record.
type Job struct {
	ID        string          `json:"job_id"`
	Status    model.JobStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	SourceA   string          `json:"source_a,omitempty"`
	SourceB   string          `json:"source_b,omitempty"`
	Error     string          `json:"error,omitempty"`
	Report    *model.Report   `json:"report,omitempty"`
}

// Store is the job-store boundary: put a job's current state, get it back
// by id, list recent jobs. Implementations store and return snapshots, so
// a writer mutating its Job between Puts never races a concurrent reader.
// The Report pointer is shared across snapshots; it must not be mutated
// once attached to a Put job.
type Store interface {
	Put(job *Job) error
	Get(id string) (*Job, bool)
	List(limit int) []*Job
}
