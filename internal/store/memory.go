package store

import (
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore holds jobs in memory with TTL expiry. Jobs survive as long as
// a reviewer plausibly comes back for them; nothing here is durable.
type MemoryStore struct {
	jobs *gocache.Cache
}

// NewMemoryStore creates a memory store whose jobs expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		jobs: gocache.New(ttl, 10*time.Minute),
	}
}

// Put stores a snapshot of the job record. The caller keeps ownership of
// job and may mutate it afterwards without affecting the stored state.
func (s *MemoryStore) Put(job *Job) error {
	snapshot := *job
	s.jobs.SetDefault(job.ID, &snapshot)
	return nil
}

// Get returns a copy of the job with the given id.
func (s *MemoryStore) Get(id string) (*Job, bool) {
	v, found := s.jobs.Get(id)
	if !found {
		return nil, false
	}
	copied := *(v.(*Job))
	return &copied, true
}

// List returns up to limit job copies, newest first.
func (s *MemoryStore) List(limit int) []*Job {
	items := s.jobs.Items()
	jobs := make([]*Job, 0, len(items))
	for _, item := range items {
		copied := *(item.Object.(*Job))
		jobs = append(jobs, &copied)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs
}
