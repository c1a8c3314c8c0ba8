package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausematch/clausematch/internal/model"
)

func TestMemoryStore_PutGet(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	job := &Job{ID: "job-1", Status: model.JobRunning, CreatedAt: time.Now()}
	require.NoError(t, s.Put(job))

	got, found := s.Get("job-1")
	require.True(t, found)
	assert.Equal(t, "job-1", got.ID)
	assert.Equal(t, model.JobRunning, got.Status)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	_, found := s.Get("nope")
	assert.False(t, found)
}

func TestMemoryStore_PutReplaces(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	job := &Job{ID: "job-1", Status: model.JobRunning, CreatedAt: time.Now()}
	require.NoError(t, s.Put(job))

	job.Status = model.JobCompleted
	require.NoError(t, s.Put(job))

	got, found := s.Get("job-1")
	require.True(t, found)
	assert.Equal(t, model.JobCompleted, got.Status)
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Put(&Job{
			ID:        string(rune('a' + i)),
			Status:    model.JobCompleted,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	jobs := s.List(3)
	require.Len(t, jobs, 3)
	assert.Equal(t, "e", jobs[0].ID)
	assert.Equal(t, "d", jobs[1].ID)
	assert.Equal(t, "c", jobs[2].ID)
}

func TestMemoryStore_SnapshotsOnPut(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	job := &Job{ID: "job-1", Status: model.JobRunning, CreatedAt: time.Now()}
	require.NoError(t, s.Put(job))

	// Mutating the caller's job after Put must not leak into the store.
	job.Status = model.JobFailed
	job.Error = "not yet"

	got, found := s.Get("job-1")
	require.True(t, found)
	assert.Equal(t, model.JobRunning, got.Status)
	assert.Empty(t, got.Error)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	require.NoError(t, s.Put(&Job{ID: "job-1", Status: model.JobRunning, CreatedAt: time.Now()}))

	first, found := s.Get("job-1")
	require.True(t, found)
	first.Status = model.JobCompleted

	second, found := s.Get("job-1")
	require.True(t, found)
	assert.Equal(t, model.JobRunning, second.Status)
}

func TestMemoryStore_ListReturnsCopies(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	require.NoError(t, s.Put(&Job{
		ID:        "job-1",
		Status:    model.JobCompleted,
		CreatedAt: time.Now(),
		Report:    &model.Report{Summary: model.Summary{OK: 1}},
	}))

	listed := s.List(10)
	require.Len(t, listed, 1)
	listed[0].Report = nil

	stored, found := s.Get("job-1")
	require.True(t, found)
	assert.NotNil(t, stored.Report)
}

func TestMemoryStore_ListNoLimit(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	require.NoError(t, s.Put(&Job{ID: "one", CreatedAt: time.Now()}))

	assert.Len(t, s.List(0), 1)
}
