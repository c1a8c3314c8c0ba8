// Package api exposes the comparison pipeline over HTTP: submit two
// documents, poll the job, fetch findings or the rendered report.
// Authentication and durable persistence are deliberately absent; deploy
// behind a gateway that provides them.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/clausematch/clausematch/internal/ingest"
	"github.com/clausematch/clausematch/internal/model"
	"github.com/clausematch/clausematch/internal/pipeline"
	"github.com/clausematch/clausematch/internal/report"
	"github.com/clausematch/clausematch/internal/store"
)

// Server wires the pipeline and job store into an HTTP handler.
type Server struct {
	pipeline *pipeline.Pipeline
	store    store.Store
	renderer *report.Renderer
	cfg      model.ServerConfig
}

// NewServer creates a server.
func NewServer(p *pipeline.Pipeline, s store.Store, cfg model.ServerConfig) *Server {
	return &Server{
		pipeline: p,
		store:    s,
		renderer: p.Renderer(),
		cfg:      cfg,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/jobs", s.handleListJobs)
		r.Get("/jobs/{jobID}", s.handleJobStatus)
		r.Get("/jobs/{jobID}/findings", s.handleJobFindings)
		r.Get("/jobs/{jobID}/report", s.handleJobReport)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts two multipart files ("source" and "target"), starts
// the comparison job asynchronously and returns the job id.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parse multipart form: %w", err))
		return
	}

	textA, nameA, err := formFileText(r, "source", s.cfg.MaxUploadBytes)
	if err != nil {
		writeIngestError(w, err)
		return
	}
	textB, nameB, err := formFileText(r, "target", s.cfg.MaxUploadBytes)
	if err != nil {
		writeIngestError(w, err)
		return
	}

	job := &store.Job{
		ID:        uuid.NewString(),
		Status:    model.JobRunning,
		CreatedAt: time.Now().UTC(),
		SourceA:   nameA,
		SourceB:   nameB,
	}
	if err := s.store.Put(job); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	go s.runJob(job, textA, textB)

	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": job.ID})
}

// runJob executes one comparison in the background and records the outcome.
// The request context is gone by now, so the job gets its own deadline.
func (s *Server) runJob(job *store.Job, textA, textB string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	rep, err := s.pipeline.Run(ctx, textA, textB)
	if err != nil {
		job.Status = model.JobFailed
		job.Error = err.Error()
	} else {
		rep.SourceA = job.SourceA
		rep.SourceB = job.SourceB
		job.Status = model.JobCompleted
		job.Report = rep
	}
	_ = s.store.Put(job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	// List returns copies, so stripping the reports is safe; clients fetch
	// them per job.
	jobs := s.store.List(25)
	for _, j := range jobs {
		j.Report = nil
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": jobs})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := s.store.Get(chi.URLParam(r, "jobID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("job not found"))
		return
	}

	resp := map[string]any{
		"job_id":     job.ID,
		"status":     job.Status,
		"created_at": job.CreatedAt,
	}
	if job.Error != "" {
		resp["error"] = job.Error
	}
	if job.Report != nil {
		resp["summary"] = job.Report.Summary
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleJobFindings(w http.ResponseWriter, r *http.Request) {
	job, ok := s.store.Get(chi.URLParam(r, "jobID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("job not found"))
		return
	}
	if job.Report == nil {
		writeJSON(w, http.StatusOK, map[string]any{"status": job.Status, "findings": []model.Finding{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": job.Status, "findings": job.Report.Findings})
}

func (s *Server) handleJobReport(w http.ResponseWriter, r *http.Request) {
	job, ok := s.store.Get(chi.URLParam(r, "jobID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("job not found"))
		return
	}
	if job.Report == nil {
		writeError(w, http.StatusConflict, fmt.Errorf("job %s not completed (status %s)", job.ID, job.Status))
		return
	}

	html, err := s.renderer.RenderHTML(job.Report)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// errUploadTooLarge marks an upload over the configured size limit.
var errUploadTooLarge = errors.New("upload exceeds size limit")

// formFileText extracts one multipart file and converts it to text. Files
// over maxBytes are rejected rather than silently truncated to a partial
// document.
func formFileText(r *http.Request, field string, maxBytes int64) (text, filename string, err error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", "", fmt.Errorf("missing file %q: %w", field, err)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return "", "", fmt.Errorf("read upload %q: %w", field, err)
	}
	if int64(len(data)) > maxBytes {
		return "", "", fmt.Errorf("%w: %q larger than %d bytes", errUploadTooLarge, header.Filename, maxBytes)
	}

	text, err = ingest.ParseBytes(header.Filename, data)
	if err != nil {
		return "", "", err
	}
	return text, header.Filename, nil
}

func writeIngestError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, errUploadTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	writeError(w, status, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
