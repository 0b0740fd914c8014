package web

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"

	"entrypoint/internal/catalog"
	"entrypoint/internal/config"
	"entrypoint/internal/errors"
	"entrypoint/internal/notify"
	"entrypoint/internal/ops"
)

// Handlers contains the HTTP route handlers for the catalog API.
type Handlers struct {
	cat      *catalog.Catalog
	cfg      *config.Config
	notifier *notify.Notifier
	version  string
}

// HandleHealth handles GET /api/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleList handles GET /api/internships: filter the merged catalog.
// Multi-valued dimensions repeat the query parameter or use commas.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := ops.ListInput{
		Query:         q.Get("q"),
		Universities:  multiParam(q["university"]),
		Cities:        multiParam(q["city"]),
		Directions:    multiParam(q["direction"]),
		Formats:       multiParam(q["format"]),
		Starts:        multiParam(q["start"]),
		Stack:         multiParam(q["stack"]),
		ProfileGPA:    parseFloatParam(q.Get("gpa")),
		ProfileCourse: parseIntPtrParam(q.Get("course")),
		SalaryMin:     parseIntPtrParam(q.Get("salary_min")),
		Limit:         parseIntParam(q.Get("limit"), h.cfg.ResultCap),
		Offset:        parseIntParam(q.Get("offset"), 0),
	}

	result, err := ops.List(h.cat, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// detailResponse augments Get output with rendered description HTML.
type detailResponse struct {
	*ops.GetOutput

	AboutHTML string `json:"aboutHtml"`
}

// HandleDetail handles GET /api/internships/{id}.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Get(h.cat, ops.GetInput{ID: r.PathValue("id")})
	if err != nil {
		respondError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(result.About), &buf); err != nil {
		log.Printf("web: markdown render failed for %s: %v", result.ID, err)
	}

	respondJSON(w, http.StatusOK, detailResponse{
		GetOutput: result,
		AboutHTML: buf.String(),
	})
}

// HandleCreate handles POST /api/internships.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ops.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, errors.NewInvalidRequest("request body is not valid JSON"))
		return
	}

	result, err := ops.Create(h.cat, input)
	if err != nil {
		respondError(w, err)
		return
	}

	h.notifier.PostingCreated(&result.Posting)
	respondJSON(w, http.StatusCreated, result)
}

// HandleUniversities handles GET /api/universities?q=, the ranked fuzzy match.
func (h *Handlers) HandleUniversities(w http.ResponseWriter, r *http.Request) {
	result, err := ops.MatchUniversities(ops.MatchUniversitiesInput{
		Query: r.URL.Query().Get("q"),
		Limit: parseIntParam(r.URL.Query().Get("limit"), h.cfg.SuggestCap),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// respondJSON writes a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("web: failed to encode response: %v", err)
	}
}

// respondError maps typed errors to their HTTP status.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.ErrInternal
	msg := err.Error()
	if bErr, ok := err.(*errors.BoardError); ok {
		status = bErr.Status
		code = bErr.Code
		msg = bErr.Message
	}
	respondJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": msg,
		},
	})
}

// multiParam splits repeated or comma-separated parameter values.
func multiParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseIntParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func parseIntPtrParam(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
