package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"entrypoint/internal/catalog"
	"entrypoint/internal/config"
	"entrypoint/internal/errors"
	"entrypoint/internal/notify"
	"entrypoint/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	cat      *catalog.Catalog
	cfg      *config.Config
	notifier *notify.Notifier
	baseDir  string
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cat *catalog.Catalog, cfg *config.Config, notifier *notify.Notifier, baseDir string) *Handlers {
	return &Handlers{cat: cat, cfg: cfg, notifier: notifier, baseDir: baseDir}
}

// Request types for each tool

// ListRequest represents the arguments for internship_list.
type ListRequest struct {
	Query         string   `json:"query,omitempty"`
	Universities  []string `json:"universities,omitempty"`
	Cities        []string `json:"cities,omitempty"`
	Directions    []string `json:"directions,omitempty"`
	Formats       []string `json:"formats,omitempty"`
	Starts        []string `json:"starts,omitempty"`
	Stack         []string `json:"stack,omitempty"`
	ProfileGPA    *float64 `json:"profile_gpa,omitempty"`
	ProfileCourse *int     `json:"profile_course,omitempty"`
	SalaryMin     *int     `json:"salary_min,omitempty"`
	Limit         int      `json:"limit,omitempty"`
	Offset        int      `json:"offset,omitempty"`
}

// GetRequest represents the arguments for internship_get.
type GetRequest struct {
	ID string `json:"id"`
}

// CreateRequest represents the arguments for internship_create.
type CreateRequest struct {
	Company    string   `json:"company"`
	RoleTitle  string   `json:"role_title"`
	Direction  string   `json:"direction"`
	Paid       string   `json:"paid"`
	Format     string   `json:"format"`
	City       string   `json:"city"`
	SalaryMin  *float64 `json:"salary_min,omitempty"`
	CourseMin  *float64 `json:"course_min,omitempty"`
	CourseMax  *float64 `json:"course_max,omitempty"`
	MinGPA     *float64 `json:"min_gpa,omitempty"`
	Stack      string   `json:"stack,omitempty"`
	ShortPitch string   `json:"short_pitch"`
	Telegram   string   `json:"telegram"`
	Email      string   `json:"email"`
}

// UniversityMatchRequest represents the arguments for university_match.
type UniversityMatchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// ExportRequest represents the arguments for catalog_export.
type ExportRequest struct {
	Path     string `json:"path,omitempty"`
	UserOnly bool   `json:"user_only,omitempty"`
}

// HandleList handles the internship_list tool.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.cat, ops.ListInput{
		Query:         input.Query,
		Universities:  input.Universities,
		Cities:        input.Cities,
		Directions:    input.Directions,
		Formats:       input.Formats,
		Starts:        input.Starts,
		Stack:         input.Stack,
		ProfileGPA:    input.ProfileGPA,
		ProfileCourse: input.ProfileCourse,
		SalaryMin:     input.SalaryMin,
		Limit:         input.Limit,
		Offset:        input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleGet handles the internship_get tool.
func (h *Handlers) HandleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Get(h.cat, ops.GetInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCreate handles the internship_create tool.
func (h *Handlers) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CreateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Create(h.cat, ops.CreateInput{
		Company:    input.Company,
		RoleTitle:  input.RoleTitle,
		Direction:  input.Direction,
		Paid:       input.Paid,
		Format:     input.Format,
		City:       input.City,
		SalaryMin:  input.SalaryMin,
		CourseMin:  input.CourseMin,
		CourseMax:  input.CourseMax,
		MinGPA:     input.MinGPA,
		Stack:      input.Stack,
		ShortPitch: input.ShortPitch,
		Telegram:   input.Telegram,
		Email:      input.Email,
	})
	if err != nil {
		return errorResult(err), nil
	}

	h.notifier.PostingCreated(&result.Posting)
	return successResult(result)
}

// HandleUniversityMatch handles the university_match tool.
func (h *Handlers) HandleUniversityMatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UniversityMatchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.MatchUniversities(ops.MatchUniversitiesInput{
		Query: input.Query,
		Limit: input.Limit,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the catalog_export tool.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.cat, ops.ExportInput{
		Path:     input.Path,
		UserOnly: input.UserOnly,
		BaseDir:  h.baseDir,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// errorResult builds an IsError tool result carrying the structured
// error payload.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if bErr, ok := err.(*errors.BoardError); ok {
		errorObj := map[string]any{
			"code":    bErr.Code,
			"message": bErr.Message,
			"status":  bErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths
		if bErr.Code != errors.ErrInternal && bErr.Details != nil {
			errorObj["details"] = bErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult serializes data as a JSON tool result.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
