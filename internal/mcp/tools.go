package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var stringItems = map[string]any{"type": "string"}

var listToolDef = mcp.NewTool("internship_list",
	mcp.WithDescription("Filter the internship catalog across independent dimensions and return a page of matches in catalog order. Empty dimensions are unconstrained."),
	mcp.WithString("query", mcp.Description("Free-text query matched against company, role, pitch, stack, and location")),
	mcp.WithArray("universities", mcp.Description("University IDs, e.g. HSE, ITMO"), mcp.Items(stringItems)),
	mcp.WithArray("cities", mcp.Description("Cities: Moscow, SPb, Novosibirsk, Kazan, Any"), mcp.Items(stringItems)),
	mcp.WithArray("directions", mcp.Description("Directions: backend, frontend, mobile, data, qa, infra"), mcp.Items(stringItems)),
	mcp.WithArray("formats", mcp.Description("Work formats: Remote, Onsite, Hybrid"), mcp.Items(stringItems)),
	mcp.WithArray("starts", mcp.Description("Start tokens: season labels or ASAP"), mcp.Items(stringItems)),
	mcp.WithArray("stack", mcp.Description("Technology tags, e.g. Go, React"), mcp.Items(stringItems)),
	mcp.WithNumber("profile_gpa", mcp.Description("Student GPA on the 0-10 scale")),
	mcp.WithNumber("profile_course", mcp.Description("Student course number, 1-4")),
	mcp.WithNumber("salary_min", mcp.Description("Salary floor in rubles; postings without a listed salary are excluded")),
	mcp.WithNumber("limit", mcp.Description("Page size (default 50, max 200)")),
	mcp.WithNumber("offset", mcp.Description("Page offset (default 0)")),
)

var getToolDef = mcp.NewTool("internship_get",
	mcp.WithDescription("Fetch one internship posting by identifier, with derived display labels and the share fragment."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Posting identifier")),
)

var createToolDef = mcp.NewTool("internship_create",
	mcp.WithDescription("Submit a new internship posting. Remote postings are coerced to the wildcard city; non-remote postings may not keep it. The posting is persisted locally."),
	mcp.WithString("company", mcp.Required(), mcp.Description("Company name")),
	mcp.WithString("role_title", mcp.Required(), mcp.Description("Role title")),
	mcp.WithString("direction", mcp.Required(), mcp.Description("Direction: backend, frontend, mobile, data, qa, infra")),
	mcp.WithString("paid", mcp.Required(), mcp.Description("Paid or Unpaid")),
	mcp.WithString("format", mcp.Required(), mcp.Description("Work format: Remote, Onsite, Hybrid")),
	mcp.WithString("city", mcp.Required(), mcp.Description("City: Moscow, SPb, Novosibirsk, Kazan, Any")),
	mcp.WithNumber("salary_min", mcp.Description("Salary floor in rubles")),
	mcp.WithNumber("course_min", mcp.Description("Minimum eligible course, 1-4")),
	mcp.WithNumber("course_max", mcp.Description("Maximum eligible course, 1-4")),
	mcp.WithNumber("min_gpa", mcp.Description("Minimum GPA, 0-10")),
	mcp.WithString("stack", mcp.Description("Comma-separated technology tags")),
	mcp.WithString("short_pitch", mcp.Required(), mcp.Description("One-line pitch")),
	mcp.WithString("telegram", mcp.Required(), mcp.Description("Telegram contact link")),
	mcp.WithString("email", mcp.Required(), mcp.Description("Contact email")),
)

var universityMatchToolDef = mcp.NewTool("university_match",
	mcp.WithDescription("Resolve a free-text university query into a ranked candidate list. Prefix matches on the short label rank first; alias and substring matches follow."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Free-text university name, e.g. вшэ or бауманка")),
	mcp.WithNumber("limit", mcp.Description("Maximum candidates (default 12, max 50)")),
)

var exportToolDef = mcp.NewTool("catalog_export",
	mcp.WithDescription("Write the merged catalog, or only the user-created postings, to a JSON file."),
	mcp.WithString("path", mcp.Description("Target file path; defaults to the exports directory")),
	mcp.WithBoolean("user_only", mcp.Description("Export only user-created postings")),
)
