// Package mcp exposes the catalog operations as MCP tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"entrypoint/internal/catalog"
	"entrypoint/internal/config"
	"entrypoint/internal/notify"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"internship_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"internship_get": {
		def:     getToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGet },
	},
	"internship_create": {
		def:     createToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCreate },
	},
	"university_match": {
		def:     universityMatchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleUniversityMatch },
	},
	"catalog_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
}

// AllToolNames returns a list of all tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// NewServer creates a new MCP server with the catalog tools registered.
func NewServer(cat *catalog.Catalog, cfg *config.Config, notifier *notify.Notifier, baseDir, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"entrypoint",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(cat, cfg, notifier, baseDir)

	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(cat *catalog.Catalog, cfg *config.Config, notifier *notify.Notifier, baseDir, version string) error {
	s := NewServer(cat, cfg, notifier, baseDir, version)
	return server.ServeStdio(s)
}
