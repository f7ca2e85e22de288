// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes checklist tools for LLM integration via stdio transport.
//
// The server acts as a configured service user; every tool call runs
// through the same ownership checks as the HTTP surface.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nwestra/checkpad/internal/checklistservice"
)

// Server wraps the MCP server with checklist tools.
type Server struct {
	mcp    *server.MCPServer
	svc    *checklistservice.Service
	userID string
}

// New creates a new MCP server operating as the given user.
func New(svc *checklistservice.Service, userID string) *Server {
	s := &Server{svc: svc, userID: userID}

	s.mcp = server.NewMCPServer(
		"Checkpad",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_checklists",
		mcp.WithDescription("List the user's checklists, newest first, each with its items."),
	), s.listChecklists)

	s.mcp.AddTool(mcp.NewTool("read_checklist",
		mcp.WithDescription("Read one checklist with its items sorted by order."),
		mcp.WithString("checklist_id", mcp.Required(), mcp.Description("Checklist id")),
	), s.readChecklist)

	s.mcp.AddTool(mcp.NewTool("create_checklist",
		mcp.WithDescription("Create a new checklist owned by the user."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Checklist title (non-empty)")),
		mcp.WithString("description", mcp.Description("Optional description")),
	), s.createChecklist)

	s.mcp.AddTool(mcp.NewTool("add_item",
		mcp.WithDescription("Append an item to a checklist. The item's order is assigned automatically."),
		mcp.WithString("checklist_id", mcp.Required(), mcp.Description("Checklist id")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Item title (non-empty)")),
		mcp.WithString("notes", mcp.Description("Optional notes")),
	), s.addItem)

	s.mcp.AddTool(mcp.NewTool("toggle_item",
		mcp.WithDescription("Set an item's done flag."),
		mcp.WithString("item_id", mcp.Required(), mcp.Description("Item id")),
		mcp.WithBoolean("done", mcp.Required(), mcp.Description("Desired done state")),
	), s.toggleItem)

	// Resource: tool usage contract.
	s.mcp.AddResource(
		mcp.NewResource("checkpad://usage", "Checklist Tool Contract",
			mcp.WithResourceDescription("How to use the checklist tools."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readUsageResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listChecklists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	checklists, err := s.svc.ListChecklists(ctx, s.userID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(checklists, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readChecklist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("checklist_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cl, err := s.svc.GetChecklist(ctx, s.userID, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("checklist %s: %v", id, err)), nil
	}
	out, _ := json.MarshalIndent(cl, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createChecklist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description := ""
	if d, err := req.RequireString("description"); err == nil {
		description = d
	}

	cl, err := s.svc.CreateChecklist(ctx, s.userID, title, description)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created checklist %s: %s", cl.ID, cl.Title)), nil
}

func (s *Server) addItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	checklistID, err := req.RequireString("checklist_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	notes := ""
	if n, err := req.RequireString("notes"); err == nil {
		notes = n
	}

	item, err := s.svc.CreateItem(ctx, s.userID, checklistID, title, notes)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("added item %s at order %d", item.ID, item.Order)), nil
}

func (s *Server) toggleItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	itemID, err := req.RequireString("item_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	done, err := req.RequireBool("done")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.svc.ToggleItem(ctx, s.userID, itemID, done); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("item %s done=%t", itemID, done)), nil
}

func (s *Server) readUsageResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "checkpad://usage",
			MIMEType: "text/markdown",
			Text:     UsageContract,
		},
	}, nil
}
