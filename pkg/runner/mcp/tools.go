package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const keyDescription = `Day "YYYY-MM-DD", hour slot "YYYY-MM-DDTHH:00" or "YYYY-MM-DD HH", or "today" / "today HH".`

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListNotesTool(srv, svc)
	registerGetNotesTool(srv, svc)
	registerAddNoteTool(srv, svc)
	registerEditNoteTool(srv, svc)
	registerDeleteNoteTool(srv, svc)
	registerMonthTool(srv, svc)
	registerWeekTool(srv, svc)
	registerAgendaTool(srv, svc)
}

func registerListNotesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_notes",
		mcp.WithDescription("List every day and hour slot that has notes."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		all, err := svc.ListNotes(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"keys":  all,
			"count": len(all),
		})
	})
}

func registerGetNotesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_notes",
		mcp.WithDescription("Get the notes of one day or hour slot."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description(keyDescription),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		kn, err := svc.Notes(ctx, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(kn)
	})
}

func registerAddNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_note",
		mcp.WithDescription("Append a note to a day or hour slot."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description(keyDescription),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Note text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Key  string `json:"key"`
			Text string `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		note, err := svc.AddNote(ctx, args.Key, args.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(note)
	})
}

func registerEditNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_note",
		mcp.WithDescription("Replace the text of a note. Positions come from get_notes and start at 0."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description(keyDescription),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Position of the note under the key."),
			mcp.Min(0),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("New note text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		note, err := svc.EditNote(ctx, key, request.GetInt("index", -1), text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(note)
	})
}

func registerDeleteNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_note",
		mcp.WithDescription("Delete a note. Later notes under the same key move up one position."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description(keyDescription),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Position of the note under the key."),
			mcp.Min(0),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		kn, err := svc.DeleteNote(ctx, key, request.GetInt("index", -1))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(kn)
	})
}

func registerMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_view",
		mcp.WithDescription("The 6x7 month grid with day notes."),
		mcp.WithString("month",
			mcp.Description(`Month as "YYYY-MM"; defaults to the current month.`),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, err := svc.Month(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(v)
	})
}

func registerWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"week_view",
		mcp.WithDescription("The hour grid of an ISO week with slot notes."),
		mcp.WithString("on",
			mcp.Description(`Any date in the week, "YYYY-MM-DD" or "today". Wins over year and week.`),
		),
		mcp.WithNumber("year",
			mcp.Description("ISO week-numbering year; defaults to the current one."),
		),
		mcp.WithNumber("week",
			mcp.Description("ISO week number; defaults to the current week."),
			mcp.Min(1),
			mcp.Max(53),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, err := svc.Week(ctx, request.GetInt("year", 0), request.GetInt("week", 0), request.GetString("on", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(v)
	})
}

func registerAgendaTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"agenda",
		mcp.WithDescription("Notes grouped by day over a span of days."),
		mcp.WithString("from",
			mcp.Description(`First day, "YYYY-MM-DD" or "today"; defaults to today.`),
		),
		mcp.WithString("span",
			mcp.Description(`Number of days such as "3d", "1w" or "1w2d"; defaults to 1w.`),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		r, err := svc.Agenda(ctx, request.GetString("from", ""), request.GetString("span", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(r)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
