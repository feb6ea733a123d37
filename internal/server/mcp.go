package server

import (
	"context"
	"fmt"

	"github.com/mailgallery/mailgallery/internal/gallery"
	"github.com/mailgallery/mailgallery/internal/locale"
	"github.com/mailgallery/mailgallery/internal/render"
	"github.com/mailgallery/mailgallery/internal/share"
	"github.com/mailgallery/mailgallery/pkg/mail"
	"github.com/zeromicro/go-zero/mcp"
)

// RegisterMCPTools registers all MCP tools for the gallery.
func RegisterMCPTools(s mcp.McpServer, app *gallery.App, shares *share.Queue, maxAttempts int) {
	registerListTemplatesTool(s, app)
	registerGetTemplateTool(s, app)
	registerShareTemplateTool(s, app, shares, maxAttempts)
	registerGetShareStatusTool(s, shares)
	registerTemplatesResource(s, app)
}

func registerListTemplatesTool(s mcp.McpServer, app *gallery.App) {
	s.RegisterTool(mcp.Tool{
		Name:        "list_templates",
		Description: "List email templates in the gallery, optionally filtered by category and a free-text query.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"category": map[string]any{
					"type":        "string",
					"description": "Category filter (e.g., Sales, Billing). \"All\" or empty lists everything.",
				},
				"q": map[string]any{
					"type":        "string",
					"description": "Case-insensitive search over subject, body, and category",
				},
			},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Category string `json:"category"`
				Q        string `json:"q"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			matches := app.Store().Match(args.Category, args.Q)
			result := make([]map[string]any, 0, len(matches))
			for _, m := range matches {
				result = append(result, map[string]any{
					"index":    m.Index,
					"subject":  m.Template.Subject,
					"category": m.Template.CategoryOrDefault(),
					"preview":  render.TruncatePreview(m.Template.Body),
				})
			}

			return map[string]any{
				"templates": result,
				"count":     len(result),
				"language":  app.Store().Language(),
			}, nil
		},
	})
}

func registerGetTemplateTool(s mcp.McpServer, app *gallery.App) {
	s.RegisterTool(mcp.Tool{
		Name:        "get_template",
		Description: "Get a single email template by its index, including the ready-to-paste email text.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"index": map[string]any{
					"type":        "number",
					"description": "Template index as returned by list_templates",
				},
			},
			Required: []string{"index"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Index int `json:"index"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			t, ok := app.Store().TranslatedAt(args.Index)
			if !ok {
				return nil, fmt.Errorf("template not found: %d", args.Index)
			}

			language := app.Store().Language()
			return map[string]any{
				"index":     args.Index,
				"subject":   t.Subject,
				"body":      t.Body,
				"category":  t.CategoryOrDefault(),
				"copy_text": render.EmailText(t.Subject, t.Body, language),
				"language":  language,
			}, nil
		},
	})
}

func registerShareTemplateTool(s mcp.McpServer, app *gallery.App, shares *share.Queue, maxAttempts int) {
	s.RegisterTool(mcp.Tool{
		Name:        "share_template",
		Description: "Queue a gallery template for delivery to an email address so it can be tried in a real client.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"index": map[string]any{
					"type":        "number",
					"description": "Template index as returned by list_templates",
				},
				"recipient": map[string]any{
					"type":        "string",
					"description": "Recipient email address",
				},
			},
			Required: []string{"index", "recipient"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Index     int    `json:"index"`
				Recipient string `json:"recipient"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if err := mail.ValidateAddress(args.Recipient); err != nil {
				return nil, err
			}

			t, ok := app.Store().TranslatedAt(args.Index)
			if !ok {
				return nil, fmt.Errorf("template not found: %d", args.Index)
			}

			language := app.Store().Language()
			if language == "" {
				language = locale.DefaultCode
			}

			id, err := shares.Enqueue(ctx, share.Job{
				Subject:   t.Subject,
				Body:      t.Body,
				Language:  language,
				Recipient: args.Recipient,
			}, maxAttempts)
			if err != nil {
				return nil, fmt.Errorf("failed to queue share: %w", err)
			}

			return map[string]any{
				"id":       id,
				"status":   "queued",
				"subject":  t.Subject,
				"language": language,
			}, nil
		},
	})
}

func registerGetShareStatusTool(s mcp.McpServer, shares *share.Queue) {
	s.RegisterTool(mcp.Tool{
		Name:        "get_share_status",
		Description: "Get the delivery status of a queued share by its ID.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Share ID returned from share_template",
				},
			},
			Required: []string{"id"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				ID string `json:"id"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			status, err := shares.GetStatus(ctx, args.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to get status: %w", err)
			}
			if status == nil {
				return nil, fmt.Errorf("share not found: %s", args.ID)
			}

			return map[string]any{
				"id":         status.ID,
				"subject":    status.Subject,
				"recipient":  status.Recipient,
				"language":   status.Language,
				"status":     status.State,
				"attempts":   status.Attempts,
				"error":      status.Error,
				"created_at": status.CreatedAt,
			}, nil
		},
	})
}

func registerTemplatesResource(s mcp.McpServer, app *gallery.App) {
	s.RegisterResource(mcp.Resource{
		Name:        "templates",
		URI:         "gallery://templates",
		Description: "Email templates in the gallery",
		MimeType:    "text/plain",
		Handler: func(ctx context.Context) (mcp.ResourceContent, error) {
			entries := app.Store().Match(gallery.CategoryAll, "")

			content := "Gallery templates:\n"
			for _, e := range entries {
				content += fmt.Sprintf("- [%d] %s (%s)\n",
					e.Index, e.Template.Subject, e.Template.CategoryOrDefault())
			}

			return mcp.ResourceContent{
				URI:      "gallery://templates",
				MimeType: "text/plain",
				Text:     content,
			}, nil
		},
	})
}
