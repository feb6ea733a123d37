// Package server assembles the gallery services: Datastar web UI, JSON REST
// API, MCP server, and the share delivery engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mailgallery/mailgallery/internal/config"
	"github.com/mailgallery/mailgallery/internal/errorx"
	"github.com/mailgallery/mailgallery/internal/gallery"
	"github.com/mailgallery/mailgallery/internal/handler"
	"github.com/mailgallery/mailgallery/internal/model"
	"github.com/mailgallery/mailgallery/internal/preview"
	"github.com/mailgallery/mailgallery/internal/share"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/mailgallery/mailgallery/internal/translate"
	"github.com/mailgallery/mailgallery/internal/ui"
	"github.com/mailgallery/mailgallery/pkg/db"
	"github.com/mailgallery/mailgallery/pkg/mail"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/threading"
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Server wraps the MCP server and gallery services.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec/GaugeVec to record)
	prometheus.Enable()

	// Create MCP server
	mcpServer := mcp.NewMcpServer(c.McpConf)

	// Parallel initialization: the catalog load and the translator setup are
	// independent.
	var database *db.DB
	var source []gallery.Template
	var previews *preview.Renderer
	var translator translate.Translator

	err := mr.Finish(
		func() error {
			var e error
			database, e = db.Open(c.Database.Path)
			if e != nil {
				return e
			}
			catalog := model.NewCatalogModel(database.SqlConn())
			if e = catalog.SeedIfEmpty(context.Background()); e != nil {
				return e
			}
			source, e = catalog.All(context.Background())
			return e
		},
		func() error {
			previews = preview.NewRenderer(preview.WithCache(true))
			if c.Translator.Endpoint == "" {
				translator = translate.Noop{}
			} else {
				translator = translate.NewClient(c.Translator.Endpoint,
					translate.WithRateLimit(c.Translator.RateLimit))
			}
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	app := gallery.NewApp(source, translator)

	// Warm the default language in the background so the first page load does
	// not wait on the translation endpoint.
	defaultLang := c.Gallery.DefaultLanguage
	threading.GoSafe(func() {
		app.Reload(context.Background(), defaultLang)
	})

	// Share queue + delivery engine
	shares, err := share.NewQueue(database.DB, c.Share.MaxAttempts)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create share queue: %w", err)
	}

	retryBackoff, _ := time.ParseDuration(c.Share.RetryBackoff)
	if retryBackoff == 0 {
		retryBackoff = time.Minute
	}
	maxBackoff, _ := time.ParseDuration(c.Share.MaxBackoff)
	if maxBackoff == 0 {
		maxBackoff = time.Hour
	}

	shareConfig := share.Config{
		MaxAttempts:  c.Share.MaxAttempts,
		RetryBackoff: retryBackoff,
		MaxBackoff:   maxBackoff,
		RateLimit:    c.Share.RateLimit,
	}

	smtpConfig := mail.Config{
		SMTPHost:  c.SMTP.Host,
		SMTPPort:  c.SMTP.Port,
		Username:  c.SMTP.Username,
		Password:  c.SMTP.Password,
		FromEmail: c.SMTP.FromEmail,
		FromName:  c.SMTP.FromName,
	}
	engine := share.NewEngine(shares, previews, smtpConfig, shareConfig)

	// Register MCP tools
	RegisterMCPTools(mcpServer, app, shares, c.Share.MaxAttempts)

	// Create UI rest server (Datastar web UI) with CORS
	uiServer, err := rest.NewServer(c.UI.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create UI server: %w", err)
	}

	uiHandlers := ui.NewHandlers(app, previews, defaultLang)
	uiServer.AddRoutes(uiHandlers.Routes())
	uiServer.AddRoutes(uiHandlers.SSERoutes(), rest.WithSSE())

	// Create API rest server (goctl-generated JSON REST API) with CORS
	apiServer, err := rest.NewServer(c.API.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	apiCtx := svc.NewServiceContext(c, app, shares, previews)
	handler.RegisterHandlers(apiServer, apiCtx)

	// Expose Prometheus metrics endpoint
	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	// Register cleanup via proc shutdown listeners
	proc.AddShutdownListener(func() {
		logx.Info("Closing database")
		database.Close()
	})

	// Build service group: share engine + UI + API + MCP (stopped in reverse order)
	group := service.NewServiceGroup()
	group.Add(newShareService(engine, c.Share.Workers))
	group.Add(uiServer)
	group.Add(apiServer)
	group.Add(mcpServer)

	logx.Infow("mailgallery server configured",
		logx.Field("mcp", fmt.Sprintf("http://%s:%d/sse", c.Host, c.Port)),
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.UI.Host, c.UI.Port)),
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.API.Host, c.API.Port)),
		logx.Field("language", defaultLang),
		logx.Field("templates", len(source)),
		logx.Field("database", c.Database.Path),
	)

	return &Server{config: c, group: group}, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}
