// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/mailgallery/mailgallery/internal/handler/share"
	"github.com/mailgallery/mailgallery/internal/handler/template"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/templates",
				Handler: template.ListTemplatesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/templates/:index",
				Handler: template.GetTemplateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/categories",
				Handler: template.ListCategoriesHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/shares",
				Handler: share.ShareTemplateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/shares/:id",
				Handler: share.GetShareStatusHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/stats",
				Handler: share.GetStatsHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1"),
	)
}
