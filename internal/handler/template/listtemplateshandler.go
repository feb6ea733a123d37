// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"net/http"

	"github.com/mailgallery/mailgallery/internal/logic/template"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/mailgallery/mailgallery/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListTemplatesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListTemplatesRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := template.NewListTemplatesLogic(r.Context(), svcCtx)
		resp, err := l.ListTemplates(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
