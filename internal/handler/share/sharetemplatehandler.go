// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package share

import (
	"net/http"

	"github.com/mailgallery/mailgallery/internal/logic/share"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/mailgallery/mailgallery/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ShareTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ShareTemplateRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := share.NewShareTemplateLogic(r.Context(), svcCtx)
		resp, err := l.ShareTemplate(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
