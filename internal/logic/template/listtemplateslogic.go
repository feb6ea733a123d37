// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/mailgallery/mailgallery/internal/render"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/mailgallery/mailgallery/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListTemplatesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListTemplatesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListTemplatesLogic {
	return &ListTemplatesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListTemplatesLogic) ListTemplates(req *types.ListTemplatesRequest) (resp *types.ListTemplatesResponse, err error) {
	store := l.svcCtx.App.Store()

	matches := store.Match(req.Category, req.Q)
	items := make([]types.TemplateItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, types.TemplateItem{
			Index:    m.Index,
			Subject:  m.Template.Subject,
			Category: m.Template.CategoryOrDefault(),
			Preview:  render.TruncatePreview(m.Template.Body),
		})
	}

	return &types.ListTemplatesResponse{
		Templates: items,
		Count:     len(items),
		Total:     len(store.Source()),
		Language:  store.Language(),
	}, nil
}
