// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/mailgallery/mailgallery/internal/errorx"
	"github.com/mailgallery/mailgallery/internal/render"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/mailgallery/mailgallery/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetTemplateLogic {
	return &GetTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetTemplateLogic) GetTemplate(req *types.GetTemplateRequest) (resp *types.GetTemplateResponse, err error) {
	store := l.svcCtx.App.Store()

	t, ok := store.TranslatedAt(req.Index)
	if !ok {
		return nil, errorx.ErrTemplateNotFound(req.Index)
	}

	language := store.Language()
	return &types.GetTemplateResponse{
		Index:    req.Index,
		Subject:  t.Subject,
		Body:     t.Body,
		Category: t.CategoryOrDefault(),
		CopyText: render.EmailText(t.Subject, t.Body, language),
		Language: language,
	}, nil
}
