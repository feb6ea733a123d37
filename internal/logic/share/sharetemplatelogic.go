// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package share

import (
	"context"

	"github.com/mailgallery/mailgallery/internal/errorx"
	"github.com/mailgallery/mailgallery/internal/locale"
	"github.com/mailgallery/mailgallery/internal/share"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/mailgallery/mailgallery/internal/types"
	"github.com/mailgallery/mailgallery/pkg/mail"

	"github.com/zeromicro/go-zero/core/logx"
)

type ShareTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewShareTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ShareTemplateLogic {
	return &ShareTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ShareTemplateLogic) ShareTemplate(req *types.ShareTemplateRequest) (resp *types.ShareTemplateResponse, err error) {
	if err := mail.ValidateAddress(req.Recipient); err != nil {
		return nil, errorx.ErrInvalidRecipient(err)
	}

	store := l.svcCtx.App.Store()
	t, ok := store.TranslatedAt(req.Index)
	if !ok {
		return nil, errorx.ErrTemplateNotFound(req.Index)
	}

	language := store.Language()
	if language == "" {
		language = locale.DefaultCode
	}

	id, err := l.svcCtx.Shares.Enqueue(l.ctx, share.Job{
		Subject:   t.Subject,
		Body:      t.Body,
		Language:  language,
		Recipient: req.Recipient,
	}, l.svcCtx.Config.Share.MaxAttempts)
	if err != nil {
		return nil, errorx.ErrInternal("failed to queue share: " + err.Error())
	}

	return &types.ShareTemplateResponse{
		Id:       id,
		Status:   "queued",
		Subject:  t.Subject,
		Language: language,
	}, nil
}
