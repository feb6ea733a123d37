// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package share

import (
	"context"

	"github.com/mailgallery/mailgallery/internal/errorx"
	"github.com/mailgallery/mailgallery/internal/svc"
	"github.com/mailgallery/mailgallery/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetShareStatusLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetShareStatusLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetShareStatusLogic {
	return &GetShareStatusLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetShareStatusLogic) GetShareStatus(req *types.GetShareStatusRequest) (resp *types.GetShareStatusResponse, err error) {
	status, err := l.svcCtx.Shares.GetStatus(l.ctx, req.Id)
	if err != nil {
		return nil, errorx.ErrInternal("failed to get share status: " + err.Error())
	}
	if status == nil {
		return nil, errorx.ErrShareNotFound(req.Id)
	}

	return &types.GetShareStatusResponse{
		Id:        status.ID,
		Subject:   status.Subject,
		Recipient: status.Recipient,
		Language:  status.Language,
		Status:    status.State,
		Attempts:  status.Attempts,
		Error:     status.Error,
		CreatedAt: status.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}
