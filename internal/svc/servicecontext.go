// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/mailgallery/mailgallery/internal/config"
	"github.com/mailgallery/mailgallery/internal/gallery"
	"github.com/mailgallery/mailgallery/internal/preview"
	"github.com/mailgallery/mailgallery/internal/share"
)

type ServiceContext struct {
	Config   config.Config
	App      *gallery.App
	Shares   *share.Queue
	Previews *preview.Renderer
}

func NewServiceContext(c config.Config, app *gallery.App, shares *share.Queue, previews *preview.Renderer) *ServiceContext {
	return &ServiceContext{
		Config:   c,
		App:      app,
		Shares:   shares,
		Previews: previews,
	}
}
