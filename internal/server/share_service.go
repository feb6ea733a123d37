package server

import "github.com/mailgallery/mailgallery/internal/share"

// shareService adapts share.Engine to the service.Service interface.
type shareService struct {
	engine  *share.Engine
	workers int
}

func newShareService(engine *share.Engine, workers int) *shareService {
	return &shareService{engine: engine, workers: workers}
}

func (s *shareService) Start() {
	s.engine.Start(s.workers)
}

func (s *shareService) Stop() {
	s.engine.Stop()
}
