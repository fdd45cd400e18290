package http

import (
	"production-board/internal/view"
	"production-board/pkg/log"
)

type handler struct {
	l  log.Logger
	uc view.UseCase
}

// New creates a new HTTP handler for the view domain.
func New(l log.Logger, uc view.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
