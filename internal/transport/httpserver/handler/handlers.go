package handler

import (
	"context"

	"promana-go/internal/domain/members"
	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Projects *projects.Service
	Members  *members.Service
	store    Pinger
	schemas  *hypermedia.Validator
	log      logger.Logger
}

func New(projectsSvc *projects.Service, membersSvc *members.Service, store Pinger, log logger.Logger) *Handlers {
	return &Handlers{
		Projects: projectsSvc,
		Members:  membersSvc,
		store:    store,
		schemas:  newValidator(),
		log:      log,
	}
}
