package storage

import (
	"context"

	"wavesplit/internal/domain"
)

// Storage persists a wave plan once a run has finished
type Storage interface {
	Save(ctx context.Context, plan *domain.Plan) error
}

// Multi fans a plan out to several storages, stopping at the first error
type Multi []Storage

// Save writes the plan to every storage in order
func (m Multi) Save(ctx context.Context, plan *domain.Plan) error {
	for _, s := range m {
		if err := s.Save(ctx, plan); err != nil {
			return err
		}
	}
	return nil
}
