package ingest

import (
	"errors"
	"fmt"

	"settlement_console/internal/domain/entities"
)

var ErrUnresolvedTechnician = errors.New("technician could not be resolved")

// Resolver maps a loosely typed technician token (display name or code) to a
// registry entry. Matching is exact and case-sensitive; the first registry
// entry whose name or id equals the token wins.
type Resolver struct {
	registry []entities.Technician
}

func NewResolver(registry []entities.Technician) *Resolver {
	return &Resolver{registry: registry}
}

func (r *Resolver) Resolve(token string) (entities.Technician, error) {
	if token != "" {
		for _, t := range r.registry {
			if t.Name == token || t.ID == token {
				return t, nil
			}
		}
	}
	return entities.Technician{}, fmt.Errorf("%w: %q", ErrUnresolvedTechnician, token)
}
