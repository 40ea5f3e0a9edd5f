package ports

import "go.trai.ch/scaffold/internal/core/domain"

// RenderInfoStore defines the interface for storing and retrieving render information.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RenderInfoStore interface {
	// Get retrieves the render info for a given output path.
	// Returns nil, nil if not found.
	Get(output string) (*domain.RenderInfo, error)

	// Put stores the render info.
	Put(info domain.RenderInfo) error
}
