package ports

import "go.trai.ch/scaffold/internal/core/domain"

// ScheduleLoader defines the interface for loading a task schedule.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ScheduleLoader interface {
	// Load reads the schedule at path and returns its tasks in file order.
	Load(path string) ([]domain.Task, error)
}

// SettingsLoader defines the interface for loading project settings.
type SettingsLoader interface {
	// Load reads settings from path. An empty path yields the defaults with
	// environment overrides applied.
	Load(path string) (*domain.Settings, error)

	// Discover walks up from cwd and returns the path of the nearest
	// scaffold.yaml, or the empty string when there is none.
	Discover(cwd string) (string, error)
}
