package loadrun

import "context"

// LoadRunRepository records loader runs.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type LoadRunRepository interface {
	Record(ctx context.Context, run *LoadRun) error
	GetByID(ctx context.Context, id string) (*LoadRun, error)
}
