package bookpublisherv1

import "context"

// Publisher sends materialized books downstream.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=bookpublisherv1_mock
type Publisher interface {
	Publish(ctx context.Context, ev *BookEvent) error
	Close() error
}
