package domain

import "context"

//go:generate mockgen -source=id_allocator.go -destination=id_allocator_mock.go -package=domain

type IDAllocator interface {
	Allocate(ctx context.Context) (NotificationID, error)
}
