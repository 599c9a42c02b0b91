package customers

import "context"

// Repository persists the whole customer collection. The service owns the
// in-memory copy; the repository only moves it to and from durable storage.
type Repository interface {
	LoadAll(ctx context.Context) []Customer
	SaveAll(ctx context.Context, records []Customer) error
}
