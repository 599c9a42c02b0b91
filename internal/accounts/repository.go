package accounts

import "context"

// Repository persists the whole account collection. The service owns the
// in-memory copy; the repository only moves it to and from durable storage.
type Repository interface {
	LoadAll(ctx context.Context) []Account
	SaveAll(ctx context.Context, records []Account) error
}
