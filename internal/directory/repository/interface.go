package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	// LookupNames resolves ids to display names in bulk. Ids with no entry
	// are simply absent from the result; only transport or query failures
	// return an error.
	LookupNames(ctx context.Context, ids []string) (map[string]string, error)
}
