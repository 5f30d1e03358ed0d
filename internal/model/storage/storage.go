package storage

import (
	"context"

	"github.com/pkg/errors"
	"max.ks1230/money-tracker/internal/entity/account"
	"max.ks1230/money-tracker/internal/entity/transaction"
)

// Storage is the combined credential + transaction store contract all
// backends implement.
type Storage interface {
	ListUsers(ctx context.Context) ([]account.Record, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
	RegisterUser(ctx context.Context, username, password string) error

	ListTransactions(ctx context.Context) ([]transaction.Record, error)
	AppendTransaction(ctx context.Context, rec transaction.Record) (int64, error)
	ListByOwner(ctx context.Context, owner string) ([]transaction.Record, error)
	UpdateTransaction(ctx context.Context, id int64, rec transaction.Record) error
	DeleteTransaction(ctx context.Context, id int64) error
	DeleteAllByOwner(ctx context.Context, owner string) (int64, error)
}

type driverConfig interface {
	filesConfig
	Driver() string
}

// New picks a backend by the configured driver name.
func New(conf driverConfig, pg pgConfig) (Storage, error) {
	switch conf.Driver() {
	case "file":
		return NewFileStorage(conf), nil
	case "memory":
		return NewInMemStorage(), nil
	case "postgres":
		return NewPostgresStorage(pg)
	}
	return nil, errors.Errorf("unknown storage driver %q", conf.Driver())
}
