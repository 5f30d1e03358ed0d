package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"max.ks1230/money-tracker/internal/entity/account"
	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/customerr"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type pgConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage provides the same two-store contract on postgres.
// Identity here is the serial primary key, so stale ids report
// NotFound exactly like the file backend.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config pgConfig) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) ListUsers(ctx context.Context) ([]account.Record, error) {
	query := psql.Select("username", "password").From("users").OrderBy("username")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	defer rows.Close()

	users := make([]account.Record, 0)
	for rows.Next() {
		var u account.Record
		if err = rows.Scan(&u.Username, &u.Password); err != nil {
			return nil, errors.Wrap(err, "list users")
		}
		users = append(users, u)
	}
	return users, errors.Wrap(rows.Err(), "list users")
}

func (s *PostgresStorage) Authenticate(ctx context.Context, username, password string) (bool, error) {
	query := psql.Select("count(*)").
		From("users").
		Where(sq.Eq{"username": username, "password": password})

	var count int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&count)
	if err != nil {
		return false, errors.Wrap(err, "authenticate")
	}
	return count > 0, nil
}

func (s *PostgresStorage) RegisterUser(ctx context.Context, username, password string) error {
	query := psql.Insert("users").
		Columns("username", "password").
		Values(username, password).
		Suffix("ON CONFLICT (username) DO NOTHING")

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "register user")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "register user")
	}
	if affected == 0 {
		return &customerr.AlreadyExistsError{Username: username}
	}
	return nil
}

func (s *PostgresStorage) ListTransactions(ctx context.Context) ([]transaction.Record, error) {
	return s.selectTransactions(ctx, sq.Eq{})
}

func (s *PostgresStorage) ListByOwner(ctx context.Context, owner string) ([]transaction.Record, error) {
	return s.selectTransactions(ctx, sq.Eq{"owner": owner})
}

func (s *PostgresStorage) selectTransactions(ctx context.Context, where sq.Eq) ([]transaction.Record, error) {
	query := psql.Select("id", "owner", "tx_date", "category", "kind", "amount", "notes").
		From("transactions").
		Where(where).
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "select transactions")
	}
	defer rows.Close()

	txs := make([]transaction.Record, 0)
	for rows.Next() {
		var tx transaction.Record
		err = rows.Scan(&tx.ID, &tx.Owner, &tx.Date, &tx.Category, &tx.Kind, &tx.Amount, &tx.Notes)
		if err != nil {
			return nil, errors.Wrap(err, "select transactions")
		}
		txs = append(txs, tx)
	}
	return txs, errors.Wrap(rows.Err(), "select transactions")
}

func (s *PostgresStorage) AppendTransaction(ctx context.Context, rec transaction.Record) (int64, error) {
	rec.Normalize()
	query := psql.Insert("transactions").
		Columns("owner", "tx_date", "category", "kind", "amount", "notes").
		Values(rec.Owner, rec.Date, rec.Category, rec.Kind, rec.Amount, rec.Notes).
		Suffix("RETURNING id")

	var id int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&id)
	return id, errors.Wrap(err, "append transaction")
}

func (s *PostgresStorage) UpdateTransaction(ctx context.Context, id int64, rec transaction.Record) error {
	rec.Normalize()
	query := psql.Update("transactions").
		Set("tx_date", rec.Date).
		Set("category", rec.Category).
		Set("kind", rec.Kind).
		Set("amount", rec.Amount).
		Set("notes", rec.Notes).
		Where(sq.Eq{"id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "update transaction")
	}
	return checkFound(res, id)
}

func (s *PostgresStorage) DeleteTransaction(ctx context.Context, id int64) error {
	query := psql.Delete("transactions").Where(sq.Eq{"id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete transaction")
	}
	return checkFound(res, id)
}

func (s *PostgresStorage) DeleteAllByOwner(ctx context.Context, owner string) (int64, error) {
	query := psql.Delete("transactions").Where(sq.Eq{"owner": owner})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "delete all by owner")
	}
	removed, err := res.RowsAffected()
	return removed, errors.Wrap(err, "delete all by owner")
}

func checkFound(res sql.Result, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return &customerr.NotFoundError{ID: id}
	}
	return nil
}
