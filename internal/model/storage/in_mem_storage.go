package storage

import (
	"context"

	"max.ks1230/money-tracker/internal/entity/account"
	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/customerr"
)

// InMemStorage mirrors the file storage semantics without a backing
// file. Used in tests and for throwaway runs.
type InMemStorage struct {
	users  []account.Record
	txs    []transaction.Record
	lastID int64
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{}
}

func (s *InMemStorage) ListUsers(_ context.Context) ([]account.Record, error) {
	return append([]account.Record(nil), s.users...), nil
}

func (s *InMemStorage) Authenticate(_ context.Context, username, password string) (bool, error) {
	for _, u := range s.users {
		if u.Matches(username, password) {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemStorage) RegisterUser(_ context.Context, username, password string) error {
	for _, u := range s.users {
		if u.Username == username {
			return &customerr.AlreadyExistsError{Username: username}
		}
	}
	s.users = append(s.users, account.Record{Username: username, Password: password})
	return nil
}

func (s *InMemStorage) ListTransactions(_ context.Context) ([]transaction.Record, error) {
	return append([]transaction.Record(nil), s.txs...), nil
}

func (s *InMemStorage) AppendTransaction(_ context.Context, rec transaction.Record) (int64, error) {
	s.lastID++
	rec.ID = s.lastID
	rec.Normalize()
	s.txs = append(s.txs, rec)
	return rec.ID, nil
}

func (s *InMemStorage) ListByOwner(_ context.Context, owner string) ([]transaction.Record, error) {
	return filterByOwner(s.txs, owner), nil
}

func (s *InMemStorage) UpdateTransaction(_ context.Context, id int64, rec transaction.Record) error {
	at := indexOf(s.txs, id)
	if at < 0 {
		return &customerr.NotFoundError{ID: id}
	}
	rec.ID = id
	rec.Owner = s.txs[at].Owner
	rec.Normalize()
	s.txs[at] = rec
	return nil
}

func (s *InMemStorage) DeleteTransaction(_ context.Context, id int64) error {
	at := indexOf(s.txs, id)
	if at < 0 {
		return &customerr.NotFoundError{ID: id}
	}
	s.txs = append(s.txs[:at], s.txs[at+1:]...)
	return nil
}

func (s *InMemStorage) DeleteAllByOwner(_ context.Context, owner string) (int64, error) {
	kept := make([]transaction.Record, 0, len(s.txs))
	var removed int64
	for _, tx := range s.txs {
		if tx.Owner == owner {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	s.txs = kept
	return removed, nil
}
