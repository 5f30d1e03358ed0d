package session

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/customerr"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyField         = errors.New("username and password cannot be empty")
	ErrLoggedOut          = errors.New("session is logged out")
)

type userStorage interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
	RegisterUser(ctx context.Context, username, password string) error
}

type transactionStorage interface {
	AppendTransaction(ctx context.Context, rec transaction.Record) (int64, error)
	ListByOwner(ctx context.Context, owner string) ([]transaction.Record, error)
	UpdateTransaction(ctx context.Context, id int64, rec transaction.Record) error
	DeleteTransaction(ctx context.Context, id int64) error
	DeleteAllByOwner(ctx context.Context, owner string) (int64, error)
}

// Manager owns the credential checks and hands out sessions. A session
// is the only way the rest of the app reaches the transaction store,
// so anonymous callers simply have nothing to call.
type Manager struct {
	users userStorage
	txs   transactionStorage
}

func NewManager(users userStorage, txs transactionStorage) *Manager {
	return &Manager{users: users, txs: txs}
}

func (m *Manager) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyField
	}
	return pkgerrors.Wrap(m.users.RegisterUser(ctx, username, password), "register")
}

func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	ok, err := m.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "login")
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return &Session{owner: username, txs: m.txs}, nil
}

// Session is the authenticated state of one interactive user. It is
// ephemeral and never persisted. Logout closes it for good.
type Session struct {
	owner  string
	txs    transactionStorage
	closed bool
}

func (s *Session) Owner() string {
	return s.owner
}

func (s *Session) Logout() {
	s.closed = true
}

func (s *Session) Add(ctx context.Context, rec transaction.Record) (int64, error) {
	if s.closed {
		return 0, ErrLoggedOut
	}
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	rec.Owner = s.owner
	return s.txs.AppendTransaction(ctx, rec)
}

func (s *Session) List(ctx context.Context) ([]transaction.Record, error) {
	if s.closed {
		return nil, ErrLoggedOut
	}
	return s.txs.ListByOwner(ctx, s.owner)
}

// Update overwrites the record with the given id. An id that does not
// exist, or that belongs to another owner, reads as NotFound.
func (s *Session) Update(ctx context.Context, id int64, rec transaction.Record) error {
	if s.closed {
		return ErrLoggedOut
	}
	if rec.Kind != transaction.Income && rec.Kind != transaction.Expense {
		return transaction.ErrUnknownKind
	}
	if rec.Amount == 0 {
		return transaction.ErrInvalidAmount
	}
	if err := s.checkOwned(ctx, id); err != nil {
		return err
	}
	rec.Owner = s.owner
	return s.txs.UpdateTransaction(ctx, id, rec)
}

func (s *Session) Delete(ctx context.Context, id int64) error {
	if s.closed {
		return ErrLoggedOut
	}
	if err := s.checkOwned(ctx, id); err != nil {
		return err
	}
	return s.txs.DeleteTransaction(ctx, id)
}

func (s *Session) Clear(ctx context.Context) (int64, error) {
	if s.closed {
		return 0, ErrLoggedOut
	}
	return s.txs.DeleteAllByOwner(ctx, s.owner)
}

func (s *Session) checkOwned(ctx context.Context, id int64) error {
	owned, err := s.txs.ListByOwner(ctx, s.owner)
	if err != nil {
		return pkgerrors.Wrap(err, "check owned")
	}
	for _, tx := range owned {
		if tx.ID == id {
			return nil
		}
	}
	return &customerr.NotFoundError{ID: id}
}
