package storage

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"max.ks1230/money-tracker/internal/entity/account"
	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/customerr"
)

var usersHeader = []string{"Username", "Password"}

var transactionsHeader = []string{"ID", "Username", "Date", "Category", "Type", "Amount", "Notes"}

type filesConfig interface {
	UsersFile() string
	TransactionsFile() string
}

// FileStorage keeps accounts and transactions in two CSV tables. Every
// operation reads the whole table and every mutation rewrites it, so a
// session always observes its own prior writes. There is no file
// locking: concurrent sessions race and the last full rewrite wins.
type FileStorage struct {
	usersPath string
	txPath    string
}

func NewFileStorage(config filesConfig) *FileStorage {
	return &FileStorage{
		usersPath: config.UsersFile(),
		txPath:    config.TransactionsFile(),
	}
}

func (s *FileStorage) ListUsers(_ context.Context) ([]account.Record, error) {
	rows, err := readTable(s.usersPath, len(usersHeader))
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	users := make([]account.Record, 0, len(rows))
	for _, row := range rows {
		users = append(users, account.Record{Username: row[0], Password: row[1]})
	}
	return users, nil
}

func (s *FileStorage) Authenticate(ctx context.Context, username, password string) (bool, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return false, errors.Wrap(err, "authenticate")
	}
	for _, u := range users {
		if u.Matches(username, password) {
			return true, nil
		}
	}
	return false, nil
}

func (s *FileStorage) RegisterUser(ctx context.Context, username, password string) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "register user")
	}
	for _, u := range users {
		if u.Username == username {
			return &customerr.AlreadyExistsError{Username: username}
		}
	}

	users = append(users, account.Record{Username: username, Password: password})
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Username, u.Password})
	}
	return errors.Wrap(writeTable(s.usersPath, usersHeader, rows), "register user")
}

func (s *FileStorage) ListTransactions(_ context.Context) ([]transaction.Record, error) {
	rows, err := readTable(s.txPath, len(transactionsHeader))
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}

	txs := make([]transaction.Record, 0, len(rows))
	for i, row := range rows {
		tx, err := parseTransactionRow(row)
		if err != nil {
			return nil, &customerr.CorruptError{File: s.txPath, Line: i + 2, Err: err.Error()}
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (s *FileStorage) AppendTransaction(ctx context.Context, rec transaction.Record) (int64, error) {
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "append transaction")
	}

	rec.ID = nextID(txs)
	rec.Normalize()
	txs = append(txs, rec)

	if err = s.writeTransactions(txs); err != nil {
		return 0, errors.Wrap(err, "append transaction")
	}
	return rec.ID, nil
}

func (s *FileStorage) ListByOwner(ctx context.Context, owner string) ([]transaction.Record, error) {
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list by owner")
	}
	return filterByOwner(txs, owner), nil
}

func (s *FileStorage) UpdateTransaction(ctx context.Context, id int64, rec transaction.Record) error {
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return errors.Wrap(err, "update transaction")
	}

	at := indexOf(txs, id)
	if at < 0 {
		return &customerr.NotFoundError{ID: id}
	}

	rec.ID = id
	rec.Owner = txs[at].Owner
	rec.Normalize()
	txs[at] = rec

	return errors.Wrap(s.writeTransactions(txs), "update transaction")
}

func (s *FileStorage) DeleteTransaction(ctx context.Context, id int64) error {
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return errors.Wrap(err, "delete transaction")
	}

	at := indexOf(txs, id)
	if at < 0 {
		return &customerr.NotFoundError{ID: id}
	}
	txs = append(txs[:at], txs[at+1:]...)

	return errors.Wrap(s.writeTransactions(txs), "delete transaction")
}

func (s *FileStorage) DeleteAllByOwner(ctx context.Context, owner string) (int64, error) {
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "delete all by owner")
	}

	kept := make([]transaction.Record, 0, len(txs))
	var removed int64
	for _, tx := range txs {
		if tx.Owner == owner {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	if removed == 0 {
		return 0, nil
	}

	if err = s.writeTransactions(kept); err != nil {
		return 0, errors.Wrap(err, "delete all by owner")
	}
	return removed, nil
}

func (s *FileStorage) writeTransactions(txs []transaction.Record) error {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Owner,
			tx.FormatDate(),
			tx.Category,
			tx.Kind,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Notes,
		})
	}
	return writeTable(s.txPath, transactionsHeader, rows)
}

func parseTransactionRow(row []string) (transaction.Record, error) {
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return transaction.Record{}, errors.Wrap(err, "id")
	}
	date, err := transaction.ParseDate(row[2])
	if err != nil {
		return transaction.Record{}, errors.Wrap(err, "date")
	}
	kind := row[4]
	if kind != transaction.Income && kind != transaction.Expense {
		return transaction.Record{}, errors.Errorf("type %q", kind)
	}
	amount, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return transaction.Record{}, errors.Wrap(err, "amount")
	}

	return transaction.Record{
		ID:       id,
		Owner:    row[1],
		Date:     date,
		Category: row[3],
		Kind:     kind,
		Amount:   amount,
		Notes:    row[6],
	}, nil
}

// readTable returns the data rows of a CSV table. A missing file is an
// empty table, not an error.
func readTable(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "open table")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = columns
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &customerr.CorruptError{File: path, Err: err.Error()}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "rewrite table")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err = writer.Write(header); err != nil {
		return errors.Wrap(err, "rewrite table")
	}
	if err = writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "rewrite table")
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "rewrite table")
}

func filterByOwner(txs []transaction.Record, owner string) []transaction.Record {
	res := make([]transaction.Record, 0)
	for _, tx := range txs {
		if tx.Owner == owner {
			res = append(res, tx)
		}
	}
	return res
}

func indexOf(txs []transaction.Record, id int64) int {
	for i, tx := range txs {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func nextID(txs []transaction.Record) int64 {
	var max int64
	for _, tx := range txs {
		if tx.ID > max {
			max = tx.ID
		}
	}
	return max + 1
}
