package commands

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/customerr"
	"max.ks1230/money-tracker/internal/model/session"
	"max.ks1230/money-tracker/internal/model/summary"
	"max.ks1230/money-tracker/internal/utils"
)

const (
	helloMessage = "Welcome to the Money Tracker! 💰\n" +
		"/register <username> <password> - create an account\n" +
		"/login <username> <password> - log in\n" +
		"/logout - log out\n" +
		"/add <income|expense> <amount> <category> [yyyy-mm-dd] [notes] - add a transaction\n" +
		"/list - show your transactions\n" +
		"/edit <id> <income|expense> <amount> <category> [yyyy-mm-dd] [notes] - edit a transaction\n" +
		"/delete <id> - delete a transaction\n" +
		"/clear - delete all your transactions\n" +
		"/summary - income, expenses and balance\n" +
		"/report [week|month|year] - spending by category"
	dontUnderstandMessage = "I don't understand you :("
	okMessage             = "Gotcha!"

	needLoginMessage       = "Please log in first: /login <username> <password>"
	emptyFieldsMessage     = "Username and password cannot be empty!"
	duplicateUserMessage   = "Username already exists. Please choose another."
	registeredMessage      = "Account created successfully! Please log in."
	badCredentialsMessage  = "Invalid username or password"
	alreadyLoggedInMessage = "You are already logged in as "
	loggedOutMessage       = "Logged out successfully."

	incorrectUsageMessage  = "That is an incorrect command usage"
	incorrectKindMessage   = "Transaction type must be income or expense"
	incorrectAmountMessage = "Your transaction amount is incorrect"
	incorrectDateMessage   = "The date is incorrect. Should be yyyy-mm-dd"
	emptyCategoryMessage   = "Please fill in all the required fields."
	notFoundMessage        = "There is no transaction with that id"
	incorrectPeriodMessage = "Report period must be week, month or year"

	noTransactionsMessage  = "You have no transactions yet"
	clearedMessage         = "All transactions cleared!"
	negativeBalanceWarning = "Warning: You have spent more than you have! Your balance is negative."
	reportPendingMessage   = "Your report is being prepared. Ask for it again in a moment."

	cannotGetMessage  = "Can't get your transactions atm. Try later"
	cannotSaveMessage = "Can't save your transaction atm. Try later"
)

const (
	startCommand    = "/start"
	registerCommand = "/register"
	loginCommand    = "/login"
	logoutCommand   = "/logout"
	addCommand      = "/add"
	listCommand     = "/list"
	editCommand     = "/edit"
	deleteCommand   = "/delete"
	clearCommand    = "/clear"
	summaryCommand  = "/summary"
	reportCommand   = "/report"
)

type sessionManager interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*session.Session, error)
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, owner string, period string) (*summary.Report, error)
}

type reportRequester interface {
	RequestReport(ctx context.Context, owner string, period string) error
}

type reportCache interface {
	GetReport(owner string, period string) (string, bool)
	InvalidateReports(owner string) error
}

type config interface {
	CurrencySymbol() string
}

type handler func(ctx context.Context, arg string, peerID int64) (string, error)

type handlerMap map[string]handler

// HandlerService routes parsed commands to their handlers and keeps
// one session per peer. Requester and cache are optional: without
// them reports are generated in-process.
type HandlerService struct {
	handlersMap handlerMap
	manager     sessionManager
	generator   reportGenerator
	requester   reportRequester
	cache       reportCache
	symbol      string

	mu       sync.Mutex
	sessions map[int64]*session.Session
}

func NewHandler(manager sessionManager, generator reportGenerator, requester reportRequester, cache reportCache, conf config) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		manager:     manager,
		generator:   generator,
		requester:   requester,
		cache:       cache,
		symbol:      conf.CurrencySymbol(),
		sessions:    make(map[int64]*session.Session),
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleCommand(ctx context.Context, text string, peerID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, peerID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[registerCommand] = s.handleRegister
	m[loginCommand] = s.handleLogin
	m[logoutCommand] = s.handleLogout
	m[addCommand] = s.handleAdd
	m[listCommand] = s.handleList
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[clearCommand] = s.handleClear
	m[summaryCommand] = s.handleSummary
	m[reportCommand] = s.handleReport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) sessionFor(peerID int64) (*session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[peerID]
	return sess, ok
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return dontUnderstandMessage, nil
}

func (s *HandlerService) handleRegister(ctx context.Context, arg string, _ int64) (string, error) {
	username, password, ok := parseCredentials(arg)
	if !ok {
		return emptyFieldsMessage, nil
	}

	err := s.manager.Register(ctx, username, password)
	switch {
	case err == nil:
		return registeredMessage, nil
	case errors.Is(err, session.ErrEmptyField):
		return emptyFieldsMessage, nil
	case errors.As(err, new(*customerr.AlreadyExistsError)):
		return duplicateUserMessage, nil
	default:
		return cannotSaveMessage, errors.Wrap(err, "handle register")
	}
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string, peerID int64) (string, error) {
	if sess, ok := s.sessionFor(peerID); ok {
		return alreadyLoggedInMessage + sess.Owner(), nil
	}

	username, password, ok := parseCredentials(arg)
	if !ok {
		return emptyFieldsMessage, nil
	}

	sess, err := s.manager.Login(ctx, username, password)
	switch {
	case err == nil:
		s.mu.Lock()
		s.sessions[peerID] = sess
		s.mu.Unlock()
		return "Welcome, " + username + "!", nil
	case errors.Is(err, session.ErrInvalidCredentials):
		return badCredentialsMessage, nil
	default:
		return cannotGetMessage, errors.Wrap(err, "handle login")
	}
}

func (s *HandlerService) handleLogout(_ context.Context, _ string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}
	sess.Logout()
	s.mu.Lock()
	delete(s.sessions, peerID)
	s.mu.Unlock()
	return loggedOutMessage, nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}

	rec, msg := parseRecord(arg)
	if msg != "" {
		return msg, nil
	}

	id, err := sess.Add(ctx, rec)
	switch {
	case err == nil:
		s.invalidateReports(sess.Owner())
		return okMessage + " Saved as #" + strconv.FormatInt(id, 10), nil
	case errors.Is(err, transaction.ErrEmptyCategory):
		return emptyCategoryMessage, nil
	case errors.Is(err, transaction.ErrInvalidAmount):
		return incorrectAmountMessage, nil
	default:
		return cannotSaveMessage, errors.Wrap(err, "handle add")
	}
}

func (s *HandlerService) handleList(ctx context.Context, _ string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}

	txs, err := sess.List(ctx)
	if err != nil {
		return cannotGetMessage, errors.Wrap(err, "handle list")
	}
	if len(txs) == 0 {
		return noTransactionsMessage, nil
	}
	return formatList(txs, s.symbol), nil
}

func (s *HandlerService) handleEdit(ctx context.Context, arg string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}

	idArg, rest := splitFirst(arg)
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return incorrectUsageMessage, nil
	}
	rec, msg := parseRecord(rest)
	if msg != "" && msg != emptyCategoryMessage {
		// category may be blanked on edit, everything else must parse
		return msg, nil
	}

	err = sess.Update(ctx, id, rec)
	switch {
	case err == nil:
		s.invalidateReports(sess.Owner())
		return okMessage, nil
	case errors.As(err, new(*customerr.NotFoundError)):
		return notFoundMessage, nil
	default:
		return cannotSaveMessage, errors.Wrap(err, "handle edit")
	}
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return incorrectUsageMessage, nil
	}

	err = sess.Delete(ctx, id)
	switch {
	case err == nil:
		s.invalidateReports(sess.Owner())
		return okMessage, nil
	case errors.As(err, new(*customerr.NotFoundError)):
		return notFoundMessage, nil
	default:
		return cannotSaveMessage, errors.Wrap(err, "handle delete")
	}
}

func (s *HandlerService) handleClear(ctx context.Context, _ string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}

	removed, err := sess.Clear(ctx)
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "handle clear")
	}
	s.invalidateReports(sess.Owner())
	return clearedMessage + " (" + strconv.FormatInt(removed, 10) + " removed)", nil
}

func (s *HandlerService) handleSummary(ctx context.Context, _ string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}

	txs, err := sess.List(ctx)
	if err != nil {
		return cannotGetMessage, errors.Wrap(err, "handle summary")
	}
	return formatTotals(summary.Totalize(txs), s.symbol), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, peerID int64) (string, error) {
	sess, ok := s.sessionFor(peerID)
	if !ok {
		return needLoginMessage, nil
	}
	if !utils.Contains(summary.ReportPeriods(), arg) {
		return incorrectPeriodMessage, nil
	}
	owner := sess.Owner()

	if s.cache != nil {
		if report, hit := s.cache.GetReport(owner, arg); hit {
			return report, nil
		}
	}
	if s.requester != nil {
		if err := s.requester.RequestReport(ctx, owner, arg); err != nil {
			return cannotGetMessage, errors.Wrap(err, "handle report")
		}
		return reportPendingMessage, nil
	}

	report, err := s.generator.GenerateReport(ctx, owner, arg)
	if err != nil {
		return cannotGetMessage, errors.Wrap(err, "handle report")
	}
	return FormatReport(report, s.symbol), nil
}

func (s *HandlerService) invalidateReports(owner string) {
	if s.cache == nil {
		return
	}
	// the mutation already happened; cache errors only delay eviction
	_ = s.cache.InvalidateReports(owner)
}
