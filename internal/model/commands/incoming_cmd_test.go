package commands

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/money-tracker/internal/model/commands/mock"
	"max.ks1230/money-tracker/internal/model/session"
	"max.ks1230/money-tracker/internal/model/storage"
	"max.ks1230/money-tracker/internal/model/summary"
)

func newTestHandler(m minimock.Tester) *HandlerService {
	store := storage.NewInMemStorage()
	manager := session.NewManager(store, store)
	generator := summary.NewGenerator(store)

	cfg := mock.NewConfigMock(m)
	cfg.CurrencySymbolMock.Return("$")

	return NewHandler(manager, generator, nil, nil, cfg)
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Expect(helloMessage, int64(123)).Return(nil)

	svc := NewService(sender, newTestHandler(m))
	err := svc.HandleIncomingCommand(ctx, Command{Text: "/start", PeerID: 123})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Expect(dontUnderstandMessage, int64(123)).Return(nil)

	svc := NewService(sender, newTestHandler(m))
	err := svc.HandleIncomingCommand(ctx, Command{Text: "some random text", PeerID: 123})

	assert.NoError(t, err)
}

func Test_OnAnyCommand_ShouldAskToLogInFirst(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)

	for _, text := range []string{
		"/add expense 10 food",
		"/list",
		"/edit 1 expense 10 food",
		"/delete 1",
		"/clear",
		"/summary",
		"/report week",
		"/logout",
	} {
		resp, err := s.HandleCommand(ctx, text, 123)
		require.NoError(t, err)
		assert.Equal(t, needLoginMessage, resp, text)
	}
}

func Test_OnRegisterCommand_ShouldValidateCredentials(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)

	resp, err := s.HandleCommand(ctx, "/register alice", 123)
	require.NoError(t, err)
	assert.Equal(t, emptyFieldsMessage, resp)

	resp, err = s.HandleCommand(ctx, "/register alice secret", 123)
	require.NoError(t, err)
	assert.Equal(t, registeredMessage, resp)

	resp, err = s.HandleCommand(ctx, "/register alice other", 123)
	require.NoError(t, err)
	assert.Equal(t, duplicateUserMessage, resp)
}

func Test_OnLoginCommand_ShouldCheckPassword(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)

	_, err := s.HandleCommand(ctx, "/register alice secret", 123)
	require.NoError(t, err)

	resp, err := s.HandleCommand(ctx, "/login alice wrong", 123)
	require.NoError(t, err)
	assert.Equal(t, badCredentialsMessage, resp)

	resp, err = s.HandleCommand(ctx, "/login alice secret", 123)
	require.NoError(t, err)
	assert.Equal(t, "Welcome, alice!", resp)

	resp, err = s.HandleCommand(ctx, "/login alice secret", 123)
	require.NoError(t, err)
	assert.Equal(t, alreadyLoggedInMessage+"alice", resp)
}

func Test_OnLogoutCommand_ShouldCloseSession(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	resp, err := s.HandleCommand(ctx, "/logout", 123)
	require.NoError(t, err)
	assert.Equal(t, loggedOutMessage, resp)

	resp, err = s.HandleCommand(ctx, "/list", 123)
	require.NoError(t, err)
	assert.Equal(t, needLoginMessage, resp)
}

func Test_OnAddCommand_ShouldSaveAndReportID(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	resp, err := s.HandleCommand(ctx, "/add expense 12.50 food 2024-05-01 lunch", 123)
	require.NoError(t, err)
	assert.Equal(t, okMessage+" Saved as #1", resp)

	resp, err = s.HandleCommand(ctx, "/list", 123)
	require.NoError(t, err)
	assert.Equal(t, "1. 2024-05-01 Expense food $12.50 #1 - lunch", resp)
}

func Test_OnAddCommand_ShouldRejectBadInput(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	for text, want := range map[string]string{
		"/add expense 10":                 incorrectUsageMessage,
		"/add transfer 10 food":           incorrectKindMessage,
		"/add expense ten food":           incorrectAmountMessage,
		"/add expense -10 food":           incorrectAmountMessage,
		"/add expense 10 -":               emptyCategoryMessage,
		"/add expense 10 food 2024-13-45": incorrectDateMessage,
	} {
		resp, err := s.HandleCommand(ctx, text, 123)
		require.NoError(t, err)
		assert.Equal(t, want, resp, text)
	}
}

func Test_OnListCommand_ShouldTellWhenEmpty(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	resp, err := s.HandleCommand(ctx, "/list", 123)
	require.NoError(t, err)
	assert.Equal(t, noTransactionsMessage, resp)
}

func Test_OnEditCommand_ShouldRewriteTransaction(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	_, err := s.HandleCommand(ctx, "/add expense 10 food 2024-05-01", 123)
	require.NoError(t, err)

	resp, err := s.HandleCommand(ctx, "/edit 1 income 99 bonus 2024-05-02", 123)
	require.NoError(t, err)
	assert.Equal(t, okMessage, resp)

	resp, err = s.HandleCommand(ctx, "/list", 123)
	require.NoError(t, err)
	assert.Equal(t, "1. 2024-05-02 Income bonus $99.00 #1", resp)

	resp, err = s.HandleCommand(ctx, "/edit 42 income 99 bonus", 123)
	require.NoError(t, err)
	assert.Equal(t, notFoundMessage, resp)

	resp, err = s.HandleCommand(ctx, "/edit one income 99 bonus", 123)
	require.NoError(t, err)
	assert.Equal(t, incorrectUsageMessage, resp)
}

func Test_OnDeleteCommand_ShouldRemoveByID(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	_, err := s.HandleCommand(ctx, "/add expense 10 food", 123)
	require.NoError(t, err)

	resp, err := s.HandleCommand(ctx, "/delete 42", 123)
	require.NoError(t, err)
	assert.Equal(t, notFoundMessage, resp)

	resp, err = s.HandleCommand(ctx, "/delete 1", 123)
	require.NoError(t, err)
	assert.Equal(t, okMessage, resp)

	resp, err = s.HandleCommand(ctx, "/list", 123)
	require.NoError(t, err)
	assert.Equal(t, noTransactionsMessage, resp)
}

func Test_OnClearCommand_ShouldCountRemoved(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	for i := 0; i < 3; i++ {
		_, err := s.HandleCommand(ctx, "/add expense 10 food", 123)
		require.NoError(t, err)
	}

	resp, err := s.HandleCommand(ctx, "/clear", 123)
	require.NoError(t, err)
	assert.Equal(t, clearedMessage+" (3 removed)", resp)
}

func Test_OnSummaryCommand_ShouldShowTotals(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	_, err := s.HandleCommand(ctx, "/add income 100 salary", 123)
	require.NoError(t, err)
	_, err = s.HandleCommand(ctx, "/add expense 30 food", 123)
	require.NoError(t, err)

	resp, err := s.HandleCommand(ctx, "/summary", 123)
	require.NoError(t, err)
	assert.Equal(t, "Total Income: $100.00\nTotal Expenses: $30.00\nBalance: $70.00", resp)
}

func Test_OnSummaryCommand_ShouldWarnAboutNegativeBalance(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	_, err := s.HandleCommand(ctx, "/add expense 30 food", 123)
	require.NoError(t, err)

	resp, err := s.HandleCommand(ctx, "/summary", 123)
	require.NoError(t, err)
	assert.Contains(t, resp, negativeBalanceWarning)
}

func Test_OnReportCommand_ShouldGenerateInProcess(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	_, err := s.HandleCommand(ctx, "/add expense 30 food", 123)
	require.NoError(t, err)
	_, err = s.HandleCommand(ctx, "/add expense 20 food", 123)
	require.NoError(t, err)

	resp, err := s.HandleCommand(ctx, "/report", 123)
	require.NoError(t, err)
	assert.Contains(t, resp, "Spending by category (all time):")
	assert.Contains(t, resp, "food: $50.00")

	resp, err = s.HandleCommand(ctx, "/report decade", 123)
	require.NoError(t, err)
	assert.Equal(t, incorrectPeriodMessage, resp)
}

func Test_SessionsArePerPeer(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	s := newTestHandler(m)
	logIn(ctx, t, s, 123)

	resp, err := s.HandleCommand(ctx, "/list", 456)
	require.NoError(t, err)
	assert.Equal(t, needLoginMessage, resp)
}

func logIn(ctx context.Context, t *testing.T, s *HandlerService, peerID int64) {
	t.Helper()
	_, err := s.HandleCommand(ctx, "/register alice secret", peerID)
	require.NoError(t, err)
	resp, err := s.HandleCommand(ctx, "/login alice secret", peerID)
	require.NoError(t, err)
	require.Equal(t, "Welcome, alice!", resp)
}
