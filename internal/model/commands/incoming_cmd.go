package commands

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

type messageSender interface {
	SendMessage(text string, peerID int64) error
}

type CommandHandler interface {
	HandleCommand(ctx context.Context, text string, peerID int64) (string, error)
}

type Service struct {
	sender  messageSender
	handler CommandHandler
}

func NewService(sender messageSender, handler CommandHandler) *Service {
	return &Service{
		sender:  sender,
		handler: handler,
	}
}

// Command is one line of user input from a frontend. PeerID keys the
// session the input belongs to (chat id, terminal id).
type Command struct {
	Text   string
	PeerID int64
}

func (s *Service) HandleIncomingCommand(ctx context.Context, cmd Command) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleCommand")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, cmd)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, cmd Command) error {
	resp, err := s.handler.HandleCommand(ctx, cmd.Text, cmd.PeerID)
	if err != nil {
		_ = s.sender.SendMessage("Sorry, something wrong happened...\n"+resp, cmd.PeerID)
		return err
	}
	return s.sender.SendMessage(resp, cmd.PeerID)
}
