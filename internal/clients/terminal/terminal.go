package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"max.ks1230/money-tracker/internal/logger"
	"max.ks1230/money-tracker/internal/model/commands"
)

// terminalPeerID keys the single interactive session of a terminal run.
const terminalPeerID = 0

const prompt = "> "

// Client is the line-oriented frontend: one local user, one session,
// commands in on stdin, replies out on stdout.
type Client struct {
	in  io.Reader
	out io.Writer
}

func New() *Client {
	return &Client{in: os.Stdin, out: os.Stdout}
}

func (c *Client) SendMessage(text string, _ int64) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}

func (c *Client) Listen(ctx context.Context, svc *commands.Service) {
	lines := make(chan string)
	go c.scan(lines)

	logger.Info("Start reading commands")
	_, _ = fmt.Fprint(c.out, prompt)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop reading commands")
			return
		case line, ok := <-lines:
			if !ok {
				logger.Info("Input closed")
				return
			}
			c.listenOnce(ctx, line, svc)
			_, _ = fmt.Fprint(c.out, prompt)
		}
	}
}

func (c *Client) scan(lines chan<- string) {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	close(lines)
}

func (c *Client) listenOnce(ctx context.Context, line string, svc *commands.Service) {
	err := svc.HandleIncomingCommand(ctx, commands.Command{
		Text:   line,
		PeerID: terminalPeerID,
	})
	if err != nil {
		logger.Error("error processing command:", zap.Error(err))
	}
}
