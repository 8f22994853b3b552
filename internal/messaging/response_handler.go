package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BTreeMap/TradeMentor/internal/flow"
	"github.com/BTreeMap/TradeMentor/internal/models"
)

// MessageHandler processes one inbound message, sending replies through the Replier.
// *flow.Engine implements it.
type MessageHandler interface {
	Handle(ctx context.Context, msg models.InboundMessage, r flow.Replier) error
}

// ResponseHandler routes inbound messages to the dialog engine. Each user has a FIFO queue
// drained by its own goroutine, which exits once the queue is empty; users run in parallel.
type ResponseHandler struct {
	msgService Service
	handler    MessageHandler

	mu     sync.Mutex
	queues map[string][]models.InboundMessage
	wg     sync.WaitGroup
}

// NewResponseHandler creates a ResponseHandler for a transport and an engine.
func NewResponseHandler(msgService Service, handler MessageHandler) *ResponseHandler {
	return &ResponseHandler{
		msgService: msgService,
		handler:    handler,
		queues:     make(map[string][]models.InboundMessage),
	}
}

// Run consumes the service's Responses channel until it closes or ctx is done,
// then waits for in-flight turns to finish.
func (rh *ResponseHandler) Run(ctx context.Context) error {
	slog.Info("ResponseHandler.Run: started")
	defer rh.wg.Wait()
	responses := rh.msgService.Responses()
	for {
		select {
		case msg, ok := <-responses:
			if !ok {
				slog.Info("ResponseHandler.Run: responses channel closed")
				return nil
			}
			if err := rh.ProcessResponse(ctx, msg); err != nil {
				slog.Warn("ResponseHandler.Run: message rejected", "error", err)
			}
		case <-ctx.Done():
			slog.Info("ResponseHandler.Run: context cancelled")
			return nil
		}
	}
}

// ProcessResponse enqueues a message for its user, starting a worker when none is running.
func (rh *ResponseHandler) ProcessResponse(ctx context.Context, msg models.InboundMessage) error {
	if msg.UserID == "" {
		return models.ErrEmptyUserID
	}
	if msg.ChatID == "" {
		msg.ChatID = msg.UserID
	}
	chatID, err := rh.msgService.ValidateAndCanonicalizeRecipient(msg.ChatID)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	msg.ChatID = chatID

	rh.mu.Lock()
	queue, running := rh.queues[msg.UserID]
	rh.queues[msg.UserID] = append(queue, msg)
	if !running {
		rh.wg.Add(1)
		go rh.drain(ctx, msg.UserID)
	}
	rh.mu.Unlock()
	slog.Debug("ResponseHandler.ProcessResponse: enqueued", "userID", msg.UserID, "pending", len(queue)+1)
	return nil
}

// Wait blocks until every queued message has been handled.
func (rh *ResponseHandler) Wait() {
	rh.wg.Wait()
}

func (rh *ResponseHandler) drain(ctx context.Context, userID string) {
	defer rh.wg.Done()
	for {
		rh.mu.Lock()
		queue := rh.queues[userID]
		if len(queue) == 0 {
			delete(rh.queues, userID)
			rh.mu.Unlock()
			return
		}
		msg := queue[0]
		rh.queues[userID] = queue[1:]
		rh.mu.Unlock()

		rh.handle(ctx, msg)
	}
}

func (rh *ResponseHandler) handle(ctx context.Context, msg models.InboundMessage) {
	replier := flow.ReplierFunc(func(ctx context.Context, out models.OutboundMessage) error {
		return rh.msgService.SendMessage(ctx, msg.ChatID, out)
	})
	if err := rh.handler.Handle(ctx, msg, replier); err != nil {
		// The engine already told the user; nothing else to do here.
		slog.Error("ResponseHandler.handle: turn failed", "error", err, "userID", msg.UserID)
	}
}
