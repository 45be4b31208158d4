package operator

import (
	"context"
	"fmt"

	"github.com/carson-networks/expense-tracker/internal/storage"
)

// IAction is a unit of write work performed inside one database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// ActionFunc lets a plain function be used as an IAction.
type ActionFunc func(ctx context.Context, writer *storage.Writer) error

func (f ActionFunc) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

// WriterOpener begins a database transaction.
type WriterOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriterOpener
	queue   chan ActionItem
}

func NewOperator(s WriterOpener, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = o.perform(item, writer)
	if err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: fmt.Errorf("commit: %w", err)}
		return
	}

	item.response <- ActionItemResponse{}
}

func (o *Operator) perform(item ActionItem, writer *storage.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return item.action.Perform(item.ctx, writer)
}

type ActionItem struct {
	ctx      context.Context
	action   IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
