package operator

import (
	"context"
	"errors"
	"sync"
)

var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    WriterOpener
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	mutex      sync.RWMutex
	stopped    bool
	stopOnce   sync.Once
}

func NewOperatorDelegator(s WriterOpener, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for queued items to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mutex.Lock()
		d.stopped = true
		close(d.queue)
		d.mutex.Unlock()
		d.wg.Wait()
	})
}

// Process queues action and blocks until it has been committed or rolled back.
func (d *OperatorDelegator) Process(ctx context.Context, action IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
