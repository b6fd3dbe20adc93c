// Package scheduler implements the background task collaborator (spec
// §5, §6): a priority queue ordered by due time then insertion ID,
// dispatching onto a worker pool, with cancellation and await(id).
//
// The priority queue itself is built on container/heap rather than a
// third-party library: none of the retrieved example repos import a
// priority-queue package, and container/heap is the idiomatic, minimal
// way to express "due time then insertion ID" ordering without adding an
// unexercised dependency (recorded in DESIGN.md).
package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Task is a unit of background work. Run receives a context cancelled
// when the task is cancelled.
type Task func(ctx context.Context) error

type taskEntry struct {
	id       uuid.UUID
	due      time.Time
	seq      int64
	task     Task
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	err      error
	canceled bool
}

// queue is a container/heap priority queue ordered by due time then
// insertion sequence (spec §5: "priority queue ordered by due time then
// insertion ID").
type queue []*taskEntry

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)   { *q = append(*q, x.(*taskEntry)) }
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Scheduler dispatches due tasks onto a bounded worker pool. Tasks may
// re-enter scheduling primitives from within their own callback (spec
// §5); the internal mutex is never held while a task callback runs.
type Scheduler struct {
	mu      sync.Mutex
	q       queue
	seq     int64
	entries map[uuid.UUID]*taskEntry
	pool    *workerpool.WorkerPool
	stop    chan struct{}
	once    sync.Once
}

func New(workers int) *Scheduler {
	s := &Scheduler{
		entries: make(map[uuid.UUID]*taskEntry),
		pool:    workerpool.New(workers),
		stop:    make(chan struct{}),
	}
	go s.loop()
	return s
}

// Schedule enqueues task to run at due, returning its ID.
func (s *Scheduler) Schedule(due time.Time, task Task) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	e := &taskEntry{id: id, due: due, seq: s.seq, task: task, ctx: ctx, cancel: cancel, done: make(chan struct{})}
	s.seq++
	heap.Push(&s.q, e)
	s.entries[id] = e
	return id
}

// Cancel marks a task and broadcasts to any awaiters (spec §5).
func (s *Scheduler) Cancel(id uuid.UUID) bool {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return false
	}
	e.cancel()
	select {
	case <-e.done:
	default:
		e.canceled = true
		e.err = context.Canceled
		close(e.done)
	}
	return true
}

// Await blocks until the task finishes or is cancelled, returning its
// error (nil on normal completion, context.Canceled on cancellation).
func (s *Scheduler) Await(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	select {
	case <-e.done:
		return e.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AwaitAll waits for every given task using an errgroup, matching the
// rest of the retrieved stack's use of golang.org/x/sync/errgroup for
// fan-in waits.
func (s *Scheduler) AwaitAll(ctx context.Context, ids []uuid.UUID) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error { return s.Await(gctx, id) })
	}
	return g.Wait()
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.dispatchDue()
		}
	}
}

func (s *Scheduler) dispatchDue() {
	now := time.Now()
	for {
		s.mu.Lock()
		if s.q.Len() == 0 || s.q[0].due.After(now) {
			s.mu.Unlock()
			break
		}
		e := heap.Pop(&s.q).(*taskEntry)
		s.mu.Unlock()

		s.pool.Submit(func() { s.run(e) })
	}
}

func (s *Scheduler) run(e *taskEntry) {
	if e.canceled {
		return
	}
	e.err = e.task(e.ctx)
	select {
	case <-e.done:
	default:
		close(e.done)
	}
}

// Close stops dispatching and releases the worker pool.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		close(s.stop)
		s.pool.StopWait()
	})
}

// Describe renders a task's remaining wait time for CLI/dashboard display
// using go-humanize, grounded on the same library's use for duration
// formatting elsewhere in the retrieved stack.
func Describe(due time.Time) string {
	if due.Before(time.Now()) {
		return "due now"
	}
	return "due " + humanize.Time(due)
}
