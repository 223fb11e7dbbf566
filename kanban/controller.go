// Package kanban mediates drag gestures on the task board.
//
// A drag gesture is driven by three imperative calls (BeginDrag, Drop,
// CancelDrag), independent of any input framework. Each gesture resolves to
// at most one store mutation: dropping on a new column commits a status
// update; dropping on the current column or cancelling touches nothing.
// A failed commit drives an observable Reverted transition so the
// presentation can move the task back.
package kanban

import (
	"context"
	"errors"
	"sync"

	"github.com/taskflowhq/taskflow/tracker"
)

var (
	// ErrDragInProgress is returned when a drag begins while another
	// gesture is not yet back to Idle.
	ErrDragInProgress = errors.New("another drag is in progress")

	// ErrNoDrag is returned when Drop or CancelDrag is called with no
	// active gesture.
	ErrNoDrag = errors.New("no drag in progress")

	// ErrCommitInFlight is returned when a gesture is cancelled after its
	// commit has started. Commits run to completion or failure.
	ErrCommitInFlight = errors.New("commit already in flight")

	// ErrInvalidTarget is returned when a drop names an unknown column.
	ErrInvalidTarget = errors.New("invalid target column")
)

// Board is the slice of the entity store the controller needs. Implemented
// by *tracker.Store; tests substitute fakes to count calls and inject
// failures.
type Board interface {
	Task(ctx context.Context, id string) (tracker.Task, error)
	UpdateTask(ctx context.Context, id string, patch tracker.TaskPatch) (*tracker.Task, error)
}

// Phase is the controller's position in the drag protocol.
type Phase string

const (
	// PhaseIdle means no task is being dragged.
	PhaseIdle Phase = "idle"

	// PhaseDragging means a task is detached from its column but
	// unchanged in the store.
	PhaseDragging Phase = "dragging"

	// PhaseDropped means the pointer released over a valid new column.
	PhaseDropped Phase = "dropped"

	// PhaseCommitting means the status update is in flight.
	PhaseCommitting Phase = "committing"

	// PhaseReverted means the commit failed; the task is unchanged and
	// the controller is about to return to Idle.
	PhaseReverted Phase = "reverted"
)

// Update describes a phase change. From is the task's status when the drag
// began; To is the drop target (zero until a drop happens). Err is set only
// on PhaseReverted.
type Update struct {
	Phase  Phase
	TaskID string
	From   tracker.TaskStatus
	To     tracker.TaskStatus
	Err    error
}

// Controller runs the drag protocol. One gesture at a time: beginning a new
// drag before the previous gesture reaches Idle is rejected.
type Controller struct {
	board Board

	mu     sync.Mutex
	phase  Phase
	taskID string
	from   tracker.TaskStatus

	subMu   sync.Mutex
	subs    map[int]func(Update)
	nextSub int
}

// NewController creates an idle controller over the given board.
func NewController(board Board) *Controller {
	return &Controller{
		board: board,
		phase: PhaseIdle,
		subs:  make(map[int]func(Update)),
	}
}

// Phase returns the controller's current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Subscribe registers a phase-change listener and returns its unsubscribe
// func. Listeners run synchronously in registration order.
func (c *Controller) Subscribe(fn func(Update)) func() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, id)
	}
}

// BeginDrag starts a gesture on the given task. The task stays unchanged in
// the store; only the controller knows it is detached.
func (c *Controller) BeginDrag(ctx context.Context, taskID string) error {
	c.mu.Lock()

	if c.phase != PhaseIdle {
		c.mu.Unlock()
		return ErrDragInProgress
	}

	task, err := c.board.Task(ctx, taskID)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.phase = PhaseDragging
	c.taskID = task.ID
	c.from = task.Status
	c.mu.Unlock()

	c.emit(Update{Phase: PhaseDragging, TaskID: task.ID, From: task.Status})
	return nil
}

// CancelDrag abandons the gesture with zero store calls. Once a commit has
// started it runs to completion; cancelling then returns ErrCommitInFlight.
func (c *Controller) CancelDrag() error {
	c.mu.Lock()

	switch c.phase {
	case PhaseDragging:
		update := Update{Phase: PhaseIdle, TaskID: c.taskID, From: c.from}
		c.reset()
		c.mu.Unlock()
		c.emit(update)
		return nil
	case PhaseDropped, PhaseCommitting:
		c.mu.Unlock()
		return ErrCommitInFlight
	default:
		c.mu.Unlock()
		return ErrNoDrag
	}
}

// Drop releases the dragged task over a target column. Dropping on the
// task's current column is a no-op, not a failed commit. Otherwise the
// controller commits a status update and stays in Committing until the
// store operation resolves; on failure it reports Reverted and the task is
// presented exactly as before the drag.
func (c *Controller) Drop(ctx context.Context, target tracker.TaskStatus) error {
	c.mu.Lock()

	if c.phase != PhaseDragging {
		c.mu.Unlock()
		return ErrNoDrag
	}
	if !target.IsValid() {
		c.mu.Unlock()
		return ErrInvalidTarget
	}

	taskID := c.taskID
	from := c.from

	if target == from {
		update := Update{Phase: PhaseIdle, TaskID: taskID, From: from, To: target}
		c.reset()
		c.mu.Unlock()
		c.emit(update)
		return nil
	}

	c.phase = PhaseDropped
	c.mu.Unlock()
	c.emit(Update{Phase: PhaseDropped, TaskID: taskID, From: from, To: target})

	c.mu.Lock()
	c.phase = PhaseCommitting
	c.mu.Unlock()
	c.emit(Update{Phase: PhaseCommitting, TaskID: taskID, From: from, To: target})

	// The store notifies its subscribers before UpdateTask returns, so a
	// successful return means the change notification has been observed.
	status := target
	_, err := c.board.UpdateTask(ctx, taskID, tracker.TaskPatch{Status: &status})

	if err != nil {
		c.mu.Lock()
		c.phase = PhaseReverted
		c.mu.Unlock()
		c.emit(Update{Phase: PhaseReverted, TaskID: taskID, From: from, To: target, Err: err})

		c.mu.Lock()
		c.reset()
		c.mu.Unlock()
		c.emit(Update{Phase: PhaseIdle, TaskID: taskID, From: from})
		return err
	}

	c.mu.Lock()
	c.reset()
	c.mu.Unlock()
	c.emit(Update{Phase: PhaseIdle, TaskID: taskID, From: from, To: target})
	return nil
}

// reset returns the controller to Idle. Callers must hold mu.
func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.taskID = ""
	c.from = ""
}

func (c *Controller) emit(update Update) {
	c.subMu.Lock()
	subs := make([]func(Update), 0, len(c.subs))
	for id := 0; id < c.nextSub; id++ {
		if fn, ok := c.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	c.subMu.Unlock()

	for _, fn := range subs {
		fn(update)
	}
}
