package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/llm"
)

// FeedbackTTL is how long a transient per-item feedback entry stays visible
// before its scheduled clearance fires.
const FeedbackTTL = 3 * time.Second

// Localized user-facing messages. Backend errors never surface raw.
const (
	MsgRegenerated   = "Soal berhasil diperbarui!"
	MsgRegenerateErr = "Gagal meregenerasi."
	MsgExplainErr    = "Gagal mendapat penjelasan."
)

// ErrBusy is returned when an item-scoped operation is requested while
// another is still in flight.
var ErrBusy = errors.New("another item operation is in flight")

// NotFoundError reports an item number absent from the collection an
// operation expected it in.
type NotFoundError struct {
	Kind   exam.Kind
	Number int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no %s record with number %d", e.Kind, e.Number)
}

// Outcome of a finished item operation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// Feedback is one transient per-item feedback entry.
type Feedback struct {
	ItemNumber int
	Outcome    Outcome
	Message    string
}

// Coordinator tracks the single busy item slot and the current transient
// feedback. State moves Idle -> Busy(n) -> Idle; at most one item operation
// is in flight at a time. All state mutation is expected on the UI loop; the
// backend calls themselves are pure and safe to run off it.
type Coordinator struct {
	Provider llm.Provider

	busyItem int // 0 when idle
	feedback *Feedback
	token    uuid.UUID // identifies the pending clearance
}

// BusyItem reports the item number under an in-flight operation, if any.
func (c *Coordinator) BusyItem() (int, bool) {
	return c.busyItem, c.busyItem != 0
}

// Feedback returns the current transient feedback entry, if any.
func (c *Coordinator) Feedback() (Feedback, bool) {
	if c.feedback == nil {
		return Feedback{}, false
	}
	return *c.feedback, true
}

// Begin enters Busy(n). Starting an operation clears any pending feedback
// eagerly, superseding its scheduled clearance. Returns ErrBusy if another
// item is already busy.
func (c *Coordinator) Begin(n int) error {
	if c.busyItem != 0 {
		return ErrBusy
	}
	c.busyItem = n
	c.feedback = nil
	c.token = uuid.Nil
	return nil
}

// FinishSuccess leaves Busy, records success feedback for the item and
// returns the clearance token the caller should schedule ClearFeedback with.
func (c *Coordinator) FinishSuccess(n int, message string) uuid.UUID {
	return c.finish(n, OutcomeSuccess, message)
}

// FinishError leaves Busy and records error feedback for the item.
func (c *Coordinator) FinishError(n int, message string) uuid.UUID {
	return c.finish(n, OutcomeError, message)
}

// Finish leaves Busy without recording feedback, for operations whose
// success is presented elsewhere (the explanation view has its own surface).
func (c *Coordinator) Finish() {
	c.busyItem = 0
}

func (c *Coordinator) finish(n int, outcome Outcome, message string) uuid.UUID {
	c.busyItem = 0
	c.feedback = &Feedback{ItemNumber: n, Outcome: outcome, Message: message}
	c.token = uuid.New()
	return c.token
}

// ClearFeedback drops the feedback entry the token belongs to. A stale token
// (superseded by a newer operation) is ignored.
func (c *Coordinator) ClearFeedback(token uuid.UUID) bool {
	if token == uuid.Nil || token != c.token {
		return false
	}
	c.feedback = nil
	c.token = uuid.Nil
	return true
}

// Regenerate calls the backend for a replacement of question n and returns
// the fresh question, numbered n. The caller applies it with
// exam.ReplaceQuestion against whatever the package looks like when the call
// completes; mutations committed while the call was in flight must survive.
func (c *Coordinator) Regenerate(ctx context.Context, pkg exam.Package, n int) (exam.QuestionItem, error) {
	original, ok := pkg.Question(n)
	if !ok {
		return exam.QuestionItem{}, NotFoundError{Kind: exam.KindQuestion, Number: n}
	}
	fresh, err := c.Provider.RegenerateQuestion(ctx, original, pkg.Meta)
	if err != nil {
		return exam.QuestionItem{}, err
	}
	fresh.Number = n
	return fresh, nil
}

// Explain calls the backend for a student-facing explanation of question n
// against its answer-key row.
func (c *Coordinator) Explain(ctx context.Context, pkg exam.Package, n int) (string, error) {
	q, ok := pkg.Question(n)
	if !ok {
		return "", NotFoundError{Kind: exam.KindQuestion, Number: n}
	}
	key, ok := pkg.Answer(n)
	if !ok {
		return "", NotFoundError{Kind: exam.KindAnswerKey, Number: n}
	}
	return c.Provider.ExplainAnswer(ctx, q, key, pkg.Meta)
}
