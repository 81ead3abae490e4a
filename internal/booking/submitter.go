package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jask/wildroam/internal/catalog"
)

// DefaultSubmitDelay is how long the simulated round trip takes.
const DefaultSubmitDelay = 2 * time.Second

var ErrSubmissionFailed = errors.New("booking submission failed")

// Request is the immutable snapshot taken when the user submits.
type Request struct {
	Reference   string
	Destination catalog.Destination
	Draft       Draft
	SubmittedAt time.Time
}

type Confirmation struct {
	Reference   string
	Destination string
	ReceivedAt  time.Time
}

// Submitter delivers a booking request. Implementations must return promptly
// once ctx is cancelled.
type Submitter interface {
	Submit(ctx context.Context, req Request) (Confirmation, error)
}

// SimulatedSubmitter pretends to talk to a booking backend: it waits Delay and
// then accepts every request.
type SimulatedSubmitter struct {
	Delay time.Duration
	Now   func() time.Time
}

func (s SimulatedSubmitter) Submit(ctx context.Context, req Request) (Confirmation, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Confirmation{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Confirmation{}, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Confirmation{
		Reference:   req.Reference,
		Destination: req.Destination.Name,
		ReceivedAt:  now(),
	}, nil
}
