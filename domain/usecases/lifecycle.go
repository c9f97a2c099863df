package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

// Stage is one step in a transaction's forward-only progression toward
// confirmation. Promote, when set, is the status the transaction moves
// to after the stage completes; the final transition into confirmed is
// always handled by the processor together with the ledger mutation.
type Stage struct {
	Name    string
	Delay   time.Duration
	Promote models.TransactionStatus
}

// DefaultStageDelay is the per-stage pause used when no delay is
// configured. It mirrors the pacing of the original routing animation.
const DefaultStageDelay = 700 * time.Millisecond

// SendStages returns the outbound payment pipeline: tunnel
// establishment, two relay hops, signing, local trace scrub and
// broadcast. The transaction enters mixing once the first hop is done.
func SendStages(delay time.Duration) []Stage {
	return []Stage{
		{Name: "tunnel", Delay: delay},
		{Name: "hop/reykjavik", Delay: delay, Promote: models.TransactionStatusMixing},
		{Name: "hop/zurich", Delay: delay},
		{Name: "sign", Delay: delay},
		{Name: "scrub", Delay: delay},
		{Name: "broadcast", Delay: delay},
	}
}

// ConvertStages returns the conversion pipeline: a bridge hop followed
// by settlement.
func ConvertStages(delay time.Duration) []Stage {
	return []Stage{
		{Name: "bridge", Delay: delay, Promote: models.TransactionStatusMixing},
		{Name: "settle", Delay: delay},
	}
}

// wait pauses for the stage delay, honoring cancellation. A zero delay
// still checks for cancellation so tests and cancelled contexts behave
// the same with instant stages.
func (s Stage) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("stage %s: %w: %w", s.Name, models.ErrLifecycleAborted, ctx.Err())
		default:
			return nil
		}
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stage %s: %w: %w", s.Name, models.ErrLifecycleAborted, ctx.Err())
	}
}
