package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/anthdm/hollywood/actor"

	"github.com/ghostbank/ghostbank-go/interfaces"
	"github.com/ghostbank/ghostbank-go/internal"
)

// CircuitActor rotates the displayed routing circuit label and drifts
// the privacy score on an interval. It is pure presentation telemetry:
// it never reads or writes wallet state, and nothing in the wallet core
// depends on it.
type CircuitActor struct {
	BaseActor
	nodes    []string
	interval time.Duration

	mu           sync.Mutex
	currentNode  string
	privacyScore float64
	rotations    int
	lastRotation time.Time

	repeater actor.SendRepeater
	rotating bool
}

// RotateMsg triggers one circuit rotation
type RotateMsg struct{}

// NewCircuitActor creates a circuit telemetry actor over the configured
// node labels and rotation interval.
func NewCircuitActor(nodes []string, interval time.Duration, logger *internal.Logger) *CircuitActor {
	if len(nodes) == 0 {
		nodes = []string{"Amsterdam_NL_88"}
	}

	return &CircuitActor{
		BaseActor:    NewBaseActor("circuit_telemetry", logger),
		nodes:        nodes,
		interval:     interval,
		currentNode:  nodes[0],
		privacyScore: 99.9,
	}
}

// Receive implements the actor.Receiver interface
func (a *CircuitActor) Receive(ctx *actor.Context) {
	switch ctx.Message().(type) {
	case StartMsg:
		a.logger.Info(internal.ComponentService, "Circuit telemetry started on node %s", a.currentNode)
		a.repeater = ctx.Engine().SendRepeat(ctx.PID(), RotateMsg{}, a.interval)
		a.rotating = true

	case StopMsg:
		if a.rotating {
			a.repeater.Stop()
			a.rotating = false
		}
		a.logger.Info(internal.ComponentService, "Circuit telemetry stopping")

	case RotateMsg:
		a.rotate()

	case StatusRequestMsg:
		node, score := a.Current()

		a.mu.Lock()
		stats := map[string]interface{}{
			"node":         node,
			"privacyScore": score,
			"rotations":    a.rotations,
		}
		last := a.lastRotation
		a.mu.Unlock()

		ctx.Respond(StatusResponseMsg{
			Status:      interfaces.ServiceStatusRunning,
			LastActive:  last,
			CustomStats: stats,
		})
	}
}

// Current returns the displayed node label and privacy score
func (a *CircuitActor) Current() (string, float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentNode, a.privacyScore
}

func (a *CircuitActor) rotate() {
	a.mu.Lock()
	a.currentNode = a.nodes[rand.Intn(len(a.nodes))]
	a.privacyScore = min(100, a.privacyScore+rand.Float64()*0.1-0.05)
	a.rotations++
	a.lastRotation = time.Now()
	node := a.currentNode
	a.mu.Unlock()

	a.logger.Debug(internal.ComponentService, "Circuit rotated to %s", node)
}
