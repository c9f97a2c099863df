package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/anthdm/hollywood/actor"
	"golang.org/x/sync/errgroup"

	"github.com/ghostbank/ghostbank-go/interfaces"
	"github.com/ghostbank/ghostbank-go/internal"
)

// ActorManager manages the actor-based background services of a wallet
// session (currently the circuit telemetry).
type ActorManager struct {
	logger *internal.Logger

	engine *actor.Engine
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.RWMutex
	services    map[string]*actor.PID
	serviceInfo map[string]*interfaces.ServiceInfo
}

// NewActorManager creates a manager with its own actor engine
func NewActorManager(logger *internal.Logger) (*ActorManager, error) {
	engine, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		return nil, fmt.Errorf("create actor engine: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &ActorManager{
		logger:      logger,
		engine:      engine,
		ctx:         ctx,
		cancel:      cancel,
		services:    make(map[string]*actor.PID),
		serviceInfo: make(map[string]*interfaces.ServiceInfo),
	}, nil
}

// Register spawns the actor service under a unique name
func (m *ActorManager) Register(name string, service ActorService) {
	m.logger.Debug(internal.ComponentService, "Registering actor service: %s", name)

	pid := m.engine.SpawnFunc(func(ctx *actor.Context) {
		service.Receive(ctx)
	}, name)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.services[name] = pid
	m.serviceInfo[name] = &interfaces.ServiceInfo{
		Name:   name,
		Status: interfaces.ServiceStatusStopped,
	}
}

// StartService starts a specific actor service by name
func (m *ActorManager) StartService(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pid, exists := m.services[name]
	if !exists {
		return fmt.Errorf("service %s not found", name)
	}

	m.engine.Send(pid, StartMsg{})

	info := m.serviceInfo[name]
	info.Status = interfaces.ServiceStatusRunning
	info.StartTime = time.Now()
	return nil
}

// StopService stops a specific actor service by name
func (m *ActorManager) StopService(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pid, exists := m.services[name]
	if !exists {
		return fmt.Errorf("service %s not found", name)
	}

	m.engine.Send(pid, StopMsg{})
	m.serviceInfo[name].Status = interfaces.ServiceStatusStopped
	return nil
}

// StartAll starts every registered service
func (m *ActorManager) StartAll() error {
	m.mu.RLock()
	names := make([]string, 0, len(m.services))
	for name := range m.services {
		names = append(names, name)
	}
	m.mu.RUnlock()

	var g errgroup.Group
	for _, name := range names {
		currentName := name
		g.Go(func() error {
			return m.StartService(currentName)
		})
	}
	return g.Wait()
}

// StopAll stops every registered service
func (m *ActorManager) StopAll() error {
	m.mu.RLock()
	names := make([]string, 0, len(m.services))
	for name := range m.services {
		names = append(names, name)
	}
	m.mu.RUnlock()

	var g errgroup.Group
	for _, name := range names {
		currentName := name
		g.Go(func() error {
			return m.StopService(currentName)
		})
	}
	return g.Wait()
}

// Shutdown stops all services and tears down the engine context
func (m *ActorManager) Shutdown() error {
	if err := m.StopAll(); err != nil {
		return err
	}
	m.cancel()
	m.logger.Info(internal.ComponentService, "Actor manager shut down")
	return nil
}

// GetServiceInfo returns metadata for one service
func (m *ActorManager) GetServiceInfo(name string) (*interfaces.ServiceInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, exists := m.serviceInfo[name]
	if !exists {
		return nil, fmt.Errorf("service %s not found", name)
	}

	cp := *info
	return &cp, nil
}

// GetAllServicesInfo returns metadata for every registered service
func (m *ActorManager) GetAllServicesInfo() []*interfaces.ServiceInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*interfaces.ServiceInfo, 0, len(m.serviceInfo))
	for _, info := range m.serviceInfo {
		cp := *info
		out = append(out, &cp)
	}
	return out
}
