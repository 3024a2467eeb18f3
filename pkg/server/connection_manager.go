package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fitplan-api/internal/config"
)

// staleAfter is how long a warm container may sit idle before IsHealthy reports it stale
const staleAfter = 5 * time.Minute

// ConnectionManager keeps one container alive across warm Lambda invocations
type ConnectionManager struct {
	container *Container
	lastUsed  time.Time
	mu        sync.RWMutex
	config    *config.Config
	opts      []Option
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager with a fixed configuration
func NewConnectionManager(cfg *config.Config, opts ...Option) *ConnectionManager {
	return &ConnectionManager{config: cfg, opts: opts}
}

// Initialize builds the container; calling it on a live manager is a no-op
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return nil
	}

	container, err := NewContainer(ctx, cfg, cm.opts...)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	return nil
}

// GetContainer returns the container, initializing it on first use.
// A failed initialization is retried on the next call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*Container, error) {
	cm.mu.Lock()
	if cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cfg := cm.config
	cm.mu.Unlock()

	if cfg == nil {
		var err error
		cfg, err = config.GetOptimizedConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if err := cm.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// IsHealthy reports whether a container exists and was used recently
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.container == nil {
		return false
	}

	return time.Since(cm.lastUsed) < staleAfter
}

// Cleanup closes the container so the next GetContainer builds a fresh one
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	return nil
}
