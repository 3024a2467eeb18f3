package server

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionManager_ReusesContainer(t *testing.T) {
	cm := NewConnectionManager(testConfig(t), WithLogger(quietLogger()))
	assert.False(t, cm.IsHealthy())

	ctx := context.Background()

	var wg sync.WaitGroup
	containers := make([]*Container, 8)
	for i := range containers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := cm.GetContainer(ctx)
			assert.NoError(t, err)
			containers[i] = c
		}(i)
	}
	wg.Wait()

	require.NotNil(t, containers[0])
	for _, c := range containers[1:] {
		assert.Same(t, containers[0], c)
	}
	assert.True(t, cm.IsHealthy())

	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy())

	again, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	assert.NotSame(t, containers[0], again)
	require.NoError(t, cm.Cleanup())
}

func TestConnectionManager_InitFailureIsRetried(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "oracle"
	cm := NewConnectionManager(cfg, WithLogger(quietLogger()))

	_, err := cm.GetContainer(context.Background())
	assert.Error(t, err)
	assert.False(t, cm.IsHealthy())

	_, err = cm.GetContainer(context.Background())
	assert.Error(t, err)
}

func TestGetConnectionManager_Singleton(t *testing.T) {
	assert.Same(t, GetConnectionManager(), GetConnectionManager())
}
