package impl

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Check(t *testing.T) {
	service := NewHealthService()

	echoValue := "ping"
	pathValue := "pong"
	health, err := service.Check(context.Background(), &echoValue, &pathValue)
	if err != nil {
		t.Skipf("host has no resolvable address: %v", err)
	}

	assert.Equal(t, http.StatusOK, health.Status)
	assert.Equal(t, "OK", health.StatusMessage)
	require.NotNil(t, health.Echo)
	assert.Equal(t, "ping", *health.Echo)
	require.NotNil(t, health.PathEcho)
	assert.Equal(t, "pong", *health.PathEcho)
	assert.NotNil(t, net.ParseIP(health.IPAddress))

	// ISO-8601 with a trailing "Z".
	parsed, err := time.Parse(timestampLayout, health.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestHealthService_Check_NilEchoesStayNil(t *testing.T) {
	service := NewHealthService()

	health, err := service.Check(context.Background(), nil, nil)
	if err != nil {
		t.Skipf("host has no resolvable address: %v", err)
	}

	assert.Nil(t, health.Echo)
	assert.Nil(t, health.PathEcho)
}
