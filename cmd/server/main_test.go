package main

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsInvalidPort(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("PORT", "not-a-port")

	assert.Equal(t, 1, run())
}

func TestRunRequiresRedisURL(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "")

	assert.Equal(t, 1, run())
}

func TestRunClosesStorageWhenServerFails(t *testing.T) {
	mini := miniredis.RunT(t)

	// Hold the port so the server cannot bind it
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()
	port := ln.Addr().(*net.TCPAddr).Port

	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://"+mini.Addr())
	t.Setenv("PORT", strconv.Itoa(port))

	assert.Equal(t, 1, run())
	assert.Eventually(t, func() bool {
		return mini.CurrentConnectionCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
