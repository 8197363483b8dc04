package main

import (
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_ReturnsConfigError(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	err := run(zap.NewNop(), zap.NewAtomicLevel())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestRun_ReturnsListenErrorAndReleasesResources(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()
	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", port)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "eventboard.db"))
	t.Setenv("TRANSLATION_FOLDER", "../../pkg/translator/translation")

	core, logs := observer.New(zap.InfoLevel)
	err = run(zap.New(core), zap.NewAtomicLevel())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not start server")
	assert.Equal(t, 1, logs.FilterMessage("starting server").Len())
	assert.Zero(t, logs.FilterMessage("failed to close database connection").Len())
}
