//go:build integration

// Package testutil provides testcontainers setup for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB creates and starts a MongoDB testcontainer.
// Prefer SharedMongoDB for package-wide reuse.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the MongoDB container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
)

// SharedMongoDB returns a MongoDB container shared across the tests of a
// package. Pair with TerminateSharedMongoDB in TestMain.
func SharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = StartMongoDB(ctx)
	})
	return shared, sharedErr
}

// TerminateSharedMongoDB tears down the shared container. Call after m.Run().
func TerminateSharedMongoDB(ctx context.Context) error {
	if shared == nil {
		return nil
	}
	return shared.Terminate(ctx)
}

// RunWithSharedMongoDB starts the shared container, runs the package tests
// and tears the container down. Intended for use from TestMain.
func RunWithSharedMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := SharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := TerminateSharedMongoDB(ctx); err != nil {
		// Docker reaps leaked containers eventually, so only warn here.
		_, _ = os.Stderr.WriteString("warning: failed to terminate shared MongoDB container: " + err.Error() + "\n")
	}
	return code
}

// SharedURI returns the connection string of the shared container.
// Panics when called before RunWithSharedMongoDB has started it.
func SharedURI() string {
	if shared == nil {
		panic("shared MongoDB container not started")
	}
	return shared.URI
}

// TestDBName derives a unique MongoDB database name from a test name so
// parallel tests in one package never share state.
func TestDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
