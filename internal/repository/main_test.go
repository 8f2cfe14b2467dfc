//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/internal/testutil"
)

// TestMain starts one MongoDB container shared by every integration test in
// this package. Each test gets its own database for isolation.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithSharedMongoDB(context.Background(), m))
}

// integrationDB opens a connection to the shared container with a database
// name unique to the calling test.
func integrationDB(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.SharedURI(), testutil.TestDBName(t.Name()))
	require.NoError(t, err)
	return db
}
