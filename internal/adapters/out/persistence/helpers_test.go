package persistence_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"boutique/internal/adapters/out/persistence"
	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// recordingPublisher keeps published events in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []workorder.StatusChanged
}

func (p *recordingPublisher) Publish(_ context.Context, events ...workorder.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Events() []workorder.StatusChanged {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]workorder.StatusChanged(nil), p.events...)
}

// openSQLite returns a migrated in-memory database private to the test.
func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := persistence.Open(persistence.Options{
		Dialect: persistence.DialectSQLite,
		DSN:     persistence.SQLiteMemoryDSN(name),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(context.Background(), db, persistence.DialectSQLite))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestClient(t *testing.T, name, mobile string) *client.Client {
	t.Helper()
	m, err := kernel.NewMobile(mobile)
	require.NoError(t, err)
	c, err := client.NewClient(name, m, kernel.Email{}, "", testNow)
	require.NoError(t, err)
	return c
}

func newTestWorkOrder(t *testing.T, clientID int64, status workorder.Status, estimate, advance float64) *workorder.WorkOrder {
	t.Helper()
	w, err := workorder.NewWorkOrder(
		clientID,
		testNow.Add(72*time.Hour),
		"Silk saree blouse",
		"",
		status,
		workorder.Billing{
			AdvancePaid:   kernel.MustMoney(advance),
			TotalEstimate: kernel.MustMoney(estimate),
		},
		testNow,
	)
	require.NoError(t, err)
	return w
}
