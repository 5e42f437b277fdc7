package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"boutique/internal/adapters/out/persistence"
	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/ports"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

// fixture is a migrated in-memory database seeded with three clients and
// four work orders:
//
//	1: Asha,  overdue,               Order Placed, created 10 days ago
//	2: Asha,  due in 12 hours,       Started,      created 5 days ago
//	3: Meena, due in 3 days,         Finished,     created 2 days ago
//	4: Meena, delivered and settled, Fully Paid,   created 1 day ago
//
// Nila has no orders.
type fixture struct {
	db      *gorm.DB
	clients ports.ClientRepository
	orders  ports.WorkOrderRepository

	asha, meena, nila *client.Client
	workOrders        []*workorder.WorkOrder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := persistence.Open(persistence.Options{
		Dialect: persistence.DialectSQLite,
		DSN:     persistence.SQLiteMemoryDSN(name),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(ctx, db, persistence.DialectSQLite))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	uow := persistence.NewGormUnitOfWorkFactory(db, nil, nil).Create()
	f := &fixture{db: db, clients: uow.ClientRepository(), orders: uow.WorkOrderRepository()}

	f.asha = f.addClient(t, "Asha Rao", "9876543210", "asha@example.com", "12 MG Road", testNow.Add(-48*time.Hour))
	f.meena = f.addClient(t, "Meena Iyer", "9123456780", "", "", testNow.Add(-24*time.Hour))
	f.nila = f.addClient(t, "Nila Das", "9000000001", "", "", testNow)

	f.addWorkOrder(t, f.asha.ID(), -24*time.Hour, "Silk saree blouse", "", workorder.Placed, 2000, 500, 10)
	f.addWorkOrder(t, f.asha.ID(), 12*time.Hour, "Lehenga alteration", "50% off on lining", workorder.Started, 1500, 0, 5)
	f.addWorkOrder(t, f.meena.ID(), 72*time.Hour, "Kurta stitching", "", workorder.Finished, 800, 0, 2)
	f.addWorkOrder(t, f.meena.ID(), -72*time.Hour, "Blouse hemming", "", workorder.DeliveredPaid, 1000, 1000, 1)

	return f
}

func (f *fixture) addClient(t *testing.T, name, mobile, email, address string, createdAt time.Time) *client.Client {
	t.Helper()
	m, err := kernel.NewMobile(mobile)
	require.NoError(t, err)
	e, err := kernel.NewEmail(email)
	require.NoError(t, err)
	c, err := client.NewClient(name, m, e, address, createdAt)
	require.NoError(t, err)
	require.NoError(t, f.clients.Add(context.Background(), c))
	return c
}

func (f *fixture) addWorkOrder(
	t *testing.T,
	clientID int64,
	dueIn time.Duration,
	description, notes string,
	status workorder.Status,
	estimate, advance float64,
	daysAgo int,
) {
	t.Helper()
	created := testNow.Add(-time.Duration(daysAgo) * 24 * time.Hour)
	w, err := workorder.NewWorkOrder(
		clientID,
		testNow.Add(dueIn),
		description,
		notes,
		status,
		workorder.Billing{
			AdvancePaid:   kernel.MustMoney(advance),
			TotalEstimate: kernel.MustMoney(estimate),
		},
		created,
	)
	require.NoError(t, err)
	require.NoError(t, f.orders.Add(context.Background(), w))
	f.workOrders = append(f.workOrders, w)
}

func (f *fixture) id(n int) int64 {
	return f.workOrders[n-1].ID()
}

func ids(orders []*workorder.WorkOrder) []int64 {
	out := make([]int64, 0, len(orders))
	for _, w := range orders {
		out = append(out, w.ID())
	}
	return out
}
