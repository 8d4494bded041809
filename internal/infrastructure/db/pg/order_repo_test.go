package pg_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"orderflow/internal/domain"
	"orderflow/internal/domain/order"
	"orderflow/internal/infrastructure/db/pg"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../../../../migrations"))
	_, err = db.Exec(`TRUNCATE orders`)
	require.NoError(t, err)
	return db
}

func sampleOrder() order.Order {
	return order.Order{
		ID:        uuid.New(),
		Product:   "keyboard",
		Quantity:  2,
		Email:     "jane@example.com",
		Phone:     "+33600000000",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestOrderRepository_InsertAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := pg.NewOrderRepository(db)
	ctx := context.Background()

	o := sampleOrder()
	saved, err := repo.Insert(ctx, o)
	require.NoError(t, err)
	require.Equal(t, o, saved)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, o, got)
}

func TestOrderRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := pg.NewOrderRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, domain.ErrorCodeNotFound, de.Code)
}

func TestTxManager_RollbackDiscardsInsert(t *testing.T) {
	db := openTestDB(t)
	repo := pg.NewOrderRepository(db)
	uow := pg.NewTxManager(db)
	ctx := context.Background()

	o := sampleOrder()
	boom := errors.New("handler failed")
	err := uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Insert(ctx, o); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetByID(ctx, o.ID)
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
}
