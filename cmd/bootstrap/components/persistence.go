package components

import (
	"consult-booking/internal/infra/readstore"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/infra/uow"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/usecase"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Read stores run on the pool outside any write transaction.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotViewQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Invite token
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InviteTokenQueries)),
		),
		fx.Annotate(
			readstore.NewInviteTokenReadStore,
			fx.As(new(usecase.InviteTokenReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		func(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
			return uow.NewPostgresUoW(pool, q, cfg.DB)
		},
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
