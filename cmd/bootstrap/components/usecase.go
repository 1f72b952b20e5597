package components

import (
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/usecase"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewStateMachine,
	func(cfg config.Config) commands.SlotSettings {
		return commands.SlotSettings{DefaultCapacity: cfg.Booking.DefaultCapacity}
	},
	func(cfg config.Config) commands.InvitationSettings {
		return commands.InvitationSettings{
			TTL:       cfg.Booking.InvitationTTL,
			PublicURL: cfg.Booking.PublicURL,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewSlotUseCase,
		commands.NewInvitationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewReservationQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewInviteGate,
	),
)
