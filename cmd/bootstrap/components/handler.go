package components

import (
	"consult-booking/internal/handler"
	"consult-booking/internal/handler/api"
	"consult-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewSlotHandler,
		api.NewInvitationHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, s *api.SlotHandler, i *api.InvitationHandler, n *api.NotificationHandler) handler.Handlers {
			return handler.Handlers{Reservations: r, Slots: s, Invitations: i, Notifications: n}
		},
	),
	fx.Invoke(handler.NewRouter),
)
