package commands

import (
	"context"
	"log/slog"
	"time"

	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/tracing"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type SlotSettings struct {
	DefaultCapacity int
}

type CreateSlotInput struct {
	StartAt  time.Time
	EndAt    time.Time
	Capacity *int
}

type CreateBatchInput struct {
	StartDate     string
	EndDate       string
	TimesOfDay    []string
	ExcludeDates  []string
	Capacity      *int
	OffsetMinutes int
}

type BatchResult struct {
	Created int
	Skipped int
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, counselorID uuid.UUID, in CreateSlotInput) (*shared.SlotSnapshot, error)
	CreateBatch(ctx context.Context, counselorID uuid.UUID, in CreateBatchInput) (*BatchResult, error)
	DeleteSlot(ctx context.Context, counselorID, slotID uuid.UUID) error
}

type slotUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings SlotSettings
}

func NewSlotUseCase(uow shared.UnitOfWork, clk clock.Clock, settings SlotSettings) SlotCommands {
	return &slotUseCaseImpl{uow: uow, clock: clk, settings: settings}
}

func (uc *slotUseCaseImpl) capacity(v *int) int {
	if v != nil {
		return *v
	}
	return uc.settings.DefaultCapacity
}

func (uc *slotUseCaseImpl) CreateSlot(ctx context.Context, counselorID uuid.UUID, in CreateSlotInput) (result *shared.SlotSnapshot, err error) {
	ctx, span := tracing.Start(ctx, "commands.CreateSlot")
	defer func() { tracing.End(span, err) }()

	s, err := slot.NewSlot(counselorID, in.StartAt.UTC(), in.EndAt.UTC(), uc.capacity(in.Capacity), uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.Slots().Create(ctx, tx.DB(), s); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrDuplicateSlot
			}
			return cerr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snap := slotSnapshotOf(s)
	return &snap, nil
}

func (uc *slotUseCaseImpl) CreateBatch(ctx context.Context, counselorID uuid.UUID, in CreateBatchInput) (result *BatchResult, err error) {
	ctx, span := tracing.Start(ctx, "commands.CreateSlotBatch",
		attribute.String("batch.start_date", in.StartDate),
		attribute.String("batch.end_date", in.EndDate),
	)
	defer func() { tracing.End(span, err) }()

	slots, err := slot.ExpandBatch(counselorID, slot.BatchSpec{
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		TimesOfDay:    in.TimesOfDay,
		ExcludeDates:  in.ExcludeDates,
		Capacity:      uc.capacity(in.Capacity),
		OffsetMinutes: in.OffsetMinutes,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}

	var created int
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, cerr := tx.Slots().CreateBatch(ctx, tx.DB(), slots)
		if cerr != nil {
			return cerr
		}
		if n == 0 {
			return ErrNoSlotsCreated
		}
		created = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("slot batch created", "counselor_id", counselorID, "created", created, "skipped", len(slots)-created)
	return &BatchResult{Created: created, Skipped: len(slots) - created}, nil
}

// DeleteSlot removes an owned slot with no bookings. The delete itself is
// conditional on booked = 0, so a booking racing in wins.
func (uc *slotUseCaseImpl) DeleteSlot(ctx context.Context, counselorID, slotID uuid.UUID) (err error) {
	ctx, span := tracing.Start(ctx, "commands.DeleteSlot", attribute.String("slot.id", slotID.String()))
	defer func() { tracing.End(span, err) }()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().SlotByID(ctx, slotID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return shared.ErrSlotNotFound
			}
			return rerr
		}
		if snap.OwnerID != counselorID {
			return shared.ErrForbidden
		}

		deleted, derr := tx.Slots().Delete(ctx, tx.DB(), slotID, counselorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrSlotHasReservations
			}
			return derr
		}
		if !deleted {
			return ErrSlotHasBookings
		}
		return nil
	})
}

func slotSnapshotOf(s *slot.Slot) shared.SlotSnapshot {
	return shared.SlotSnapshot{
		ID:        s.ID(),
		OwnerID:   s.OwnerID(),
		StartAt:   s.StartAt(),
		EndAt:     s.EndAt(),
		Capacity:  s.Capacity(),
		Booked:    s.Booked(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
