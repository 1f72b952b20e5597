//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra"
	"consult-booking/internal/infra/repository"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/tests/common/builder"
	repositorymock "consult-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Claim Tests
// =============================================================================

func TestSlotRepository_Claim(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockSlotWriteQueries, sqlc.DBTX)
		expected   slot.ClaimResult
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: one row updated claims a seat",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimSlotSeat(ctx, tx, slotID).Return(int64(1), nil)
			},
			expected: slot.Claimed,
		},
		{
			name: "success: no row and slot exists means full",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimSlotSeat(ctx, tx, slotID).Return(int64(0), nil)
				mock.EXPECT().SlotExists(ctx, tx, slotID).Return(true, nil)
			},
			expected: slot.ClaimSlotFull,
		},
		{
			name: "success: no row and no slot means not found",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimSlotSeat(ctx, tx, slotID).Return(int64(0), nil)
				mock.EXPECT().SlotExists(ctx, tx, slotID).Return(false, nil)
			},
			expected: slot.ClaimSlotNotFound,
		},
		{
			name: "error: update fails",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimSlotSeat(ctx, tx, slotID).Return(int64(0), errors.New("database connection error"))
			},
			expected:   slot.ClaimUnknown,
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: existence probe fails",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimSlotSeat(ctx, tx, slotID).Return(int64(0), nil)
				mock.EXPECT().SlotExists(ctx, tx, slotID).Return(false, errors.New("database connection error"))
			},
			expected:   slot.ClaimUnknown,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			result, err := repo.Claim(ctx, mockDB, slotID)

			assert.Equal(t, tc.expected, result)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSlotRepository_Release(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()

	testCases := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "success: seat returned", affected: 1, expected: true},
		{name: "success: counter already at zero", affected: 0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)
			mockQueries.EXPECT().ReleaseSlotSeat(ctx, mockDB, slotID).Return(tc.affected, nil)

			released, err := repo.Release(ctx, mockDB, slotID)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, released)
		})
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestSlotRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: slot created"},
		{
			name:       "error: same owner and interval",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database error occurs",
			returnErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			s, err := builder.NewSlotBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateSlot(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSlotParams) error {
					assert.Equal(t, s.ID(), arg.ID)
					assert.Equal(t, int32(s.Capacity()), arg.Capacity)
					assert.True(t, arg.StartAt.Valid)
					return tc.returnErr
				})

			err = repo.Create(ctx, mockDB, s)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSlotRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success: counts only inserted rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		var slots []*slot.Slot
		for range 3 {
			s, err := builder.NewSlotBuilder().BuildDomain()
			require.NoError(t, err)
			slots = append(slots, s)
		}
		gomock.InOrder(
			mockQueries.EXPECT().CreateSlotIfAbsent(ctx, mockDB, gomock.Any()).Return(int64(1), nil),
			mockQueries.EXPECT().CreateSlotIfAbsent(ctx, mockDB, gomock.Any()).Return(int64(0), nil),
			mockQueries.EXPECT().CreateSlotIfAbsent(ctx, mockDB, gomock.Any()).Return(int64(1), nil),
		)

		created, err := repo.CreateBatch(ctx, mockDB, slots)

		require.NoError(t, err)
		assert.Equal(t, 2, created)
	})

	t.Run("error: stops at the first failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		s1, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		s2, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		mockQueries.EXPECT().CreateSlotIfAbsent(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("database connection error"))

		created, err := repo.CreateBatch(ctx, mockDB, []*slot.Slot{s1, s2})

		require.Error(t, err)
		assert.Zero(t, created)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestSlotRepository_Delete(t *testing.T) {
	ctx := context.Background()
	slotID, ownerID := uuid.New(), uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expected   bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: unbooked slot deleted", affected: 1, expected: true},
		{name: "success: booked or foreign slot left alone", affected: 0, expected: false},
		{
			name:       "error: reservation history references the slot",
			returnErr:  &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)
			mockQueries.EXPECT().DeleteUnbookedSlot(ctx, mockDB, sqlc.DeleteUnbookedSlotParams{ID: slotID, OwnerID: ownerID}).
				Return(tc.affected, tc.returnErr)

			deleted, err := repo.Delete(ctx, mockDB, slotID, ownerID)

			assert.Equal(t, tc.expected, deleted)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
