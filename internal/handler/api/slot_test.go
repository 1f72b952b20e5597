//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"consult-booking/internal/domain/slot"
	"consult-booking/internal/handler/api"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"
	"consult-booking/tests/common/builder"
	"consult-booking/tests/common/httptest"
	"consult-booking/tests/common/testutil"
	commandsmock "consult-booking/tests/mock/commands"
	queriesmock "consult-booking/tests/mock/queries"
	usecasemock "consult-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockSlotCommands
	mockQueries      *queriesmock.MockSlotQueries
	mockReservations *queriesmock.MockReservationQueries
	mockGate         *usecasemock.MockInviteGate
	counselorID      uuid.UUID
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockGate = usecasemock.NewMockInviteGate(s.mockCtrl)
	h := api.NewSlotHandler(s.mockCommands, s.mockQueries, s.mockReservations, s.mockGate)
	s.counselorID = uuid.New()

	s.router.GET("/public/slots", h.ListPublic)
	admin := s.router.Group("/admin", mockAuth(s.counselorID))
	admin.POST("/slots", h.Create)
	admin.POST("/slots/batch", h.CreateBatch)
	admin.GET("/slots", h.List)
	admin.GET("/slots/:id", h.Get)
	admin.GET("/slots/:id/reservations", h.ListReservations)
	admin.DELETE("/slots/:id", h.Delete)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestListPublic() {
	b := builder.NewSlotBuilder().With(func(sb *builder.SlotBuilder) { sb.Booked = 1 })

	s.Run("success: one local day in UTC+9", func() {
		s.mockGate.EXPECT().Resolve(gomock.Any(), "inv").Return(&invitationScope, nil)
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), invitationScope, gomock.Any()).
			DoAndReturn(func(_ any, _ any, w slot.Window) ([]*queries.SlotView, error) {
				s.Equal(time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC), w.From)
				s.Equal(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), w.To)
				return []*queries.SlotView{b.BuildView()}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public/slots?token=inv&date=2026-03-10&offset=-540", nil, "")

		var got []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Require().Len(got, 1)
		s.Equal(2, got[0].AvailableCount)
		s.Equal(1, got[0].BookedCount)
	})

	s.Run("success: from and to range", func() {
		s.mockGate.EXPECT().Resolve(gomock.Any(), "inv").Return(&invitationScope, nil)
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), invitationScope, gomock.Any()).
			DoAndReturn(func(_ any, _ any, w slot.Window) ([]*queries.SlotView, error) {
				s.Equal(7*24*time.Hour, w.To.Sub(w.From))
				return []*queries.SlotView{}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public/slots?token=inv&from=2026-03-01&to=2026-03-07", nil, "")
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("error: invalid token", func() {
		s.mockGate.EXPECT().Resolve(gomock.Any(), "").Return(nil, shared.ErrInvalidOrExpiredToken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public/slots?date=2026-03-10", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "INVALID_OR_EXPIRED_TOKEN")
	})

	windows := []struct {
		name  string
		query string
	}{
		{name: "error: malformed date", query: "&date=2026/03/10"},
		{name: "error: offset out of range", query: "&date=2026-03-10&offset=900"},
		{name: "error: reversed range", query: "&from=2026-03-10&to=2026-03-01"},
		{name: "error: range over 62 days", query: "&from=2026-01-01&to=2026-06-01"},
		{name: "error: no window", query: ""},
	}
	for _, tc := range windows {
		s.Run(tc.name, func() {
			s.mockGate.EXPECT().Resolve(gomock.Any(), "inv").Return(&invitationScope, nil)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public/slots?token=inv"+tc.query, nil, "")
			httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func (s *SlotHandlerTestSuite) TestCreate() {
	b := builder.NewSlotBuilder().With(func(sb *builder.SlotBuilder) { sb.CounselorID = s.counselorID })
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().CreateSlot(gomock.Any(), s.counselorID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CreateSlotInput) (*shared.SlotSnapshot, error) {
				s.True(in.StartAt.Equal(b.StartAt))
				s.Require().NotNil(in.Capacity)
				s.Equal(3, *in.Capacity)
				return b.BuildSnapshot(), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/slots", reqBody, "token")

		var got resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(b.ID, got.ID)
		s.Equal(s.counselorID, got.CounselorID)
		s.Equal(3, got.AvailableCount)
	})

	bounds := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "error: capacity 0", mutate: testutil.Field("capacity", 0)},
		{name: "error: capacity 101", mutate: testutil.Field("capacity", 101)},
		{name: "error: missing startAt", mutate: testutil.Field("startAt", nil)},
	}
	for _, tc := range bounds {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/slots", body, "token")
			httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "INVALID_REQUEST")
		})
	}

	s.Run("error: duplicate slot is 409", func() {
		s.mockCommands.EXPECT().CreateSlot(gomock.Any(), s.counselorID, gomock.Any()).Return(nil, commands.ErrDuplicateSlot)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/slots", reqBody, "token")
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "DUPLICATE_SLOT")
	})
}

func (s *SlotHandlerTestSuite) TestCreateBatch() {
	reqBody := map[string]any{
		"startDate": "2026-03-09",
		"endDate":   "2026-03-13",
		"timeSlots": []string{"10:00", "10:30"},
		"offset":    -540,
	}

	s.Run("success: returns created and skipped", func() {
		s.mockCommands.EXPECT().CreateBatch(gomock.Any(), s.counselorID, commands.CreateBatchInput{
			StartDate:     "2026-03-09",
			EndDate:       "2026-03-13",
			TimesOfDay:    []string{"10:00", "10:30"},
			OffsetMinutes: -540,
		}).Return(&commands.BatchResult{Created: 8, Skipped: 2}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/slots/batch", reqBody, "token")

		var got resdto.SlotBatchResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(8, got.Created)
		s.Equal(2, got.Skipped)
	})

	s.Run("error: empty timeSlots", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("timeSlots", []string{}))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/slots/batch", body, "token")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: nothing new created", func() {
		s.mockCommands.EXPECT().CreateBatch(gomock.Any(), s.counselorID, gomock.Any()).Return(nil, commands.ErrNoSlotsCreated)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/slots/batch", reqBody, "token")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "NO_SLOTS_CREATED")
	})
}

func (s *SlotHandlerTestSuite) TestDelete() {
	slotID := uuid.New()
	url := "/admin/slots/" + slotID.String()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "success: 204", status: http.StatusNoContent},
		{name: "error: has bookings", err: commands.ErrSlotHasBookings, status: http.StatusBadRequest, code: "SLOT_HAS_BOOKINGS"},
		{name: "error: has history", err: commands.ErrSlotHasReservations, status: http.StatusBadRequest, code: "SLOT_HAS_RESERVATIONS"},
		{name: "error: not owner", err: shared.ErrForbidden, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "error: not found", err: shared.ErrSlotNotFound, status: http.StatusNotFound, code: "SLOT_NOT_FOUND"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().DeleteSlot(gomock.Any(), s.counselorID, slotID).Return(tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
			if tc.err == nil {
				s.Equal(tc.status, w.Code)
				return
			}
			httptest.AssertErrorCode(s.T(), w, tc.status, tc.code)
		})
	}
}

func (s *SlotHandlerTestSuite) TestGetAndListReservations() {
	b := builder.NewSlotBuilder().With(func(sb *builder.SlotBuilder) { sb.CounselorID = s.counselorID })
	r := builder.NewReservationBuilder().With(func(rb *builder.ReservationBuilder) {
		rb.SlotID = b.ID
		rb.CounselorID = s.counselorID
	})

	s.Run("success: get owned slot", func() {
		s.mockQueries.EXPECT().GetForOwner(gomock.Any(), s.counselorID, b.ID).Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots/"+b.ID.String(), nil, "token")

		var got resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(b.ID, got.ID)
	})

	s.Run("success: list reservations on slot", func() {
		s.mockReservations.EXPECT().ListBySlot(gomock.Any(), s.counselorID, b.ID).Return([]*queries.ReservationView{r.BuildView()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots/"+b.ID.String()+"/reservations", nil, "token")

		var got []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Require().Len(got, 1)
		s.Equal(r.ID, got[0].ID)
	})

	s.Run("success: list own slots in range", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.counselorID, gomock.Any()).Return([]*queries.SlotView{b.BuildView()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots?from=2026-03-01&to=2026-03-31", nil, "token")
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("error: malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots/xyz", nil, "token")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "INVALID_REQUEST")
	})
}
