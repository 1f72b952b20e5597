package request

import "time"

type CreateSlotRequest struct {
	StartAt  time.Time `json:"startAt" binding:"required"`
	EndAt    time.Time `json:"endAt" binding:"required"`
	Capacity *int      `json:"capacity,omitempty" binding:"omitempty,min=1,max=100"`
}

type CreateSlotBatchRequest struct {
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      string   `json:"endDate" binding:"required"`
	TimeSlots    []string `json:"timeSlots" binding:"required,min=1,dive,required"`
	Capacity     *int     `json:"capacity,omitempty" binding:"omitempty,min=1,max=100"`
	ExcludeDates []string `json:"excludeDates,omitempty"`
	Offset       *int     `json:"offset,omitempty" binding:"omitempty,min=-840,max=720"`
}

func (r CreateSlotBatchRequest) GetOffset() int {
	if r.Offset == nil {
		return 0
	}
	return *r.Offset
}
