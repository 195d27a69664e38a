package response

import (
	"time"

	"havenmart/internal/domain/booking"
	"havenmart/internal/usecase/queries"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
}

type DayScheduleResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSchedule(days []booking.DaySchedule) []DayScheduleResponse {
	res := make([]DayScheduleResponse, len(days))
	for i, d := range days {
		slots := make([]SlotResponse, len(d.Slots))
		for j, s := range d.Slots {
			slots[j] = SlotResponse{Start: s.Start}
		}
		res[i] = DayScheduleResponse{
			Date:  d.Date.Format("2006-01-02"),
			Slots: slots,
		}
	}
	return res
}

type BookingResponse struct {
	ID            string `json:"id"`
	PropertyID    string `json:"property_id"`
	PropertyTitle string `json:"property_title"`
	SlotStart     string `json:"slot_start"`
	Note          string `json:"note"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = &BookingResponse{
			ID:            v.ID.String(),
			PropertyID:    v.PropertyID.String(),
			PropertyTitle: v.PropertyTitle,
			SlotStart:     v.SlotStart.UTC().Format(time.RFC3339),
			Note:          v.Note,
			Status:        v.Status,
			CreatedAt:     v.CreatedAt.Unix(),
		}
	}
	return res
}
