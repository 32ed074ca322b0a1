// Package syncdto - các kiểu input tầng transport của domain Sync.
package syncdto

// ReservationInput - một sự kiện đặt phòng từ hệ thống ngoài
type ReservationInput struct {
	PropertyID   string `json:"propertyId" validate:"required,len=24"`
	CheckOutDate string `json:"checkOutDate" validate:"required,day_key"`
	GuestName    string `json:"guestName" validate:"omitempty,no_xss"`
	Notes        string `json:"notes" validate:"omitempty,no_xss"`
}

// ReservationSyncInput - batch sự kiện đặt phòng cần ingest
type ReservationSyncInput struct {
	Reservations []ReservationInput `json:"reservations" validate:"required,min=1,dive"`
}
