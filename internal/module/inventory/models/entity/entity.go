package entity

// ScheduleInventory mirrors the seat counter kept per train schedule.
// 0 <= AvailableSeats <= TotalSeats holds at all times; the counter is
// only mutated through the repository's reserve/release operations.
type ScheduleInventory struct {
	ScheduleID     int64 `json:"schedule_id"`
	TotalSeats     int   `json:"total_seats"`
	AvailableSeats int   `json:"available_seats"`
}
