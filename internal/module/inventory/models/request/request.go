package request

type SchedulePublished struct {
	ScheduleID int64 `json:"schedule_id" validate:"required"`
	TotalSeats int   `json:"total_seats" validate:"required,gt=0"`
}

type ScheduleRetired struct {
	ScheduleID int64 `json:"schedule_id" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
