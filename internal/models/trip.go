package models

import "time"

type TripStatus string

const (
	StatusScheduled  TripStatus = "scheduled"
	StatusInProgress TripStatus = "in_progress"
	StatusCompleted  TripStatus = "completed"
	StatusCancelled  TripStatus = "cancelled"
)

// statusLabels is the single source of the display names shown on the
// dashboards. Keeping it next to the enum means the two cannot drift apart.
var statusLabels = map[TripStatus]string{
	StatusScheduled:  "Agendada",
	StatusInProgress: "Em Andamento",
	StatusCompleted:  "Concluída",
	StatusCancelled:  "Cancelada",
}

func (s TripStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display name for the status, or the raw value for an
// unknown status.
func (s TripStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step. Completed and cancelled are terminal.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	switch s {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

// Trip embeds copies of the patient records taken at creation time. Editing a
// patient afterwards must not rewrite the history of trips already scheduled.
type Trip struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	DriverID  string     `bson:"driverId" json:"driverId"`
	VehicleID string     `bson:"vehicleId" json:"vehicleId"`
	City      string     `bson:"city" json:"city"`
	Date      string     `bson:"date" json:"date"`
	Time      string     `bson:"time" json:"time"`
	Status    TripStatus `bson:"status" json:"status"`
	Patients  []Patient  `bson:"patients" json:"patients"`
	Notes     *string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}
