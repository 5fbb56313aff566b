package dto

import (
	"time"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
)

// EventDTO represents an event in API responses
type EventDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Date         string           `json:"date"`
	Time         string           `json:"time"`
	Venue        string           `json:"venue"`
	Departments  []string         `json:"departments"`
	Years        []int            `json:"years"`
	Organization string           `json:"organization"`
	Organizer    models.Organizer `json:"organizer"`
	Poster       string           `json:"poster"`
	Participants []string         `json:"participants"`
	CreatedAt    time.Time        `json:"created_at"`
}

// EventSummaryDTO represents an event in list responses
type EventSummaryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Organization string `json:"organization"`
}

// RegistrationDTO is returned by event registration
type RegistrationDTO struct {
	EventID           string `json:"event_id"`
	AlreadyRegistered bool   `json:"already_registered"`
	ParticipantCount  int    `json:"participant_count"`
}

// ToEventDTO converts an Event model to EventDTO
func ToEventDTO(event models.Event) EventDTO {
	participants := event.Participants
	if participants == nil {
		participants = []string{}
	}
	return EventDTO{
		ID:           event.ID.Hex(),
		Name:         event.Name,
		Description:  event.Description,
		Date:         event.Date,
		Time:         event.Time,
		Venue:        event.Venue,
		Departments:  event.Departments,
		Years:        event.Years,
		Organization: event.Organization,
		Organizer:    event.Organizer,
		Poster:       event.Poster,
		Participants: participants,
		CreatedAt:    event.CreatedAt,
	}
}

// ToEventSummaries projects events onto the summary shape used by listings
func ToEventSummaries(events []models.Event) []EventSummaryDTO {
	out := make([]EventSummaryDTO, len(events))
	for i, event := range events {
		out[i] = EventSummaryDTO{
			ID:           event.ID.Hex(),
			Name:         event.Name,
			Date:         event.Date,
			Organization: event.Organization,
		}
	}
	return out
}
