package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrBlankRollNo   = errors.New("roll number is blank")
	ErrNameRequired  = errors.New("name is required")
)

// EventService handles event creation, membership-filtered listings and registration.
type EventService struct {
	eventRepo repository.EventRepository
	identity  *IdentityResolver
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, identity *IdentityResolver) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		identity:  identity,
	}
}

// CreateEventInput represents input for creating an event
type CreateEventInput struct {
	RollNo       string
	Name         string
	Description  string
	Date         string
	Time         string
	Venue        string
	Departments  []string
	Years        []int
	Organization string
	Poster       string
}

// CreateEvent stores an event organized by the caller. The organizer's name and roll number are
// copied onto the event.
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	organizer, err := s.identity.Resolve(ctx, input.RollNo)
	if err != nil {
		return nil, err
	}

	departments := input.Departments
	if departments == nil {
		departments = []string{}
	}
	years := input.Years
	if years == nil {
		years = []int{}
	}

	event := &models.Event{
		Name:         name,
		Description:  input.Description,
		Date:         input.Date,
		Time:         input.Time,
		Venue:        input.Venue,
		Departments:  departments,
		Years:        years,
		Organization: input.Organization,
		Organizer: models.Organizer{
			Name:   organizer.Name,
			RollNo: organizer.RollNo,
		},
		Poster:       input.Poster,
		Participants: []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetEvent returns a single event
func (s *EventService) GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrEventNotFound, "find event")
	}
	return event, nil
}

// ListVisibleEvents returns the events whose departments and years both include the caller's.
func (s *EventService) ListVisibleEvents(ctx context.Context, rollno string) ([]models.Event, error) {
	user, err := s.identity.Resolve(ctx, rollno)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	visible := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.IsVisibleTo(user) {
			visible = append(visible, event)
		}
	}
	return visible, nil
}

// ListRegisteredEvents returns the events the caller registered for.
func (s *EventService) ListRegisteredEvents(ctx context.Context, rollno string) ([]models.Event, error) {
	user, err := s.identity.Resolve(ctx, rollno)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindByParticipant(ctx, user.RollNo)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered events: %w", err)
	}
	return events, nil
}

// RegisterResult reports the outcome of a registration.
type RegisterResult struct {
	Event             *models.Event
	AlreadyRegistered bool
}

// Register adds the caller to the participants of an event. Registering twice leaves a single entry
// and reports AlreadyRegistered.
func (s *EventService) Register(ctx context.Context, rollno string, eventID primitive.ObjectID) (*RegisterResult, error) {
	user, err := s.identity.Resolve(ctx, rollno)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, notFoundOr(err, ErrEventNotFound, "find event")
	}

	participant := strings.TrimSpace(user.RollNo)
	if participant == "" {
		log.Warn().
			Str("user_id", user.ID.Hex()).
			Str("event_id", eventID.Hex()).
			Msg("registration rejected: user has a blank roll number")
		return nil, ErrBlankRollNo
	}

	if event.HasParticipant(participant) {
		return &RegisterResult{Event: event, AlreadyRegistered: true}, nil
	}

	// Events created before participants existed cannot take $addToSet on a null field.
	if event.Participants == nil {
		if _, err := s.eventRepo.InitParticipants(ctx, eventID); err != nil {
			return nil, fmt.Errorf("failed to initialize participants: %w", err)
		}
	}

	added, err := s.eventRepo.AddParticipant(ctx, eventID, participant)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	if added {
		event.Participants = append(event.Participants, participant)
	}

	return &RegisterResult{Event: event, AlreadyRegistered: !added}, nil
}

// BackfillParticipants sets an empty participant list on every event missing one and returns how
// many events were updated. Running it again updates nothing.
func (s *EventService) BackfillParticipants(ctx context.Context) (int, error) {
	events, err := s.eventRepo.FindMissingParticipants(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find events without participants: %w", err)
	}

	updated := 0
	for _, event := range events {
		changed, err := s.eventRepo.InitParticipants(ctx, event.ID)
		if err != nil {
			return updated, fmt.Errorf("failed to backfill event %s: %w", event.ID.Hex(), err)
		}
		if changed {
			updated++
			log.Debug().Str("event_id", event.ID.Hex()).Msg("initialized participants")
		}
	}

	log.Info().Int("scanned", len(events)).Int("updated", updated).Msg("participant backfill finished")
	return updated, nil
}
