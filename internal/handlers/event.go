package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	"github.com/kishoreadhith-v/clubs-api/internal/services"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent creates an event organized by the current user
func (h *EventHandler) CreateEvent(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}

	type CreateEventRequest struct {
		Name         string   `json:"name" binding:"required,max=200"`
		Description  string   `json:"description" binding:"max=5000"`
		Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
		Time         string   `json:"time" binding:"required,datetime=15:04"`
		Venue        string   `json:"venue" binding:"required,max=200"`
		Departments  []string `json:"departments" binding:"required,min=1,dive,required"`
		Years        []int    `json:"years" binding:"required,min=1,dive,min=1,max=10"`
		Organization string   `json:"organization" binding:"required,max=200"`
		Poster       string   `json:"poster"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), services.CreateEventInput{
		RollNo:       rollno,
		Name:         req.Name,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		Venue:        req.Venue,
		Departments:  req.Departments,
		Years:        req.Years,
		Organization: req.Organization,
		Poster:       req.Poster,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event))
}

// ListEvents returns the events open to the current user's department and year
func (h *EventHandler) ListEvents(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListVisibleEvents(c.Request.Context(), rollno)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": dto.ToEventSummaries(events)})
}

// ListRegisteredEvents returns the events the current user registered for
func (h *EventHandler) ListRegisteredEvents(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListRegisteredEvents(c.Request.Context(), rollno)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": dto.ToEventSummaries(events)})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// RegisterForEvent registers the current user. Registering again is answered with 200 and
// already_registered set.
func (h *EventHandler) RegisterForEvent(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}
	id, ok := resourceID(c)
	if !ok {
		return
	}

	result, err := h.eventService.Register(c.Request.Context(), rollno, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyRegistered {
		status = http.StatusOK
	}
	c.JSON(status, dto.RegistrationDTO{
		EventID:           result.Event.ID.Hex(),
		AlreadyRegistered: result.AlreadyRegistered,
		ParticipantCount:  len(result.Event.Participants),
	})
}
