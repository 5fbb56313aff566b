package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func eventPayload(departments []string, years []int) map[string]any {
	return map[string]any{
		"name":         "Robotics Expo",
		"description":  "Annual showcase",
		"date":         "2026-12-05",
		"time":         "14:30",
		"venue":        "Block C",
		"departments":  departments,
		"years":        years,
		"organization": "Robotics Club",
		"poster":       "x",
	}
}

func (suite *HandlerTestSuite) createTestEvent(token string, departments []string, years []int) dto.EventDTO {
	w := suite.do(http.MethodPost, "/api/events", eventPayload(departments, years), token)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var event dto.EventDTO
	suite.decode(w, &event)
	return event
}

func (suite *HandlerTestSuite) listEvents(path, token string) []dto.EventSummaryDTO {
	w := suite.do(http.MethodGet, path, nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Events []dto.EventSummaryDTO `json:"events"`
	}
	suite.decode(w, &response)
	return response.Events
}

func (suite *HandlerTestSuite) TestCreateEvent_Success() {
	token := suite.createTestUser("21CS001", "CS", 2)
	event := suite.createTestEvent(token, []string{"CS"}, []int{2})

	suite.Equal("21CS001", event.Organizer.RollNo)
	suite.Equal("User 21CS001", event.Organizer.Name)
	suite.Equal([]string{}, event.Participants)
	suite.Equal("x", event.Poster)
}

func (suite *HandlerTestSuite) TestCreateEvent_InvalidRequest() {
	token := suite.createTestUser("21CS001", "CS", 2)

	payload := eventPayload([]string{"CS"}, []int{2})
	payload["date"] = "05/12/2026"

	w := suite.do(http.MethodPost, "/api/events", payload, token)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Date")
}

// CS year 2 sees the event, an EE student does not.
func (suite *HandlerTestSuite) TestListEvents_Membership() {
	cs := suite.createTestUser("21CS001", "CS", 2)
	ee := suite.createTestUser("21EE001", "EE", 2)
	event := suite.createTestEvent(cs, []string{"CS"}, []int{2})

	visible := suite.listEvents("/api/events", cs)
	suite.Require().Len(visible, 1)
	suite.Equal(dto.EventSummaryDTO{
		ID:           event.ID,
		Name:         "Robotics Expo",
		Date:         "2026-12-05",
		Organization: "Robotics Club",
	}, visible[0])

	suite.Empty(suite.listEvents("/api/events", ee))
}

func (suite *HandlerTestSuite) TestRegisterForEvent_Idempotent() {
	token := suite.createTestUser("21CS001", "CS", 2)
	event := suite.createTestEvent(token, []string{"CS"}, []int{2})

	w := suite.do(http.MethodPost, "/api/events/"+event.ID+"/register", nil, token)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var first dto.RegistrationDTO
	suite.decode(w, &first)
	suite.False(first.AlreadyRegistered)
	suite.Equal(1, first.ParticipantCount)

	w = suite.do(http.MethodPost, "/api/events/"+event.ID+"/register", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	var second dto.RegistrationDTO
	suite.decode(w, &second)
	suite.True(second.AlreadyRegistered)
	suite.Equal(1, second.ParticipantCount)

	w = suite.do(http.MethodGet, "/api/events/"+event.ID, nil, token)
	var stored dto.EventDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stored))
	suite.Equal([]string{"21CS001"}, stored.Participants)

	registered := suite.listEvents("/api/events/registered", token)
	suite.Require().Len(registered, 1)
	suite.Equal(event.ID, registered[0].ID)
}

func (suite *HandlerTestSuite) TestRegisterForEvent_NotFound() {
	token := suite.createTestUser("21CS001", "CS", 2)

	w := suite.do(http.MethodPost, "/api/events/"+primitive.NewObjectID().Hex()+"/register", nil, token)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPost, "/api/events/bogus/register", nil, token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListEvents_Unauthorized() {
	w := suite.do(http.MethodGet, "/api/events", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestListEvents_CalledWithoutMiddleware() {
	c, w := suite.createAuthContext(http.MethodGet, "/api/events", nil, "ghost")

	suite.eventHandler.ListEvents(c)

	suite.Equal(http.StatusNotFound, w.Code)
}
