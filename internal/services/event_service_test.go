package services

import (
	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func eventNames(events []models.Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}

func (suite *ServiceTestSuite) TestCreateEvent_OrganizerSnapshot() {
	organizer := suite.createTestUser("21CS001", "CS", 2)
	event := suite.createTestEvent("21CS001", []string{"CS"}, []int{2})

	suite.Equal(organizer.Name, event.Organizer.Name)
	suite.Equal("21CS001", event.Organizer.RollNo)
	suite.NotNil(event.Participants)
	suite.Empty(event.Participants)

	stored, err := suite.events.GetEvent(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(event.Organizer, stored.Organizer)
	suite.Equal([]string{"CS"}, stored.Departments)
	suite.Equal([]int{2}, stored.Years)
}

// An event for CS year 2 is listed for a CS second-year and hidden from an EE student.
func (suite *ServiceTestSuite) TestListVisibleEvents_Membership() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestUser("21EE001", "EE", 2)
	suite.createTestUser("20CS001", "CS", 3)
	suite.createTestEvent("21CS001", []string{"CS"}, []int{2})

	visible, err := suite.events.ListVisibleEvents(suite.ctx, "21CS001")
	suite.Require().NoError(err)
	suite.Equal([]string{"Hackathon"}, eventNames(visible))

	visible, err = suite.events.ListVisibleEvents(suite.ctx, "21EE001")
	suite.Require().NoError(err)
	suite.Empty(visible)

	visible, err = suite.events.ListVisibleEvents(suite.ctx, "20CS001")
	suite.Require().NoError(err)
	suite.Empty(visible)
}

func (suite *ServiceTestSuite) TestListVisibleEvents_SetChangeHidesEvent() {
	suite.createTestUser("21CS001", "CS", 2)
	event := suite.createTestEvent("21CS001", []string{"CS", "EE"}, []int{1, 2})

	visible, err := suite.events.ListVisibleEvents(suite.ctx, "21CS001")
	suite.Require().NoError(err)
	suite.Len(visible, 1)

	_, err = suite.store.UpdateOne(suite.ctx, constants.CollectionEvents,
		bson.M{"_id": event.ID},
		bson.M{"$set": bson.M{"departments": []string{"EE"}}},
	)
	suite.Require().NoError(err)

	visible, err = suite.events.ListVisibleEvents(suite.ctx, "21CS001")
	suite.Require().NoError(err)
	suite.Empty(visible)
}

func (suite *ServiceTestSuite) TestRegister_Idempotent() {
	suite.createTestUser("21CS001", "CS", 2)
	event := suite.createTestEvent("21CS001", []string{"CS"}, []int{2})

	first, err := suite.events.Register(suite.ctx, "21CS001", event.ID)
	suite.Require().NoError(err)
	suite.False(first.AlreadyRegistered)

	second, err := suite.events.Register(suite.ctx, "21CS001", event.ID)
	suite.Require().NoError(err)
	suite.True(second.AlreadyRegistered)

	stored, err := suite.events.GetEvent(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"21CS001"}, stored.Participants)

	registered, err := suite.events.ListRegisteredEvents(suite.ctx, "21CS001")
	suite.Require().NoError(err)
	suite.Equal([]string{"Hackathon"}, eventNames(registered))
}

func (suite *ServiceTestSuite) TestRegister_NotFound() {
	suite.createTestUser("21CS001", "CS", 2)

	_, err := suite.events.Register(suite.ctx, "21CS001", primitive.NewObjectID())
	suite.ErrorIs(err, ErrEventNotFound)

	event := suite.createTestEvent("21CS001", []string{"CS"}, []int{2})
	_, err = suite.events.Register(suite.ctx, "ghost", event.ID)
	suite.ErrorIs(err, ErrUserNotFound)
}

func (suite *ServiceTestSuite) TestRegister_BlankRollNo() {
	suite.createTestUser("21CS001", "CS", 2)
	event := suite.createTestEvent("21CS001", []string{"CS"}, []int{2})

	// Legacy record imported with padding around an empty roll number.
	_, err := suite.store.InsertOne(suite.ctx, constants.CollectionUsers, bson.M{
		"rollno": "  ",
		"name":   "Legacy",
	})
	suite.Require().NoError(err)

	_, err = suite.events.Register(suite.ctx, "  ", event.ID)
	suite.ErrorIs(err, ErrBlankRollNo)

	stored, err := suite.events.GetEvent(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Empty(stored.Participants)
}

func (suite *ServiceTestSuite) TestRegister_LegacyEventWithoutParticipants() {
	suite.createTestUser("21CS001", "CS", 2)

	id, err := suite.store.InsertOne(suite.ctx, constants.CollectionEvents, bson.M{
		"name":         "Legacy Meetup",
		"departments":  bson.A{"CS"},
		"years":        bson.A{2},
		"participants": nil,
	})
	suite.Require().NoError(err)

	result, err := suite.events.Register(suite.ctx, "21CS001", id)
	suite.Require().NoError(err)
	suite.False(result.AlreadyRegistered)

	stored, err := suite.events.GetEvent(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal([]string{"21CS001"}, stored.Participants)
}

func (suite *ServiceTestSuite) TestBackfillParticipants() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestEvent("21CS001", []string{"CS"}, []int{2})

	missing, err := suite.store.InsertOne(suite.ctx, constants.CollectionEvents, bson.M{"name": "No field"})
	suite.Require().NoError(err)
	null, err := suite.store.InsertOne(suite.ctx, constants.CollectionEvents, bson.M{"name": "Null field", "participants": nil})
	suite.Require().NoError(err)

	updated, err := suite.events.BackfillParticipants(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(2, updated)

	for _, id := range []primitive.ObjectID{missing, null} {
		var doc bson.M
		suite.Require().NoError(suite.store.FindOne(suite.ctx, constants.CollectionEvents, bson.M{"_id": id}, &doc))
		suite.Equal(bson.A{}, doc["participants"])
	}

	updated, err = suite.events.BackfillParticipants(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(updated)
}
