package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organizer is copied from the creating user when the event is created and never re-resolved.
type Organizer struct {
	Name   string `bson:"name" json:"name"`
	RollNo string `bson:"rollno" json:"rollno"`
}

type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Date         string             `bson:"date" json:"date"`
	Time         string             `bson:"time" json:"time"`
	Venue        string             `bson:"venue" json:"venue"`
	Departments  []string           `bson:"departments" json:"departments"`
	Years        []int              `bson:"years" json:"years"`
	Organization string             `bson:"organization" json:"organization"`
	Organizer    Organizer          `bson:"organizer" json:"organizer"`
	Poster       string             `bson:"poster" json:"poster"`
	Participants []string           `bson:"participants" json:"participants"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// IsVisibleTo reports whether user belongs to one of the event's departments and one of its years.
func (e Event) IsVisibleTo(user *User) bool {
	return slices.Contains(e.Departments, user.Department) && slices.Contains(e.Years, user.Year)
}

// HasParticipant reports whether rollno is registered for the event.
func (e Event) HasParticipant(rollno string) bool {
	return slices.Contains(e.Participants, rollno)
}
