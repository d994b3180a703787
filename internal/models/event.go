package models

type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"
	StatusRejected EventStatus = "rejected"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Location struct {
	Name    string  `json:"name" yaml:"name"`
	Address string  `json:"address" yaml:"address"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
}

// Event mirrors a row of the events table. Date and EndDate are ISO YYYY-MM-DD strings,
// so lexical comparison is chronological.
type Event struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Category    string      `json:"category" yaml:"category"`
	Date        string      `json:"date" yaml:"date"`
	EndDate     string      `json:"endDate,omitempty" yaml:"end_date"`
	Location    Location    `json:"location" yaml:"location"`
	Link        string      `json:"link" yaml:"link"`
	ImageURL    string      `json:"imageUrl,omitempty" yaml:"image_url"`
	Organizer   string      `json:"organizer" yaml:"organizer"`
	Status      EventStatus `json:"status" yaml:"status"`
	CreatedAt   string      `json:"created_at" yaml:"created_at"`
}

// EventInput is everything a submitter provides. ID, Status and CreatedAt are stamped on creation.
type EventInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	EndDate     string   `json:"endDate,omitempty"`
	Location    Location `json:"location"`
	Link        string   `json:"link"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Organizer   string   `json:"organizer"`
}

func (in EventInput) ToEvent(id string, status EventStatus, createdAt string) Event {
	return Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Date:        in.Date,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Link:        in.Link,
		ImageURL:    in.ImageURL,
		Organizer:   in.Organizer,
		Status:      status,
		CreatedAt:   createdAt,
	}
}
