package models

import "time"

// Submission is one contact-form request. It lives only for the duration
// of the request and is never written anywhere.
type Submission struct {
	Name    string `json:"name" validate:"max=200"`
	Phone   string `json:"phone" validate:"max=100"`
	Email   string `json:"email" validate:"max=320"`
	Address string `json:"address" validate:"max=500"`
	Problem string `json:"problem" validate:"max=10000"`
	Urgent  bool   `json:"urgent"`
}

// HasEmail reports whether the customer left an address for the acknowledgment.
func (s Submission) HasEmail() bool {
	return s.Email != ""
}

type Sink string

const (
	SinkOperatorEmail Sink = "operator-email"
	SinkChat          Sink = "chat"
	SinkCustomerEmail Sink = "customer-email"
)

type DispatchStatus string

const (
	StatusDelivered DispatchStatus = "delivered"
	StatusFailed    DispatchStatus = "failed"
	StatusSkipped   DispatchStatus = "skipped"
)

type DispatchOutcome struct {
	RequestID string         `json:"request_id"`
	Sink      Sink           `json:"sink"`
	Status    DispatchStatus `json:"status"`
	Urgent    bool           `json:"urgent"`
	// Error is a fixed class such as "network" or "rejected", never raw error text.
	Error     string         `json:"error,omitempty"`
	At        time.Time      `json:"at"`
}

type ReviewEntry struct {
	AuthorName      string `json:"author_name"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	RelativeTime    string `json:"relative_time"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

type ReviewSummary struct {
	Rating       float64       `json:"rating"`
	TotalRatings int           `json:"total_ratings"`
	Reviews      []ReviewEntry `json:"reviews"`
}
