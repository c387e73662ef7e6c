package model

import "time"

// Action is the decision a swipe resolves to.
type Action string

const (
	ActionPass  Action = "pass"
	ActionApply Action = "apply"
	ActionSave  Action = "save"
)

// SwipeRecord is one committed swipe decision. Records are owned by the
// history log: created on commit, removed only by undo or refresh.
type SwipeRecord struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Status tracks where an application stands.
type Status string

const (
	StatusPending   Status = "pending"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
	StatusAccepted  Status = "accepted"
)

// Application is a persisted job application. Title and company are copied
// from the posting at creation time, not live-linked to the catalog.
type Application struct {
	ID            string     `json:"id"`
	JobID         string     `json:"jobId"`
	JobTitle      string     `json:"jobTitle"`
	CompanyName   string     `json:"companyName"`
	Status        Status     `json:"status"`
	AppliedAt     time.Time  `json:"appliedAt"`
	Notes         string     `json:"notes,omitempty"`
	InterviewDate *time.Time `json:"interviewDate,omitempty"`
}
