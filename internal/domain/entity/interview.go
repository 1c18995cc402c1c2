package entity

import (
	"time"

	"jobtrack/internal/domain/access"
)

// RoundType is the kind of interview round.
type RoundType string

const (
	RoundPhoneScreening     RoundType = "Phone Screening"
	RoundTechnicalInterview RoundType = "Technical Interview"
	RoundHRInterview        RoundType = "HR Interview"
	RoundOnSite             RoundType = "On-site"
	RoundFinal              RoundType = "Final Round"
	RoundOfferDiscussion    RoundType = "Offer Discussion"
	RoundOther              RoundType = "Other"
)

// RoundTypes lists every valid round type.
var RoundTypes = []RoundType{
	RoundPhoneScreening,
	RoundTechnicalInterview,
	RoundHRInterview,
	RoundOnSite,
	RoundFinal,
	RoundOfferDiscussion,
	RoundOther,
}

// Valid reports whether the round type is one of the known values.
func (r RoundType) Valid() bool {
	for _, round := range RoundTypes {
		if r == round {
			return true
		}
	}

	return false
}

// InterviewRound is one scheduled interview for a position.
type InterviewRound struct {
	ID             string    `json:"_id"`
	UserID         string    `json:"userId"`
	Position       string    `json:"position"`
	CompanyName    string    `json:"companyName"`
	InterviewRound RoundType `json:"interviewRound"`
	RoundDetails   string    `json:"roundDetails"`
	ScheduledOn    time.Time `json:"scheduledOn"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type InterviewRoundPatch struct {
	Position       *string
	CompanyName    *string
	InterviewRound *RoundType
	RoundDetails   *string
	ScheduledOn    *time.Time
}

// InterviewRoundUpdatableFields lists the keys accepted by an interview round update.
var InterviewRoundUpdatableFields = access.NewAllowList(
	"position",
	"companyName",
	"interviewRound",
	"roundDetails",
	"scheduledOn",
)

// InterviewWindow selects rounds relative to a reference instant.
type InterviewWindow int

const (
	// WindowUpcoming matches rounds scheduled at or after the reference time.
	WindowUpcoming InterviewWindow = iota
	// WindowPast matches rounds scheduled before the reference time.
	WindowPast
)

// InterviewFilter narrows an owner's interview list.
type InterviewFilter struct {
	UserID string
	Window InterviewWindow
	Now    time.Time
}

// OwnerID returns the user that owns the interview round.
func (r InterviewRound) OwnerID() string { return r.UserID }
