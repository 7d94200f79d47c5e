package domain

import (
	"strings"
	"time"
)

// LeadStatus represents where a lead sits in the sales pipeline.
type LeadStatus string

const (
	StatusNew          LeadStatus = "New"
	StatusContacted    LeadStatus = "Contacted"
	StatusQualified    LeadStatus = "Qualified"
	StatusProposalSent LeadStatus = "Proposal Sent"
	StatusClosed       LeadStatus = "Closed"
)

var leadStatuses = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusProposalSent,
	StatusClosed,
}

// Valid reports whether s is one of the known pipeline statuses.
func (s LeadStatus) Valid() bool {
	for _, known := range leadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// StatusValues returns the accepted statuses joined by commas, in pipeline order.
func StatusValues() string {
	vals := make([]string, len(leadStatuses))
	for i, s := range leadStatuses {
		vals[i] = string(s)
	}
	return strings.Join(vals, ",")
}

// LeadSource is the channel a lead came in through.
type LeadSource string

const (
	SourceWebsite       LeadSource = "Website"
	SourceReferral      LeadSource = "Referral"
	SourceColdCall      LeadSource = "Cold Call"
	SourceAdvertisement LeadSource = "Advertisement"
	SourceEmail         LeadSource = "Email"
	SourceOther         LeadSource = "Other"
)

var leadSources = []LeadSource{
	SourceWebsite,
	SourceReferral,
	SourceColdCall,
	SourceAdvertisement,
	SourceEmail,
	SourceOther,
}

// Valid reports whether s is one of the known lead sources.
func (s LeadSource) Valid() bool {
	for _, known := range leadSources {
		if s == known {
			return true
		}
	}
	return false
}

// SourceValues returns the accepted sources joined by commas.
func SourceValues() string {
	vals := make([]string, len(leadSources))
	for i, s := range leadSources {
		vals[i] = string(s)
	}
	return strings.Join(vals, ",")
}

// Lead is a sales prospect assigned to a single agent.
type Lead struct {
	ID           string
	Name         string
	Source       LeadSource
	SalesAgentID string
	Status       LeadStatus
	Tags         []string
	TimeToClose  int
	Priority     string
	// ClosedAt is maintained by the persistence layer on the transition to Closed.
	ClosedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the lead has left the pipeline.
func (l *Lead) IsClosed() bool {
	return l.Status == StatusClosed
}
