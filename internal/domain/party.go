package domain

import "time"

// PartyStatus is the lifecycle status of a registrant.
type PartyStatus string

const (
	PartyActive   PartyStatus = "ACTIVE"
	PartyInactive PartyStatus = "INACTIVE"
	PartyPending  PartyStatus = "PENDING"
)

// Party is a registrant (client or supplier) obligations may reference.
// Registration number and tax id are unique per tenant, not globally.
type Party struct {
	ID                 string
	TenantID           string
	RegistrationNumber int64
	Name               string
	TaxID              string
	Email              string
	Phone              string
	City               string
	State              string
	Status             PartyStatus
	AdmissionDate      time.Time
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
