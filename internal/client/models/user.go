package models

import (
	"fmt"
	"strings"
)

// VerificationStatus is the backend-assigned review state. The exact
// spellings are a backend contract; the predicates accept every variant
// the backend has been seen to emit.
type VerificationStatus string

func (s VerificationStatus) norm() string {
	return strings.ToLower(strings.TrimSpace(string(s)))
}

func (s VerificationStatus) IsValidated() bool {
	switch s.norm() {
	case "validé", "valide", "validated", "approved":
		return true
	}
	return false
}

func (s VerificationStatus) IsPending() bool {
	switch s.norm() {
	case "en attente", "pending":
		return true
	}
	return false
}

func (s VerificationStatus) IsRejected() bool {
	switch s.norm() {
	case "rejected", "rejeté", "refusé":
		return true
	}
	return false
}

// Availability of a collector as stored on the user record.
type Availability string

const (
	Available   Availability = "available"
	Unavailable Availability = "unavailable"
)

// User mirrors GET /auth/users/me/.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Type     Role   `json:"type"`
	Location string `json:"location,omitempty"`
	Points   int64  `json:"points"`
	IsActive bool   `json:"is_active"`

	PhoneVerified      Flag               `json:"phone_verified"`
	DocumentsUploaded  Flag               `json:"documents_uploaded"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	RejectedReason     string             `json:"rejected_reason,omitempty"`

	ProVerificationSubmitted Flag               `json:"pro_verification_submitted"`
	ProVerificationStatus    VerificationStatus `json:"pro_verification_status"`

	LocationGPS  string       `json:"location_gps,omitempty"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	Availability Availability `json:"availability,omitempty"`
}

// IsVerified reports whether the account has completed every verification
// step its role requires.
func (u *User) IsVerified() bool {
	if u == nil || !bool(u.PhoneVerified) {
		return false
	}

	switch u.Type {
	case RoleIndividual:
		return bool(u.DocumentsUploaded)
	case RoleCollector, RoleRecycler:
		return u.VerificationStatus.IsValidated()
	case RoleBusiness, RoleAdmin:
		return true
	}
	return false
}

// IsAvailable reports a collector's availability flag.
func (u *User) IsAvailable() bool {
	return u != nil && u.Availability == Available
}

func (u *User) String() string {
	if u == nil {
		return "<anonymous>"
	}
	return fmt.Sprintf("%s <%s> (%s, %d pts)", u.Username, u.Email, u.Type.Label(), u.Points)
}
