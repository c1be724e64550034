package domain

import (
	"strings"
	"time"
)

// ApprovalStatus is the account review state of a registered user.
type ApprovalStatus string

// Approval statuses reported by the API.
const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// ApprovalAction is the admin decision sent to the API.
type ApprovalAction string

// Admin actions.
const (
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
)

// PastTense returns "approved" or "rejected".
func (a ApprovalAction) PastTense() string {
	if a == ActionApprove {
		return "approved"
	}
	return "rejected"
}

// PendingUser is a registered account awaiting admin review.
type PendingUser struct {
	ID             string         `json:"id"`
	Username       string         `json:"username"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	RegisteredAt   time.Time      `json:"date_joined"`
	LastLogin      *time.Time     `json:"last_login,omitempty"`
}

// DisplayName is "First Last" when both are set, otherwise the username.
func (u PendingUser) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

// Initial is the upper-cased first letter of the first name or username.
func (u PendingUser) Initial() string {
	src := u.FirstName
	if src == "" {
		src = u.Username
	}
	if src == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(src)[0]))
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the sign-up payload. New accounts start Pending.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
