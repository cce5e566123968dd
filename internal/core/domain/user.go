package domain

import "time"

// User roles as carried in the userType column and in JWT claims.
const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
)

// User is an account in the career-fair platform. Accounts are created by the
// external auth service; this service only reads them for resume enrichment.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	UserType  string    `json:"userType"`
	Name      *string   `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
