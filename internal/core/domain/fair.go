package domain

import (
	"errors"
	"time"
)

// FairStatus is the lifecycle tag of a career fair. It is set when the fair is
// created or edited and is not advanced by the clock.
type FairStatus string

const (
	FairUpcoming FairStatus = "upcoming"
	FairOngoing  FairStatus = "ongoing"
	FairPast     FairStatus = "past"
)

var ErrJobNotFound = errors.New("job opportunity not found")
var ErrAlreadyRegistered = errors.New("already registered for this career fair")

// CareerFair is a scheduled event that booths and job postings attach to.
type CareerFair struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Status      FairStatus `json:"status"`
	CreatedBy   *int64     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CompanyBooth binds a company to a career fair; one of the two valid resume
// targets.
type CompanyBooth struct {
	ID           int64   `json:"id"`
	CareerFairID int64   `json:"careerFairId"`
	CompanyID    int64   `json:"companyId"`
	BoothNumber  *string `json:"boothNumber"`
	Description  *string `json:"description"`
	IsActive     bool    `json:"isActive"`
}

// JobOpportunity is a postable position; the other valid resume target.
// CompanyID and CareerFairID are optional; seeded postings have neither.
type JobOpportunity struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SalaryMin      *int64    `json:"salaryMin"`
	SalaryMax      *int64    `json:"salaryMax"`
	SalaryCurrency string    `json:"salaryCurrency"`
	CompanyID      *int64    `json:"companyId"`
	CareerFairID   *int64    `json:"careerFairId"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Registration records a job seeker signing up for a career fair.
type Registration struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	CareerFairID int64     `json:"careerFairId"`
	RegisteredAt time.Time `json:"registeredAt"`
}
