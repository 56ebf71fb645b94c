package dto

import (
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/offer"
)

type ApplicationResponse struct {
	ID                 int64              `json:"id"`
	JobPostID          int64              `json:"job_post_id"`
	JobSeekerProfileID int64              `json:"job_seeker_profile_id"`
	CoverLetter        string             `json:"cover_letter"`
	Status             application.Status `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                 a.ID,
		JobPostID:          a.JobPostID,
		JobSeekerProfileID: a.JobSeekerProfileID,
		CoverLetter:        a.CoverLetter,
		Status:             a.Status,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func NewApplicationResponses(as []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

type OfferResponse struct {
	ID                  int64        `json:"id"`
	JobPostID           int64        `json:"job_post_id"`
	JobSeekerProfileID  int64        `json:"job_seeker_profile_id"`
	EmployerProfileID   int64        `json:"employer_profile_id"`
	BaseSalary          int          `json:"base_salary"`
	BenefitsDescription string       `json:"benefits_description"`
	Status              offer.Status `json:"status"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

func NewOfferResponse(o offer.Offer) OfferResponse {
	return OfferResponse{
		ID:                  o.ID,
		JobPostID:           o.JobPostID,
		JobSeekerProfileID:  o.JobSeekerProfileID,
		EmployerProfileID:   o.EmployerProfileID,
		BaseSalary:          o.BaseSalary,
		BenefitsDescription: o.BenefitsDescription,
		Status:              o.Status,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func NewOfferResponses(os []offer.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(os))
	for _, o := range os {
		out = append(out, NewOfferResponse(o))
	}
	return out
}
