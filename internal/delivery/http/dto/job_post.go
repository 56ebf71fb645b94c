package dto

import (
	"time"

	"job-board/internal/domain/jobpost"
)

type JobPostResponse struct {
	ID                  int64           `json:"id"`
	EmployerProfileID   int64           `json:"employer_profile_id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	RequiredSkills      string          `json:"required_skills"`
	SalaryMin           int             `json:"salary_min"`
	SalaryMax           int             `json:"salary_max"`
	JobType             jobpost.JobType `json:"job_type"`
	Location            string          `json:"location"`
	ApplicationDeadline string          `json:"application_deadline"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func NewJobPostResponse(p jobpost.Post) JobPostResponse {
	return JobPostResponse{
		ID:                  p.ID,
		EmployerProfileID:   p.EmployerProfileID,
		Title:               p.Title,
		Description:         p.Description,
		RequiredSkills:      p.RequiredSkills,
		SalaryMin:           p.SalaryMin,
		SalaryMax:           p.SalaryMax,
		JobType:             p.JobType,
		Location:            p.Location,
		ApplicationDeadline: p.ApplicationDeadline.Format(jobpost.DateLayout),
		IsActive:            p.IsActive,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func NewJobPostResponses(ps []jobpost.Post) []JobPostResponse {
	out := make([]JobPostResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewJobPostResponse(p))
	}
	return out
}
