package dto

import (
	"time"

	"job-board/internal/domain/employer"
	"job-board/internal/domain/seeker"
)

type EmployerProfileResponse struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	Location           string    `json:"location"`
	Industry           string    `json:"industry"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewEmployerProfileResponse(p employer.Profile) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		CompanyName:        p.CompanyName,
		CompanyDescription: p.CompanyDescription,
		Location:           p.Location,
		Industry:           p.Industry,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func NewEmployerProfileResponses(ps []employer.Profile) []EmployerProfileResponse {
	out := make([]EmployerProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewEmployerProfileResponse(p))
	}
	return out
}

type JobSeekerProfileResponse struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	Title              string    `json:"title"`
	Bio                string    `json:"bio"`
	YearsOfExperience  int       `json:"years_of_experience"`
	Skills             string    `json:"skills"`
	AvailabilityStatus string    `json:"availability_status"`
	PortfolioURL       string    `json:"portfolio_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewJobSeekerProfileResponse(p seeker.Profile) JobSeekerProfileResponse {
	return JobSeekerProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Title:              p.Title,
		Bio:                p.Bio,
		YearsOfExperience:  p.YearsOfExperience,
		Skills:             p.Skills,
		AvailabilityStatus: p.AvailabilityStatus,
		PortfolioURL:       p.PortfolioURL,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func NewJobSeekerProfileResponses(ps []seeker.Profile) []JobSeekerProfileResponse {
	out := make([]JobSeekerProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewJobSeekerProfileResponse(p))
	}
	return out
}
