package usecase

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain/jobpost"
	"job-board/internal/domain/offer"
	"job-board/internal/domain/seeker"
	"job-board/internal/validation"
)

type OfferInput struct {
	JobSeekerProfileID  *int64        `json:"job_seeker_profile_id" validate:"required"`
	BaseSalary          *int          `json:"base_salary" validate:"required,gte=0"`
	BenefitsDescription *string       `json:"benefits_description"`
	Status              *offer.Status `json:"status" validate:"required,enum"`
}

type OfferUsecase interface {
	ListForJobPost(ctx context.Context, jobPostID int64) ([]offer.Offer, error)
	ListForSeeker(ctx context.Context, seekerProfileID int64) ([]offer.Offer, error)
	Get(ctx context.Context, id int64) (offer.Offer, error)
	Create(ctx context.Context, jobPostID int64, in OfferInput) (offer.Offer, error)
	Update(ctx context.Context, id int64, in OfferInput) (offer.Offer, error)
	Delete(ctx context.Context, id int64) error
}

type Offer struct {
	offers  offer.Repository
	posts   jobpost.Repository
	seekers seeker.Repository
	events  EventPublisher
}

func NewOfferUsecase(offers offer.Repository, posts jobpost.Repository, seekers seeker.Repository, events EventPublisher) *Offer {
	return &Offer{offers: offers, posts: posts, seekers: seekers, events: events}
}

func (u *Offer) ListForJobPost(ctx context.Context, jobPostID int64) ([]offer.Offer, error) {
	if _, err := u.posts.GetByID(ctx, jobPostID); err != nil {
		return nil, err
	}
	return u.offers.List(ctx, offer.Filter{JobPostID: jobPostID})
}

func (u *Offer) ListForSeeker(ctx context.Context, seekerProfileID int64) ([]offer.Offer, error) {
	if _, err := u.seekers.GetByID(ctx, seekerProfileID); err != nil {
		return nil, err
	}
	return u.offers.List(ctx, offer.Filter{JobSeekerProfileID: seekerProfileID})
}

func (u *Offer) Get(ctx context.Context, id int64) (offer.Offer, error) {
	return u.offers.GetByID(ctx, id)
}

// Create always takes the employer profile from the job post.
func (u *Offer) Create(ctx context.Context, jobPostID int64, in OfferInput) (offer.Offer, error) {
	post, err := u.posts.GetByID(ctx, jobPostID)
	if err != nil {
		return offer.Offer{}, err
	}
	in.Status = orDefault(in.Status, offer.StatusPending)

	o, err := u.build(ctx, offer.Offer{JobPostID: post.ID, EmployerProfileID: post.EmployerProfileID}, in)
	if err != nil {
		return offer.Offer{}, err
	}

	created, err := u.offers.Create(ctx, o)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("create offer: %w", err)
	}
	publish(u.events, EventOfferCreated, created.ID)
	return created, nil
}

func (u *Offer) Update(ctx context.Context, id int64, in OfferInput) (offer.Offer, error) {
	cur, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return offer.Offer{}, err
	}

	merged := OfferInput{
		JobSeekerProfileID:  orDefault(in.JobSeekerProfileID, cur.JobSeekerProfileID),
		BaseSalary:          orDefault(in.BaseSalary, cur.BaseSalary),
		BenefitsDescription: orDefault(in.BenefitsDescription, cur.BenefitsDescription),
		Status:              orDefault(in.Status, cur.Status),
	}
	o, err := u.build(ctx, cur, merged)
	if err != nil {
		return offer.Offer{}, err
	}

	updated, err := u.offers.Update(ctx, o)
	if err != nil {
		return offer.Offer{}, err
	}
	publish(u.events, EventOfferUpdated, updated.ID)
	return updated, nil
}

func (u *Offer) Delete(ctx context.Context, id int64) error {
	return u.offers.Delete(ctx, id)
}

func (u *Offer) build(ctx context.Context, base offer.Offer, in OfferInput) (offer.Offer, error) {
	errs := validation.Errors{}
	validation.Collect(in, errs)
	if in.JobSeekerProfileID != nil {
		if _, err := u.seekers.GetByID(ctx, *in.JobSeekerProfileID); err != nil {
			if !errors.Is(err, seeker.ErrNotFound) {
				return offer.Offer{}, fmt.Errorf("lookup job seeker profile: %w", err)
			}
			errs.Add("job_seeker_profile", validation.MsgMustExist)
		}
	}
	if err := errs.Err(); err != nil {
		return offer.Offer{}, err
	}

	base.JobSeekerProfileID = *in.JobSeekerProfileID
	base.BaseSalary = *in.BaseSalary
	base.BenefitsDescription = trimmed(in.BenefitsDescription)
	base.Status = *in.Status
	return base, nil
}
