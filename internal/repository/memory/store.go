// Package memory is an in-process implementation of the domain repositories.
// It enforces the same unique and foreign key rules as the Postgres schema
// and backs the use case and HTTP tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/employer"
	"job-board/internal/domain/jobpost"
	"job-board/internal/domain/offer"
	"job-board/internal/domain/seeker"
	"job-board/internal/domain/user"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	now    func() time.Time

	users        map[int64]user.User
	employers    map[int64]employer.Profile
	seekers      map[int64]seeker.Profile
	posts        map[int64]jobpost.Post
	applications map[int64]application.Application
	offers       map[int64]offer.Offer
}

func NewStore() *Store {
	return &Store{
		now:          func() time.Time { return time.Now().UTC() },
		users:        map[int64]user.User{},
		employers:    map[int64]employer.Profile{},
		seekers:      map[int64]seeker.Profile{},
		posts:        map[int64]jobpost.Post{},
		applications: map[int64]application.Application{},
		offers:       map[int64]offer.Offer{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }
func (s *Store) Employers() *EmployerProfileRepository { return &EmployerProfileRepository{s: s} }
func (s *Store) Seekers() *JobSeekerProfileRepository { return &JobSeekerProfileRepository{s: s} }
func (s *Store) JobPosts() *JobPostRepository { return &JobPostRepository{s: s} }
func (s *Store) Applications() *ApplicationRepository { return &ApplicationRepository{s: s} }
func (s *Store) Offers() *OfferRepository { return &OfferRepository{s: s} }

func (s *Store) employerHasDependents(id int64) bool {
	for _, p := range s.posts {
		if p.EmployerProfileID == id {
			return true
		}
	}
	for _, o := range s.offers {
		if o.EmployerProfileID == id {
			return true
		}
	}
	return false
}

func (s *Store) seekerHasDependents(id int64) bool {
	for _, a := range s.applications {
		if a.JobSeekerProfileID == id {
			return true
		}
	}
	for _, o := range s.offers {
		if o.JobSeekerProfileID == id {
			return true
		}
	}
	return false
}

func (s *Store) postHasDependents(id int64) bool {
	for _, a := range s.applications {
		if a.JobPostID == id {
			return true
		}
	}
	for _, o := range s.offers {
		if o.JobPostID == id {
			return true
		}
	}
	return false
}

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if x.Email == u.Email {
			return user.User{}, user.ErrEmailTaken
		}
	}
	u.ID = r.s.id()
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) Update(_ context.Context, u user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[u.ID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	for _, x := range r.s.users {
		if x.ID != u.ID && x.Email == u.Email {
			return user.User{}, user.ErrEmailTaken
		}
	}
	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = r.s.now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]user.User, 0, len(r.s.users))
	for _, id := range sortedIDs(r.s.users) {
		out = append(out, r.s.users[id])
	}
	return out, nil
}

// DeleteWithProfiles mirrors the Postgres transaction: nothing changes unless
// every step succeeds.
func (r *UserRepository) DeleteWithProfiles(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return user.ErrNotFound
	}

	var seekerIDs, employerIDs []int64
	for pid, p := range r.s.seekers {
		if p.UserID == id {
			if r.s.seekerHasDependents(pid) {
				return user.ErrHasDependents
			}
			seekerIDs = append(seekerIDs, pid)
		}
	}
	for pid, p := range r.s.employers {
		if p.UserID == id {
			if r.s.employerHasDependents(pid) {
				return user.ErrHasDependents
			}
			employerIDs = append(employerIDs, pid)
		}
	}

	for _, pid := range seekerIDs {
		delete(r.s.seekers, pid)
	}
	for _, pid := range employerIDs {
		delete(r.s.employers, pid)
	}
	delete(r.s.users, id)
	return nil
}

type EmployerProfileRepository struct{ s *Store }

func (r *EmployerProfileRepository) Create(_ context.Context, p employer.Profile) (employer.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.employers {
		if x.UserID == p.UserID {
			return employer.Profile{}, employer.ErrAlreadyExists
		}
	}
	p.ID = r.s.id()
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.employers[p.ID] = p
	return p, nil
}

func (r *EmployerProfileRepository) Update(_ context.Context, p employer.Profile) (employer.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.employers[p.ID]
	if !ok {
		return employer.Profile{}, employer.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = r.s.now()
	r.s.employers[p.ID] = p
	return p, nil
}

func (r *EmployerProfileRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employers[id]; !ok {
		return employer.ErrNotFound
	}
	if r.s.employerHasDependents(id) {
		return employer.ErrHasDependents
	}
	delete(r.s.employers, id)
	return nil
}

func (r *EmployerProfileRepository) GetByID(_ context.Context, id int64) (employer.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.employers[id]
	if !ok {
		return employer.Profile{}, employer.ErrNotFound
	}
	return p, nil
}

func (r *EmployerProfileRepository) GetByUserID(_ context.Context, userID int64) (employer.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.employers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return employer.Profile{}, employer.ErrNotFound
}

func (r *EmployerProfileRepository) List(_ context.Context) ([]employer.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]employer.Profile, 0, len(r.s.employers))
	for _, id := range sortedIDs(r.s.employers) {
		out = append(out, r.s.employers[id])
	}
	return out, nil
}

type JobSeekerProfileRepository struct{ s *Store }

func (r *JobSeekerProfileRepository) Create(_ context.Context, p seeker.Profile) (seeker.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.seekers {
		if x.UserID == p.UserID {
			return seeker.Profile{}, seeker.ErrAlreadyExists
		}
	}
	p.ID = r.s.id()
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.seekers[p.ID] = p
	return p, nil
}

func (r *JobSeekerProfileRepository) Update(_ context.Context, p seeker.Profile) (seeker.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.seekers[p.ID]
	if !ok {
		return seeker.Profile{}, seeker.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = r.s.now()
	r.s.seekers[p.ID] = p
	return p, nil
}

func (r *JobSeekerProfileRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.seekers[id]; !ok {
		return seeker.ErrNotFound
	}
	if r.s.seekerHasDependents(id) {
		return seeker.ErrHasDependents
	}
	delete(r.s.seekers, id)
	return nil
}

func (r *JobSeekerProfileRepository) GetByID(_ context.Context, id int64) (seeker.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.seekers[id]
	if !ok {
		return seeker.Profile{}, seeker.ErrNotFound
	}
	return p, nil
}

func (r *JobSeekerProfileRepository) GetByUserID(_ context.Context, userID int64) (seeker.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.seekers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return seeker.Profile{}, seeker.ErrNotFound
}

func (r *JobSeekerProfileRepository) List(_ context.Context) ([]seeker.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]seeker.Profile, 0, len(r.s.seekers))
	for _, id := range sortedIDs(r.s.seekers) {
		out = append(out, r.s.seekers[id])
	}
	return out, nil
}

type JobPostRepository struct{ s *Store }

func (r *JobPostRepository) Create(_ context.Context, p jobpost.Post) (jobpost.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.posts[p.ID] = p
	return p, nil
}

func (r *JobPostRepository) Update(_ context.Context, p jobpost.Post) (jobpost.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.posts[p.ID]
	if !ok {
		return jobpost.Post{}, jobpost.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = r.s.now()
	r.s.posts[p.ID] = p
	return p, nil
}

func (r *JobPostRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return jobpost.ErrNotFound
	}
	if r.s.postHasDependents(id) {
		return jobpost.ErrHasDependents
	}
	delete(r.s.posts, id)
	return nil
}

func (r *JobPostRepository) GetByID(_ context.Context, id int64) (jobpost.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return jobpost.Post{}, jobpost.ErrNotFound
	}
	return p, nil
}

// List returns newest first, like the Postgres repository.
func (r *JobPostRepository) List(_ context.Context, f jobpost.Filter) ([]jobpost.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := sortedIDs(r.s.posts)
	out := make([]jobpost.Post, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		p := r.s.posts[ids[i]]
		if f.EmployerProfileID != 0 && p.EmployerProfileID != f.EmployerProfileID {
			continue
		}
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type ApplicationRepository struct{ s *Store }

func (r *ApplicationRepository) Create(_ context.Context, a application.Application) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.id()
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	r.s.applications[a.ID] = a
	return a, nil
}

func (r *ApplicationRepository) Update(_ context.Context, a application.Application) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.applications[a.ID]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.CreatedAt = cur.CreatedAt
	a.UpdatedAt = r.s.now()
	r.s.applications[a.ID] = a
	return a, nil
}

func (r *ApplicationRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.applications[id]; !ok {
		return application.ErrNotFound
	}
	delete(r.s.applications, id)
	return nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id int64) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *ApplicationRepository) List(_ context.Context, f application.Filter) ([]application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]application.Application, 0)
	for _, id := range sortedIDs(r.s.applications) {
		a := r.s.applications[id]
		if f.JobPostID != 0 && a.JobPostID != f.JobPostID {
			continue
		}
		if f.JobSeekerProfileID != 0 && a.JobSeekerProfileID != f.JobSeekerProfileID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type OfferRepository struct{ s *Store }

func (r *OfferRepository) Create(_ context.Context, o offer.Offer) (offer.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = r.s.id()
	o.CreatedAt = r.s.now()
	o.UpdatedAt = o.CreatedAt
	r.s.offers[o.ID] = o
	return o, nil
}

func (r *OfferRepository) Update(_ context.Context, o offer.Offer) (offer.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.offers[o.ID]
	if !ok {
		return offer.Offer{}, offer.ErrNotFound
	}
	o.CreatedAt = cur.CreatedAt
	o.UpdatedAt = r.s.now()
	r.s.offers[o.ID] = o
	return o, nil
}

func (r *OfferRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.offers[id]; !ok {
		return offer.ErrNotFound
	}
	delete(r.s.offers, id)
	return nil
}

func (r *OfferRepository) GetByID(_ context.Context, id int64) (offer.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.offers[id]
	if !ok {
		return offer.Offer{}, offer.ErrNotFound
	}
	return o, nil
}

func (r *OfferRepository) List(_ context.Context, f offer.Filter) ([]offer.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]offer.Offer, 0)
	for _, id := range sortedIDs(r.s.offers) {
		o := r.s.offers[id]
		if f.JobPostID != 0 && o.JobPostID != f.JobPostID {
			continue
		}
		if f.JobSeekerProfileID != 0 && o.JobSeekerProfileID != f.JobSeekerProfileID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

var (
	_ user.Repository        = (*UserRepository)(nil)
	_ employer.Repository    = (*EmployerProfileRepository)(nil)
	_ seeker.Repository      = (*JobSeekerProfileRepository)(nil)
	_ jobpost.Repository     = (*JobPostRepository)(nil)
	_ application.Repository = (*ApplicationRepository)(nil)
	_ offer.Repository       = (*OfferRepository)(nil)
)
