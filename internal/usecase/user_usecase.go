package usecase

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain/user"
	"job-board/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserInput is the create payload. Role defaults to job seeker.
type UserInput struct {
	Name     *string    `json:"name" validate:"required,notblank"`
	Email    *string    `json:"email" validate:"required,notblank,email"`
	Password *string    `json:"password" validate:"required,min=6"`
	Role     *user.Role `json:"role" validate:"omitempty,enum"`
}

// UserPatch is the partial update payload; nil fields are left unchanged.
type UserPatch struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email"`
	Password *string    `json:"password"`
	Role     *user.Role `json:"role"`
}

type userUpdate struct {
	Name     *string    `json:"name" validate:"required,notblank"`
	Email    *string    `json:"email" validate:"required,notblank,email"`
	Password *string    `json:"password" validate:"omitempty,min=6"`
	Role     *user.Role `json:"role" validate:"required,enum"`
}

type UserUsecase interface {
	List(ctx context.Context) ([]user.User, error)
	Get(ctx context.Context, id int64) (user.User, error)
	Create(ctx context.Context, in UserInput) (user.User, error)
	Update(ctx context.Context, id int64, in UserPatch) (user.User, error)
	Delete(ctx context.Context, id int64) error
}

type User struct {
	users user.Repository
	cost  int
}

func NewUserUsecase(users user.Repository) *User {
	return &User{users: users, cost: bcrypt.DefaultCost}
}

func (u *User) List(ctx context.Context) ([]user.User, error) {
	return u.users.List(ctx)
}

func (u *User) Get(ctx context.Context, id int64) (user.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *User) Create(ctx context.Context, in UserInput) (user.User, error) {
	if in.Email != nil {
		in.Email = ptrOf(normalizeEmail(*in.Email))
	}
	in.Role = orDefault(in.Role, user.RoleJobSeeker)

	errs := validation.Errors{}
	validation.Collect(in, errs)
	if len(errs["email"]) == 0 {
		exists, err := u.users.ExistsByEmail(ctx, *in.Email)
		if err != nil {
			return user.User{}, fmt.Errorf("check email: %w", err)
		}
		if exists {
			errs.Add("email", validation.MsgTaken)
		}
	}
	if err := errs.Err(); err != nil {
		return user.User{}, err
	}

	hash, err := u.hash(*in.Password)
	if err != nil {
		return user.User{}, err
	}

	created, err := u.users.Create(ctx, user.User{
		Name:         trimmed(in.Name),
		Email:        *in.Email,
		PasswordHash: hash,
		Role:         *in.Role,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, validation.Errors{"email": {validation.MsgTaken}}
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (u *User) Update(ctx context.Context, id int64, in UserPatch) (user.User, error) {
	cur, err := u.users.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	merged := userUpdate{
		Name:     orDefault(in.Name, cur.Name),
		Email:    orDefault(in.Email, cur.Email),
		Password: in.Password,
		Role:     orDefault(in.Role, cur.Role),
	}
	merged.Email = ptrOf(normalizeEmail(*merged.Email))
	if merged.Password != nil && *merged.Password == "" {
		merged.Password = nil
	}

	errs := validation.Errors{}
	validation.Collect(merged, errs)
	if len(errs["email"]) == 0 && *merged.Email != cur.Email {
		exists, err := u.users.ExistsByEmail(ctx, *merged.Email)
		if err != nil {
			return user.User{}, fmt.Errorf("check email: %w", err)
		}
		if exists {
			errs.Add("email", validation.MsgTaken)
		}
	}
	if err := errs.Err(); err != nil {
		return user.User{}, err
	}

	cur.Name = trimmed(merged.Name)
	cur.Email = *merged.Email
	cur.Role = *merged.Role
	if merged.Password != nil {
		hash, err := u.hash(*merged.Password)
		if err != nil {
			return user.User{}, err
		}
		cur.PasswordHash = hash
	}

	updated, err := u.users.Update(ctx, cur)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, validation.Errors{"email": {validation.MsgTaken}}
		}
		return user.User{}, err
	}
	return updated, nil
}

// Delete removes the user together with both profiles. Job posts,
// applications and offers are not cascaded and block the delete.
func (u *User) Delete(ctx context.Context, id int64) error {
	return u.users.DeleteWithProfiles(ctx, id)
}

func (u *User) hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), u.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}
