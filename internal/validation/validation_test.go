package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

func (c color) Valid() bool { return c >= 0 && c < 2 }

type sample struct {
	Name     *string `json:"name" validate:"required,notblank"`
	Email    *string `json:"email" validate:"required,notblank,email"`
	Password *string `json:"password" validate:"required,min=6"`
	Count    *int    `json:"count" validate:"required,min=0"`
	Color    *color  `json:"color" validate:"required,enum"`
	Active   *bool   `json:"active" validate:"required"`
	Note     string  `json:"note"`
}

func ptr[T any](v T) *T { return &v }

func TestStruct_CollectsMessagesByJSONName(t *testing.T) {
	err := Struct(sample{
		Name:     ptr("   "),
		Email:    ptr("not-an-email"),
		Password: ptr("123"),
		Count:    ptr(-1),
		Color:    ptr(color(4)),
	})
	require.Error(t, err)

	verrs, ok := As(fmt.Errorf("create: %w", err))
	require.True(t, ok)

	assert.Equal(t, []string{MsgBlank}, verrs["name"])
	assert.Equal(t, []string{MsgInvalid}, verrs["email"])
	assert.Equal(t, []string{"is too short (minimum is 6 characters)"}, verrs["password"])
	assert.Equal(t, []string{MsgNonNegative}, verrs["count"])
	assert.Equal(t, []string{MsgNotInList}, verrs["color"])
	assert.Equal(t, []string{MsgBlank}, verrs["active"])
	assert.NotContains(t, verrs, "note")
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(sample{
		Name:     ptr("Tolesa"),
		Email:    ptr("tolesa@test.com"),
		Password: ptr("123456"),
		Count:    ptr(0),
		Color:    ptr(color(1)),
		Active:   ptr(false),
	})
	assert.NoError(t, err)
}

func TestErrors_AddDeduplicates(t *testing.T) {
	e := Errors{}
	e.Add("email", MsgTaken)
	e.Add("email", MsgTaken)
	assert.Len(t, e["email"], 1)
	assert.Contains(t, e.Error(), "email has already been taken")
	assert.Nil(t, Errors{}.Err())
}
