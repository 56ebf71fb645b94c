package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []string{"pending", "accepted", "rejected"}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`1`, 1},
		{`"2"`, 2},
		{`"accepted"`, 1},
		{`"Rejected"`, 2},
		{`"unknown"`, Invalid},
		{`null`, Invalid},
		{`9`, 9},
	}
	for _, tc := range cases {
		got, err := Parse([]byte(tc.in), names)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := Parse([]byte(`{}`), names)
	assert.Error(t, err)
}

func TestNameAndRange(t *testing.T) {
	assert.Equal(t, "accepted", Name(1, names))
	assert.Equal(t, "7", Name(7, names))
	assert.True(t, InRange(0, names))
	assert.False(t, InRange(3, names))
	assert.False(t, InRange(Invalid, names))
}
