// Package enum holds the JSON codec shared by the integer-backed enumerations
// (role, job type, application status). The wire format is the integer; the
// symbolic name is accepted on input.
package enum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Invalid is what an unknown name decodes to, so validation can report it
// instead of the JSON decoder.
const Invalid = -1

func Parse(b []byte, names []string) (int, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return Invalid, nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return Invalid, err
		}
		s = strings.TrimSpace(s)
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		return Index(s, names), nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return Invalid, fmt.Errorf("enum: %w", err)
	}
	return n, nil
}

func Index(name string, names []string) int {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return Invalid
}

func Name(v int, names []string) string {
	if v < 0 || v >= len(names) {
		return strconv.Itoa(v)
	}
	return names[v]
}

func InRange(v int, names []string) bool {
	return v >= 0 && v < len(names)
}
