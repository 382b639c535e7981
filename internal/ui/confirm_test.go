package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDanger(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmDanger(strings.NewReader(tt.in), &out, "Remove secret?")
		assert.Equal(t, tt.want, got, "%q", tt.in)
		assert.Contains(t, out.String(), "Remove secret?")
	}
}
