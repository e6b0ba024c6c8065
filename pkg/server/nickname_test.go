package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNickname(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"bob_42", "bob_42"},
		{"a b<c>", "abc"},
		{"[red]x[-]", "redx-"},
		{strings.Repeat("n", 40), strings.Repeat("n", MaxNicknameLength)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Nickname(tt.in), "Nickname(%q)", tt.in)
	}
}

func TestNicknameFallback(t *testing.T) {
	for _, in := range []string{"", "   ", "<>"} {
		nick := Nickname(in)
		assert.Regexp(t, `^[a-z-]+$`, nick)
		assert.LessOrEqual(t, len(nick), MaxNicknameLength)
	}
}
