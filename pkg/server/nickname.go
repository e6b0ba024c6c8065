package server

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNicknameLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips characters that are unsafe to show in the interface and
// falls back to a random pet name when nothing is left.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if nick == "" {
		nick = petname.Generate(2, "-")
	}
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	}

	return nick
}
