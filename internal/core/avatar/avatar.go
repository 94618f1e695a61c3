// Package avatar builds Gravatar URLs for team and alumni members.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultEmail is used for members without a contact address.
	DefaultEmail = "fscs@fssh.khc.edu.tw"
	// DefaultSize is the requested edge length in pixels.
	DefaultSize = 200
)

var lower = cases.Lower(language.Und)

// Hash returns the Gravatar hash of email: md5 over the trimmed, lowercased
// address.
func Hash(email string) string {
	sum := md5.Sum([]byte(lower.String(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// URL returns the identicon-backed Gravatar URL for email. An empty email
// falls back to DefaultEmail and a non-positive size to DefaultSize.
func URL(email string, size int) string {
	if strings.TrimSpace(email) == "" {
		email = DefaultEmail
	}
	if size <= 0 {
		size = DefaultSize
	}
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=identicon", Hash(email), size)
}
