package utils

import (
	"crypto/md5"
	"fmt"
	rndm "math/rand"
	"regexp"
	"strings"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Hashing ---

func EncrypIt(strToHash string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(strToHash)))
}

// --- Slugs ---

var wsRe = regexp.MustCompile(`\s+`)

// Slugify lowercases a display name and collapses whitespace runs to hyphens.
// Farm ids on orders are derived this way from the farm display name.
func Slugify(name string) string {
	return wsRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
