package handler

import (
	"math"
	"strings"
)

// validUsername reports whether a username fits in a single path segment
func validUsername(username string) bool {
	return username != "" && !strings.Contains(username, "/")
}

// validHash reports whether a hash is non-empty lowercase hex
func validHash(hash string) bool {
	if hash == "" {
		return false
	}
	for _, r := range hash {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// validScore reports whether a supplied code score is in the range derived scores use
func validScore(score int) bool {
	return score >= 0 && score <= math.MaxInt32
}
