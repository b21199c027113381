package qrcode

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"

	"github.com/mcoot/qrhunt/internal/model"
)

// ErrEmptyContent is returned when there is nothing to derive a code from
var ErrEmptyContent = errors.New("qr code content is empty")

// zeroValue is the weight a run of '0' characters counts for
const zeroValue = 20

var (
	prefixes = []string{
		"Super", "Mega", "Ultra", "Hyper", "Giga", "Tiny", "Mini", "Grand",
		"Royal", "Turbo", "Quantum", "Cosmic", "Shadow", "Golden", "Silent", "Lucky",
	}
	adjectives = []string{
		"Amazing", "Brave", "Clever", "Dizzy", "Eager", "Fuzzy", "Gentle", "Happy",
		"Jolly", "Kind", "Lively", "Mighty", "Nimble", "Proud", "Quick", "Sleepy",
	}
	creatures = []string{
		"Ferret", "Bear", "Otter", "Falcon", "Badger", "Lynx", "Moose", "Heron",
		"Gecko", "Walrus", "Panda", "Raven", "Bison", "Koala", "Marmot", "Narwhal",
	}
)

// Service derives QRCode values from scanned content.
// Derivation is deterministic: the same content always yields the same code.
type Service struct{}

// New creates a new QR code Service
func New() *Service {
	return &Service{}
}

// FromContent hashes the content and derives a name and score from the hash
func (s *Service) FromContent(content string) (model.QRCode, error) {
	if content == "" {
		return model.QRCode{}, ErrEmptyContent
	}

	sum := sha256.Sum256([]byte(content))
	hash := hex.EncodeToString(sum[:])

	return model.NewQRCode(hash, nameFor(sum[:]), ScoreHash(hash)), nil
}

// ScoreHash scores a hex hash: every maximal run of one character of
// length n >= 2 adds v^(n-1), where v is the hex value and '0' counts as 20.
// The total saturates at math.MaxInt32.
func ScoreHash(hash string) int {
	total := 0
	for i := 0; i < len(hash); {
		j := i + 1
		for j < len(hash) && hash[j] == hash[i] {
			j++
		}
		if n := j - i; n >= 2 {
			if v, ok := hexValue(hash[i]); ok {
				total = saturatingAdd(total, power(v, n-1))
			}
		}
		i = j
	}
	return total
}

func nameFor(sum []byte) string {
	return prefixes[int(sum[0])%len(prefixes)] +
		adjectives[int(sum[1])%len(adjectives)] +
		creatures[int(sum[2])%len(creatures)]
}

func hexValue(c byte) (int, bool) {
	switch {
	case c == '0':
		return zeroValue, true
	case c >= '1' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func power(base, exp int) int {
	result := 1
	for range exp {
		if result > math.MaxInt32/base {
			return math.MaxInt32
		}
		result *= base
	}
	return result
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt32-b {
		return math.MaxInt32
	}
	return a + b
}
