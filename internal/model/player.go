package model

import (
	"encoding/json"
	"fmt"
)

// Player is a participant tracking identity, score and scanned QR codes.
//
// The scanned set is keyed by QR code hash and keeps insertion order.
// AddQRCodeScanned and RemoveQRCodeScanned never touch the score or the
// count; callers apply those in the same step (see services/hunt).
//
// A Player is not safe for concurrent mutation.
type Player struct {
	username     string
	phone        *string
	totalScore   int
	totalQRCodes int

	scanned []QRCode
	index   map[string]int // hash -> position in scanned
}

// NewPlayer creates a player with no phone, zero score and no scans
func NewPlayer(username string) *Player {
	return &Player{
		username: username,
		index:    make(map[string]int),
	}
}

// NewPlayerWithPhone creates a player with the given phone number
func NewPlayerWithPhone(username, phone string) *Player {
	p := NewPlayer(username)
	p.SetPhone(phone)
	return p
}

// Username returns the player's username
func (p *Player) Username() string {
	return p.username
}

// SetUsername overwrites the username
func (p *Player) SetUsername(username string) {
	p.username = username
}

// Phone returns the phone number and whether one has been set
func (p *Player) Phone() (string, bool) {
	if p.phone == nil {
		return "", false
	}
	return *p.phone, true
}

// SetPhone overwrites the phone number
func (p *Player) SetPhone(phone string) {
	p.phone = &phone
}

// TotalScore returns the player's total score
func (p *Player) TotalScore() int {
	return p.totalScore
}

// SetTotalScore overwrites the total score. Negative values are kept as-is.
func (p *Player) SetTotalScore(score int) {
	p.totalScore = score
}

// TotalQRCodes returns the scanned code count
func (p *Player) TotalQRCodes() int {
	return p.totalQRCodes
}

// SetTotalQRCodes sets the count, clamping negative values to zero
func (p *Player) SetTotalQRCodes(total int) {
	if total < 0 {
		total = 0
	}
	p.totalQRCodes = total
}

// IncrementTotalQRCodes adds one to the count
func (p *Player) IncrementTotalQRCodes() {
	p.totalQRCodes++
}

// DecrementTotalQRCodes subtracts one from the count, stopping at zero
func (p *Player) DecrementTotalQRCodes() {
	if p.totalQRCodes > 0 {
		p.totalQRCodes--
	}
}

// QRCodesScanned returns a copy of the scanned codes in the order they were added
func (p *Player) QRCodesScanned() []QRCode {
	result := make([]QRCode, len(p.scanned))
	copy(result, p.scanned)
	return result
}

// ScannedCount returns the number of codes in the scanned set
func (p *Player) ScannedCount() int {
	return len(p.scanned)
}

// HasQRCode reports whether a code with the given hash is in the scanned set
func (p *Player) HasQRCode(hash string) bool {
	_, ok := p.index[hash]
	return ok
}

// AddQRCodeScanned appends code to the scanned set.
// Returns ErrDuplicateEntry if a code with the same hash is already present.
func (p *Player) AddQRCodeScanned(code QRCode) error {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if _, ok := p.index[code.Hash]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, code.Hash)
	}
	p.index[code.Hash] = len(p.scanned)
	p.scanned = append(p.scanned, code)
	return nil
}

// RemoveQRCodeScanned removes the code with the same hash from the scanned set.
// Returns ErrQRCodeNotFound if no such code is present.
func (p *Player) RemoveQRCodeScanned(code QRCode) error {
	pos, ok := p.index[code.Hash]
	if !ok {
		return fmt.Errorf("%w: %s", ErrQRCodeNotFound, code.Hash)
	}

	p.scanned = append(p.scanned[:pos], p.scanned[pos+1:]...)
	delete(p.index, code.Hash)
	for i := pos; i < len(p.scanned); i++ {
		p.index[p.scanned[i].Hash] = i
	}
	return nil
}

// FindQRCode returns the scanned code with the given hash
func (p *Player) FindQRCode(hash string) (QRCode, bool) {
	pos, ok := p.index[hash]
	if !ok {
		return QRCode{}, false
	}
	return p.scanned[pos], true
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := NewPlayer(p.username)
	if p.phone != nil {
		c.SetPhone(*p.phone)
	}
	c.totalScore = p.totalScore
	c.totalQRCodes = p.totalQRCodes
	for _, code := range p.scanned {
		c.index[code.Hash] = len(c.scanned)
		c.scanned = append(c.scanned, code)
	}
	return c
}

// playerJSON is the stored form of a Player
type playerJSON struct {
	Username       string   `json:"username"`
	Phone          *string  `json:"phone,omitempty"`
	TotalScore     int      `json:"total_score"`
	TotalQRCodes   int      `json:"total_qr_codes"`
	QRCodesScanned []QRCode `json:"qr_codes_scanned"`
}

// MarshalJSON implements json.Marshaler
func (p *Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(playerJSON{
		Username:       p.username,
		Phone:          p.phone,
		TotalScore:     p.totalScore,
		TotalQRCodes:   p.totalQRCodes,
		QRCodesScanned: p.QRCodesScanned(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// The count is clamped and duplicate hashes are rejected, same as the setters.
func (p *Player) UnmarshalJSON(data []byte) error {
	var raw playerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded := NewPlayer(raw.Username)
	decoded.phone = raw.Phone
	decoded.SetTotalScore(raw.TotalScore)
	decoded.SetTotalQRCodes(raw.TotalQRCodes)
	for _, code := range raw.QRCodesScanned {
		if err := decoded.AddQRCodeScanned(code); err != nil {
			return err
		}
	}

	*p = *decoded
	return nil
}
