package response

import (
	"time"

	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/services/leaderboard"
)

// QRCode represents a QR code in API responses
type QRCode struct {
	Hash  string `json:"hash"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// QRCodeFromModel converts a model.QRCode
func QRCodeFromModel(q model.QRCode) QRCode {
	return QRCode{
		Hash:  q.Hash,
		Name:  q.Name,
		Score: q.Score,
	}
}

// QRCodeList is the response for listing the catalog
type QRCodeList struct {
	QRCodes []QRCode `json:"qr_codes"`
}

// QRCodeListFromModel converts a slice of catalog codes
func QRCodeListFromModel(codes []model.QRCode) QRCodeList {
	list := make([]QRCode, len(codes))
	for i, q := range codes {
		list[i] = QRCodeFromModel(q)
	}
	return QRCodeList{QRCodes: list}
}

// Player represents a player in API responses
type Player struct {
	Username       string   `json:"username"`
	Phone          *string  `json:"phone,omitempty"`
	TotalScore     int      `json:"total_score"`
	TotalQRCodes   int      `json:"total_qr_codes"`
	QRCodesScanned []QRCode `json:"qr_codes_scanned"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	scanned := p.QRCodesScanned()
	codes := make([]QRCode, len(scanned))
	for i, q := range scanned {
		codes[i] = QRCodeFromModel(q)
	}

	var phone *string
	if ph, ok := p.Phone(); ok {
		phone = &ph
	}

	return Player{
		Username:       p.Username(),
		Phone:          phone,
		TotalScore:     p.TotalScore(),
		TotalQRCodes:   p.TotalQRCodes(),
		QRCodesScanned: codes,
	}
}

// PlayerList is the response for listing players
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModel converts a slice of players
func PlayerListFromModel(players []*model.Player) PlayerList {
	list := make([]Player, len(players))
	for i, p := range players {
		list[i] = PlayerFromModel(p)
	}
	return PlayerList{Players: list}
}

// LeaderboardEntry is one ranked row
type LeaderboardEntry struct {
	Position     int    `json:"position"`
	Username     string `json:"username"`
	TotalScore   int    `json:"total_score"`
	TotalQRCodes int    `json:"total_qr_codes"`
}

// Leaderboard represents the current standings
type Leaderboard struct {
	Entries     []LeaderboardEntry `json:"entries"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// LeaderboardFromStandings converts leaderboard.Standings
func LeaderboardFromStandings(s *leaderboard.Standings) Leaderboard {
	entries := make([]LeaderboardEntry, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = LeaderboardEntry{
			Position:     e.Position,
			Username:     e.Username,
			TotalScore:   e.TotalScore,
			TotalQRCodes: e.TotalQRCodes,
		}
	}
	return Leaderboard{
		Entries:     entries,
		GeneratedAt: s.GeneratedAt,
	}
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
