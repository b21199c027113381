package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case QRCode:
		o.printQRCode(v)
	case QRCodeList:
		o.printQRCodeList(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// QRCode response type (matches API)
type QRCode struct {
	Hash  string `json:"hash"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// QRCodeList response type
type QRCodeList struct {
	QRCodes []QRCode `json:"qr_codes"`
}

// Player response type
type Player struct {
	Username       string   `json:"username"`
	Phone          *string  `json:"phone,omitempty"`
	TotalScore     int      `json:"total_score"`
	TotalQRCodes   int      `json:"total_qr_codes"`
	QRCodesScanned []QRCode `json:"qr_codes_scanned"`
}

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Position     int    `json:"position"`
	Username     string `json:"username"`
	TotalScore   int    `json:"total_score"`
	TotalQRCodes int    `json:"total_qr_codes"`
}

// Leaderboard response type
type Leaderboard struct {
	Entries     []LeaderboardEntry `json:"entries"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s\n", p.Username)
	if p.Phone != nil {
		fmt.Fprintf(o.w, "Phone: %s\n", *p.Phone)
	}
	fmt.Fprintf(o.w, "Score: %d\n", p.TotalScore)
	fmt.Fprintf(o.w, "QR codes (%d):\n", p.TotalQRCodes)
	for _, q := range p.QRCodesScanned {
		fmt.Fprintf(o.w, "  - %s (%d pts) %s\n", q.Name, q.Score, shortHash(q.Hash))
	}
}

func (o *Output) printPlayerList(l PlayerList) {
	if len(l.Players) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}
	for _, p := range l.Players {
		fmt.Fprintf(o.w, "%s\t%d pts\t%d codes\n", p.Username, p.TotalScore, p.TotalQRCodes)
	}
}

func (o *Output) printQRCode(q QRCode) {
	fmt.Fprintf(o.w, "QR code: %s\n", q.Name)
	fmt.Fprintf(o.w, "Hash: %s\n", q.Hash)
	fmt.Fprintf(o.w, "Score: %d\n", q.Score)
}

func (o *Output) printQRCodeList(l QRCodeList) {
	if len(l.QRCodes) == 0 {
		fmt.Fprintln(o.w, "No QR codes")
		return
	}
	for _, q := range l.QRCodes {
		fmt.Fprintf(o.w, "%s\t%s\t%d pts\n", shortHash(q.Hash), q.Name, q.Score)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Entries) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}
	for _, e := range l.Entries {
		fmt.Fprintf(o.w, "%3d. %s - %d pts (%d codes)\n", e.Position, e.Username, e.TotalScore, e.TotalQRCodes)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
