package model

// QRCode is a scannable unit. Two codes are the same code when their hashes match.
type QRCode struct {
	Hash  string `json:"hash"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// NewQRCode creates a QRCode from its parts
func NewQRCode(hash, name string, score int) QRCode {
	return QRCode{
		Hash:  hash,
		Name:  name,
		Score: score,
	}
}

