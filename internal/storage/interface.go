package storage

import (
	"context"

	"github.com/mcoot/qrhunt/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, username string) (*model.Player, error)
	// ListPlayers returns every player in registration order
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, username string) error

	// QR code catalog operations
	SaveQRCode(ctx context.Context, code model.QRCode) error
	GetQRCode(ctx context.Context, hash string) (model.QRCode, error)
	ListQRCodes(ctx context.Context) ([]model.QRCode, error)
}
