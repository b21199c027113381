package hunt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/services/qrcode"
	"github.com/mcoot/qrhunt/internal/storage"
)

// ControllerInterface defines the hunt operations exposed to transports
type ControllerInterface interface {
	RegisterPlayer(ctx context.Context, username, phone string) (*model.Player, error)
	GetPlayer(ctx context.Context, username string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	UpdatePhone(ctx context.Context, username, phone string) (*model.Player, error)
	DeletePlayer(ctx context.Context, username string) error
	RecordScan(ctx context.Context, username string, code model.QRCode) (*model.Player, error)
	ScanContent(ctx context.Context, username, content string) (*model.Player, model.QRCode, error)
	RemoveScan(ctx context.Context, username, hash string) (*model.Player, error)
	GetQRCode(ctx context.Context, hash string) (model.QRCode, error)
	ListQRCodes(ctx context.Context) ([]model.QRCode, error)
}

// Controller applies scan results to players.
// The player model leaves score and count to its caller; every scan mutation
// here updates the scanned set, the count and the score together.
type Controller struct {
	mu        sync.Mutex
	storage   storage.Storage
	qrService *qrcode.Service
	logger    *slog.Logger
}

// Ensure Controller implements ControllerInterface
var _ ControllerInterface = (*Controller)(nil)

// NewController creates a new hunt Controller
func NewController(storage storage.Storage, qrService *qrcode.Service, logger *slog.Logger) *Controller {
	return &Controller{
		storage:   storage,
		qrService: qrService,
		logger:    logger,
	}
}

// RegisterPlayer creates a new player. An empty phone means none was given.
func (c *Controller) RegisterPlayer(ctx context.Context, username, phone string) (*model.Player, error) {
	if username == "" {
		return nil, model.ErrInvalidUsername
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.storage.GetPlayer(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrPlayerExists, username)
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	var player *model.Player
	if phone != "" {
		player = model.NewPlayerWithPhone(username, phone)
	} else {
		player = model.NewPlayer(username)
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		c.logger.Error("failed to save player",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("player registered", slog.String("username", username))
	return player, nil
}

// GetPlayer retrieves a player by username
func (c *Controller) GetPlayer(ctx context.Context, username string) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, username)
}

// ListPlayers returns all players in registration order
func (c *Controller) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return c.storage.ListPlayers(ctx)
}

// UpdatePhone replaces a player's phone number
func (c *Controller) UpdatePhone(ctx context.Context, username, phone string) (*model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, err := c.storage.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	player.SetPhone(phone)

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("player phone updated", slog.String("username", username))
	return player, nil
}

// DeletePlayer removes a player. Catalog entries are kept.
func (c *Controller) DeletePlayer(ctx context.Context, username string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetPlayer(ctx, username); err != nil {
		return err
	}

	if err := c.storage.DeletePlayer(ctx, username); err != nil {
		return err
	}

	c.logger.Info("player deleted", slog.String("username", username))
	return nil
}

// RecordScan adds a code to the player's collection and credits its score.
// A code already in the catalog is credited with the catalog's name and score.
func (c *Controller) RecordScan(ctx context.Context, username string, code model.QRCode) (*model.Player, error) {
	if code.Hash == "" {
		return nil, model.ErrInvalidQRCode
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	player, err := c.storage.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	known, err := c.storage.GetQRCode(ctx, code.Hash)
	switch {
	case err == nil:
		code = known
	case errors.Is(err, model.ErrQRCodeNotFound):
		if err := c.storage.SaveQRCode(ctx, code); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := player.AddQRCodeScanned(code); err != nil {
		return nil, err
	}
	player.IncrementTotalQRCodes()
	player.SetTotalScore(addScore(player.TotalScore(), code.Score))

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		c.logger.Error("failed to save player after scan",
			slog.String("username", username),
			slog.String("hash", code.Hash),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("scan recorded",
		slog.String("username", username),
		slog.String("hash", code.Hash),
		slog.Int("score", code.Score),
		slog.Int("total_score", player.TotalScore()),
	)
	return player, nil
}

// ScanContent derives a code from raw scanned content and records it
func (c *Controller) ScanContent(ctx context.Context, username, content string) (*model.Player, model.QRCode, error) {
	code, err := c.qrService.FromContent(content)
	if err != nil {
		return nil, model.QRCode{}, err
	}

	player, err := c.RecordScan(ctx, username, code)
	if err != nil {
		return nil, model.QRCode{}, err
	}

	// Report what was credited, which may come from the catalog
	credited, _ := player.FindQRCode(code.Hash)
	return player, credited, nil
}

// RemoveScan removes a code from the player's collection and debits its score
func (c *Controller) RemoveScan(ctx context.Context, username, hash string) (*model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, err := c.storage.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	code, ok := player.FindQRCode(hash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrQRCodeNotFound, hash)
	}

	if err := player.RemoveQRCodeScanned(code); err != nil {
		return nil, err
	}
	player.DecrementTotalQRCodes()
	player.SetTotalScore(subScore(player.TotalScore(), code.Score))

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("scan removed",
		slog.String("username", username),
		slog.String("hash", hash),
		slog.Int("total_score", player.TotalScore()),
	)
	return player, nil
}

// GetQRCode looks up a code in the catalog
func (c *Controller) GetQRCode(ctx context.Context, hash string) (model.QRCode, error) {
	return c.storage.GetQRCode(ctx, hash)
}

// ListQRCodes returns every code any player has scanned, ordered by hash
func (c *Controller) ListQRCodes(ctx context.Context) ([]model.QRCode, error) {
	return c.storage.ListQRCodes(ctx)
}

// addScore returns total+delta, saturating at the int bounds
func addScore(total, delta int) int {
	switch {
	case delta > 0 && total > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && total < math.MinInt-delta:
		return math.MinInt
	}
	return total + delta
}

// subScore returns total-delta, saturating at the int bounds
func subScore(total, delta int) int {
	switch {
	case delta > 0 && total < math.MinInt+delta:
		return math.MinInt
	case delta < 0 && total > math.MaxInt+delta:
		return math.MaxInt
	}
	return total - delta
}
