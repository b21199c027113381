package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Players are stored as clones so callers never share state with the store.
type Storage struct {
	mu sync.RWMutex

	players     map[string]*model.Player
	playerOrder []string // usernames in registration order
	qrCodes     map[string]model.QRCode
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[string]*model.Player),
		qrCodes: make(map[string]model.QRCode),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	username := player.Username()
	if _, ok := s.players[username]; !ok {
		s.playerOrder = append(s.playerOrder, username)
	}
	s.players[username] = player.Clone()
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, username string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.playerOrder))
	for _, username := range s.playerOrder {
		players = append(players, s.players[username].Clone())
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[username]; !ok {
		return nil
	}
	delete(s.players, username)
	for i, name := range s.playerOrder {
		if name == username {
			s.playerOrder = append(s.playerOrder[:i], s.playerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// QR code catalog operations

func (s *Storage) SaveQRCode(ctx context.Context, code model.QRCode) error {
	if code.Hash == "" {
		return model.ErrInvalidQRCode
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrCodes[code.Hash] = code
	return nil
}

func (s *Storage) GetQRCode(ctx context.Context, hash string) (model.QRCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.qrCodes[hash]
	if !ok {
		return model.QRCode{}, model.ErrQRCodeNotFound
	}
	return code, nil
}

func (s *Storage) ListQRCodes(ctx context.Context) ([]model.QRCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]model.QRCode, 0, len(s.qrCodes))
	for _, code := range s.qrCodes {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i].Hash < codes[j].Hash
	})
	return codes, nil
}
