package leaderboard

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/mcoot/qrhunt/internal/dependencies/clock"
	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/storage"
)

// Rank returns a new slice of the players ordered by descending total score.
// Players with equal scores keep their relative input order.
// The input slice is never reordered.
func Rank(players []*model.Player) []*model.Player {
	ranked := make([]*model.Player, len(players))
	copy(ranked, players)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore() > ranked[j].TotalScore()
	})

	return ranked
}

// Entry is one row of the standings
type Entry struct {
	Position     int    `json:"position"`
	Username     string `json:"username"`
	TotalScore   int    `json:"total_score"`
	TotalQRCodes int    `json:"total_qr_codes"`
}

// Standings is a ranked snapshot of every player
type Standings struct {
	Entries     []Entry   `json:"entries"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ServiceInterface defines the leaderboard operations
type ServiceInterface interface {
	Ranked(ctx context.Context) ([]*model.Player, error)
	Leaderboard(ctx context.Context) (*Standings, error)
}

// Service builds leaderboards from stored players
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

// New creates a new leaderboard Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Ranked returns every stored player in leaderboard order.
// Ties fall back to registration order.
func (s *Service) Ranked(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		s.logger.Error("failed to list players for leaderboard",
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return Rank(players), nil
}

// Leaderboard returns the current standings with 1-based positions
func (s *Service) Leaderboard(ctx context.Context) (*Standings, error) {
	ranked, err := s.Ranked(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(ranked))
	for i, p := range ranked {
		entries[i] = Entry{
			Position:     i + 1,
			Username:     p.Username(),
			TotalScore:   p.TotalScore(),
			TotalQRCodes: p.TotalQRCodes(),
		}
	}

	return &Standings{
		Entries:     entries,
		GeneratedAt: s.clock.Now(),
	}, nil
}
