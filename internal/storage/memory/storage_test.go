package memory

import (
	"context"
	"testing"

	"github.com/mcoot/qrhunt/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := model.NewPlayerWithPhone("alice", "5550001")
	player.SetTotalScore(12)
	s.Require().NoError(player.AddQRCodeScanned(model.NewQRCode("h1", "TinyOtter", 12)))

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username())
	s.Equal(12, retrieved.TotalScore())
	s.True(retrieved.HasQRCode("h1"))
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestStoredPlayerIsIsolated() {
	player := model.NewPlayer("alice")
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	// Mutating the caller's copy must not reach the store
	player.SetTotalScore(99)
	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, retrieved.TotalScore())

	// Nor mutating a retrieved copy
	retrieved.SetTotalScore(50)
	again, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, again.TotalScore())
}

func (s *StorageSuite) TestListPlayersInRegistrationOrder() {
	for _, name := range []string{"carol", "alice", "bob"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer(name)))
	}
	// Re-saving keeps the original position
	s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer("carol")))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("carol", players[0].Username())
	s.Equal("alice", players[1].Username())
	s.Equal("bob", players[2].Username())
}

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer("alice")))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer("bob")))

	err := s.storage.DeletePlayer(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("bob", players[0].Username())
}

func (s *StorageSuite) TestDeleteMissingPlayerIsNoop() {
	s.NoError(s.storage.DeletePlayer(s.ctx, "ghost"))
}

// QR code catalog tests

func (s *StorageSuite) TestSaveAndGetQRCode() {
	code := model.NewQRCode("h1", "TinyOtter", 12)
	s.Require().NoError(s.storage.SaveQRCode(s.ctx, code))

	retrieved, err := s.storage.GetQRCode(s.ctx, "h1")
	s.Require().NoError(err)
	s.Equal(code, retrieved)
}

func (s *StorageSuite) TestGetQRCodeNotFound() {
	_, err := s.storage.GetQRCode(s.ctx, "missing")
	s.ErrorIs(err, model.ErrQRCodeNotFound)
}

func (s *StorageSuite) TestSaveQRCodeRequiresHash() {
	err := s.storage.SaveQRCode(s.ctx, model.NewQRCode("", "Nameless", 1))
	s.ErrorIs(err, model.ErrInvalidQRCode)
}

func (s *StorageSuite) TestListQRCodesSortedByHash() {
	s.Require().NoError(s.storage.SaveQRCode(s.ctx, model.NewQRCode("b", "B", 2)))
	s.Require().NoError(s.storage.SaveQRCode(s.ctx, model.NewQRCode("a", "A", 1)))

	codes, err := s.storage.ListQRCodes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(codes, 2)
	s.Equal("a", codes[0].Hash)
	s.Equal("b", codes[1].Hash)
}
