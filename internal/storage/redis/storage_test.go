package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/qrhunt/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := model.NewPlayerWithPhone("BestScannerNA", "5879831023")
	s.Require().NoError(player.AddQRCodeScanned(model.NewQRCode("h1", "SuperAmazingFerret", 47)))
	player.IncrementTotalQRCodes()
	player.SetTotalScore(47)

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "BestScannerNA")
	s.Require().NoError(err)
	s.Equal("BestScannerNA", retrieved.Username())
	phone, ok := retrieved.Phone()
	s.True(ok)
	s.Equal("5879831023", phone)
	s.Equal(47, retrieved.TotalScore())
	s.Equal(1, retrieved.TotalQRCodes())
	s.Equal(player.QRCodesScanned(), retrieved.QRCodesScanned())
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestPlayerStoredAsJSON() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer("alice")))

	raw, err := s.mini.Get(playerKey("alice"))
	s.Require().NoError(err)
	s.Contains(raw, `"username":"alice"`)
	s.Zero(s.mini.TTL(playerKey("alice")), "players never expire")
}

func (s *StorageSuite) TestListPlayersInRegistrationOrder() {
	for _, name := range []string{"carol", "alice", "bob"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer(name)))
	}
	updated := model.NewPlayer("carol")
	updated.SetTotalScore(10)
	s.Require().NoError(s.storage.SavePlayer(s.ctx, updated))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("carol", players[0].Username())
	s.Equal(10, players[0].TotalScore())
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

// QR code catalog tests

func (s *StorageSuite) TestSaveAndGetQRCode() {
	code := model.NewQRCode("h1", "SuperAmazingFerret", 47)
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
	s.ErrorIs(s.storage.SaveQRCode(s.ctx, model.QRCode{Name: "x"}), model.ErrInvalidQRCode)
}

func (s *StorageSuite) TestListQRCodes() {
	s.Require().NoError(s.storage.SaveQRCode(s.ctx, model.NewQRCode("b", "B", 2)))
	s.Require().NoError(s.storage.SaveQRCode(s.ctx, model.NewQRCode("a", "A", 1)))
	s.Require().NoError(s.storage.SaveQRCode(s.ctx, model.NewQRCode("a", "A", 1)))

	codes, err := s.storage.ListQRCodes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(codes, 2)
	s.Equal("a", codes[0].Hash)
	s.Equal("b", codes[1].Hash)
}

func (s *StorageSuite) TestListQRCodesEmpty() {
	codes, err := s.storage.ListQRCodes(s.ctx)
	s.Require().NoError(err)
	s.Empty(codes)
}
