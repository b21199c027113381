package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/qrhunt/internal/dependencies/mocks"
	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/storage/memory"
	"github.com/mcoot/qrhunt/internal/testutil"
)

type RankSuite struct {
	suite.Suite
}

func TestRankSuite(t *testing.T) {
	suite.Run(t, new(RankSuite))
}

func playerWithScore(username string, score int) *model.Player {
	p := model.NewPlayer(username)
	p.SetTotalScore(score)
	return p
}

func usernames(players []*model.Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Username()
	}
	return names
}

func (s *RankSuite) TestRankOrdersByDescendingScore() {
	players := []*model.Player{
		playerWithScore("a", 47),
		playerWithScore("b", 9),
		playerWithScore("c", 100),
	}

	ranked := Rank(players)

	s.Equal([]string{"c", "a", "b"}, usernames(ranked))
	s.Equal(100, ranked[0].TotalScore())
	s.Equal(47, ranked[1].TotalScore())
	s.Equal(9, ranked[2].TotalScore())
}

func (s *RankSuite) TestRankEmpty() {
	ranked := Rank([]*model.Player{})
	s.NotNil(ranked)
	s.Empty(ranked)

	ranked = Rank(nil)
	s.NotNil(ranked)
	s.Empty(ranked)
}

func (s *RankSuite) TestRankTiesKeepInputOrder() {
	players := []*model.Player{
		playerWithScore("first", 10),
		playerWithScore("top", 50),
		playerWithScore("second", 10),
		playerWithScore("third", 10),
	}

	ranked := Rank(players)

	s.Equal([]string{"top", "first", "second", "third"}, usernames(ranked))
}

func (s *RankSuite) TestRankDoesNotReorderInput() {
	players := []*model.Player{
		playerWithScore("low", 1),
		playerWithScore("high", 2),
	}

	_ = Rank(players)

	s.Equal([]string{"low", "high"}, usernames(players))
}

func (s *RankSuite) TestRankIsIdempotent() {
	players := []*model.Player{
		playerWithScore("a", 3),
		playerWithScore("b", 7),
		playerWithScore("c", 3),
		playerWithScore("d", -2),
	}

	once := Rank(players)
	twice := Rank(once)

	s.Equal(usernames(once), usernames(twice))
}

func (s *RankSuite) TestRankNegativeScoresLast() {
	players := []*model.Player{
		playerWithScore("neg", -5),
		playerWithScore("zero", 0),
	}

	s.Equal([]string{"zero", "neg"}, usernames(Rank(players)))
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) save(username string, score, codes int) {
	p := playerWithScore(username, score)
	p.SetTotalQRCodes(codes)
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
}

func (s *ServiceSuite) TestLeaderboardEmpty() {
	standings, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.NotNil(standings.Entries)
	s.Empty(standings.Entries)
	s.Equal(s.clock.Now(), standings.GeneratedAt)
}

func (s *ServiceSuite) TestLeaderboardPositions() {
	s.save("alice", 47, 2)
	s.save("bob", 9, 1)
	s.save("carol", 100, 5)

	standings, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)

	s.Equal([]Entry{
		{Position: 1, Username: "carol", TotalScore: 100, TotalQRCodes: 5},
		{Position: 2, Username: "alice", TotalScore: 47, TotalQRCodes: 2},
		{Position: 3, Username: "bob", TotalScore: 9, TotalQRCodes: 1},
	}, standings.Entries)
}

func (s *ServiceSuite) TestLeaderboardTiesUseRegistrationOrder() {
	s.save("zed", 10, 1)
	s.save("amy", 10, 1)

	ranked, err := s.service.Ranked(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"zed", "amy"}, usernames(ranked))
}

func (s *ServiceSuite) TestLeaderboardStampsClock() {
	s.clock.Advance(time.Hour)

	standings, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC), standings.GeneratedAt)
}
