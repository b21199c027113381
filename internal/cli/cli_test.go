package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/qrhunt/internal/api"
	"github.com/mcoot/qrhunt/internal/api/apierr"
	"github.com/mcoot/qrhunt/internal/factory"
	"github.com/mcoot/qrhunt/internal/middleware"
	"github.com/mcoot/qrhunt/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:             testutil.NopLogger(),
		HuntController:     app.HuntController,
		LeaderboardService: app.LeaderboardService,
	})
	s.server = httptest.NewServer(middleware.RequestID(router))
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

// run executes the CLI against the test server and returns stdout
func (s *CLISuite) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--server", s.server.URL}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func (s *CLISuite) mustRun(args ...string) string {
	out, err := s.run(args...)
	s.Require().NoError(err)
	return out
}

func (s *CLISuite) TestHealth() {
	out := s.mustRun("health")
	s.Contains(out, "Status: ok")
}

func (s *CLISuite) TestPlayerCreateAndGet() {
	out := s.mustRun("player", "create", "BestScannerNA", "--phone", "5879831023")
	s.Contains(out, "Player: BestScannerNA")
	s.Contains(out, "Phone: 5879831023")

	out = s.mustRun("player", "get", "BestScannerNA", "-o", "json")
	var p Player
	s.Require().NoError(json.Unmarshal([]byte(out), &p))
	s.Equal("BestScannerNA", p.Username)
	s.Equal(0, p.TotalScore)
}

func (s *CLISuite) TestPlayerCreateDuplicate() {
	s.mustRun("player", "create", "alice")

	_, err := s.run("player", "create", "alice")
	s.Require().Error(err)
	s.True(IsAPIError(err, apierr.CodePlayerExists))
}

func (s *CLISuite) TestPlayerListAndSetPhone() {
	s.mustRun("player", "create", "bob")
	s.mustRun("player", "create", "alice")

	out := s.mustRun("player", "list")
	s.Contains(out, "bob\t0 pts\t0 codes\nalice\t0 pts\t0 codes\n")

	out = s.mustRun("player", "set-phone", "alice", "555")
	s.Contains(out, "Phone: 555")
}

func (s *CLISuite) TestPlayerDelete() {
	s.mustRun("player", "create", "alice")

	out := s.mustRun("player", "delete", "alice")
	s.Contains(out, "Deleted player alice")

	_, err := s.run("player", "get", "alice")
	s.True(IsAPIError(err, apierr.CodePlayerNotFound))
}

func (s *CLISuite) TestScanAddAndRemove() {
	s.mustRun("player", "create", "alice")

	out := s.mustRun("scan", "add", "alice", "--hash", "a1", "--name", "SuperAmazingFerret", "--score", "47")
	s.Contains(out, "Score: 47")
	s.Contains(out, "SuperAmazingFerret (47 pts)")

	out = s.mustRun("scan", "add", "alice", "--content", "hello world")
	s.Contains(out, "Score: 78")
	s.Contains(out, "TurboProudHeron (31 pts)")

	_, err := s.run("scan", "add", "alice", "--hash", "a1", "--name", "SuperAmazingFerret")
	s.True(IsAPIError(err, apierr.CodeDuplicateEntry))

	out = s.mustRun("scan", "remove", "alice", "a1")
	s.Contains(out, "Score: 31")
	s.NotContains(out, "SuperAmazingFerret")

	_, err = s.run("scan", "remove", "alice", "a1")
	s.True(IsAPIError(err, apierr.CodeQRCodeNotFound))
}

func (s *CLISuite) TestScanAddValidatesFlags() {
	_, err := s.run("scan", "add", "alice")
	s.Error(err)

	_, err = s.run("scan", "add", "alice", "--hash", "a1")
	s.Error(err)

	_, err = s.run("scan", "add", "alice", "--hash", "a1", "--name", "n", "--content", "c")
	s.Error(err)
}

func (s *CLISuite) TestQRCodeGet() {
	s.mustRun("player", "create", "alice")
	s.mustRun("scan", "add", "alice", "--hash", "a1", "--name", "SuperAmazingFerret", "--score", "47")

	out := s.mustRun("qrcode", "get", "a1")
	s.Contains(out, "QR code: SuperAmazingFerret")
	s.Contains(out, "Score: 47")

	out = s.mustRun("qrcode", "list")
	s.Equal("a1\tSuperAmazingFerret\t47 pts\n", out)
}

func (s *CLISuite) TestLeaderboard() {
	for _, name := range []string{"a", "b", "c"} {
		s.mustRun("player", "create", name)
	}
	s.mustRun("scan", "add", "a", "--hash", "a1", "--name", "A", "--score", "47")
	s.mustRun("scan", "add", "b", "--hash", "b2", "--name", "B", "--score", "9")
	s.mustRun("scan", "add", "c", "--hash", "c3", "--name", "C", "--score", "100")

	out := s.mustRun("leaderboard")
	s.Equal("  1. c - 100 pts (1 codes)\n  2. a - 47 pts (1 codes)\n  3. b - 9 pts (1 codes)\n", out)

	out = s.mustRun("leaderboard", "--top", "1", "-o", "json")
	var lb Leaderboard
	s.Require().NoError(json.Unmarshal([]byte(out), &lb))
	s.Require().Len(lb.Entries, 1)
	s.Equal("c", lb.Entries[0].Username)
}

func (s *CLISuite) TestLeaderboardEmpty() {
	out := s.mustRun("leaderboard")
	s.Equal("No players\n", out)
}

func (s *CLISuite) TestUnreachableServer() {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--server", "http://127.0.0.1:1", "health"})
	s.Error(cmd.Execute())
}
