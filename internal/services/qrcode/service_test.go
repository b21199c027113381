package qrcode

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) TestFromContentDerivesCode() {
	code, err := s.service.FromContent("hello world")
	s.Require().NoError(err)

	s.Equal("b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", code.Hash)
	s.Equal("TurboProudHeron", code.Name)
	s.Equal(31, code.Score)
}

func (s *ServiceSuite) TestFromContentOtherSamples() {
	cases := []struct {
		content string
		name    string
		score   int
	}{
		{"BFG5DGW54", "UltraHappyKoala", 19},
		{"qrhunt", "GoldenDizzyFalcon", 17},
	}

	for _, tc := range cases {
		s.Run(tc.content, func() {
			code, err := s.service.FromContent(tc.content)
			s.Require().NoError(err)
			s.Equal(tc.name, code.Name)
			s.Equal(tc.score, code.Score)
			s.Len(code.Hash, 64)
		})
	}
}

func (s *ServiceSuite) TestFromContentIsDeterministic() {
	first, err := s.service.FromContent("same content")
	s.Require().NoError(err)
	second, err := s.service.FromContent("same content")
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *ServiceSuite) TestFromContentDifferentContentDifferentHash() {
	a, err := s.service.FromContent("a")
	s.Require().NoError(err)
	b, err := s.service.FromContent("b")
	s.Require().NoError(err)

	s.NotEqual(a.Hash, b.Hash)
}

func (s *ServiceSuite) TestFromContentRejectsEmpty() {
	_, err := s.service.FromContent("")
	s.ErrorIs(err, ErrEmptyContent)
}

func (s *ServiceSuite) TestScoreHash() {
	cases := []struct {
		hash  string
		score int
	}{
		{"", 0},
		{"1234", 0},
		{"aa", 10},
		{"000", 400},
		{"ff0ff", 30},
		{"1111", 1},
		{"AA", 10},
		{"zz", 0},
	}

	for _, tc := range cases {
		s.Run(tc.hash, func() {
			s.Equal(tc.score, ScoreHash(tc.hash))
		})
	}
}

func (s *ServiceSuite) TestScoreHashSaturates() {
	s.Equal(math.MaxInt32, ScoreHash(strings.Repeat("0", 64)))
}
