package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/qrhunt/internal/model"
)

func players(names ...string) []*model.Player {
	out := make([]*model.Player, len(names))
	for i, n := range names {
		out[i] = model.NewPlayer(n)
	}
	return out
}

func TestPodiumFewerThanThree(t *testing.T) {
	ranked := players("a", "b")

	podium, rest := Podium(ranked)

	assert.Equal(t, "a", podium[0].Username())
	assert.Equal(t, "b", podium[1].Username())
	assert.Nil(t, podium[2])
	assert.NotNil(t, rest)
	assert.Empty(t, rest)
}

func TestPodiumExactlyThree(t *testing.T) {
	podium, rest := Podium(players("a", "b", "c"))

	assert.Equal(t, "c", podium[2].Username())
	assert.Empty(t, rest)
}

func TestPodiumWithRemainder(t *testing.T) {
	podium, rest := Podium(players("a", "b", "c", "d", "e"))

	assert.Equal(t, "a", podium[0].Username())
	assert.Len(t, rest, 2)
	assert.Equal(t, "d", rest[0].Username())
	assert.Equal(t, "e", rest[1].Username())
}

func TestPodiumEmpty(t *testing.T) {
	podium, rest := Podium(nil)

	assert.Nil(t, podium[0])
	assert.Empty(t, rest)
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://api.dicebear.com/5.x/avataaars-neutral/png?seed=BestScannerNA", AvatarURL("BestScannerNA"))
	assert.Equal(t, "https://api.dicebear.com/5.x/avataaars-neutral/png?seed=a+b%26c", AvatarURL("a b&c"))
}
