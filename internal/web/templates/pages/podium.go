package pages

import (
	"net/url"

	"github.com/mcoot/qrhunt/internal/model"
)

// PodiumSize is the number of top-ranked players shown on the podium
const PodiumSize = 3

const avatarBaseURL = "https://api.dicebear.com/5.x/avataaars-neutral/png?seed="

// AvatarURL returns the avatar image source for a username
func AvatarURL(username string) string {
	return avatarBaseURL + url.QueryEscape(username)
}

func playerPath(username string) string {
	return "/players/" + url.PathEscape(username)
}

// Podium splits ranked players into the top three slots and the remainder.
// Slots without a player are nil; the remainder is empty when three or fewer are ranked.
func Podium(ranked []*model.Player) ([PodiumSize]*model.Player, []*model.Player) {
	var podium [PodiumSize]*model.Player
	for i := 0; i < PodiumSize && i < len(ranked); i++ {
		podium[i] = ranked[i]
	}

	rest := []*model.Player{}
	if len(ranked) > PodiumSize {
		rest = ranked[PodiumSize:]
	}
	return podium, rest
}
