package service

import "strings"

// Distraction groups, checked in this order.
const (
	DistractionVlog    = "vlog"
	DistractionGame    = "game"
	DistractionAmbient = "ambient"
)

// Distraction is the result of classifying a video title as off-task.
type Distraction struct {
	Group   string
	Message string
}

var distractionGroups = []struct {
	group    string
	keywords []string
	message  string
}{
	{
		group:    DistractionVlog,
		keywords: []string{"vlog", "브이로그"},
		message:  "Vlogs can wait until later. Right now it's study time, stay focused! 👀",
	},
	{
		group:    DistractionGame,
		keywords: []string{"게임", "game play", "gameplay"},
		message:  "Resist the game and head back to your lecture. 🕹️",
	},
	{
		group:    DistractionAmbient,
		keywords: []string{"asmr", "먹방", "예능"},
		message:  "Great for a break, but it looks like you were in the middle of a lecture! 🎧",
	},
}

// ClassifyDistraction matches a title against the fixed distraction groups.
// Matching is a case-insensitive substring test and the first group wins.
func ClassifyDistraction(title string) (Distraction, bool) {
	lower := strings.ToLower(title)
	for _, g := range distractionGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return Distraction{Group: g.group, Message: g.message}, true
			}
		}
	}
	return Distraction{}, false
}
