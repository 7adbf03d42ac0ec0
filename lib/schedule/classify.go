package schedule

import "strings"

type genreEntry struct {
	genre    string
	keywords []string
}

// Ordered so more specific categories win over "music", which has the
// broadest keyword set.
var genreTable = []genreEntry{
	{"news", []string{"news", "headline", "current affairs", "journal", "report"}},
	{"talk", []string{"talk", "interview", "conversation", "discussion", "call-in"}},
	{"sports", []string{"sport", "football", "soccer", "basketball", "baseball", "hockey", "game day"}},
	{"comedy", []string{"comedy", "funny", "humor", "laugh"}},
	{"culture", []string{"culture", "arts", "film", "theater", "theatre", "poetry", "books", "literature"}},
	{"education", []string{"education", "science", "history", "lecture", "learning", "documentary"}},
	{"religion", []string{"gospel", "church", "faith", "worship", "religio", "spiritual"}},
	{"music", []string{
		"music", "jazz", "rock", "blues", "classical", "hip hop", "hip-hop",
		"country", "folk", "reggae", "soul", "funk", "metal", "punk",
		"electronic", "dance", "oldies", "mixtape", "dj", "vinyl", "indie",
	}},
}

// ClassifyGenre maps a show's name and description onto the fixed
// genre vocabulary. Returns "" when nothing matches.
func ClassifyGenre(text string) string {
	text = strings.ToLower(text)
	for _, entry := range genreTable {
		for _, k := range entry.keywords {
			if strings.Contains(text, k) {
				return entry.genre
			}
		}
	}
	return ""
}
