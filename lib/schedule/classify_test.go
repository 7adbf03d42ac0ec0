package schedule

import "testing"

func TestClassifyGenre(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{"Saturday Morning Jazz", "music"},
		{"Evening News Roundup", "news"},
		{"Community Talk with callers", "talk"},
		{"Friday Night Football", "sports"},
		{"Gospel Hour", "religion"},
		{"Stand-up comedy showcase", "comedy"},
		{"Local History Lecture", "education"},
		{"Random Broadcast", ""},
	}
	for _, tc := range testCases {
		got := ClassifyGenre(tc.text)
		if got != tc.expected {
			t.Errorf("ClassifyGenre(%q) = %q, expected %q", tc.text, got, tc.expected)
		}
	}
}

func TestExtractHost(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{"Jazz Hour hosted by Maria Santos", "Maria Santos"},
		{"The Blues Train with DJ Slow Hand", "DJ Slow Hand"},
		{"Culture Corner presented by J. Alvarez", "J. Alvarez"},
		{"No host named here at all.", ""},
	}
	for _, tc := range testCases {
		got := ExtractHost(tc.text)
		if got != tc.expected {
			t.Errorf("ExtractHost(%q) = %q, expected %q", tc.text, got, tc.expected)
		}
	}
}

func TestStationLabel(t *testing.T) {
	if got := StationLabel("https://www.wxyz.org/schedule"); got != "wxyz.org" {
		t.Errorf("got %q", got)
	}
}
