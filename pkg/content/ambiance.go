package content

import "strings"

// AmbianceTracks maps an ambiance keyword to its background music URL.
var AmbianceTracks = map[string]string{
	"tavern":  "https://storage.googleapis.com/gemini-dm-sounds/tavern.mp3",
	"combat":  "https://storage.googleapis.com/gemini-dm-sounds/combat.mp3",
	"forest":  "https://storage.googleapis.com/gemini-dm-sounds/forest.mp3",
	"cave":    "https://storage.googleapis.com/gemini-dm-sounds/cave.mp3",
	"dungeon": "https://storage.googleapis.com/gemini-dm-sounds/dungeon.mp3",
	"travel":  "https://storage.googleapis.com/gemini-dm-sounds/calm.mp3",
	"city":    "https://storage.googleapis.com/gemini-dm-sounds/calm.mp3",
	"default": "https://storage.googleapis.com/gemini-dm-sounds/calm.mp3",
}

// TrackFor resolves a free-form ambiance descriptor to a music track.
// Only the first word is significant; unknown descriptors fall back to
// the default track.
func TrackFor(ambiance string) string {
	key := "default"
	if fields := strings.Fields(strings.ToLower(ambiance)); len(fields) > 0 {
		key = fields[0]
	}
	if url, ok := AmbianceTracks[key]; ok {
		return url
	}
	return AmbianceTracks["default"]
}
