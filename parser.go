package ytstats

import (
	"fmt"
	"regexp"
	"strings"
)

// VideoID is the 11-character identifier YouTube assigns to a video.
type VideoID string

func (id VideoID) String() string {
	return string(id)
}

// WatchURL returns the canonical watch page URL for the video.
func (id VideoID) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + string(id)
}

var (
	videoURLRe = regexp.MustCompile(`(?:youtube(?:-nocookie)?\.com/(?:watch\?(?:[^#\s]*?[?&])?vi?=|(?:embed|shorts|live|v|e)/)|youtu\.be/)([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`)
	videoIDRe  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ParseVideoURL extracts the video ID from a YouTube video URL.
// Recognized shapes are watch?v=, youtu.be/, embed/, shorts/, live/,
// /v/ and their m. / -nocookie variants; a bare 11-character ID is
// accepted as-is. Anything else fails with ErrInvalidURL.
func ParseVideoURL(raw string) (VideoID, error) {
	raw = strings.TrimSpace(raw)
	if m := videoURLRe.FindStringSubmatch(raw); len(m) > 1 {
		return VideoID(m[1]), nil
	}
	if videoIDRe.MatchString(raw) {
		return VideoID(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
}
