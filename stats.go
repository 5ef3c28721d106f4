package ytstats

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Stats is the flat record returned to callers. Count fields are
// pointers: the provider omits a count when the uploader disabled that
// statistic, and a disabled counter must stay distinguishable from a
// zero one.
type Stats struct {
	VideoID      VideoID
	Title        string
	ChannelTitle string
	PublishedAt  time.Time
	Thumbnail    string
	ViewCount    *uint64
	LikeCount    *uint64
	CommentCount *uint64
}

// Data API v3 videos.list response, reduced to the fields used here.
type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID         string          `json:"id"`
	Snippet    videoSnippet    `json:"snippet"`
	Statistics videoStatistics `json:"statistics"`
}

type videoSnippet struct {
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   thumbnails `json:"thumbnails"`
}

// Counts come over the wire as decimal strings. Absent key means the
// statistic is disabled, not zero.
type videoStatistics struct {
	ViewCount    *string `json:"viewCount"`
	LikeCount    *string `json:"likeCount"`
	CommentCount *string `json:"commentCount"`
}

type thumbnails struct {
	Default thumbnail `json:"default"`
	Medium  thumbnail `json:"medium"`
	High    thumbnail `json:"high"`
}

type thumbnail struct {
	URL string `json:"url"`
}

func (t thumbnails) best() string {
	if t.High.URL != "" {
		return t.High.URL
	}
	if t.Medium.URL != "" {
		return t.Medium.URL
	}
	return t.Default.URL
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Message string `json:"message"`
			Domain  string `json:"domain"`
			Reason  string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func newStats(id VideoID, item videoItem) (*Stats, error) {
	s := &Stats{
		VideoID:      id,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		Thumbnail:    item.Snippet.Thumbnails.best(),
	}

	if item.Snippet.PublishedAt != "" {
		ts, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			return nil, errors.Join(ErrDecodeResponse, fmt.Errorf("publishedAt: %w", err))
		}
		s.PublishedAt = ts
	}

	var err error
	if s.ViewCount, err = parseCount("viewCount", item.Statistics.ViewCount); err != nil {
		return nil, err
	}
	if s.LikeCount, err = parseCount("likeCount", item.Statistics.LikeCount); err != nil {
		return nil, err
	}
	if s.CommentCount, err = parseCount("commentCount", item.Statistics.CommentCount); err != nil {
		return nil, err
	}
	return s, nil
}

func parseCount(field string, raw *string) (*uint64, error) {
	if raw == nil {
		return nil, nil
	}
	n, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		return nil, errors.Join(ErrDecodeResponse, fmt.Errorf("%s: %w", field, err))
	}
	return &n, nil
}
