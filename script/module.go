// Package script exposes the stats client to embedded JavaScript. It
// is a thin adapter: the same single call, the same error taxonomy,
// surfaced as thrown errors carrying a kind property.
package script

import (
	"context"
	"errors"
	"time"

	"github.com/dop251/goja"

	"github.com/mstolbov/ytstats"
	"github.com/mstolbov/ytstats/logger"
)

// Error kinds attached to thrown script errors.
const (
	KindInvalidURL      = "InvalidUrl"
	KindConfiguration   = "ConfigurationError"
	KindNetwork         = "NetworkError"
	KindAPI             = "ApiError"
	KindDeserialization = "DeserializationError"
)

// StatsFetcher is what the binding needs from the library.
type StatsFetcher interface {
	GetStats(ctx context.Context, rawURL string) (*ytstats.Stats, error)
}

type Module struct {
	client StatsFetcher
	logger logger.Logger
}

// Enable registers the youtube object with a getStats(url) function in
// the given runtime.
func Enable(rt *goja.Runtime, client StatsFetcher, l logger.Logger) error {
	m := &Module{client: client, logger: l}

	obj := rt.NewObject()
	if err := obj.Set("getStats", func(call goja.FunctionCall) goja.Value {
		return m.getStats(rt, call)
	}); err != nil {
		return err
	}
	return rt.Set("youtube", obj)
}

func (m *Module) getStats(rt *goja.Runtime, call goja.FunctionCall) goja.Value {
	rawURL := call.Argument(0).String()
	m.logger.WithField("url", rawURL).Debug("Script requested video statistics")

	stats, err := m.client.GetStats(context.Background(), rawURL)
	if err != nil {
		panic(m.scriptError(rt, err))
	}
	return rt.ToValue(statsToMap(stats))
}

// scriptError builds the thrown object: a GoError with kind set, plus
// status and reason for provider errors.
func (m *Module) scriptError(rt *goja.Runtime, err error) *goja.Object {
	o := rt.NewGoError(err)
	_ = o.Set("kind", ErrorKind(err))

	var apiErr *ytstats.APIError
	if errors.As(err, &apiErr) {
		_ = o.Set("status", apiErr.StatusCode)
		_ = o.Set("reason", apiErr.Reason)
	}
	return o
}

// ErrorKind maps a library error to the kind name scripts see.
func ErrorKind(err error) string {
	var apiErr *ytstats.APIError
	switch {
	case errors.Is(err, ytstats.ErrInvalidURL):
		return KindInvalidURL
	case errors.Is(err, ytstats.ErrMissingAPIKey):
		return KindConfiguration
	case errors.Is(err, ytstats.ErrDecodeResponse):
		return KindDeserialization
	case errors.Is(err, ytstats.ErrVideoNotFound), errors.As(err, &apiErr):
		return KindAPI
	case errors.Is(err, ytstats.ErrRequestFailed):
		return KindNetwork
	default:
		return "Error"
	}
}

func statsToMap(s *ytstats.Stats) map[string]any {
	out := map[string]any{
		"videoId":      s.VideoID.String(),
		"videoUrl":     s.VideoID.WatchURL(),
		"title":        s.Title,
		"channelTitle": s.ChannelTitle,
		"thumbnail":    s.Thumbnail,
		"viewCount":    countValue(s.ViewCount),
		"likeCount":    countValue(s.LikeCount),
		"commentCount": countValue(s.CommentCount),
	}
	if !s.PublishedAt.IsZero() {
		out["publishedAt"] = s.PublishedAt.Format(time.RFC3339)
	}
	return out
}

// countValue keeps a disabled statistic as null instead of zero.
func countValue(v *uint64) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}
