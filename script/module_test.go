package script

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstolbov/ytstats"
	"github.com/mstolbov/ytstats/logger"
)

type fakeFetcher struct {
	stats   *ytstats.Stats
	err     error
	lastURL string
}

func (f *fakeFetcher) GetStats(_ context.Context, rawURL string) (*ytstats.Stats, error) {
	f.lastURL = rawURL
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func uptr(v uint64) *uint64 {
	return &v
}

func newRuntime(t *testing.T, fetcher *fakeFetcher) *goja.Runtime {
	t.Helper()
	rt := goja.New()
	require.NoError(t, Enable(rt, fetcher, logger.NewTestLogger()))
	return rt
}

func TestGetStats_ReturnsStatsObject(t *testing.T) {
	fetcher := &fakeFetcher{
		stats: &ytstats.Stats{
			VideoID:      "dQw4w9WgXcQ",
			Title:        "T",
			ChannelTitle: "Rick Astley",
			PublishedAt:  time.Date(2009, 10, 25, 6, 57, 33, 0, time.UTC),
			ViewCount:    uptr(100),
			LikeCount:    uptr(10),
		},
	}
	rt := newRuntime(t, fetcher)

	v, err := rt.RunString(`youtube.getStats("https://youtu.be/dQw4w9WgXcQ")`)
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", fetcher.lastURL)

	obj, ok := v.Export().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dQw4w9WgXcQ", obj["videoId"])
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", obj["videoUrl"])
	assert.Equal(t, "T", obj["title"])
	assert.Equal(t, "Rick Astley", obj["channelTitle"])
	assert.Equal(t, "2009-10-25T06:57:33Z", obj["publishedAt"])
	assert.Equal(t, int64(100), obj["viewCount"])
	assert.Equal(t, int64(10), obj["likeCount"])
	// disabled counter stays null, not zero
	assert.Nil(t, obj["commentCount"])
}

func TestGetStats_ThrowsWithKind(t *testing.T) {
	cases := map[string]struct {
		err  error
		kind string
	}{
		"invalid url": {
			err:  fmt.Errorf("%w: %q", ytstats.ErrInvalidURL, "nope"),
			kind: KindInvalidURL,
		},
		"network": {
			err:  errors.Join(ytstats.ErrRequestFailed, errors.New("dial tcp: timeout")),
			kind: KindNetwork,
		},
		"api": {
			err:  &ytstats.APIError{StatusCode: http.StatusForbidden, Reason: "quotaExceeded"},
			kind: KindAPI,
		},
		"not found": {
			err:  fmt.Errorf("%w: dQw4w9WgXcQ", ytstats.ErrVideoNotFound),
			kind: KindAPI,
		},
		"deserialization": {
			err:  errors.Join(ytstats.ErrDecodeResponse, errors.New("unexpected EOF")),
			kind: KindDeserialization,
		},
		"configuration": {
			err:  ytstats.ErrMissingAPIKey,
			kind: KindConfiguration,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rt := newRuntime(t, &fakeFetcher{err: tc.err})

			v, err := rt.RunString(`(function() {
				try {
					youtube.getStats("https://youtu.be/dQw4w9WgXcQ");
					return "no error";
				} catch (e) {
					return e.kind;
				}
			})()`)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Export())
		})
	}
}

func TestGetStats_APIErrorCarriesStatus(t *testing.T) {
	rt := newRuntime(t, &fakeFetcher{
		err: &ytstats.APIError{StatusCode: http.StatusForbidden, Message: "quota", Reason: "quotaExceeded"},
	})

	v, err := rt.RunString(`(function() {
		try {
			youtube.getStats("https://youtu.be/dQw4w9WgXcQ");
			return null;
		} catch (e) {
			return e.kind + ":" + e.status + ":" + e.reason;
		}
	})()`)
	require.NoError(t, err)
	assert.Equal(t, "ApiError:403:quotaExceeded", v.Export())
}

func TestGetStats_UncaughtErrorSurfacesToCaller(t *testing.T) {
	rt := newRuntime(t, &fakeFetcher{err: ytstats.ErrMissingAPIKey})

	_, err := rt.RunString(`youtube.getStats("https://youtu.be/dQw4w9WgXcQ")`)
	require.Error(t, err)

	var exc *goja.Exception
	require.ErrorAs(t, err, &exc)
	kind := exc.Value().ToObject(rt).Get("kind")
	require.NotNil(t, kind)
	assert.Equal(t, KindConfiguration, kind.String())
}

func TestErrorKind_Unknown(t *testing.T) {
	assert.Equal(t, "Error", ErrorKind(errors.New("something else")))
}
