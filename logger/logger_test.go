package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	tag  string
	data map[string]interface{}
}

type fakePoster struct {
	mu    sync.Mutex
	posts []post
}

func (f *fakePoster) PostWithTime(tag string, _ time.Time, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, post{tag: tag, data: message.(map[string]interface{})})
	return nil
}

func TestFluentHandlerPostsFields(t *testing.T) {
	poster := &fakePoster{}
	l := slog.New(NewFluentHandler(poster, slog.LevelInfo)).With("component", "inquiries")

	l.Debug("dropped")
	l.Error("store failed", "error", errors.New("timeout"), "attempt", 2)

	require.Len(t, poster.posts, 1)
	p := poster.posts[0]
	assert.Equal(t, "error", p.tag)
	assert.Equal(t, "store failed", p.data["message"])
	assert.Equal(t, "inquiries", p.data["component"])
	assert.Equal(t, "timeout", p.data["error"])
	assert.EqualValues(t, 2, p.data["attempt"])
}

func TestFluentHandlerGroups(t *testing.T) {
	poster := &fakePoster{}
	l := slog.New(NewFluentHandler(poster, slog.LevelDebug)).WithGroup("http")

	l.Info("request finished", "status", 200)

	require.Len(t, poster.posts, 1)
	assert.EqualValues(t, 200, poster.posts[0].data["http.status"])
}

func TestMultiHandlerFansOut(t *testing.T) {
	var buf bytes.Buffer
	poster := &fakePoster{}
	h := NewMultiHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		NewFluentHandler(poster, slog.LevelWarn),
	)
	l := slog.New(h)

	l.Info("only stdout")
	l.Warn("both")

	assert.Len(t, poster.posts, 1)
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "both", rec["msg"])
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l, closer, err := New(Config{AppName: "egharbari-test", Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	l.Debug("hello")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "egharbari-test", rec["service_name"])
}

func TestContextRoundTrip(t *testing.T) {
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, l, FromContext(WithContext(context.Background(), l)))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
