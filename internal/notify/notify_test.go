package notify

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu   sync.Mutex
	seen []Notification
}

func (c *captureSink) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, n)
}

func TestCenterFansOutToSinks(t *testing.T) {
	a := &captureSink{}
	b := &captureSink{}
	center := NewCenter(10, a, b)

	center.Successf("building", "Building created")

	require.Len(t, a.seen, 1)
	require.Len(t, b.seen, 1)
	assert.Equal(t, LevelSuccess, a.seen[0].Level)
	assert.Equal(t, "building", a.seen[0].Category)
	assert.False(t, a.seen[0].Time.IsZero(), "notifications get timestamped")
}

func TestCenterBoundsHistory(t *testing.T) {
	center := NewCenter(3)
	for i := 0; i < 10; i++ {
		center.Infof("test", "message %d", i)
	}

	recent := center.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "message 7", recent[0].Message)
	assert.Equal(t, "message 9", recent[2].Message)
}

func TestRecentLimits(t *testing.T) {
	center := NewCenter(10)
	for i := 0; i < 5; i++ {
		center.Errorf("sync", "failure %d", i)
	}

	assert.Len(t, center.Recent(2), 2)
	assert.Len(t, center.Recent(100), 5)
	assert.Equal(t, "failure 4", center.Recent(1)[0].Message)
}

func TestConsoleSinkFormat(t *testing.T) {
	out := &bytes.Buffer{}
	sink := NewConsoleSink(out)

	sink.Notify(Notification{Level: LevelError, Category: "invoice", Message: "Failed to delete invoice"})
	assert.Contains(t, out.String(), "[invoice] Failed to delete invoice")

	out.Reset()
	sink.Notify(Notification{Level: LevelInfo, Message: "plain"})
	assert.Contains(t, out.String(), "plain")
	assert.NotContains(t, out.String(), "[")
}

func TestCenterConcurrentNotify(t *testing.T) {
	center := NewCenter(100, &captureSink{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			center.Notify(Notification{Level: LevelInfo, Message: fmt.Sprintf("n%d", i)})
		}(i)
	}
	wg.Wait()
	assert.Len(t, center.Recent(0), 20)
}
