package screenshoter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot"
)

type dummyEngine struct {
	Locker       sync.Mutex
	Destinations []string
	Kinds        []screenshot.Kind
	FailFirst    int
}

func (e *dummyEngine) Capture(
	ctx context.Context,
	kind screenshot.Kind,
	destination string,
	freeze bool,
) error {
	e.Locker.Lock()
	defer e.Locker.Unlock()
	e.Destinations = append(e.Destinations, destination)
	e.Kinds = append(e.Kinds, kind)
	if len(e.Destinations) <= e.FailFirst {
		return errors.New("dummy failure")
	}
	return nil
}

func TestLoop(t *testing.T) {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	engine := &dummyEngine{FailFirst: 1}
	s := New(engine)

	var received []string
	err := s.Loop(ctx, time.Millisecond, "/tmp/shot-%03d.png", func(ctx context.Context, destination string) {
		received = append(received, destination)
		if len(received) == 3 {
			cancelFn()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []string{"/tmp/shot-000.png", "/tmp/shot-001.png", "/tmp/shot-002.png"}, received)
	require.Len(t, engine.Destinations, 4)
	for _, kind := range engine.Kinds {
		require.Equal(t, screenshot.KindFull, kind)
	}
}

func TestLoopKind(t *testing.T) {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	engine := &dummyEngine{}
	s := New(engine)
	s.Kind = screenshot.KindWindow
	err := s.Loop(ctx, time.Millisecond, "w-%d.png", func(ctx context.Context, destination string) {
		cancelFn()
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []screenshot.Kind{screenshot.KindWindow}, engine.Kinds)
}

func destinationFor(t *testing.T, s *Screenshoter, pattern string, n uint64) string {
	parsed, err := parseDestinationPattern(pattern)
	require.NoError(t, err)
	return s.destination(parsed, n)
}

func TestDestinationTimestamp(t *testing.T) {
	s := New(&dummyEngine{})
	s.Now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	}
	require.Equal(t, "/tmp/shot-20240301-123045.000.png", destinationFor(t, s, "/tmp/shot.png", 5))
	require.Equal(t, "shot-20240301-123045.000", destinationFor(t, s, "shot", 0))
	require.Equal(t, "/tmp/50%/shot-20240301-123045.000.png", destinationFor(t, s, "/tmp/50%/shot.png", 0))
	require.Equal(t, "/tmp/100%-20240301-123045.000.png", destinationFor(t, s, "/tmp/100%%.png", 0))
}

func TestDestinationSequence(t *testing.T) {
	s := New(&dummyEngine{})
	require.Equal(t, "/tmp/100%/shot-007.png", destinationFor(t, s, "/tmp/100%/shot-%03d.png", 7))
	require.Equal(t, "./shot-ff.png", destinationFor(t, s, "./shot-%x.png", 255))
	require.Equal(t, "100%-3.png", destinationFor(t, s, "100%%-%d.png", 3))
}

func TestLoopInvalidPattern(t *testing.T) {
	for _, pattern := range []string{
		"/tmp/shot-%s.png",
		"/tmp/shot-%d-%d.png",
		"/tmp/shot-%",
		"/tmp/shot-%05",
		"/tmp/",
	} {
		t.Run(pattern, func(t *testing.T) {
			engine := &dummyEngine{}
			err := New(engine).Loop(context.Background(), time.Millisecond, pattern, func(ctx context.Context, destination string) {
				t.Errorf("unexpected callback for '%s'", destination)
			})
			require.Error(t, err)
			require.Empty(t, engine.Destinations)
		})
	}
}

// slowEngine simulates a tool that is killed on cancellation but whose
// result is not reported as an error.
type slowEngine struct {
	Started chan struct{}
}

func (e *slowEngine) Capture(
	ctx context.Context,
	kind screenshot.Kind,
	destination string,
	freeze bool,
) error {
	close(e.Started)
	<-ctx.Done()
	return nil
}

func TestLoopCancelledDuringCapture(t *testing.T) {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	engine := &slowEngine{Started: make(chan struct{})}
	go func() {
		<-engine.Started
		cancelFn()
	}()

	err := New(engine).Loop(ctx, time.Millisecond, "shot-%d.png", func(ctx context.Context, destination string) {
		t.Errorf("unexpected callback for '%s'", destination)
	})
	require.ErrorIs(t, err, context.Canceled)
}
