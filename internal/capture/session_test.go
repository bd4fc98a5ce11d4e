package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"dip-challenge/internal/config"
	"dip-challenge/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// fakeCamera hands out fakeDevices and counts open/release calls across them.
type fakeCamera struct {
	opens    int
	releases int
	openErr  error
	// reads scripts the result of each Read; once exhausted reads succeed.
	reads []bool
	color gocv.Scalar
}

func (c *fakeCamera) Open(device int) (Source, error) {
	if c.openErr != nil {
		return nil, c.openErr
	}
	c.opens++
	return &fakeDevice{camera: c}, nil
}

type fakeDevice struct {
	camera *fakeCamera
	closed bool
}

func (d *fakeDevice) Read(frame *gocv.Mat) bool {
	if d.closed {
		return false
	}

	if len(d.camera.reads) > 0 {
		ok := d.camera.reads[0]
		d.camera.reads = d.camera.reads[1:]
		if !ok {
			return false
		}
	}

	src := gocv.NewMatWithSizeFromScalar(d.camera.color, 24, 32, gocv.MatTypeCV8UC3)
	defer src.Close()
	src.CopyTo(frame)
	return true
}

func (d *fakeDevice) Close() error {
	if !d.closed {
		d.closed = true
		d.camera.releases++
	}
	return nil
}

type fakeScheduler struct {
	armed     int
	cancelled int
	interval  time.Duration
	fn        func()
}

func (s *fakeScheduler) Every(interval time.Duration, fn func()) func() {
	s.armed++
	s.interval = interval
	s.fn = fn
	return func() { s.cancelled++ }
}

func (s *fakeScheduler) active() bool {
	return s.armed > s.cancelled
}

type recordingSink struct {
	frames     []image.Image
	histograms []image.Image
}

func (r *recordingSink) ShowFrame(img image.Image)     { r.frames = append(r.frames, img) }
func (r *recordingSink) ShowHistogram(img image.Image) { r.histograms = append(r.histograms, img) }

type fixture struct {
	camera    *fakeCamera
	scheduler *fakeScheduler
	sink      *recordingSink
	session   *Session
	cfg       *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		camera:    &fakeCamera{color: gocv.NewScalar(255, 0, 0, 0)},
		scheduler: &fakeScheduler{},
		sink:      &recordingSink{},
		cfg:       config.Default(),
	}
	f.session = NewSession(f.cfg, f.camera.Open, f.scheduler, f.sink, logger.Nop())
	t.Cleanup(f.session.Close)
	return f
}

func TestStart_NoFirstFrameStaysIdle(t *testing.T) {
	f := newFixture(t)
	f.camera.reads = []bool{false}

	err := f.session.Start()

	assert.ErrorIs(t, err, ErrNoFrame)
	assert.Equal(t, Idle, f.session.State())
	assert.Zero(t, f.scheduler.armed)
	assert.Equal(t, 1, f.camera.opens)
	assert.Equal(t, 1, f.camera.releases)
	assert.Empty(t, f.sink.frames)
}

func TestStart_OpenFailureStaysIdle(t *testing.T) {
	f := newFixture(t)
	f.camera.openErr = errors.New("no such device")

	err := f.session.Start()

	assert.ErrorIs(t, err, ErrDeviceUnavailable)
	assert.Contains(t, err.Error(), "no such device")
	assert.False(t, f.session.Running())
	assert.Zero(t, f.scheduler.armed)
}

func TestStart_ProcessesFirstFrameBeforeAnyTick(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.session.Start())

	assert.Equal(t, Running, f.session.State())
	assert.Len(t, f.sink.frames, 1)
	assert.Len(t, f.sink.histograms, 1)
	assert.Equal(t, 1, f.session.Stats().FramesProcessed)
	assert.Equal(t, 1, f.scheduler.armed)
	assert.Equal(t, f.cfg.Capture.Interval, f.scheduler.interval)
}

func TestStart_Twice(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.session.Start())
	require.NoError(t, f.session.Start())

	assert.Equal(t, 1, f.camera.opens)
	assert.Equal(t, 1, f.scheduler.armed)
	assert.Len(t, f.sink.frames, 1)
}

func TestStop_ReleasesHandles(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Start())

	f.session.Stop()
	f.session.Stop()

	assert.Equal(t, Idle, f.session.State())
	assert.Equal(t, 1, f.camera.releases)
	assert.Equal(t, 1, f.scheduler.cancelled)
	assert.False(t, f.scheduler.active())
}

func TestStopStartRoundTrip(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.session.Start())
	f.session.Stop()
	require.NoError(t, f.session.Start())

	assert.Equal(t, Running, f.session.State())
	assert.Equal(t, 2, f.camera.opens)
	assert.Equal(t, 1, f.camera.releases)
	assert.Equal(t, 1, f.camera.opens-f.camera.releases)
	assert.True(t, f.scheduler.active())
}

func TestOnTick_ProcessesFrames(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Start())

	f.scheduler.fn()
	f.scheduler.fn()

	assert.Len(t, f.sink.frames, 3)
	assert.Len(t, f.sink.histograms, 3)
	assert.Equal(t, 3, f.session.Stats().FramesProcessed)
}

func TestOnTick_FailedReadSkipsTick(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Start())

	f.camera.reads = []bool{false, true}
	f.scheduler.fn()

	assert.True(t, f.session.Running())
	assert.Len(t, f.sink.frames, 1)
	assert.Equal(t, 1, f.session.Stats().TicksSkipped)

	f.scheduler.fn()
	assert.Len(t, f.sink.frames, 2)
}

func TestOnTick_AfterStopIsIgnored(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Start())
	tick := f.scheduler.fn
	f.session.Stop()

	tick()

	assert.Len(t, f.sink.frames, 1)
	assert.Equal(t, Idle, f.session.State())
}

func TestToggle(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.session.Toggle())
	assert.True(t, f.session.Running())

	require.NoError(t, f.session.Toggle())
	assert.False(t, f.session.Running())

	f.camera.reads = []bool{false}
	assert.ErrorIs(t, f.session.Toggle(), ErrNoFrame)
	assert.False(t, f.session.Running())
}

func TestClose_ReleasesAndRefusesRestart(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Start())

	f.session.Close()
	f.session.Close()

	assert.Equal(t, Idle, f.session.State())
	assert.Equal(t, 1, f.camera.releases)
	assert.False(t, f.scheduler.active())
	assert.ErrorIs(t, f.session.Start(), ErrClosed)
}

func TestSinkImages(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Start())

	// a pure blue BGR frame shows up blue on screen
	frame, ok := f.sink.frames[0].(*image.RGBA)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 32, 24), frame.Bounds())
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 255, A: 255}, frame.RGBAAt(5, 5))

	hist := f.sink.histograms[0]
	assert.Equal(t, image.Rect(0, 0, 400, 300), hist.Bounds())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "State(7)", State(7).String())
}
