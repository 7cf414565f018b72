package probe

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sigmalogic/deviceprobe/internal/battery"
	"github.com/sigmalogic/deviceprobe/internal/channel"
	"github.com/sigmalogic/deviceprobe/internal/device"
	"github.com/sigmalogic/deviceprobe/internal/platform"
	"github.com/sigmalogic/deviceprobe/internal/storage"
)

type stubDevice struct{}

func (stubDevice) Model(ctx context.Context) string        { return "iPhone15,3" }
func (stubDevice) OSVersion(ctx context.Context) string    { return device.FormatOSVersion("iOS", "17.4") }
func (stubDevice) Manufacturer(ctx context.Context) string { return device.Apple }

type stubMonitor struct {
	level   float64
	enabled bool
}

func (m *stubMonitor) SetBatteryMonitoringEnabled(enabled bool) { m.enabled = enabled }
func (m *stubMonitor) BatteryLevel() float64                    { return m.level }

type stubStorage struct {
	info *storage.Info
	err  error
}

func (s *stubStorage) GetInfo(ctx context.Context) (*storage.Info, error) {
	return s.info, s.err
}

type brokenBattery struct{}

func (brokenBattery) Level(ctx context.Context) (int, error) {
	return 0, errors.New("battery service crashed")
}

type outOfRangeBattery struct{}

func (outOfRangeBattery) Level(ctx context.Context) (int, error) {
	return 150, nil
}

func newTestChannel(b battery.Reader, s storage.Reader) *channel.MethodChannel {
	p := NewPlatformFrom(stubDevice{}, b, s)
	return NewDispatcher(p).Register(channel.NewMessenger())
}

func send(t *testing.T, c *channel.MethodChannel, method string) string {
	t.Helper()
	raw, err := c.InvokeMethod(context.Background(), method, nil)
	if err != nil {
		t.Fatalf("%s failed: %v", method, err)
	}
	return string(raw)
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		if got := ParseMethod(m.String()); got != m {
			t.Errorf("ParseMethod(%q) = %v, want %v", m.String(), got, m)
		}
	}
	for _, name := range []string{"", "getdevicemodel", "GetDeviceModel", "doesNotExist", "unknown"} {
		if got := ParseMethod(name); got != MethodUnknown {
			t.Errorf("ParseMethod(%q) = %v, want MethodUnknown", name, got)
		}
	}
}

func TestScenarios(t *testing.T) {
	monitor := &stubMonitor{level: 0.73}
	c := newTestChannel(battery.NewMonitorReader(monitor), &stubStorage{info: &storage.Info{Total: 128000000000, Available: 1 << 30}})

	if got := send(t, c, "getManufacturer"); got != `"Apple"` {
		t.Errorf("manufacturer: %s", got)
	}
	if got := send(t, c, "getOSVersion"); got != `"iOS 17.4"` {
		t.Errorf("os version: %s", got)
	}
	if got := send(t, c, "getBatteryLevel"); got != "72" && got != "73" {
		t.Errorf("battery: %s", got)
	}
	if !monitor.enabled {
		t.Error("battery monitoring should be enabled before sampling")
	}
	if got := send(t, c, "getTotalStorage"); got != `"119.21 GB"` {
		t.Errorf("total storage: %s", got)
	}
	if got := send(t, c, "getAvailableStorage"); got != `"1.00 GB"` {
		t.Errorf("available storage: %s", got)
	}
	if got := send(t, c, "getDeviceModel"); got != `"iPhone15,3"` {
		t.Errorf("model: %s", got)
	}

	if _, err := c.InvokeMethod(context.Background(), "doesNotExist", nil); !errors.Is(err, channel.ErrNotImplemented) {
		t.Errorf("expected not implemented, got %v", err)
	}
}

func TestBatteryUnavailable(t *testing.T) {
	readers := map[string]battery.Reader{
		"sentinel":     battery.NewMonitorReader(&stubMonitor{level: -1}),
		"out of range": outOfRangeBattery{},
	}
	for name, r := range readers {
		t.Run(name, func(t *testing.T) {
			c := newTestChannel(r, &stubStorage{})
			_, err := c.InvokeMethod(context.Background(), "getBatteryLevel", nil)

			var replyErr *channel.Error
			if !errors.As(err, &replyErr) {
				t.Fatalf("expected error reply, got %v", err)
			}
			if replyErr.Code != "UNAVAILABLE" || replyErr.Message != "Battery level not available" || replyErr.Details != nil {
				t.Errorf("unexpected error frame: %+v", replyErr)
			}
		})
	}
}

func TestBatteryOtherFailure(t *testing.T) {
	c := newTestChannel(brokenBattery{}, &stubStorage{})
	_, err := c.InvokeMethod(context.Background(), "getBatteryLevel", nil)

	var replyErr *channel.Error
	if !errors.As(err, &replyErr) || replyErr.Code != CodeError {
		t.Fatalf("expected %s error, got %v", CodeError, err)
	}
}

func TestStorageUnknown(t *testing.T) {
	c := newTestChannel(battery.NewMonitorReader(&stubMonitor{level: 1}), &stubStorage{err: errors.New("no volume")})

	for _, method := range []string{"getTotalStorage", "getAvailableStorage"} {
		if got := send(t, c, method); got != `"Unknown"` {
			t.Errorf("%s: expected Unknown, got %s", method, got)
		}
	}
}

func TestSupportedMethodsNeverNotImplemented(t *testing.T) {
	c := newTestChannel(battery.NewMonitorReader(&stubMonitor{level: -1}), &stubStorage{err: errors.New("no volume")})
	for _, m := range Methods() {
		_, err := c.InvokeMethod(context.Background(), m.String(), nil)
		if errors.Is(err, channel.ErrNotImplemented) {
			t.Errorf("%s answered not implemented", m)
		}
	}
}

func TestArgumentsIgnored(t *testing.T) {
	c := newTestChannel(battery.NewMonitorReader(&stubMonitor{level: 0.5}), &stubStorage{})
	raw, err := c.InvokeMethod(context.Background(), "getManufacturer", []byte(`{"verbose":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"Apple"` {
		t.Errorf("unexpected value: %s", raw)
	}
}

func TestCollect(t *testing.T) {
	c := newTestChannel(battery.NewMonitorReader(&stubMonitor{level: 0.5}), &stubStorage{info: &storage.Info{Total: 1 << 30}})
	s, err := Collect(context.Background(), c)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if s.Manufacturer != "Apple" || s.OSVersion != "iOS 17.4" || s.TotalStorage != "1.00 GB" || s.AvailableStorage != "0.00 GB" {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if s.BatteryLevel == nil || *s.BatteryLevel != 50 {
		t.Errorf("unexpected battery level: %v", s.BatteryLevel)
	}

	c = newTestChannel(battery.NewMonitorReader(&stubMonitor{level: -1}), &stubStorage{})
	s, err = Collect(context.Background(), c)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if s.BatteryLevel != nil {
		t.Errorf("expected nil battery level, got %d", *s.BatteryLevel)
	}
}

var sizePattern = regexp.MustCompile(`^(Unknown|\d+\.\d{2} GB)$`)

func TestPlatformProbe(t *testing.T) {
	c := NewDispatcher(NewPlatform(Options{})).Register(channel.NewMessenger())
	ctx := context.Background()

	s, err := Collect(ctx, c)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if !strings.HasPrefix(s.OSVersion, platform.Name()+" ") {
		t.Errorf("unexpected OS version: %q", s.OSVersion)
	}
	for _, size := range []string{s.TotalStorage, s.AvailableStorage} {
		if !sizePattern.MatchString(size) {
			t.Errorf("unexpected storage string: %q", size)
		}
	}
	if s.BatteryLevel != nil && (*s.BatteryLevel < 0 || *s.BatteryLevel > 100) {
		t.Errorf("battery level out of range: %d", *s.BatteryLevel)
	}

	again, err := Collect(ctx, c)
	if err != nil {
		t.Fatal(err)
	}
	if again.Model != s.Model || again.OSVersion != s.OSVersion || again.Manufacturer != s.Manufacturer || again.TotalStorage != s.TotalStorage {
		t.Errorf("stable values changed: %+v vs %+v", s, again)
	}
}

func TestEmptyMethodNotImplemented(t *testing.T) {
	m := channel.NewMessenger()
	NewDispatcher(NewPlatformFrom(stubDevice{}, battery.NewMonitorReader(&stubMonitor{level: 1}), &stubStorage{})).Register(m)

	if reply := m.Send(context.Background(), ChannelName, []byte(`{"method":""}`)); len(reply) != 0 {
		t.Fatalf("expected empty reply, got %s", reply)
	}
}

func TestHandleQuietAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}()

	c := newTestChannel(battery.NewMonitorReader(&stubMonitor{level: 1}), &stubStorage{})
	send(t, c, "getManufacturer")

	if buf.Len() != 0 {
		t.Errorf("expected no log output, got %q", buf.String())
	}
}
