package main

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/go-drift/drift/pkg/platform"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"
)

// --- Test helpers ---

// recordingBridge captures native method invocations for assertions.
type recordingBridge struct {
	mu    sync.Mutex
	calls []bridgeCall
}

type bridgeCall struct {
	channel string
	method  string
	args    map[string]any
}

func (b *recordingBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args map[string]any
	if len(argsData) > 0 {
		json.Unmarshal(argsData, &args)
	}
	b.mu.Lock()
	b.calls = append(b.calls, bridgeCall{channel: channel, method: method, args: args})
	b.mu.Unlock()
	return platform.DefaultCodec.Encode(nil)
}

func (b *recordingBridge) StartEventStream(string) error { return nil }
func (b *recordingBridge) StopEventStream(string) error  { return nil }

// lifecycleCalls returns the native map lifecycle callbacks invoked, in order.
func (b *recordingBridge) lifecycleCalls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []string
	for _, c := range b.calls {
		if c.channel != "drift/platform_views" || c.method != "invokeViewMethod" {
			continue
		}
		name, _ := c.args["method"].(string)
		switch name {
		case "onCreate", "onStart", "onResume", "onPause", "onStop", "onDestroy":
			result = append(result, name)
		}
	}
	return result
}

// registryCalls returns the platform view registry calls with the given
// method, such as "create", "dispose", "setGeometry" or "setVisible".
func (b *recordingBridge) registryCalls(method string) []bridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []bridgeCall
	for _, c := range b.calls {
		if c.channel == "drift/platform_views" && c.method == method {
			result = append(result, c)
		}
	}
	return result
}

// viewMethodCalls returns invokeViewMethod calls carrying the given view
// method, such as "setCamera" or "addMarker".
func (b *recordingBridge) viewMethodCalls(method string) []bridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []bridgeCall
	for _, c := range b.calls {
		if c.channel != "drift/platform_views" || c.method != "invokeViewMethod" {
			continue
		}
		if name, _ := c.args["method"].(string); name == method {
			result = append(result, c)
		}
	}
	return result
}

// setupMapTest installs a recording bridge and a widget tester. The bridge
// must be installed first so the tester's frame-drained dispatch queue wins
// over the bridge helper's synchronous one.
func setupMapTest(t *testing.T) (*recordingBridge, *drifttest.WidgetTester) {
	bridge := &recordingBridge{}
	platform.SetupTestBridge(t.Cleanup)
	platform.SetNativeBridge(bridge)
	tester := drifttest.NewWidgetTesterWithT(t)
	return bridge, tester
}

// pushLifecycle delivers an app lifecycle state change the way the native
// side does, through the lifecycle event channel.
func pushLifecycle(t *testing.T, state string) {
	t.Helper()
	payload, err := platform.DefaultCodec.Encode(map[string]any{"state": state})
	if err != nil {
		t.Fatalf("encode lifecycle event: %v", err)
	}
	if err := platform.HandleEvent("drift/lifecycle/events", payload); err != nil {
		t.Fatalf("deliver lifecycle event: %v", err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- TripMapScreen tests ---

func TestTripMapMountWalksViewToResumed(t *testing.T) {
	bridge, tester := setupMapTest(t)

	if err := tester.PumpWidget(TripMapScreen{Slug: "seoul"}); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}

	if n := len(bridge.registryCalls("create")); n != 1 {
		t.Errorf("expected one native view create, got %d", n)
	}
	want := []string{"onCreate", "onStart", "onResume"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected native calls %v, got %v", want, got)
	}
}

func TestTripMapMountPointsCameraAtDestination(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})

	cameras := bridge.viewMethodCalls("setCamera")
	if len(cameras) != 1 {
		t.Fatalf("expected one setCamera call, got %d", len(cameras))
	}
	lat, _ := cameras[0].args["lat"].(float64)
	lng, _ := cameras[0].args["lng"].(float64)
	zoom, _ := cameras[0].args["zoom"].(float64)
	if math.Abs(lat-37.5665) > 1e-6 || math.Abs(lng-126.978) > 1e-6 {
		t.Errorf("expected the camera on Seoul, got %v, %v", lat, lng)
	}
	if zoom != mapZoomCity {
		t.Errorf("expected city zoom %v, got %v", mapZoomCity, zoom)
	}

	markers := bridge.viewMethodCalls("addMarker")
	if len(markers) != 1 {
		t.Fatalf("expected one addMarker call, got %d", len(markers))
	}
	if title, _ := markers[0].args["title"].(string); title != "Seoul" {
		t.Errorf("expected the marker titled Seoul, got %q", title)
	}
}

func TestTripMapShowsDestinationFacts(t *testing.T) {
	_, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})

	if !tester.Find(drifttest.ByText("Seoul, South Korea")).Exists() {
		t.Error("expected the destination title")
	}
	if !tester.Find(drifttest.ByTextContaining("5 nights")).Exists() {
		t.Error("expected the stay length in the facts line")
	}
	if !tester.Find(drifttest.ByText("Tap My Location to see how far away it is.")).Exists() {
		t.Error("expected the idle status text")
	}
}

func TestTripMapBackgroundAndForegroundMirrorToNative(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})

	pushLifecycle(t, "paused")
	want := []string{"onCreate", "onStart", "onResume", "onPause", "onStop"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Fatalf("after backgrounding: expected %v, got %v", want, got)
	}

	pushLifecycle(t, "resumed")
	want = append(want, "onStart", "onResume")
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("after foregrounding: expected %v, got %v", want, got)
	}
}

func TestTripMapRepeatedBackgroundingSendsNothing(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})

	pushLifecycle(t, "inactive")
	want := []string{"onCreate", "onStart", "onResume", "onPause", "onStop"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Fatalf("after inactive: expected %v, got %v", want, got)
	}

	// Already in the background; deepening it must not repeat pause/stop.
	pushLifecycle(t, "paused")
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("after paused while backgrounded: expected %v, got %v", want, got)
	}
}

func TestTripMapUnmountReleasesView(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})
	tester.PumpWidget(widgets.SizedBox{Width: 10, Height: 10})

	want := []string{"onCreate", "onStart", "onResume", "onPause", "onStop", "onDestroy"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected the full wind-down %v, got %v", want, got)
	}
	if n := len(bridge.registryCalls("dispose")); n != 1 {
		t.Errorf("expected one native view dispose, got %d", n)
	}

	// The lifecycle handler must be gone with the screen.
	pushLifecycle(t, "paused")
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected no native calls after unmount, got %v", got)
	}
}

func TestTripMapRemountForwardsEventsOnce(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})
	tester.PumpWidget(widgets.SizedBox{Width: 10, Height: 10})
	tester.PumpWidget(TripMapScreen{Slug: "seoul"})

	want := []string{
		"onCreate", "onStart", "onResume",
		"onPause", "onStop", "onDestroy",
		"onCreate", "onStart", "onResume",
	}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Fatalf("expected %v across unmount and remount, got %v", want, got)
	}

	// A handler leaked from the first mount would double these.
	pushLifecycle(t, "paused")
	want = append(want, "onPause", "onStop")
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("after backgrounding the remounted screen: expected %v, got %v", want, got)
	}

	if n := len(bridge.registryCalls("create")); n != 2 {
		t.Errorf("expected two native view creates, got %d", n)
	}
	if n := len(bridge.registryCalls("dispose")); n != 1 {
		t.Errorf("expected the first view's dispose only, got %d", n)
	}
}

func TestTripMapBackgroundedUnmountSkipsPause(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})
	pushLifecycle(t, "paused")

	tester.PumpWidget(widgets.SizedBox{Width: 10, Height: 10})

	// Pause and stop already ran on backgrounding; unmount only destroys.
	want := []string{"onCreate", "onStart", "onResume", "onPause", "onStop", "onDestroy"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if n := len(bridge.registryCalls("dispose")); n != 1 {
		t.Errorf("expected one native view dispose, got %d", n)
	}
}

func TestTripMapDetachedReleasesViewWhileMounted(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})
	pushLifecycle(t, "detached")

	want := []string{"onCreate", "onStart", "onResume", "onPause", "onStop", "onDestroy"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("after detach: expected %v, got %v", want, got)
	}
	if n := len(bridge.registryCalls("dispose")); n != 1 {
		t.Errorf("expected one native view dispose, got %d", n)
	}

	// Unmount after detach must not release twice.
	tester.PumpWidget(widgets.SizedBox{Width: 10, Height: 10})
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("after unmount: expected %v, got %v", want, got)
	}
	if n := len(bridge.registryCalls("dispose")); n != 1 {
		t.Errorf("expected the dispose count to stay at one, got %d", n)
	}
}

func TestTripMapSyncsGeometryAfterLayout(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "seoul"})
	// The sync waits for layout, so it lands on a following frame.
	tester.Pump()
	tester.Pump()

	geometries := bridge.registryCalls("setGeometry")
	if len(geometries) == 0 {
		t.Fatal("expected the native view geometry to be synced")
	}
	last := geometries[len(geometries)-1]
	width, _ := last.args["width"].(float64)
	height, _ := last.args["height"].(float64)
	if height != mapSlotHeight {
		t.Errorf("expected the slot height %v, got %v", mapSlotHeight, height)
	}
	if width <= 0 {
		t.Errorf("expected a laid-out width, got %v", width)
	}

	visibles := bridge.registryCalls("setVisible")
	if len(visibles) != 1 {
		t.Fatalf("expected one setVisible call, got %d", len(visibles))
	}
	if shown, _ := visibles[0].args["visible"].(bool); !shown {
		t.Error("expected the native view to be shown after the sync")
	}
}

func TestTripMapUnknownSlugShowsFallback(t *testing.T) {
	bridge, tester := setupMapTest(t)

	tester.PumpWidget(TripMapScreen{Slug: "atlantis"})

	if !tester.Find(drifttest.ByText("We couldn't find \"atlantis\" in the catalog.")).Exists() {
		t.Error("expected the unknown destination card")
	}
	if n := len(bridge.registryCalls("create")); n != 0 {
		t.Errorf("expected no native view for an unknown slug, got %d creates", n)
	}
}

// --- distanceKm tests ---

func TestDistanceKmSeoulToBusan(t *testing.T) {
	km := distanceKm(37.5665, 126.978, 35.1796, 129.0756)
	if km < 300 || km > 350 {
		t.Errorf("expected roughly 325 km between Seoul and Busan, got %.1f", km)
	}
}

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	if km := distanceKm(48.8566, 2.3522, 48.8566, 2.3522); km != 0 {
		t.Errorf("expected zero distance for the same point, got %v", km)
	}
}
