package mapview_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/go-drift/drift/pkg/platform"

	"github.com/wayfarerhq/wayfarer/internal/mapview"
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

// viewCalls returns the platform view registry calls with the given method.
func (b *recordingBridge) viewCalls(method string) []bridgeCall {
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

func setupRecordingBridge(t *testing.T) *recordingBridge {
	bridge := &recordingBridge{}
	platform.SetupTestBridge(t.Cleanup)
	platform.SetNativeBridge(bridge)
	return bridge
}

func acquireView(t *testing.T) *mapview.View {
	view, err := mapview.Acquire(nil)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	return view
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

// --- Bridge tests ---

func TestBridgeForwardsMountSequenceInOrder(t *testing.T) {
	bridge := setupRecordingBridge(t)
	b := mapview.NewBridge(acquireView(t))

	for _, event := range []mapview.Event{mapview.Created, mapview.Started, mapview.Resumed} {
		if err := b.Handle(event); err != nil {
			t.Fatalf("handle %v: %v", event, err)
		}
	}

	want := []string{"onCreate", "onStart", "onResume"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected native calls %v, got %v", want, got)
	}
}

func TestBridgeForwardsFullAlphabetOneToOne(t *testing.T) {
	bridge := setupRecordingBridge(t)
	b := mapview.NewBridge(acquireView(t))

	events := []mapview.Event{
		mapview.Created, mapview.Started, mapview.Resumed,
		mapview.Paused, mapview.Stopped, mapview.Destroyed,
	}
	for _, event := range events {
		if err := b.Handle(event); err != nil {
			t.Fatalf("handle %v: %v", event, err)
		}
	}

	want := []string{"onCreate", "onStart", "onResume", "onPause", "onStop", "onDestroy"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected native calls %v, got %v", want, got)
	}
}

func TestBridgeUnrecognizedEventPanics(t *testing.T) {
	bridge := setupRecordingBridge(t)
	b := mapview.NewBridge(acquireView(t))

	if err := b.Handle(mapview.Created); err != nil {
		t.Fatalf("handle created: %v", err)
	}
	before := len(bridge.lifecycleCalls())

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for unrecognized event")
			}
		}()
		b.Handle(mapview.Event(99))
	}()

	if after := len(bridge.lifecycleCalls()); after != before {
		t.Errorf("expected no native calls after unrecognized event, got %d new", after-before)
	}
}

func TestBridgeRepeatedEventsForwardVerbatim(t *testing.T) {
	bridge := setupRecordingBridge(t)
	b := mapview.NewBridge(acquireView(t))

	b.Handle(mapview.Paused)
	b.Handle(mapview.Paused)

	want := []string{"onPause", "onPause"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected verbatim forwarding %v, got %v", want, got)
	}
}
