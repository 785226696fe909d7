// Package mapview bridges the widget tree to the native trip map. The
// Go side holds a proxy for the platform view and forwards screen
// lifecycle events one-to-one to the native map's callbacks over the
// platform view method channel.
package mapview

import "github.com/go-drift/drift/pkg/platform"

// Event is a screen lifecycle event forwarded to the native map view.
// The six values mirror the native view's callback set exactly.
type Event int

const (
	Created Event = iota
	Started
	Resumed
	Paused
	Stopped
	Destroyed
)

// String returns the event name as the native side spells it.
func (e Event) String() string {
	switch e {
	case Created:
		return "created"
	case Started:
		return "started"
	case Resumed:
		return "resumed"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

// ForegroundTransition translates an app lifecycle state into the events
// to forward to the native map, given whether the map currently considers
// itself foregrounded. It returns the events to deliver in order and the
// new foreground flag. Returning to the resumed state replays Started and
// Resumed; leaving it delivers Paused and Stopped. Detached means the app
// is going away; the caller is expected to follow up with its release
// path, which delivers Destroyed.
func ForegroundTransition(foreground bool, state platform.LifecycleState) ([]Event, bool) {
	switch state {
	case platform.LifecycleStateResumed:
		if !foreground {
			return []Event{Started, Resumed}, true
		}
		return nil, true
	case platform.LifecycleStateInactive, platform.LifecycleStatePaused, platform.LifecycleStateDetached:
		if foreground {
			return []Event{Paused, Stopped}, false
		}
		return nil, false
	}
	return nil, foreground
}
