package mapview

import "fmt"

// NativeMap is the callback surface of the wrapped native map view.
// View implements it over the platform view method channel.
type NativeMap interface {
	OnCreate() error
	OnStart() error
	OnResume() error
	OnPause() error
	OnStop() error
	OnDestroy() error
}

// Bridge forwards lifecycle events one-to-one to a native map. It holds
// no state of its own: every event maps onto exactly one native callback,
// in the order received. An event outside the six-value alphabet leaves
// the native view's state machine undefined, so Handle panics rather than
// guessing or dropping it.
type Bridge struct {
	view NativeMap
}

// NewBridge returns a bridge driving view.
func NewBridge(view NativeMap) *Bridge {
	return &Bridge{view: view}
}

// Handle forwards event to the matching native callback and returns any
// channel error. It panics on an unrecognized event.
func (b *Bridge) Handle(event Event) error {
	switch event {
	case Created:
		return b.view.OnCreate()
	case Started:
		return b.view.OnStart()
	case Resumed:
		return b.view.OnResume()
	case Paused:
		return b.view.OnPause()
	case Stopped:
		return b.view.OnStop()
	case Destroyed:
		return b.view.OnDestroy()
	}
	panic(fmt.Sprintf("mapview: unrecognized lifecycle event %d", int(event)))
}
