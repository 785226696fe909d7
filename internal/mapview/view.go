package mapview

import (
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/rendering"
)

// ViewType is the platform view identifier for the native trip map.
const ViewType = "wayfarer/trip_map"

// View is the Go-side proxy for the native map view (MapView on Android,
// MKMapView on iOS). Lifecycle callbacks and camera commands travel over
// the platform view method channel; rendering happens entirely on the
// native side.
type View struct {
	viewID  int64
	offset  rendering.Offset
	size    rendering.Size
	visible bool
}

func newView(viewID int64) *View {
	return &View{viewID: viewID}
}

// ViewID implements platform.PlatformView.
func (v *View) ViewID() int64 {
	return v.viewID
}

// ViewType implements platform.PlatformView.
func (v *View) ViewType() string {
	return ViewType
}

// Create implements platform.PlatformView. The registry notifies native to
// create the view; the map needs no extra setup beyond its create params.
func (v *View) Create(params map[string]any) error {
	return nil
}

// Dispose implements platform.PlatformView. The registry sends the dispose
// command to the native side.
func (v *View) Dispose() {}

// SetSize implements platform.PlatformView.
func (v *View) SetSize(size rendering.Size) {
	v.size = size
	platform.GetPlatformViewRegistry().UpdateViewGeometry(v.viewID, v.offset, v.size)
}

// SetOffset implements platform.PlatformView.
func (v *View) SetOffset(offset rendering.Offset) {
	v.offset = offset
	platform.GetPlatformViewRegistry().UpdateViewGeometry(v.viewID, v.offset, v.size)
}

// SetVisible implements platform.PlatformView.
func (v *View) SetVisible(visible bool) {
	v.visible = visible
	platform.GetPlatformViewRegistry().SetViewVisible(v.viewID, visible)
}

// OnCreate forwards the created callback to the native map.
func (v *View) OnCreate() error {
	return v.invoke("onCreate")
}

// OnStart forwards the started callback to the native map.
func (v *View) OnStart() error {
	return v.invoke("onStart")
}

// OnResume forwards the resumed callback to the native map.
func (v *View) OnResume() error {
	return v.invoke("onResume")
}

// OnPause forwards the paused callback to the native map.
func (v *View) OnPause() error {
	return v.invoke("onPause")
}

// OnStop forwards the stopped callback to the native map.
func (v *View) OnStop() error {
	return v.invoke("onStop")
}

// OnDestroy forwards the destroyed callback to the native map.
func (v *View) OnDestroy() error {
	return v.invoke("onDestroy")
}

// SetCamera moves the map camera to the given coordinates.
func (v *View) SetCamera(lat, lng, zoom float64) error {
	_, err := platform.GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "setCamera", map[string]any{
		"lat":  lat,
		"lng":  lng,
		"zoom": zoom,
	})
	return err
}

// AddMarker drops a labeled marker at the given coordinates.
func (v *View) AddMarker(lat, lng float64, title string) error {
	_, err := platform.GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "addMarker", map[string]any{
		"lat":   lat,
		"lng":   lng,
		"title": title,
	})
	return err
}

func (v *View) invoke(method string) error {
	_, err := platform.GetPlatformViewRegistry().InvokeViewMethod(v.viewID, method, nil)
	return err
}

// Acquire creates a native map view through the platform view registry.
// Callers own the returned view and must pair every Acquire with exactly
// one Release.
func Acquire(params map[string]any) (*View, error) {
	pv, err := platform.GetPlatformViewRegistry().Create(ViewType, params)
	if err != nil {
		return nil, err
	}
	return pv.(*View), nil
}

// Release destroys the native view. Releasing an already-released view is
// a no-op, so every teardown path can call it safely.
func Release(v *View) {
	if v == nil {
		return
	}
	platform.GetPlatformViewRegistry().Dispose(v.viewID)
}

// viewFactory creates trip map platform views.
type viewFactory struct{}

func (f *viewFactory) ViewType() string {
	return ViewType
}

func (f *viewFactory) Create(viewID int64, params map[string]any) (platform.PlatformView, error) {
	return newView(viewID), nil
}

func init() {
	platform.GetPlatformViewRegistry().RegisterFactory(&viewFactory{})
}
