package main

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/drift"
	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"go.uber.org/zap"

	"github.com/wayfarerhq/wayfarer/internal/catalog"
	"github.com/wayfarerhq/wayfarer/internal/logging"
	"github.com/wayfarerhq/wayfarer/internal/mapview"
)

const (
	// mapZoomCity frames a destination at metro scale.
	mapZoomCity = 11.0

	// mapSlotHeight is the fixed height reserved for the native map.
	mapSlotHeight = 280.0
)

// buildTripMapPage shows the native map for the destination slug carried in
// the route arguments. The screen is wrapped in an ErrorBoundary so a build
// panic degrades to a card instead of taking the app down.
func buildTripMapPage(ctx core.BuildContext, settings navigation.RouteSettings) core.Widget {
	slug, _ := settings.Arguments.(string)

	return pageScaffold(ctx, "Trip Map", widgets.ErrorBoundary{
		ChildWidget: TripMapScreen{Slug: slug},
		OnError: func(err *errors.BuildError) {
			logging.Error("Trip map build failed", zap.Error(err))
		},
		FallbackBuilder: func(err *errors.BuildError) core.Widget {
			return widgets.PaddingAll(20,
				widgets.TextOf("The map is unavailable right now.", rendering.TextStyle{
					Color:    rendering.RGB(0x88, 0x88, 0x88),
					FontSize: 14,
				}),
			)
		},
	})
}

// TripMapScreen hosts the native map view for one destination. The screen
// owns the view: it is acquired in InitState, mirrors the app lifecycle
// while mounted, and is released exactly once on unmount.
type TripMapScreen struct {
	Slug string
}

func (t TripMapScreen) CreateElement() core.Element {
	return core.NewStatefulElement(t, nil)
}

func (t TripMapScreen) Key() any {
	return nil
}

func (t TripMapScreen) CreateState() core.State {
	return &tripMapState{}
}

type tripMapState struct {
	core.StateBase
	destination *catalog.Destination
	statusText  *core.ManagedState[string]

	// Lifecycle handlers run on the goroutine delivering the platform
	// event, so everything below is guarded by mu.
	mu         sync.Mutex
	view       *mapview.View
	bridge     *mapview.Bridge
	foreground bool
	released   bool

	removeLifecycle func()
}

func (s *tripMapState) InitState() {
	widget := s.Element().Widget().(TripMapScreen)

	status := "Tap My Location to see how far away it is."

	cat, err := catalog.Default()
	if err != nil {
		logging.Error("Load catalog failed", zap.Error(err))
	} else {
		s.destination = cat.FindBySlug(widget.Slug)
	}

	if s.destination == nil {
		status = "We couldn't find that destination."
	} else if err := s.acquireMap(s.destination); err != nil {
		logging.Error("Create trip map failed",
			zap.String("slug", widget.Slug),
			zap.Error(err))
		status = "The native map is unavailable: " + err.Error()
	}

	s.statusText = core.NewManagedState(&s.StateBase, status)

	s.removeLifecycle = platform.Lifecycle.AddHandler(s.onLifecycle)
	s.OnDispose(s.teardown)
}

// acquireMap creates the native view, walks it to the resumed state, and
// points the camera at the destination.
func (s *tripMapState) acquireMap(dest *catalog.Destination) error {
	view, err := mapview.Acquire(map[string]any{
		"lat":  dest.Lat,
		"lng":  dest.Lng,
		"zoom": mapZoomCity,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.view = view
	s.bridge = mapview.NewBridge(view)
	s.deliver(mapview.Created, mapview.Started, mapview.Resumed)
	s.foreground = true
	s.mu.Unlock()

	if err := view.SetCamera(dest.Lat, dest.Lng, mapZoomCity); err != nil {
		logging.Warn("Set camera failed", zap.Error(err))
	}
	if err := view.AddMarker(dest.Lat, dest.Lng, dest.Name); err != nil {
		logging.Warn("Add marker failed", zap.Error(err))
	}

	logging.LogNativeView(view.ViewID(), "acquired")
	return nil
}

// deliver forwards lifecycle events to the native map in order. Callers
// hold mu.
func (s *tripMapState) deliver(events ...mapview.Event) {
	for _, event := range events {
		if err := s.bridge.Handle(event); err != nil {
			logging.Warn("Map lifecycle call failed",
				zap.Stringer("event", event),
				zap.Int64("viewId", s.view.ViewID()),
				zap.Error(err))
		}
	}
}

// onLifecycle mirrors app lifecycle changes onto the native map while the
// screen is mounted. A detached app is going away for good, so the view is
// released here rather than waiting for a dispose that may never come.
func (s *tripMapState) onLifecycle(state platform.LifecycleState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released || s.bridge == nil {
		return
	}

	events, foreground := mapview.ForegroundTransition(s.foreground, state)
	s.foreground = foreground
	s.deliver(events...)

	if state == platform.LifecycleStateDetached {
		s.releaseLocked()
	}
}

// teardown detaches the lifecycle handler and releases the native view.
// Registered with OnDispose so it runs once on every unmount path.
func (s *tripMapState) teardown() {
	if s.removeLifecycle != nil {
		s.removeLifecycle()
		s.removeLifecycle = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

// releaseLocked winds the native view down through its remaining lifecycle
// stages and releases it. Callers hold mu; repeat calls are no-ops.
func (s *tripMapState) releaseLocked() {
	if s.released {
		return
	}
	s.released = true

	if s.view == nil {
		return
	}

	if s.foreground {
		s.deliver(mapview.Paused, mapview.Stopped)
		s.foreground = false
	}
	s.deliver(mapview.Destroyed)

	logging.LogNativeView(s.view.ViewID(), "released")
	mapview.Release(s.view)
}

// locateMe fetches the device position and reports the distance to the
// destination. The fetch runs off the UI thread; the result re-enters it
// through drift.Dispatch.
func (s *tripMapState) locateMe() {
	dest := s.destination
	if dest == nil {
		return
	}

	s.statusText.Set("Getting location...")

	go func() {
		ctx := context.Background()
		loc, err := platform.Location.GetCurrent(ctx, platform.LocationOptions{
			HighAccuracy: true,
		})
		drift.Dispatch(func() {
			if err != nil {
				s.statusText.Set("Location error: " + err.Error())
				return
			}
			if loc == nil {
				s.statusText.Set("No location available")
				return
			}
			km := distanceKm(loc.Latitude, loc.Longitude, dest.Lat, dest.Lng)
			s.statusText.Set(fmt.Sprintf("%s is %.0f km away.", dest.Name, km))
		})
	}()
}

// shareTrip opens the platform share sheet with a short trip pitch.
func (s *tripMapState) shareTrip() {
	dest := s.destination
	if dest == nil {
		return
	}

	text := "Trip idea: " + dest.Name + ", " + dest.Country +
		" (" + itoa(dest.Nights) + " nights with Wayfarer)"

	result, err := platform.Share.ShareText(text)
	if err != nil {
		s.statusText.Set("Error sharing: " + err.Error())
		return
	}
	s.statusText.Set("Share result: " + string(result))
}

func (s *tripMapState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	dest := s.destination

	if dest == nil {
		widget := s.Element().Widget().(TripMapScreen)
		return widgets.PaddingAll(20,
			statusCard("We couldn't find \""+widget.Slug+"\" in the catalog.", colors),
		)
	}

	mapArea := core.Widget(MapSlot{View: s.view})
	if s.view == nil {
		mapArea = statusCard("The native map could not be created on this device.", colors)
	}

	return widgets.Padding{
		Padding: layout.EdgeInsetsAll(20),
		ChildWidget: widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMax,

			widgets.TextOf(dest.Name+", "+dest.Country, rendering.TextStyle{
				Color:      colors.OnBackground,
				FontSize:   20,
				FontWeight: rendering.FontWeightBold,
			}),
			widgets.VSpace(4),
			widgets.TextOf(
				itoa(dest.Nights)+" nights · "+priceBandLabel(dest.PriceBand)+" · "+
					fmt.Sprintf("%.4f, %.4f", dest.Lat, dest.Lng),
				labelStyle(colors),
			),
			widgets.VSpace(16),

			mapArea,
			widgets.VSpace(16),

			widgets.RowOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMin,
				widgets.ButtonOf("My Location", s.locateMe).
					WithColor(colors.Primary, colors.OnPrimary).
					WithPadding(layout.EdgeInsetsSymmetric(16, 10)).
					WithFontSize(14),
				widgets.HSpace(8),
				widgets.ButtonOf("Share Trip", s.shareTrip).
					WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant).
					WithPadding(layout.EdgeInsetsSymmetric(16, 10)).
					WithFontSize(14),
			),
			widgets.VSpace(16),

			statusCard(s.statusText.Get(), colors),
		),
	}
}

// MapSlot reserves layout space for the native map and keeps the native
// surface aligned with it. The native view renders above the Drift surface,
// so the slot itself only paints a placeholder.
type MapSlot struct {
	View *mapview.View
}

func (m MapSlot) CreateElement() core.Element {
	return core.NewStatefulElement(m, nil)
}

func (m MapSlot) Key() any {
	return nil
}

func (m MapSlot) CreateState() core.State {
	return &mapSlotState{}
}

type mapSlotState struct {
	core.StateBase
	disposed bool
	retries  int
}

func (s *mapSlotState) InitState() {
	// Geometry is only known after layout; sync on the next frame.
	platform.Dispatch(s.syncGeometry)
	s.OnDispose(func() {
		s.disposed = true
	})
}

// syncGeometry measures the laid-out slot and positions the native view
// over it. Runs on the UI thread via the dispatch queue.
func (s *mapSlotState) syncGeometry() {
	if s.disposed {
		return
	}
	widget := s.Element().Widget().(MapSlot)
	if widget.View == nil {
		return
	}

	renderObject := s.Element().RenderObject()
	if renderObject == nil {
		s.retrySync()
		return
	}
	sizer, ok := renderObject.(interface{ Size() rendering.Size })
	if !ok {
		return
	}

	size := sizer.Size()
	if size.Width == 0 || size.Height == 0 {
		s.retrySync()
		return
	}

	offset := core.GlobalOffsetOf(s.Element())
	widget.View.SetOffset(rendering.Offset{X: offset.X, Y: offset.Y})
	widget.View.SetSize(size)
	widget.View.SetVisible(true)

	logging.Debug("Map geometry synced",
		zap.Int64("viewId", widget.View.ViewID()),
		zap.Float64("width", size.Width),
		zap.Float64("height", size.Height))
}

// retrySync requeues the geometry sync for the next frame, giving layout a
// bounded number of chances to produce a size.
func (s *mapSlotState) retrySync() {
	if s.retries < 3 {
		s.retries++
		platform.Dispatch(s.syncGeometry)
	}
}

func (s *mapSlotState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	return widgets.DecoratedBox{
		Color:        colors.SurfaceVariant,
		BorderRadius: 12,
		Overflow:     rendering.OverflowClip,
		ChildWidget: widgets.Container{
			Height:    mapSlotHeight,
			Alignment: layout.AlignmentCenter,
			ChildWidget: widgets.RowOf(
				widgets.MainAxisAlignmentCenter,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMax,
				widgets.TextOf("Map", labelStyle(colors)),
			),
		},
	}
}

// distanceKm returns the great-circle distance between two coordinates.
func distanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
