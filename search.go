package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/drift"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"go.uber.org/zap"

	"github.com/wayfarerhq/wayfarer/internal/logging"
	"github.com/wayfarerhq/wayfarer/internal/prefs"
	"github.com/wayfarerhq/wayfarer/internal/trip"
)

// Placeholder text for the destination inputs. Restored fields carry their
// own placeholder, so these only seed fresh sessions.
const (
	originPlaceholder      = "Leaving from"
	destinationPlaceholder = "Choose Destination"
)

// tripQuery carries the search parameters to the trips screen.
type tripQuery struct {
	Origin string
	Query  string
	Guests int
}

// buildSearchPage creates the landing page: destination inputs, the guest
// stepper, and the search button.
func buildSearchPage(ctx core.BuildContext) core.Widget {
	return SearchScreen{}
}

// SearchScreen is the trip search form. It owns the booking state and
// persists the destination fields across app restarts.
type SearchScreen struct{}

func (s SearchScreen) CreateElement() core.Element {
	return core.NewStatefulElement(s, nil)
}

func (s SearchScreen) Key() any {
	return nil
}

func (s SearchScreen) CreateState() core.State {
	return &searchScreenState{}
}

type searchScreenState struct {
	core.StateBase
	counter *trip.Counter
	from    *trip.Field
	to      *trip.Field
	store   *prefs.Store
	origin  string
	query   string
}

func (s *searchScreenState) InitState() {
	s.counter = trip.NewCounter(trip.MaxGuests)
	s.from = trip.NewField(originPlaceholder)
	s.to = trip.NewField(destinationPlaceholder)
	s.store = prefs.NewStore()
	s.restoreFields()
	s.OnDispose(s.saveFields)
}

// restoreFields loads any saved destination fields and swaps them in.
// Storage access runs off the UI thread; the swap is dispatched back.
func (s *searchScreenState) restoreFields() {
	store := s.store
	go func() {
		fromPair, fromOK, fromErr := store.LoadStrings(prefs.KeyDestinationFrom)
		toPair, toOK, toErr := store.LoadStrings(prefs.KeyDestinationTo)
		if fromErr != nil {
			logging.Warn("restore origin field failed", zap.Error(fromErr))
		}
		if toErr != nil {
			logging.Warn("restore destination field failed", zap.Error(toErr))
		}
		if !fromOK && !toOK {
			return
		}
		drift.Dispatch(func() {
			s.SetState(func() {
				if fromOK {
					if field, err := trip.RestoreField(fromPair); err == nil {
						s.from = field
						s.origin = chosenText(field)
					} else {
						logging.Warn("discarding saved origin field", zap.Error(err))
					}
				}
				if toOK {
					if field, err := trip.RestoreField(toPair); err == nil {
						s.to = field
						s.query = chosenText(field)
					} else {
						logging.Warn("discarding saved destination field", zap.Error(err))
					}
				}
			})
		})
	}()
}

// saveFields persists both destination fields. The field pointers are
// captured on the UI thread; the storage write happens off it, which is
// safe because Field reads are.
func (s *searchScreenState) saveFields() {
	store := s.store
	from, to := s.from, s.to
	go func() {
		if err := store.SaveState(prefs.KeyDestinationFrom, from); err != nil {
			logging.Warn("save origin field failed", zap.Error(err))
		}
		if err := store.SaveState(prefs.KeyDestinationTo, to); err != nil {
			logging.Warn("save destination field failed", zap.Error(err))
		}
	}()
}

func (s *searchScreenState) findTrips(ctx core.BuildContext) {
	s.saveFields()
	nav := navigation.NavigatorOf(ctx)
	if nav != nil {
		nav.PushNamed("/trips", tripQuery{
			Origin: s.origin,
			Query:  s.query,
			Guests: s.counter.Count(),
		})
	}
}

// summaryLine describes the current selection under the form.
func (s *searchScreenState) summaryLine() string {
	destination := s.query
	if destination == "" {
		destination = "anywhere"
	}
	line := itoa(s.counter.Count()) + " guests to " + destination
	if s.counter.Count() == 1 {
		line = "1 guest to " + destination
	}
	if s.origin != "" {
		line += " from " + s.origin
	}
	return line
}

func (s *searchScreenState) Build(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	return widgets.Expanded{
		ChildWidget: widgets.Container{
			Color: colors.Background,
			ChildWidget: widgets.ScrollView{
				ScrollDirection: widgets.AxisVertical,
				Physics:         widgets.BouncingScrollPhysics{},
				Padding:         widgets.SafeAreaPadding(ctx).Add(20),
				ChildWidget: widgets.ColumnOf(
					widgets.MainAxisAlignmentStart,
					widgets.CrossAxisAlignmentStart,
					widgets.MainAxisSizeMin,

					// Title row with settings access
					widgets.RowOf(
						widgets.MainAxisAlignmentSpaceBetween,
						widgets.CrossAxisAlignmentStart,
						widgets.MainAxisSizeMax,
						widgets.TextOf("Wayfarer", textTheme.HeadlineLarge),
						widgets.ButtonOf("Settings", func() {
							nav := navigation.NavigatorOf(ctx)
							if nav != nil {
								nav.PushNamed("/settings", nil)
							}
						}).WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant).
							WithPadding(layout.EdgeInsetsSymmetric(14, 8)).
							WithFontSize(13),
					),
					widgets.VSpace(4),
					widgets.TextOf("Plan your next trip", rendering.TextStyle{
						Color:    colors.OnSurfaceVariant,
						FontSize: 14,
					}),
					widgets.VSpace(32),

					sectionTitle("Where are you going?", colors),
					widgets.VSpace(16),
					DestinationField{
						Field:       s.from,
						Label:       "From",
						InputAction: platform.TextInputActionNext,
						OnChanged: func(text string) {
							s.SetState(func() { s.origin = text })
						},
						WidgetKey: "search-from",
					},
					widgets.VSpace(16),
					DestinationField{
						Field:       s.to,
						Label:       "To",
						InputAction: platform.TextInputActionDone,
						OnChanged: func(text string) {
							s.SetState(func() { s.query = text })
						},
						WidgetKey: "search-to",
					},
					widgets.VSpace(32),

					sectionTitle("Who's coming?", colors),
					widgets.VSpace(16),
					guestStepper(ctx, s.counter, func() {
						s.SetState(func() { s.counter.Increment() })
					}),
					widgets.VSpace(32),

					widgets.ButtonOf("Find Trips", func() {
						s.findTrips(ctx)
					}).WithPadding(layout.EdgeInsetsSymmetric(32, 14)).
						WithDisabled(!s.counter.IsValid()),
					widgets.VSpace(12),
					widgets.TextOf(s.summaryLine(), rendering.TextStyle{
						Color:    colors.OnSurfaceVariant,
						FontSize: 13,
					}),
					widgets.VSpace(40),
				),
			},
		},
	}
}

// chosenText returns the field's text when the user actually picked one.
func chosenText(field *trip.Field) string {
	if field.IsPlaceholder() {
		return ""
	}
	return field.Text()
}
