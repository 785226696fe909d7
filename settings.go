package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/drift"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/wayfarerhq/wayfarer/internal/catalog"
	"github.com/wayfarerhq/wayfarer/internal/prefs"
)

// buildSettingsPage creates the settings screen. Theme state lives on the
// app widget, so the route builder passes the current value and the toggle
// down, the same way the home route receives its callbacks.
func buildSettingsPage(ctx core.BuildContext, isDark bool, onToggleTheme func()) core.Widget {
	return SettingsScreen{IsDark: isDark, OnToggleTheme: onToggleTheme}
}

// SettingsScreen exposes the theme toggle and saved-data management.
type SettingsScreen struct {
	IsDark        bool
	OnToggleTheme func()
}

func (s SettingsScreen) CreateElement() core.Element {
	return core.NewStatefulElement(s, nil)
}

func (s SettingsScreen) Key() any {
	return nil
}

func (s SettingsScreen) CreateState() core.State {
	return &settingsState{}
}

type settingsState struct {
	core.StateBase
	store      *prefs.Store
	statusText *core.ManagedState[string]
}

func (s *settingsState) InitState() {
	s.store = prefs.NewStore()
	s.statusText = core.NewManagedState(&s.StateBase, "Your last search is saved automatically.")
}

// clearSavedSearch removes the persisted destination fields. Storage IO
// runs off the UI thread; the outcome re-enters it through drift.Dispatch.
func (s *settingsState) clearSavedSearch() {
	s.statusText.Set("Clearing saved search...")

	go func() {
		err := s.store.Delete(prefs.KeyDestinationFrom)
		if err == nil {
			err = s.store.Delete(prefs.KeyDestinationTo)
		}
		drift.Dispatch(func() {
			if err != nil {
				s.statusText.Set("Clear failed: " + err.Error())
				return
			}
			s.statusText.Set("Saved search cleared.")
		})
	}()
}

func (s *settingsState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	widget := s.Element().Widget().(SettingsScreen)

	themeValue := "Light"
	if widget.IsDark {
		themeValue = "Dark"
	}

	return screenPage(ctx, "Settings",
		sectionTitle("Appearance", colors),
		widgets.VSpace(12),
		infoCard(colors, widgets.RowOf(
			widgets.MainAxisAlignmentSpaceBetween,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMax,
			widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentStart,
				widgets.MainAxisSizeMin,
				widgets.TextOf("Dark theme", rendering.TextStyle{
					Color:    colors.OnSurface,
					FontSize: 16,
				}),
				widgets.VSpace(2),
				widgets.TextOf("Currently "+themeValue, labelStyle(colors)),
			),
			widgets.Toggle{
				Value: widget.IsDark,
				OnChanged: func(bool) {
					widget.OnToggleTheme()
				},
			},
		)),
		widgets.VSpace(24),

		sectionTitle("Saved Data", colors),
		widgets.VSpace(12),
		widgets.TextOf("Wayfarer restores your destination fields on the next launch.", labelStyle(colors)).
			WithWrap(true),
		widgets.VSpace(12),
		widgets.ButtonOf("Clear Saved Search", s.clearSavedSearch).
			WithColor(colors.Error, colors.OnError).
			WithPadding(layout.EdgeInsetsSymmetric(16, 10)).
			WithFontSize(14),
		widgets.VSpace(12),
		statusCard(s.statusText.Get(), colors),
		widgets.VSpace(24),

		sectionTitle("About", colors),
		widgets.VSpace(12),
		aboutCard(colors),
		widgets.VSpace(40),
	)
}

// aboutCard summarizes the app and the embedded catalog.
func aboutCard(colors theme.ColorScheme) core.Widget {
	rows := []core.Widget{
		aboutRow("App", "Wayfarer", colors),
	}

	if cat, err := catalog.Default(); err == nil {
		stats := cat.ComputeStats()
		rows = append(rows,
			widgets.VSpace(8),
			aboutRow("Catalog version", itoa(cat.Version), colors),
			widgets.VSpace(8),
			aboutRow("Destinations", itoa(stats.Destinations), colors),
			widgets.VSpace(8),
			aboutRow("Countries", itoa(stats.Countries), colors),
		)
	}

	return infoCard(colors, widgets.ColumnOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentStart,
		widgets.MainAxisSizeMin,
		rows...,
	))
}

func aboutRow(label, value string, colors theme.ColorScheme) core.Widget {
	return widgets.RowOf(
		widgets.MainAxisAlignmentSpaceBetween,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMax,
		widgets.TextOf(label, labelStyle(colors)),
		widgets.TextOf(value, rendering.TextStyle{
			Color:      colors.OnSurface,
			FontSize:   14,
			FontWeight: rendering.FontWeightSemibold,
		}),
	)
}
