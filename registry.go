package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/navigation"
)

// Screen describes a routable page.
type Screen struct {
	Route    string
	Title    string
	Subtitle string
	Builder  func(ctx core.BuildContext, settings navigation.RouteSettings) core.Widget
}

// screens is the registry of routable pages. The search page ("/") and the
// settings page are wired in app.go because they need app-level state.
var screens = []Screen{
	{"/trips", "Trips", "Destinations matching your search", buildTripsPage},
	{"/map", "Trip Map", "Native map preview for a destination", buildTripMapPage},
}

// settingsScreen returns the settings registry entry. Its builder lives on
// the app state because toggling the theme mutates it.
func settingsScreen() Screen {
	return Screen{Route: "/settings", Title: "Settings", Subtitle: "Theme and saved data"}
}
