package main

import (
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"
)

// mountApp pumps the full application and settles the initial route. The
// tall surface keeps every control on screen without scrolling.
func mountApp(t *testing.T, tester *drifttest.WidgetTester) {
	t.Helper()
	tester.SetSize(graphics.Size{Width: 800, Height: 1200})
	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}
	if err := tester.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}
}

// tapAndSettle taps the first match and lets any route transition finish.
func tapAndSettle(t *testing.T, tester *drifttest.WidgetTester, finder drifttest.Finder) {
	t.Helper()
	if err := tester.Tap(finder); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if err := tester.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}
}

// --- App navigation tests ---

func TestAppOpensSearchPage(t *testing.T) {
	platform.SetupTestBridge(t.Cleanup)
	tester := drifttest.NewWidgetTesterWithT(t)
	mountApp(t, tester)

	if !tester.Find(drifttest.ByText("Wayfarer")).Exists() {
		t.Error("expected the app title on the search page")
	}
	if !tester.Find(drifttest.ByText("Find Trips")).Exists() {
		t.Error("expected the search button")
	}
	if !tester.Find(drifttest.ByText("1 guest to anywhere")).Exists() {
		t.Error("expected the default search summary")
	}
}

func TestAppNavigatesToTripsAndBack(t *testing.T) {
	platform.SetupTestBridge(t.Cleanup)
	tester := drifttest.NewWidgetTesterWithT(t)
	mountApp(t, tester)

	tapAndSettle(t, tester, drifttest.ByText("Find Trips"))

	if !tester.Find(drifttest.ByText("9 destinations for 1 guest")).Exists() {
		t.Error("expected the full catalog for an empty query")
	}
	if !tester.Find(drifttest.ByText("Reykjavik")).Exists() {
		t.Error("expected a destination card")
	}

	tapAndSettle(t, tester, drifttest.ByText("Back"))

	if tester.Find(drifttest.ByTextContaining("destinations for")).Exists() {
		t.Error("expected the trips page to be gone after popping")
	}
	if !tester.Find(drifttest.ByText("Find Trips")).Exists() {
		t.Error("expected the search page to be visible again")
	}
}

func TestAppTogglesThemeFromSettings(t *testing.T) {
	platform.SetupTestBridge(t.Cleanup)
	tester := drifttest.NewWidgetTesterWithT(t)
	mountApp(t, tester)

	tapAndSettle(t, tester, drifttest.ByText("Settings"))

	if !tester.Find(drifttest.ByText("Currently Light")).Exists() {
		t.Fatal("expected the settings page to start on the light theme")
	}

	tapAndSettle(t, tester, drifttest.ByType[widgets.Toggle]())

	if !tester.Find(drifttest.ByText("Currently Dark")).Exists() {
		t.Error("expected the theme to switch to dark")
	}
}

func TestAppOpensMapFromTrips(t *testing.T) {
	bridge, tester := setupMapTest(t)
	mountApp(t, tester)

	tapAndSettle(t, tester, drifttest.ByText("Find Trips"))
	// The first card is Seoul; its Map button opens the map route.
	tapAndSettle(t, tester, drifttest.ByText("Map"))

	if !tester.Find(drifttest.ByText("Seoul, South Korea")).Exists() {
		t.Error("expected the Seoul map page")
	}
	want := []string{"onCreate", "onStart", "onResume"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected the native map walked to resumed %v, got %v", want, got)
	}
	if n := len(bridge.viewMethodCalls("setCamera")); n != 1 {
		t.Errorf("expected one setCamera call, got %d", n)
	}

	tapAndSettle(t, tester, drifttest.ByText("Back"))

	want = []string{"onCreate", "onStart", "onResume", "onPause", "onStop", "onDestroy"}
	if got := bridge.lifecycleCalls(); !equalStrings(got, want) {
		t.Errorf("expected the map released on pop %v, got %v", want, got)
	}
	if n := len(bridge.registryCalls("dispose")); n != 1 {
		t.Errorf("expected one native view dispose, got %d", n)
	}
}

func TestAppGuestStepperUpdatesSummary(t *testing.T) {
	platform.SetupTestBridge(t.Cleanup)
	tester := drifttest.NewWidgetTesterWithT(t)
	mountApp(t, tester)

	if err := tester.Tap(drifttest.ByText("+")); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	tester.Pump()

	if !tester.Find(drifttest.ByText("2 guests to anywhere")).Exists() {
		t.Error("expected the summary to follow the guest count")
	}
}

// --- Deep link routing tests ---

func TestDeepLinkRoutes(t *testing.T) {
	s := &wayfarerAppState{}

	cases := []struct {
		url  string
		want string
	}{
		{"wayfarer://settings", "/settings"},
		{"wayfarer://trips", "/trips"},
		{"wayfarer://map", "/map"},
		{"wayfarer://home", "/"},
		{"wayfarer://search", "/"},
	}
	for _, tc := range cases {
		route, ok := s.deepLinkRoute(platform.DeepLink{URL: tc.url})
		if !ok {
			t.Errorf("%s: expected a route", tc.url)
			continue
		}
		if route.Name != tc.want {
			t.Errorf("%s: expected route %q, got %q", tc.url, tc.want, route.Name)
		}
	}
}

func TestDeepLinkRejectsUnknown(t *testing.T) {
	s := &wayfarerAppState{}

	for _, url := range []string{"wayfarer://bogus", "wayfarer://", "not a url at all \x7f"} {
		if _, ok := s.deepLinkRoute(platform.DeepLink{URL: url}); ok {
			t.Errorf("%s: expected no route", url)
		}
	}
}
