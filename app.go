// Package main provides the Wayfarer travel booking application.
// It is built with Drift's declarative widget tree and native platform views.
package main

import (
	"net/url"
	"strings"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"go.uber.org/zap"

	"github.com/wayfarerhq/wayfarer/internal/logging"
)

// App returns the root widget for Wayfarer.
func App() core.Widget {
	return WayfarerApp{}
}

// WayfarerApp is the root application widget.
// It manages theme state and sets up navigation.
type WayfarerApp struct{}

func (w WayfarerApp) CreateElement() core.Element {
	return core.NewStatefulElement(w, nil)
}

func (w WayfarerApp) Key() any {
	return nil
}

func (w WayfarerApp) CreateState() core.State {
	return &wayfarerAppState{}
}

type wayfarerAppState struct {
	core.StateBase
	isDark             bool
	deepLinkController *navigation.DeepLinkController
	// Memoized theme data to avoid churn in UpdateShouldNotify
	cachedThemeData *theme.AppThemeData
}

func (s *wayfarerAppState) InitState() {
	s.isDark = false // Start with the light theme
	s.updateBackgroundColor()
	s.applySystemUI()
	s.deepLinkController = navigation.NewDeepLinkController(s.deepLinkRoute, func(err error) {
		logging.Warn("deep link error", zap.Error(err))
	})
}

func (s *wayfarerAppState) Build(ctx core.BuildContext) core.Widget {
	// Get memoized theme data (only recreated when values change)
	appThemeData := s.getAppThemeData()

	navigator := navigation.Navigator{
		InitialRoute: "/",
		OnGenerateRoute: func(settings navigation.RouteSettings) navigation.Route {
			// Search page is the home route
			if settings.Name == "/" {
				return navigation.NewMaterialPageRoute(
					func(ctx core.BuildContext) core.Widget {
						return buildSearchPage(ctx)
					},
					settings,
				)
			}

			// Settings page (special case needing theme state)
			if settings.Name == settingsScreen().Route {
				return navigation.NewMaterialPageRoute(
					func(ctx core.BuildContext) core.Widget {
						return buildSettingsPage(ctx, s.isDark, s.toggleTheme)
					},
					settings,
				)
			}

			// All other pages from the registry
			for _, screen := range screens {
				if settings.Name == screen.Route {
					builder := screen.Builder
					logging.LogScreen(screen.Route, "open")
					return navigation.NewMaterialPageRoute(
						func(ctx core.BuildContext) core.Widget {
							return builder(ctx, settings)
						},
						settings,
					)
				}
			}
			return nil
		},
	}

	return theme.AppTheme{
		Data:        appThemeData,
		ChildWidget: navigator,
	}
}

// getAppThemeData returns memoized theme data, recreating only when state changes.
func (s *wayfarerAppState) getAppThemeData() *theme.AppThemeData {
	brightness := theme.BrightnessLight
	if s.isDark {
		brightness = theme.BrightnessDark
	}

	// Only recreate if values changed
	if s.cachedThemeData == nil || s.cachedThemeData.Brightness() != brightness {
		s.cachedThemeData = theme.NewAppThemeData(theme.TargetPlatformMaterial, brightness)
	}
	return s.cachedThemeData
}

func (s *wayfarerAppState) updateBackgroundColor() {
	appThemeData := s.getAppThemeData()
	engine.SetBackgroundColor(graphics.Color(appThemeData.Material.ColorScheme.Background))
}

func (s *wayfarerAppState) applySystemUI() {
	appThemeData := s.getAppThemeData()
	statusStyle := platform.StatusBarStyleDark
	if appThemeData.Brightness() == theme.BrightnessDark {
		statusStyle = platform.StatusBarStyleLight
	}
	backgroundColor := appThemeData.Material.ColorScheme.Surface
	_ = platform.SetSystemUI(platform.SystemUIStyle{
		StatusBarHidden: false,
		StatusBarStyle:  statusStyle,
		TitleBarHidden:  false,
		BackgroundColor: &backgroundColor,
		Transparent:     true,
	})
}

// deepLinkRoute maps wayfarer://<route> links onto navigator routes.
func (s *wayfarerAppState) deepLinkRoute(link platform.DeepLink) (navigation.DeepLinkRoute, bool) {
	parsed, err := url.Parse(link.URL)
	if err != nil {
		return navigation.DeepLinkRoute{}, false
	}
	candidate := strings.Trim(parsed.Path, "/")
	if candidate == "" {
		candidate = parsed.Host
	}
	if candidate == "" {
		return navigation.DeepLinkRoute{}, false
	}

	// Search is the home route
	if candidate == "home" || candidate == "search" {
		logging.Info("deep link received", zap.String("url", link.URL), zap.String("source", string(link.Source)))
		return navigation.DeepLinkRoute{Name: "/"}, true
	}

	if candidate == "settings" {
		logging.Info("deep link received", zap.String("url", link.URL), zap.String("source", string(link.Source)))
		return navigation.DeepLinkRoute{Name: settingsScreen().Route}, true
	}

	// Check pages from the registry
	for _, screen := range screens {
		routeName := strings.TrimPrefix(screen.Route, "/")
		if candidate == routeName {
			logging.Info("deep link received", zap.String("url", link.URL), zap.String("source", string(link.Source)))
			return navigation.DeepLinkRoute{Name: screen.Route}, true
		}
	}

	logging.Debug("deep link ignored", zap.String("url", link.URL), zap.String("source", string(link.Source)))
	return navigation.DeepLinkRoute{}, false
}

func (s *wayfarerAppState) toggleTheme() {
	s.SetState(func() {
		s.isDark = !s.isDark
	})
	s.updateBackgroundColor()
	s.applySystemUI()
}

// pageScaffold creates a consistent page layout with title and back button.
func pageScaffold(ctx core.BuildContext, title string, content core.Widget) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	// Header needs top safe area padding so it sits below the status bar
	headerPadding := widgets.SafeAreaPadding(ctx).OnlyTop().Add(16)

	return widgets.Expanded{
		ChildWidget: widgets.Container{
			Color: colors.Background,
			ChildWidget: widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentStart,
				widgets.MainAxisSizeMax,
				// Header
				widgets.Container{
					Color: colors.Surface,
					ChildWidget: widgets.Padding{
						Padding: headerPadding,
						ChildWidget: widgets.RowOf(
							widgets.MainAxisAlignmentStart,
							widgets.CrossAxisAlignmentStart,
							widgets.MainAxisSizeMax,
							widgets.Button{
								Label: "Back",
								OnTap: func() {
									nav := navigation.NavigatorOf(ctx)
									if nav != nil {
										nav.Pop(nil)
									}
								},
								Color:     colors.SurfaceVariant,
								TextColor: colors.OnSurfaceVariant,
								Padding:   layout.EdgeInsetsSymmetric(16, 10),
								FontSize:  14,
								Haptic:    true,
							},
							widgets.HSpace(16),
							widgets.Text{Content: title, Style: textTheme.HeadlineMedium},
						),
					},
				},
				// Content
				widgets.Expanded{ChildWidget: content},
			),
		},
	}
}
