package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"go.uber.org/zap"

	"github.com/wayfarerhq/wayfarer/internal/catalog"
	"github.com/wayfarerhq/wayfarer/internal/logging"
)

// buildTripsPage lists catalog destinations matching the search query.
func buildTripsPage(ctx core.BuildContext, settings navigation.RouteSettings) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	query, _ := settings.Arguments.(tripQuery)

	cat, err := catalog.Default()
	if err != nil {
		logging.Error("load catalog failed", zap.Error(err))
		return screenPage(ctx, "Trips",
			statusCard("The destination catalog could not be loaded.", colors),
		)
	}

	matches := cat.Filter(query.Query)

	items := []core.Widget{
		widgets.TextOf(tripsSummary(len(matches), query), labelStyle(colors)),
		widgets.VSpace(16),
	}

	if len(matches) == 0 {
		items = append(items,
			statusCard("No destinations match \""+query.Query+"\" yet. Try a shorter name.", colors),
		)
	}

	for i := range matches {
		items = append(items, destinationCard(ctx, matches[i], colors))
		if i < len(matches)-1 {
			items = append(items, widgets.VSpace(12))
		}
	}
	items = append(items, widgets.VSpace(40))

	return screenPage(ctx, "Trips", items...)
}

// tripsSummary describes the result set and the search that produced it.
func tripsSummary(count int, query tripQuery) string {
	line := itoa(count) + " destinations"
	if count == 1 {
		line = "1 destination"
	}
	guests := query.Guests
	if guests < 1 {
		guests = 1
	}
	if guests == 1 {
		line += " for 1 guest"
	} else {
		line += " for " + itoa(guests) + " guests"
	}
	if query.Query != "" {
		line += " matching \"" + query.Query + "\""
	}
	if query.Origin != "" {
		line += " from " + query.Origin
	}
	return line
}

// destinationCard renders one catalog entry with a shortcut to its map.
func destinationCard(ctx core.BuildContext, dest catalog.Destination, colors theme.ColorScheme) core.Widget {
	return infoCard(colors, widgets.RowOf(
		widgets.MainAxisAlignmentSpaceBetween,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMax,
		widgets.Expanded{
			ChildWidget: widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentStart,
				widgets.MainAxisSizeMin,
				widgets.TextOf(dest.Name, rendering.TextStyle{
					Color:      colors.OnSurface,
					FontSize:   16,
					FontWeight: rendering.FontWeightSemibold,
				}),
				widgets.VSpace(4),
				widgets.TextOf(dest.Country+" · "+itoa(dest.Nights)+" nights · "+priceBandLabel(dest.PriceBand), rendering.TextStyle{
					Color:    colors.OnSurfaceVariant,
					FontSize: 13,
				}),
			),
		},
		widgets.HSpace(12),
		widgets.ButtonOf("Map", func() {
			nav := navigation.NavigatorOf(ctx)
			if nav != nil {
				nav.PushNamed("/map", dest.Slug)
			}
		}).WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant).
			WithPadding(layout.EdgeInsetsSymmetric(14, 8)).
			WithFontSize(13),
	))
}
