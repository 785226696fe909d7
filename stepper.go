package main

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/wayfarerhq/wayfarer/internal/trip"
)

// guestStepper renders the guest count with a "+" control. The count badge
// animates between the valid and invalid color pair whenever validity flips,
// so stepping past the maximum reads as a warning rather than a hard stop.
func guestStepper(ctx core.BuildContext, counter *trip.Counter, onIncrement func()) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	badgeColor := colors.SurfaceVariant
	countColor := colors.OnSurfaceVariant
	if !counter.IsValid() {
		badgeColor = colors.Error
		countColor = colors.OnError
	}

	hint := "Up to " + itoa(counter.Max()) + " guests"
	hintColor := colors.OnSurfaceVariant
	if !counter.IsValid() {
		hint = "Too many guests, tap + to start over"
		hintColor = colors.Error
	}

	return widgets.ColumnOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentStart,
		widgets.MainAxisSizeMin,
		widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMax,
			widgets.TextOf("Guests", rendering.TextStyle{
				Color:    colors.OnSurface,
				FontSize: 16,
			}),
			widgets.HSpace(16),
			widgets.AnimatedContainer{
				Duration:  300 * time.Millisecond,
				Curve:     animation.EaseInOut,
				Width:     56,
				Height:    40,
				Color:     badgeColor,
				Alignment: layout.AlignmentCenter,
				ChildWidget: widgets.TextOf(itoa(counter.Count()), rendering.TextStyle{
					Color:      countColor,
					FontSize:   16,
					FontWeight: rendering.FontWeightBold,
				}),
			},
			widgets.HSpace(12),
			widgets.ButtonOf("+", onIncrement).
				WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant).
				WithPadding(layout.EdgeInsetsSymmetric(16, 10)).
				WithFontSize(16),
		),
		widgets.VSpace(8),
		widgets.TextOf(hint, rendering.TextStyle{
			Color:    hintColor,
			FontSize: 13,
		}),
	)
}
