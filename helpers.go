package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/wayfarerhq/wayfarer/internal/catalog"
)

// sectionTitle creates a styled section header.
func sectionTitle(text string, colors theme.ColorScheme) core.Widget {
	return widgets.TextOf(text, rendering.TextStyle{
		Color:      colors.Primary,
		FontSize:   20,
		FontWeight: rendering.FontWeightBold,
	})
}

// labelStyle returns a text style for descriptive labels.
func labelStyle(colors theme.ColorScheme) rendering.TextStyle {
	return rendering.TextStyle{
		Color:    colors.OnSurfaceVariant,
		FontSize: 14,
	}
}

// priceBandLabel resolves a catalog price band to its display name.
func priceBandLabel(band string) string {
	if label, ok := catalog.PriceBandDefinitions[band]; ok {
		return label
	}
	return band
}

// itoa converts an integer to a string without importing strconv.
func itoa(value int) string {
	if value == 0 {
		return "0"
	}
	neg := false
	if value < 0 {
		neg = true
		value = -value
	}
	buf := [20]byte{}
	i := len(buf)
	for value > 0 {
		i--
		buf[i] = byte('0' + value%10)
		value /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// statusCard creates a styled status message card.
func statusCard(text string, colors theme.ColorScheme) core.Widget {
	return widgets.DecoratedBox{
		Color:        colors.SurfaceVariant,
		BorderRadius: 8,
		ChildWidget: widgets.PaddingAll(12,
			widgets.TextOf(text, rendering.TextStyle{
				Color:    colors.OnSurfaceVariant,
				FontSize: 14,
			}).WithWrap(true),
		),
	}
}

// infoCard wraps content in the outlined card used across pages.
func infoCard(colors theme.ColorScheme, content core.Widget) core.Widget {
	return widgets.DecoratedBox{
		BorderColor:  colors.OutlineVariant,
		BorderWidth:  1,
		BorderRadius: 12,
		Overflow:     rendering.OverflowClip,
		ChildWidget:  widgets.PaddingAll(16, content),
	}
}

// screenPage creates a standard page with scroll view and column layout.
func screenPage(ctx core.BuildContext, title string, items ...core.Widget) core.Widget {
	content := widgets.ScrollView{
		ScrollDirection: widgets.AxisVertical,
		Physics:         widgets.BouncingScrollPhysics{},
		Padding:         layout.EdgeInsetsAll(20),
		ChildWidget: widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMin,
			items...,
		),
	}
	return pageScaffold(ctx, title, content)
}
