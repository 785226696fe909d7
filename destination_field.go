package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/wayfarerhq/wayfarer/internal/trip"
)

// DestinationField is a text input bound to a trip.Field. Edits flow into
// the field's observable; distinct non-placeholder values flow out through
// OnChanged. The callback is re-read from the current widget configuration
// at fire time, so a rebuilt parent's fresh closure is used without
// re-subscribing.
type DestinationField struct {
	// Field holds the text state. It must outlive this widget; the search
	// screen owns it so the text survives rebuilds.
	Field *trip.Field
	// Label is shown above the input.
	Label string
	// OnChanged receives every distinct non-placeholder value.
	OnChanged func(string)
	// InputAction selects the keyboard action button.
	InputAction platform.TextInputAction
	// WidgetKey forces a remount when changed.
	WidgetKey any
}

func (d DestinationField) CreateElement() core.Element {
	return core.NewStatefulElement(d, nil)
}

func (d DestinationField) Key() any {
	return d.WidgetKey
}

func (d DestinationField) CreateState() core.State {
	return &destinationFieldState{}
}

type destinationFieldState struct {
	core.StateBase
	controller *platform.TextEditingController
	field      *trip.Field
	unsubs     []func()
}

func (s *destinationFieldState) InitState() {
	widget := s.Element().Widget().(DestinationField)
	s.attach(widget.Field)
	s.OnDispose(s.detach)
}

func (s *destinationFieldState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	next := s.Element().Widget().(DestinationField)
	if prev, ok := oldWidget.(DestinationField); !ok || prev.Field != next.Field {
		s.attach(next.Field)
	}
}

// attach subscribes to the given field, replacing any previous subscription
// so the state observes exactly one field at a time.
func (s *destinationFieldState) attach(field *trip.Field) {
	s.detach()
	s.field = field

	text := field.Text()
	if field.IsPlaceholder() {
		// The native field renders the placeholder itself; an empty
		// controller keeps the hint visible.
		text = ""
	}
	s.controller = platform.NewTextEditingController(text)

	forwardUnsub := field.Forward(func(value string) {
		widget := s.Element().Widget().(DestinationField)
		if widget.OnChanged != nil {
			widget.OnChanged(value)
		}
	})
	controllerUnsub := s.controller.AddListener(func() {
		value := s.controller.Text()
		if value == "" {
			value = s.field.Placeholder()
		}
		s.field.SetText(value)
	})
	s.unsubs = []func(){forwardUnsub, controllerUnsub}
}

func (s *destinationFieldState) detach() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}

func (s *destinationFieldState) Build(ctx core.BuildContext) core.Widget {
	widget := s.Element().Widget().(DestinationField)

	return widgets.TextField{
		Label:        widget.Label,
		Controller:   s.controller,
		Placeholder:  widget.Field.Placeholder(),
		KeyboardType: platform.KeyboardTypeText,
		InputAction:  widget.InputAction,
		Autocorrect:  false,
		BorderRadius: 8,
	}
}
