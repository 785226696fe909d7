package trip

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"
)

// Field is a destination text input backed by a distinct-write observable.
// The placeholder is fixed at construction; the text starts as the
// placeholder and is replaced wholesale on every edit. Writes that leave
// the text unchanged notify no listeners.
type Field struct {
	placeholder string
	text        *core.Observable[string]
}

// NewField returns a field whose text starts as the placeholder.
func NewField(placeholder string) *Field {
	return &Field{
		placeholder: placeholder,
		text: core.NewObservableWithEquality(placeholder, func(a, b string) bool {
			return a == b
		}),
	}
}

// Placeholder returns the fixed placeholder text.
func (f *Field) Placeholder() string {
	return f.placeholder
}

// Text returns the current text.
func (f *Field) Text() string {
	return f.text.Value()
}

// SetText replaces the text unconditionally. Two consecutive identical
// calls count as a single observed change.
func (f *Field) SetText(text string) {
	f.text.Set(text)
}

// IsPlaceholder reports whether the field still shows its placeholder.
func (f *Field) IsPlaceholder() bool {
	return f.text.Value() == f.placeholder
}

// Forward subscribes fn to distinct text changes, skipping any value equal
// to the placeholder. The current value is not replayed, so a freshly
// created field delivers nothing until the user actually types. The
// returned func cancels the subscription.
func (f *Field) Forward(fn func(string)) func() {
	return f.text.AddListener(func(value string) {
		if value == f.placeholder {
			return
		}
		fn(value)
	})
}

// Save returns the field's persistable form: the placeholder followed by
// the current text, in that order.
func (f *Field) Save() []string {
	return []string{f.placeholder, f.text.Value()}
}

// RestoreField reconstructs a field from the pair produced by Save.
func RestoreField(pair []string) (*Field, error) {
	if len(pair) != 2 {
		return nil, fmt.Errorf("trip: restore field: want 2 elements, got %d", len(pair))
	}
	f := NewField(pair[0])
	f.SetText(pair[1])
	return f, nil
}
