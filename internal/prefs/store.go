// Package prefs persists small pieces of booking state across launches.
//
// Values live in platform secure storage (Keychain on iOS,
// EncryptedSharedPreferences on Android) under the app's own service
// namespace, encoded as YAML so ordered lists survive the string-only
// storage API.
package prefs

import (
	"fmt"

	"github.com/go-drift/drift/pkg/platform"
	"gopkg.in/yaml.v3"
)

// ServiceName namespaces Wayfarer entries in platform secure storage.
const ServiceName = "com.wayfarerhq.wayfarer"

// Keys for the persisted booking state.
const (
	KeyDestinationFrom = "trip.from"
	KeyDestinationTo   = "trip.to"
)

// StateSaver is anything whose state persists as an ordered string list.
// trip.Field implements it, so screens hand their fields straight to
// SaveState.
type StateSaver interface {
	Save() []string
}

// Store reads and writes persisted app state.
type Store struct {
	service string
}

// NewStore returns a store bound to the app's service namespace.
func NewStore() *Store {
	return &Store{service: ServiceName}
}

func (s *Store) options() *platform.SecureStorageOptions {
	return &platform.SecureStorageOptions{Service: s.service}
}

// SaveStrings persists an ordered list of strings under key.
func (s *Store) SaveStrings(key string, values []string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("prefs: encode %s: %w", key, err)
	}
	if err := platform.SecureStorage.Set(key, string(data), s.options()); err != nil {
		return fmt.Errorf("prefs: save %s: %w", key, err)
	}
	return nil
}

// SaveState persists sv's state under key. It may be called off the UI
// thread when sv's Save is safe there, as trip.Field's is.
func (s *Store) SaveState(key string, sv StateSaver) error {
	return s.SaveStrings(key, sv.Save())
}

// LoadStrings returns the list saved under key. The second return is
// false when nothing was saved.
func (s *Store) LoadStrings(key string) ([]string, bool, error) {
	raw, err := platform.SecureStorage.Get(key, s.options())
	if err != nil {
		return nil, false, fmt.Errorf("prefs: load %s: %w", key, err)
	}
	if raw == "" {
		return nil, false, nil
	}

	var values []string
	if err := yaml.Unmarshal([]byte(raw), &values); err != nil {
		return nil, false, fmt.Errorf("prefs: decode %s: %w", key, err)
	}
	return values, true, nil
}

// Delete removes the entry saved under key. Deleting a missing key is
// not an error.
func (s *Store) Delete(key string) error {
	if err := platform.SecureStorage.Delete(key, s.options()); err != nil {
		return fmt.Errorf("prefs: delete %s: %w", key, err)
	}
	return nil
}

// Has reports whether anything is saved under key.
func (s *Store) Has(key string) (bool, error) {
	ok, err := platform.SecureStorage.Contains(key, s.options())
	if err != nil {
		return false, fmt.Errorf("prefs: check %s: %w", key, err)
	}
	return ok, nil
}
