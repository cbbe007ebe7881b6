package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/acadash/internal/model"
)

// StateKey names the single record holding the whole AppState.
const StateKey = "acadash_data"

// LoadState reads the AppState. Missing data yields the default state with a
// nil error; unreadable or malformed data yields the default state together
// with a *PersistenceError the caller may log as a warning. Malformed class
// entries are dropped and reported the same way while the rest of the state
// is kept.
func (s *Store) LoadState(ctx context.Context) (model.AppState, error) {
	raw, ok, err := s.Get(ctx, StateKey)
	if err != nil {
		return model.DefaultState(), &PersistenceError{Op: "read", Err: err}
	}
	if !ok {
		return model.DefaultState(), nil
	}
	st, err := DecodeState(raw)
	if err != nil {
		return model.DefaultState(), &PersistenceError{Op: "decode", Err: err}
	}
	kept, err := dropInvalidSchedules(st.Schedules)
	if err != nil {
		st.Schedules = kept
		return st, &PersistenceError{Op: "validate", Err: err}
	}
	return st, nil
}

// DecodeState decodes a stored payload over the defaults. Nested records are
// merged field by field so fields absent from the payload keep their default.
func DecodeState(raw []byte) (model.AppState, error) {
	st := model.DefaultState()
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&st); err != nil {
		return model.AppState{}, err
	}
	st.Normalize()
	return st, nil
}

// Save serializes the whole state and replaces the stored record atomically.
func (s *Store) Save(ctx context.Context, st *model.AppState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.Put(ctx, StateKey, raw); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// Reset deletes the stored record and returns a fresh default state.
func (s *Store) Reset(ctx context.Context) (model.AppState, error) {
	if err := s.Delete(ctx, StateKey); err != nil {
		return model.AppState{}, &PersistenceError{Op: "delete", Err: err}
	}
	return model.DefaultState(), nil
}

// ExportFileName names a backup taken at now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("acadash_backup_%s.json", now.Format(model.DateLayout))
}

// Export writes the full state as indented JSON.
func Export(w io.Writer, st *model.AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import merges a full or partial backup over current at the top level: every
// top-level key present in the payload replaces the corresponding field of
// current, keys absent from the payload are kept. current is never modified.
func Import(current model.AppState, payload []byte) (model.AppState, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return current, &ImportError{Err: err}
	}
	if fields == nil {
		return current, &ImportError{Err: fmt.Errorf("backup is not a JSON object")}
	}

	next := current.Clone()
	defaults := model.DefaultState()
	targets := map[string]any{
		"user":      &next.User,
		"avatar":    &next.Avatar,
		"profile":   &next.Profile,
		"schedules": &next.Schedules,
		"notes":     &next.Notes,
		"photos":    &next.Photos,
		"settings":  &next.Settings,
		"metrics":   &next.Metrics,
		"mode":      &next.Mode,
	}
	resets := map[string]func(){
		"profile":   func() { next.Profile = defaults.Profile },
		"schedules": func() { next.Schedules = nil },
		"notes":     func() { next.Notes = nil },
		"photos":    func() { next.Photos = nil },
		"settings":  func() { next.Settings = defaults.Settings },
		"metrics":   func() { next.Metrics = defaults.Metrics },
	}
	for key, raw := range fields {
		target, ok := targets[key]
		if !ok {
			continue
		}
		if reset, ok := resets[key]; ok {
			reset()
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return current, &ImportError{Err: fmt.Errorf("field %q: %w", key, err)}
		}
	}
	if err := checkSchedules(next.Schedules); err != nil {
		return current, &ImportError{Err: err}
	}
	next.Normalize()
	return next, nil
}
