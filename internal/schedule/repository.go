// Package schedule owns the class collection and its per-class notes and photos.
package schedule

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/verte-zerg/acadash/internal/model"
)

// Saver persists the whole state after a mutation.
type Saver interface {
	Save(ctx context.Context, st *model.AppState) error
}

// ClassInput is a class as entered by the user, before an id is assigned.
type ClassInput struct {
	Name        string `json:"name" validate:"required"`
	Lecturer    string `json:"lecturer"`
	Day         int    `json:"day" validate:"min=0,max=6"`
	Room        string `json:"room"`
	Start       string `json:"start" validate:"required,datetime=15:04"`
	End         string `json:"end" validate:"required,datetime=15:04"`
	CreditUnits *int   `json:"sks" validate:"omitempty,min=0"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

// Repository provides CRUD over the class collection of a shared AppState.
type Repository struct {
	state *model.AppState
	saver Saver
	newID func() (string, error)
}

// NewRepository binds a repository to state; every mutation is saved through saver.
func NewRepository(state *model.AppState, saver Saver) *Repository {
	state.Normalize()
	return &Repository{
		state: state,
		saver: saver,
		newID: newClassID,
	}
}

func newClassID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Add validates in, assigns a fresh id, appends the entry and persists.
func (r *Repository) Add(ctx context.Context, in ClassInput) (model.ClassEntry, error) {
	entry, err := r.buildEntry(in)
	if err != nil {
		return model.ClassEntry{}, err
	}

	prev := r.state.Schedules
	r.state.Schedules = append(append(make([]model.ClassEntry, 0, len(prev)+1), prev...), entry)
	if err := r.saver.Save(ctx, r.state); err != nil {
		r.state.Schedules = prev
		return model.ClassEntry{}, err
	}
	return entry, nil
}

func (r *Repository) buildEntry(in ClassInput) (model.ClassEntry, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Lecturer = strings.TrimSpace(in.Lecturer)
	in.Room = strings.TrimSpace(in.Room)
	if err := ValidateStruct(in); err != nil {
		return model.ClassEntry{}, err
	}
	start, err := model.ParseClock(in.Start)
	if err != nil {
		return model.ClassEntry{}, &ValidationError{Field: "start", Message: err.Error()}
	}
	end, err := model.ParseClock(in.End)
	if err != nil {
		return model.ClassEntry{}, &ValidationError{Field: "end", Message: err.Error()}
	}
	if start >= end {
		return model.ClassEntry{}, &ValidationError{Field: "end", Message: "must be after start on the same day"}
	}

	credits := model.DefaultCreditUnits
	if in.CreditUnits != nil {
		credits = *in.CreditUnits
	}
	color := in.Color
	if color == "" {
		color = model.DefaultClassColor
	}

	id, err := r.uniqueID()
	if err != nil {
		return model.ClassEntry{}, fmt.Errorf("failed to generate class id: %w", err)
	}
	return model.ClassEntry{
		ID:          id,
		Name:        in.Name,
		Lecturer:    in.Lecturer,
		Day:         in.Day,
		Room:        in.Room,
		Start:       in.Start,
		End:         in.End,
		CreditUnits: credits,
		Color:       color,
	}, nil
}

func (r *Repository) uniqueID() (string, error) {
	for {
		id, err := r.newID()
		if err != nil {
			return "", err
		}
		if _, ok := r.Get(id); !ok {
			return id, nil
		}
	}
}

// Remove deletes the entry with id. An unknown id is a no-op.
func (r *Repository) Remove(ctx context.Context, id string) error {
	prev := r.state.Schedules
	kept := make([]model.ClassEntry, 0, len(prev))
	for _, entry := range prev {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(prev) {
		return nil
	}
	r.state.Schedules = kept
	if err := r.saver.Save(ctx, r.state); err != nil {
		r.state.Schedules = prev
		return err
	}
	return nil
}

// Get returns the entry with id.
func (r *Repository) Get(id string) (model.ClassEntry, bool) {
	for _, entry := range r.state.Schedules {
		if entry.ID == id {
			return entry, true
		}
	}
	return model.ClassEntry{}, false
}

// List returns a copy of all entries in insertion order.
func (r *Repository) List() []model.ClassEntry {
	out := make([]model.ClassEntry, len(r.state.Schedules))
	copy(out, r.state.Schedules)
	return out
}

// ListByDay returns the entries of day ordered by start time.
func (r *Repository) ListByDay(day int) []model.ClassEntry {
	return ByDay(r.state.Schedules, day)
}

// ByDay filters classes to day and orders them by start. "HH:MM" strings are
// zero-padded so string order is time order.
func ByDay(classes []model.ClassEntry, day int) []model.ClassEntry {
	out := make([]model.ClassEntry, 0, len(classes))
	for _, entry := range classes {
		if entry.Day == day {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// SetNote stores the free-text note for a class id.
func (r *Repository) SetNote(ctx context.Context, id, text string) error {
	if id == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	prev, had := r.state.Notes[id]
	r.state.Notes[id] = text
	if err := r.saver.Save(ctx, r.state); err != nil {
		if had {
			r.state.Notes[id] = prev
		} else {
			delete(r.state.Notes, id)
		}
		return err
	}
	return nil
}

// Note returns the note for id, or "" when none exists.
func (r *Repository) Note(id string) string {
	return r.state.Notes[id]
}

// HasNote reports whether id has a non-empty note.
func (r *Repository) HasNote(id string) bool {
	return r.state.Notes[id] != ""
}

// AddPhotos appends data-URI images to the photos of id, keeping existing ones.
func (r *Repository) AddPhotos(ctx context.Context, id string, blobs []string) error {
	if id == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if len(blobs) == 0 {
		return nil
	}
	for _, blob := range blobs {
		if !IsImageDataURI(blob) {
			return &ValidationError{Field: "photos", Message: "must be image data URIs"}
		}
	}
	prev, had := r.state.Photos[id]
	next := make([]string, 0, len(prev)+len(blobs))
	next = append(append(next, prev...), blobs...)
	r.state.Photos[id] = next
	if err := r.saver.Save(ctx, r.state); err != nil {
		if had {
			r.state.Photos[id] = prev
		} else {
			delete(r.state.Photos, id)
		}
		return err
	}
	return nil
}

// Photos returns a copy of the photos of id in insertion order.
func (r *Repository) Photos(id string) []string {
	return append([]string(nil), r.state.Photos[id]...)
}
