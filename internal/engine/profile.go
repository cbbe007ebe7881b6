package engine

import (
	"context"
	"strings"

	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/schedule"
)

// Avatars is the rotation used by CycleAvatar.
var Avatars = []string{"🎓", "🚀", "⭐", "🧠", "💡", "🦁", "🐉", "🌟", "🔮", "🎯", "🌈", "🦊", "🐺", "🦋", "🌙"}

// LoggedIn reports whether a display name has been set.
func (e *Engine) LoggedIn() bool {
	return e.state.User != ""
}

// Login sets the display name and the profile name.
func (e *Engine) Login(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &schedule.ValidationError{Field: "name", Message: "is required"}
	}
	prevUser, prevProfile := e.state.User, e.state.Profile
	e.state.User = name
	e.state.Profile.Name = name
	return e.save(ctx, ChangeProfile, func() {
		e.state.User, e.state.Profile = prevUser, prevProfile
	})
}

// SaveProfile stores profile fields. An empty name keeps the current user;
// a non-empty name also becomes the display name.
func (e *Engine) SaveProfile(ctx context.Context, p model.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Uni = strings.TrimSpace(p.Uni)
	p.Major = strings.TrimSpace(p.Major)
	p.NIM = strings.TrimSpace(p.NIM)
	p.Motto = strings.TrimSpace(p.Motto)
	if p.Name == "" {
		p.Name = e.state.User
	}
	if p.Semester == "" {
		p.Semester = model.DefaultSemester
	}
	prevUser, prevProfile := e.state.User, e.state.Profile
	e.state.Profile = p
	if p.Name != "" {
		e.state.User = p.Name
	}
	return e.save(ctx, ChangeProfile, func() {
		e.state.User, e.state.Profile = prevUser, prevProfile
	})
}

// CycleAvatar moves to the next avatar and returns it. An avatar outside the
// rotation restarts it.
func (e *Engine) CycleAvatar(ctx context.Context) (string, error) {
	// An unknown avatar counts as the first one.
	cur := 0
	for i, a := range Avatars {
		if a == e.state.Avatar {
			cur = i
			break
		}
	}
	prev := e.state.Avatar
	e.state.Avatar = Avatars[(cur+1)%len(Avatars)]
	if err := e.save(ctx, ChangeProfile, func() { e.state.Avatar = prev }); err != nil {
		return prev, err
	}
	return e.state.Avatar, nil
}

// SetMode switches between weekday and weekend display modes.
func (e *Engine) SetMode(ctx context.Context, mode model.Mode) error {
	if mode != model.ModeWeekday && mode != model.ModeWeekend {
		return &schedule.ValidationError{Field: "mode", Message: "must be one of weekday weekend"}
	}
	prev := e.state.Mode
	e.state.Mode = mode
	return e.save(ctx, ChangeMode, func() { e.state.Mode = prev })
}
