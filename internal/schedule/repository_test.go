package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/verte-zerg/acadash/internal/model"
)

type saverFunc func(ctx context.Context, st *model.AppState) error

func (f saverFunc) Save(ctx context.Context, st *model.AppState) error {
	return f(ctx, st)
}

type countingSaver struct {
	saves int
	fail  error
}

func (c *countingSaver) Save(_ context.Context, _ *model.AppState) error {
	c.saves++
	return c.fail
}

func intPtr(v int) *int { return &v }

func newTestRepo(t *testing.T) (*Repository, *model.AppState, *countingSaver) {
	t.Helper()
	state := model.DefaultState()
	saver := &countingSaver{}
	repo := NewRepository(&state, saver)
	seq := 0
	repo.newID = func() (string, error) {
		seq++
		return fmt.Sprintf("id-%d", seq), nil
	}
	return repo, &state, saver
}

func TestAddAssignsIDAndDefaults(t *testing.T) {
	repo, state, saver := newTestRepo(t)
	entry, err := repo.Add(context.Background(), ClassInput{
		Name:  "  Calculus  ",
		Day:   1,
		Start: "08:00",
		End:   "09:40",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.ID != "id-1" || entry.Name != "Calculus" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.CreditUnits != model.DefaultCreditUnits || entry.Color != model.DefaultClassColor {
		t.Fatalf("defaults not applied: %+v", entry)
	}
	if len(state.Schedules) != 1 || saver.saves != 1 {
		t.Fatalf("expected one entry and one save, got %d/%d", len(state.Schedules), saver.saves)
	}
}

func TestAddKeepsExplicitZeroCredits(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	entry, err := repo.Add(context.Background(), ClassInput{Name: "Seminar", Start: "10:00", End: "11:00", CreditUnits: intPtr(0)})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.CreditUnits != 0 {
		t.Fatalf("expected 0 credit units, got %d", entry.CreditUnits)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		in    ClassInput
		field string
	}{
		{name: "blank name", in: ClassInput{Name: "   ", Start: "08:00", End: "09:00"}, field: "name"},
		{name: "day too large", in: ClassInput{Name: "A", Day: 7, Start: "08:00", End: "09:00"}, field: "day"},
		{name: "negative day", in: ClassInput{Name: "A", Day: -1, Start: "08:00", End: "09:00"}, field: "day"},
		{name: "bad start", in: ClassInput{Name: "A", Start: "8am", End: "09:00"}, field: "start"},
		{name: "unpadded start", in: ClassInput{Name: "A", Start: "8:00", End: "09:00"}, field: "start"},
		{name: "end before start", in: ClassInput{Name: "A", Start: "10:00", End: "09:00"}, field: "end"},
		{name: "end equals start", in: ClassInput{Name: "A", Start: "10:00", End: "10:00"}, field: "end"},
		{name: "bad color", in: ClassInput{Name: "A", Start: "08:00", End: "09:00", Color: "blue"}, field: "color"},
		{name: "negative credits", in: ClassInput{Name: "A", Start: "08:00", End: "09:00", CreditUnits: intPtr(-1)}, field: "sks"},
	}
	for _, tc := range cases {
		repo, state, saver := newTestRepo(t)
		_, err := repo.Add(context.Background(), tc.in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.field, verr.Field)
		}
		if len(state.Schedules) != 0 || saver.saves != 0 {
			t.Fatalf("%s: state changed on validation error", tc.name)
		}
	}
}

func TestAddAcceptsLateClass(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	if _, err := repo.Add(context.Background(), ClassInput{Name: "Night lab", Day: 6, Start: "23:00", End: "23:59"}); err != nil {
		t.Fatalf("expected late class to be valid: %v", err)
	}
}

func TestAddRollsBackOnSaveFailure(t *testing.T) {
	state := model.DefaultState()
	repo := NewRepository(&state, saverFunc(func(context.Context, *model.AppState) error {
		return errors.New("disk full")
	}))
	if _, err := repo.Add(context.Background(), ClassInput{Name: "A", Start: "08:00", End: "09:00"}); err == nil {
		t.Fatalf("expected save error")
	}
	if len(state.Schedules) != 0 {
		t.Fatalf("expected rollback, got %+v", state.Schedules)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	repo, state, _ := newTestRepo(t)
	ctx := context.Background()
	if _, err := repo.Add(ctx, ClassInput{Name: "A", Day: 2, Start: "08:00", End: "09:00"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := repo.List()
	added, err := repo.Add(ctx, ClassInput{Name: "B", Day: 2, Start: "10:00", End: "11:00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Remove(ctx, added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(state.Schedules) != len(before) || state.Schedules[0] != before[0] {
		t.Fatalf("round trip mismatch: %+v vs %+v", state.Schedules, before)
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	repo, _, saver := newTestRepo(t)
	if err := repo.Remove(context.Background(), "missing"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if saver.saves != 0 {
		t.Fatalf("expected no save for no-op remove")
	}
}

func TestListByDaySorted(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()
	for _, slot := range [][2]string{{"13:00", "13:50"}, {"08:00", "08:50"}, {"10:30", "11:20"}, {"08:00", "08:50"}} {
		start, end := slot[0], slot[1]
		if _, err := repo.Add(ctx, ClassInput{Name: "C" + start, Day: 3, Start: start, End: end}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := repo.Add(ctx, ClassInput{Name: "Other", Day: 4, Start: "07:00", End: "08:00"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := repo.ListByDay(3)
	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(got))
	}
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Start < got[j].Start }) {
		t.Fatalf("entries not sorted: %+v", got)
	}
	if len(repo.ListByDay(0)) != 0 {
		t.Fatalf("expected no entries on Sunday")
	}
}

func TestNotesAndPhotos(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()
	if err := repo.SetNote(ctx, "c1", "read chapter 2"); err != nil {
		t.Fatalf("set note: %v", err)
	}
	if repo.Note("c1") != "read chapter 2" || !repo.HasNote("c1") {
		t.Fatalf("unexpected note %q", repo.Note("c1"))
	}
	if repo.Note("other") != "" {
		t.Fatalf("expected empty note for unknown id")
	}

	first := "data:image/png;base64,AAAA"
	second := "data:image/jpeg;base64,BBBB"
	if err := repo.AddPhotos(ctx, "c1", []string{first}); err != nil {
		t.Fatalf("add photos: %v", err)
	}
	if err := repo.AddPhotos(ctx, "c1", []string{second}); err != nil {
		t.Fatalf("add photos: %v", err)
	}
	photos := repo.Photos("c1")
	if len(photos) != 2 || photos[0] != first || photos[1] != second {
		t.Fatalf("expected appended photos in order, got %v", photos)
	}

	var verr *ValidationError
	if err := repo.AddPhotos(ctx, "c1", []string{"not-a-uri"}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.Photos("c1")) != 2 {
		t.Fatalf("invalid photo must not be stored")
	}
}

func TestRemoveOrphansNotes(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()
	entry, err := repo.Add(ctx, ClassInput{Name: "A", Start: "08:00", End: "09:00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.SetNote(ctx, entry.ID, "keep me"); err != nil {
		t.Fatalf("set note: %v", err)
	}
	if err := repo.Remove(ctx, entry.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if repo.Note(entry.ID) != "keep me" {
		t.Fatalf("expected orphaned note to survive removal")
	}
}

func TestEncodePhoto(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	uri, err := EncodePhoto(png)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !IsImageDataURI(uri) || uri[:len("data:image/png;base64,")] != "data:image/png;base64," {
		t.Fatalf("unexpected uri %q", uri)
	}
	var verr *ValidationError
	if _, err := EncodePhoto([]byte("plain text")); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for text, got %v", err)
	}
}
