// Package tips provides study tips and motivational quotes for the dashboard.
package tips

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Tip is a short titled piece of advice.
type Tip struct {
	Title string
	Desc  string
}

// String renders the tip on one line.
func (t Tip) String() string {
	if t.Desc == "" {
		return t.Title
	}
	return t.Title + ": " + t.Desc
}

// Builtin returns the default study techniques.
func Builtin() []Tip {
	return []Tip{
		{Title: "POMODORO", Desc: "25 min focus, 5 min break. Repeat 4 times, then take a longer break."},
		{Title: "ACTIVE RECALL", Desc: "Test yourself instead of rereading. Write everything you remember without looking."},
		{Title: "SPACED REPETITION", Desc: "Review material at increasing intervals (1, 3, 7, 14 days) to cement memory."},
		{Title: "FEYNMAN TECHNIQUE", Desc: "Explain the concept simply as if teaching a child. Gaps in explanation reveal weaknesses."},
		{Title: "DEEP WORK", Desc: "Block 2-4 hours of distraction-free work on your hardest task every single day."},
		{Title: "CORNELL NOTES", Desc: "Divide pages into cue, notes, and summary sections for structured review-ready notes."},
		{Title: "SLEEP FIRST", Desc: "Memory consolidation happens during sleep. Aim for 7-9 hours for peak performance."},
		{Title: "EXERCISE", Desc: "Even 20 min of walking boosts BDNF, improving memory and learning capacity by ~20%."},
	}
}

// Quotes returns the motivational quotes. Title holds the author.
func Quotes() []Tip {
	return []Tip{
		{Title: "Nelson Mandela", Desc: "Education is the most powerful weapon which you can use to change the world."},
		{Title: "Mark Twain", Desc: "The secret of getting ahead is getting started."},
		{Title: "Mahatma Gandhi", Desc: "Live as if you were to die tomorrow. Learn as if you were to live forever."},
		{Title: "Martin Luther King Jr.", Desc: "Intelligence plus character, that is the goal of true education."},
		{Title: "Michael Jordan", Desc: "I have failed over and over again in my life and that is why I succeed."},
		{Title: "Dr. Seuss", Desc: "The more that you read, the more things you will know. The more that you learn, the more places you'll go."},
		{Title: "Pepatah", Desc: "Ilmu tanpa amal bagaikan pohon tanpa buah. Teruslah belajar dan bertindak."},
		{Title: "Harun Yahya", Desc: "Bukan kecerdasan saja yang membawa sukses, tetapi juga hasrat untuk sukses dan komitmen untuk bekerja keras."},
	}
}

// Load reads one tip per line in the form "TITLE | description".
// Blank lines and lines starting with '#' are skipped.
func Load(path string) ([]Tip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only tips file.
			_ = cerr
		}
	}()

	var tips []Tip
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tip, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		tips = append(tips, tip)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("tips file is empty")
	}
	return tips, nil
}

// ParseLine parses a single tips file line.
func ParseLine(line string) (Tip, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Tip{}, false
	}
	title, desc, _ := strings.Cut(line, "|")
	title = strings.ToUpper(strings.TrimSpace(title))
	if title == "" {
		return Tip{}, false
	}
	return Tip{Title: title, Desc: strings.TrimSpace(desc)}, true
}
