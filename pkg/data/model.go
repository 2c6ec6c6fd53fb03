package data

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Score bounds. The divisor shown next to a score is always MaxScore.
const (
	MinScore float32 = 0
	MaxScore float32 = 10
)

// Status is the watch state of an anime.
type Status string

const (
	StatusWatching  Status = "Watching"
	StatusCompleted Status = "Completed"
	StatusDropped   Status = "Dropped"
)

// Statuses lists the valid statuses in menu order (1, 2, 3).
var Statuses = []Status{StatusWatching, StatusCompleted, StatusDropped}

// StatusFromChoice maps a 1-based menu choice to a Status.
func StatusFromChoice(choice int) (Status, bool) {
	if choice < 1 || choice > len(Statuses) {
		return "", false
	}
	return Statuses[choice-1], true
}

// Anime is one tracked entry in the list.
type Anime struct {
	Name      string
	Score     float32
	CurrentEp int
	TotalEp   int
	Status    Status
	Review    string
	CreatedAt time.Time // UTC, set once by NewAnime
}

// NewAnime stamps a new record with the current time.
func NewAnime(name string, score float32, currentEp, totalEp int, status Status, review string) Anime {
	return Anime{
		Name:      name,
		Score:     score,
		CurrentEp: currentEp,
		TotalEp:   totalEp,
		Status:    status,
		Review:    review,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Validate checks the numeric ranges and the status value.
func (a Anime) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Score, validation.Min(MinScore), validation.Max(MaxScore)),
		validation.Field(&a.TotalEp, validation.Min(0)),
		validation.Field(&a.CurrentEp, validation.Min(0), validation.Max(a.TotalEp)),
		validation.Field(&a.Status, validation.Required, validation.In(StatusWatching, StatusCompleted, StatusDropped)),
	)
}

// FormatScore renders a score with the shortest representation that
// round-trips, e.g. "8.5" or "10".
func FormatScore(score float32) string {
	return strconv.FormatFloat(float64(score), 'f', -1, 32)
}

// Progress renders "current/total".
func (a Anime) Progress() string {
	return fmt.Sprintf("%d/%d", a.CurrentEp, a.TotalEp)
}

// String renders the record for search and list output, with the
// creation time shown in the local timezone.
func (a Anime) String() string {
	return a.Format(time.Local)
}

// Format is String with an explicit timezone for the creation time.
func (a Anime) Format(loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", a.Name)
	fmt.Fprintf(&b, "\tScore: %s/%s\n", FormatScore(a.Score), FormatScore(MaxScore))
	fmt.Fprintf(&b, "\tProgress: %s\n", a.Progress())
	fmt.Fprintf(&b, "\tStatus: %s\n", a.Status)
	fmt.Fprintf(&b, "\tReview: %s\n", a.Review)
	fmt.Fprintf(&b, "\tEntered at: [%s]", a.CreatedAt.In(loc).Format("2006-01-02 15:04"))
	return b.String()
}

// ExportSeparator ends every block in a text export.
const ExportSeparator = "-----------------------------------------------------"

// ExportBlock renders the plain-text export block for one record,
// including the trailing separator line.
func (a Anime) ExportBlock() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.Name)
	fmt.Fprintf(&b, "\tScore: %s/%s\n", FormatScore(a.Score), FormatScore(MaxScore))
	fmt.Fprintf(&b, "\tProgress: %s\n", a.Progress())
	fmt.Fprintf(&b, "\tStatus: %s\n", a.Status)
	fmt.Fprintf(&b, "\tReview: %s\n", a.Review)
	b.WriteString(ExportSeparator + "\n")
	return b.String()
}

// animeJSON is the on-disk shape; created_at is Unix seconds.
type animeJSON struct {
	Name      string  `json:"name"`
	Score     float32 `json:"score"`
	CurrentEp int     `json:"current_ep"`
	TotalEp   int     `json:"total_ep"`
	Status    Status  `json:"status"`
	Review    string  `json:"review"`
	CreatedAt int64   `json:"created_at"`
}

func (a Anime) MarshalJSON() ([]byte, error) {
	return json.Marshal(animeJSON{
		Name:      a.Name,
		Score:     a.Score,
		CurrentEp: a.CurrentEp,
		TotalEp:   a.TotalEp,
		Status:    a.Status,
		Review:    a.Review,
		CreatedAt: a.CreatedAt.Unix(),
	})
}

func (a *Anime) UnmarshalJSON(b []byte) error {
	var raw animeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*a = Anime{
		Name:      raw.Name,
		Score:     raw.Score,
		CurrentEp: raw.CurrentEp,
		TotalEp:   raw.TotalEp,
		Status:    raw.Status,
		Review:    raw.Review,
		CreatedAt: time.Unix(raw.CreatedAt, 0).UTC(),
	}
	return nil
}

// List is the ordered collection of records. Names are not unique;
// lookups return the first match.
type List []Anime

// Index returns the position of the first record named name, or -1.
func (l List) Index(name string) int {
	for i := range l {
		if l[i].Name == name {
			return i
		}
	}
	return -1
}

// Find returns the first record named name.
func (l List) Find(name string) (*Anime, bool) {
	i := l.Index(name)
	if i < 0 {
		return nil, false
	}
	return &l[i], true
}

// Remove deletes the first record named name and reports whether one
// was found.
func (l List) Remove(name string) (List, bool) {
	i := l.Index(name)
	if i < 0 {
		return l, false
	}
	return append(l[:i], l[i+1:]...), true
}
