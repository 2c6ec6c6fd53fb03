package services

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/kerbaras/anilist/pkg/data"
	"github.com/kerbaras/anilist/pkg/prompt"
)

// User-facing messages.
const (
	MsgNotFound    = "Anime not found in list!"
	MsgEmptyList   = "Your anime list is empty!\nTry adding some using the 'add' command"
	MsgEmptyExport = "Your anime list is empty, new file not created"
)

// Questions asked while building or editing a record.
const (
	askName          = "What is the name of the anime?: "
	askScore         = "What score would you like to give the anime? (0 - 10, decimals allowed): "
	retryScore       = "Invalid input, please enter a floating point number between 0 and 10"
	askTotalEp       = "What is the anime's total episode count? (integer only): "
	retryTotalEp     = "Invalid input, please enter a valid integer that is greater than or equal to 0"
	askCurrentEp     = "What episode are you currently on? (0 - %d, integer only): "
	retryCurrentEp   = "Invalid input, please enter a valid integer between 0 and %d"
	askStatus        = "What is the current watch status? (1 = Watching, 2 = Completed, 3 = Dropped): "
	retryStatus      = "Invalid input, please enter an integer between 1 and 3 (1 = Watching, 2 = Completed, 3 = Dropped): "
	askReview        = "What is your review of the anime? (string): "
	askExportFile    = "What is the name of the export file?: "
	askUpdateName    = "Would you like to update the name? (y/n): "
	askUpdateScore   = "Would you like to update the score? (y/n): "
	askUpdateTotal   = "Would you like to update your total episode count? (y/n): "
	askUpdateCurrent = "Would you like to update your current episode count? (y/n): "
	askUpdateStatus  = "Would you like to update the status? (y/n): "
	askUpdateReview  = "Would you like to update the review? (y/n): "
	noteCurrentEp    = "Current episode %d is past the new total of %d, please enter it again"
)

// Tracker runs the list commands. Every command is one load, at most one
// mutation and, for mutating commands, one full save.
type Tracker struct {
	store  *data.Store
	prompt *prompt.Prompter
	out    io.Writer
	logger *slog.Logger
}

func NewTracker(store *data.Store, in io.Reader, out io.Writer, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		store:  store,
		prompt: prompt.New(in, out),
		out:    out,
		logger: logger,
	}
}

// Add prompts for every field and appends the new record.
func (t *Tracker) Add() (*data.Anime, error) {
	h, list, err := t.store.Open()
	if err != nil {
		return nil, err
	}
	defer h.Close()

	anime, err := t.newAnime()
	if err != nil {
		return nil, err
	}
	list = append(list, anime)
	if err := h.Save(list); err != nil {
		return nil, err
	}
	t.logger.Info("anime added", "name", anime.Name)
	return &anime, nil
}

func (t *Tracker) newAnime() (data.Anime, error) {
	name, err := t.prompt.Line(askName)
	if err != nil {
		return data.Anime{}, err
	}
	score, err := t.score(askScore)
	if err != nil {
		return data.Anime{}, err
	}
	total, err := t.totalEp(askTotalEp)
	if err != nil {
		return data.Anime{}, err
	}
	current, err := t.currentEp(fmt.Sprintf(askCurrentEp, total), total)
	if err != nil {
		return data.Anime{}, err
	}
	status, err := t.status(askStatus)
	if err != nil {
		return data.Anime{}, err
	}
	review, err := t.prompt.Line(askReview)
	if err != nil {
		return data.Anime{}, err
	}
	return data.NewAnime(name, score, current, total, status, review), nil
}

// Update edits the first record matching a prompted name, field by field.
// Nothing is written when no record matches, or when the edited record
// still fails Validate (e.g. an unknown status kept from an older file). It reports whether a record
// was found.
func (t *Tracker) Update() (bool, error) {
	h, list, err := t.store.Open()
	if err != nil {
		return false, err
	}
	defer h.Close()

	name, err := t.prompt.Line(askName)
	if err != nil {
		return false, err
	}
	anime, ok := list.Find(name)
	if !ok {
		fmt.Fprintln(t.out, MsgNotFound)
		return false, nil
	}

	if err := t.edit(anime); err != nil {
		return true, err
	}
	if err := anime.Validate(); err != nil {
		return true, fmt.Errorf("%s is still invalid, list not saved: %w", anime.Name, err)
	}
	if err := h.Save(list); err != nil {
		return true, err
	}
	t.logger.Info("anime updated", "name", anime.Name)
	return true, nil
}

func (t *Tracker) edit(anime *data.Anime) error {
	if ok, err := t.prompt.Confirm(askUpdateName); err != nil {
		return err
	} else if ok {
		if anime.Name, err = t.prompt.Line("New name: "); err != nil {
			return err
		}
	}

	if ok, err := t.prompt.Confirm(askUpdateScore); err != nil {
		return err
	} else if ok {
		if anime.Score, err = t.score("New score: (0 - 10, decimals allowed)"); err != nil {
			return err
		}
	}

	if ok, err := t.prompt.Confirm(askUpdateTotal); err != nil {
		return err
	} else if ok {
		if anime.TotalEp, err = t.totalEp("New total episode count: "); err != nil {
			return err
		}
	}

	askCurrent := true
	if anime.CurrentEp > anime.TotalEp {
		fmt.Fprintf(t.out, noteCurrentEp+"\n", anime.CurrentEp, anime.TotalEp)
	} else {
		ok, err := t.prompt.Confirm(askUpdateCurrent)
		if err != nil {
			return err
		}
		askCurrent = ok
	}
	if askCurrent {
		current, err := t.currentEp(fmt.Sprintf("New episode count: (0 - %d)", anime.TotalEp), anime.TotalEp)
		if err != nil {
			return err
		}
		anime.CurrentEp = current
	}

	if ok, err := t.prompt.Confirm(askUpdateStatus); err != nil {
		return err
	} else if ok {
		if anime.Status, err = t.status("New status: (1 = Watching, 2 = Completed, 3 = Dropped)"); err != nil {
			return err
		}
	}

	if ok, err := t.prompt.Confirm(askUpdateReview); err != nil {
		return err
	} else if ok {
		if anime.Review, err = t.prompt.Line("New review: "); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the first record matching a prompted name. The list is
// rewritten even when nothing matched.
func (t *Tracker) Remove() (bool, error) {
	h, list, err := t.store.Open()
	if err != nil {
		return false, err
	}
	defer h.Close()

	name, err := t.prompt.Line(askName)
	if err != nil {
		return false, err
	}
	list, removed := list.Remove(name)
	if err := h.Save(list); err != nil {
		return removed, err
	}
	if removed {
		t.logger.Info("anime removed", "name", name)
	}
	return removed, nil
}

// Search prints the first record matching a prompted name.
func (t *Tracker) Search() (*data.Anime, error) {
	list, err := t.store.Load()
	if err != nil {
		return nil, err
	}

	name, err := t.prompt.Line(askName)
	if err != nil {
		return nil, err
	}
	anime, ok := list.Find(name)
	if !ok {
		fmt.Fprintln(t.out, MsgNotFound)
		return nil, nil
	}
	fmt.Fprintln(t.out, anime)
	return anime, nil
}

// List prints every record in list order, and returns them.
func (t *Tracker) List() (data.List, error) {
	list, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		fmt.Fprintln(t.out, MsgEmptyList)
		return list, nil
	}
	for _, anime := range list {
		fmt.Fprintln(t.out, anime)
	}
	return list, nil
}

// Entries loads the list without printing anything.
func (t *Tracker) Entries() (data.List, error) {
	return t.store.Load()
}

func (t *Tracker) score(message string) (float32, error) {
	return t.prompt.Float(message, retryScore, data.MinScore, data.MaxScore)
}

func (t *Tracker) totalEp(message string) (int, error) {
	return t.prompt.Int(message, retryTotalEp, 0, math.MaxInt32)
}

func (t *Tracker) currentEp(message string, total int) (int, error) {
	return t.prompt.Int(message, fmt.Sprintf(retryCurrentEp, total), 0, total)
}

func (t *Tracker) status(message string) (data.Status, error) {
	return prompt.Choice(t.prompt, message, retryStatus, data.StatusFromChoice)
}
