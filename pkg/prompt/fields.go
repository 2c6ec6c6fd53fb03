package prompt

import (
	"errors"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNoChoice = errors.New("prompt: not a listed choice")

// decimal is plain decimal notation with an optional exponent. Hex floats,
// digit separators, Inf and NaN are not answers.
var decimal = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Float asks for a 32-bit decimal in [lo, hi].
func (p *Prompter) Float(message, retry string, lo, hi float32) (float32, error) {
	return Ask(p, Question[float32]{
		Message: message,
		Retry:   retry,
		Parse:   parseFloat32,
		Valid:   func(v float32) bool { return inRange(v, lo, hi) },
	})
}

// Int asks for a 32-bit integer in [lo, hi]. Use math.MaxInt32 for an open
// upper bound.
func (p *Prompter) Int(message, retry string, lo, hi int) (int, error) {
	return Ask(p, Question[int]{
		Message: message,
		Retry:   retry,
		Parse:   parseInt32,
		Valid:   func(v int) bool { return inRange(v, lo, hi) },
	})
}

// Choice asks for a menu number and maps it with pick; numbers pick rejects
// are asked again.
func Choice[T any](p *Prompter, message, retry string, pick func(int) (T, bool)) (T, error) {
	return Ask(p, Question[T]{
		Message: message,
		Retry:   retry,
		Parse: func(s string) (T, error) {
			n, err := parseInt32(s)
			if err != nil {
				var zero T
				return zero, err
			}
			v, ok := pick(n)
			if !ok {
				return v, errNoChoice
			}
			return v, nil
		},
	})
}

// inRange checks lo <= v <= hi. ozzo's threshold rules pass zero values as
// empty, so zero is compared directly.
func inRange[T int | float32](v, lo, hi T) bool {
	if v == 0 {
		return lo <= 0 && hi >= 0
	}
	return validation.Validate(v, validation.Min(lo), validation.Max(hi)) == nil
}

func parseFloat32(s string) (float32, error) {
	if !decimal.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func parseInt32(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
