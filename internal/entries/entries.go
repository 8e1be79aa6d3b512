// Package entries parses user input into wheel items. Malformed entries are
// rejected here and never reach the wheel.
package entries

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/petuhovskiy/spinwheel/internal/wheel"
)

var ErrMalformed = errors.New("malformed entry, expected name(weight), e.g. tea(50)")
var ErrNotANumber = errors.New("table must be a number")

var prizeRe = regexp.MustCompile(`^(.+)\((\d+)\)$`)

type Prize struct {
	Name   string
	Weight float64
}

func split(input string) []string {
	var res []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}

// ParseTables parses "1, 2, 3" into canonical number labels.
// Duplicates inside the input are dropped silently.
func ParseTables(input string) ([]string, error) {
	var labels []string
	var errs []error
	seen := make(map[string]bool)

	for _, part := range split(input) {
		num, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
			errs = append(errs, fmt.Errorf("%q: %w", part, ErrNotANumber))
			continue
		}

		label := strconv.FormatFloat(num, 'f', -1, 64)
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}

	return labels, errors.Join(errs...)
}

// ParsePrizes parses "tea(50), coffee(30)" into prizes with integer weights.
func ParsePrizes(input string) ([]Prize, error) {
	var prizes []Prize
	var errs []error

	for _, part := range split(input) {
		m := prizeRe.FindStringSubmatch(part)
		if m == nil {
			errs = append(errs, fmt.Errorf("%q: %w", part, ErrMalformed))
			continue
		}

		name := strings.TrimSpace(m[1])
		weight, err := strconv.Atoi(m[2])
		if err != nil || name == "" {
			errs = append(errs, fmt.Errorf("%q: %w", part, ErrMalformed))
			continue
		}

		prizes = append(prizes, Prize{Name: name, Weight: float64(weight)})
	}

	return prizes, errors.Join(errs...)
}

// AddTables adds every parsable table number to the wheel. Tables already on
// the wheel are skipped without an error. Returns the number of added items
// and all rejections.
func AddTables(w *wheel.Wheel, input string) (int, error) {
	labels, err := ParseTables(input)
	errs := []error{err}

	added := 0
	for _, label := range labels {
		err := w.AddItem(label)
		if errors.Is(err, wheel.ErrDuplicateLabel) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}

	return added, errors.Join(errs...)
}

// AddPrizes adds every well-formed prize that fits under the weight cap.
// Prizes already on the wheel are skipped without an error.
func AddPrizes(w *wheel.Wheel, input string) (int, error) {
	prizes, err := ParsePrizes(input)
	errs := []error{err}

	added := 0
	for _, p := range prizes {
		err := w.AddWeightedItem(p.Name, p.Weight)
		if errors.Is(err, wheel.ErrDuplicateLabel) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}

	return added, errors.Join(errs...)
}
