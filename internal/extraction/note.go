package extraction

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	enc "github.com/minhtp/sobanhang/internal/encoding"
)

// ParseNote reads a plain-text note export and produces a Suggestion.
// Older notebook tools write these files in legacy encodings, so the input
// is decoded to UTF-8 first.
//
// Recognized lines:
//
//	ngay: 15/01/2024        date
//	khach: Chi Ba           counterpart
//	ghichu: giao buoi sang  free-form notes
//	2 x Gao ST25 = 25000    item with price
//	1 x Nuoc mam            item without price
//
// Anything else is skipped: the file is handwriting-adjacent and the output
// is a guess, not a record.
func ParseNote(r io.Reader) (*Suggestion, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	s := &Suggestion{}

	scanner := bufio.NewScanner(utf8r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if value, ok := prefixValue(line, "ngay:"); ok {
			if t, err := time.Parse("02/01/2006", value); err == nil {
				s.Date = &t
			}

			continue
		}

		if value, ok := prefixValue(line, "khach:"); ok {
			s.Counterpart = value
			continue
		}

		if value, ok := prefixValue(line, "ghichu:"); ok {
			s.Notes = value
			continue
		}

		if item, ok := parseItemLine(line); ok {
			s.Items = append(s.Items, item)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading note: %w", err)
	}

	return s, nil
}

func prefixValue(line, prefix string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(line), prefix) {
		return "", false
	}

	return strings.TrimSpace(line[len(prefix):]), true
}

// itemLine matches "QTY x NAME" with an optional "= PRICE" suffix.
var itemLine = regexp.MustCompile(`^(\d+)\s*[xX]\s*(.+?)(?:\s*=\s*([\d.,]+))?$`)

func parseItemLine(line string) (SuggestedItem, bool) {
	m := itemLine.FindStringSubmatch(line)
	if m == nil {
		return SuggestedItem{}, false
	}

	qty, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || qty <= 0 {
		return SuggestedItem{}, false
	}

	item := SuggestedItem{
		Name:     strings.TrimSpace(m[2]),
		Quantity: qty,
	}

	if m[3] != "" {
		// Prices are written with grouping separators ("25.000" or "25,000").
		digits := strings.NewReplacer(".", "", ",", "").Replace(m[3])
		if price, err := strconv.ParseInt(digits, 10, 64); err == nil {
			item.UnitPrice = &price
		}
	}

	return item, true
}
