package builder

import (
	"strconv"
	"strings"
)

// record is one parsed input line.
type record struct {
	line     int
	id       int64
	parentID int64
	value    int64
}

// CheckCharacters rejects text containing any ASCII letter, reporting the
// position of the first one.
func CheckCharacters(text string) error {
	line, column := 1, 1
	for _, r := range text {
		if r == '\n' {
			line++
			column = 1
			continue
		}
		if isLetter(r) {
			return &ParseError{Kind: InvalidCharacters, Line: line, Column: column, Text: string(r)}
		}
		column++
	}
	return nil
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// splitLines yields every non-blank line with its 1-based line number.
func splitLines(text string) []numberedLine {
	var lines []numberedLine
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, numberedLine{number: i + 1, text: line})
	}
	return lines
}

type numberedLine struct {
	number int
	text   string
}

// parseRecord reads one line. It returns ok == false when the line is
// skipped under CoerceMalformed.
func parseRecord(l numberedLine, coerce bool) (rec record, ok bool, err error) {
	fields := strings.Split(l.text, ",")
	if len(fields) < 2 {
		if coerce {
			return record{}, false, nil
		}
		return record{}, false, &ParseError{Kind: MalformedNumber, Line: l.number, Field: 2, Text: strings.TrimSpace(l.text)}
	}

	rec.line = l.number

	id, err := parseField(fields[0], l.number, 1)
	if err == nil && id < 0 {
		err = &ParseError{Kind: MalformedNumber, Line: l.number, Field: 1, Text: strings.TrimSpace(fields[0])}
	}
	if err != nil {
		if coerce {
			return record{}, false, nil
		}
		return record{}, false, err
	}
	rec.id = id

	parentID, err := parseField(fields[1], l.number, 2)
	if err != nil {
		if coerce {
			return record{}, false, nil
		}
		return record{}, false, err
	}
	rec.parentID = parentID

	for i, field := range fields[2:] {
		v, err := parseField(field, l.number, i+3)
		if err != nil {
			if coerce {
				continue
			}
			return record{}, false, err
		}
		rec.value += v
	}

	return rec, true, nil
}

func parseField(field string, line, index int) (int64, error) {
	trimmed := strings.TrimSpace(field)
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: MalformedNumber, Line: line, Field: index, Text: trimmed}
	}
	return v, nil
}
