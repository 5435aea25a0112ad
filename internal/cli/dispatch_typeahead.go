package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/nullptr-labs/feedtrie/typeahead"
)

// RunTypeahead drives a typeahead.Session from in, writing one result line
// per QUERY/WQUERY command to out. The first line of in must be "N"; the
// next N lines are each an ADD, DEL, QUERY, or WQUERY command.
func RunTypeahead(in *bufio.Scanner, out *bufio.Writer) error {
	if !in.Scan() {
		return fmt.Errorf("cli: missing header line")
	}

	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil {
		return fmt.Errorf("cli: header %q: bad command count: %w", in.Text(), err)
	}

	session := typeahead.NewSession()

	for i := 0; i < n; i++ {
		if !in.Scan() {
			return fmt.Errorf("cli: expected %d command lines, got %d", n, i)
		}

		if err := dispatchTypeaheadLine(session, in.Text(), out); err != nil {
			return err
		}
	}

	return out.Flush()
}

func dispatchTypeaheadLine(session *typeahead.Session, line string, out *bufio.Writer) error {
	verb, rest, ok := firstField(line)
	if !ok {
		return fmt.Errorf("cli: empty command line")
	}

	switch verb {
	case "ADD":
		return dispatchAdd(session, rest)
	case "DEL":
		id := strings.TrimSpace(rest)
		if id == "" {
			return fmt.Errorf("cli: DEL %q: missing id", line)
		}
		session.Delete(id)

		return nil
	case "QUERY":
		return dispatchQuery(session, rest, out)
	case "WQUERY":
		return dispatchWeightedQuery(session, rest, out)
	default:
		return fmt.Errorf("cli: unknown command verb %q", verb)
	}
}

// dispatchAdd parses "<type> <id> <score> <data…>"; data is the remainder
// of the line verbatim.
func dispatchAdd(session *typeahead.Session, rest string) error {
	fields, data, ok := splitFields(rest, 3)
	if !ok {
		return fmt.Errorf("cli: ADD %q: want at least 3 fields before data", rest)
	}

	score, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("cli: ADD %q: bad score: %w", rest, err)
	}

	if err := session.Add(typeahead.EntryType(fields[0]), fields[1], score, data); err != nil {
		return fmt.Errorf("cli: ADD %q: %w", rest, err)
	}

	return nil
}

// dispatchQuery parses "<k> <prefixes…>".
func dispatchQuery(session *typeahead.Session, rest string, out *bufio.Writer) error {
	fields, prefixLine, ok := splitFields(rest, 1)
	if !ok {
		return fmt.Errorf("cli: QUERY %q: missing k", rest)
	}

	k, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("cli: QUERY %q: bad k: %w", rest, err)
	}

	ids, err := session.Query(k, strings.Fields(prefixLine))
	if err != nil {
		return fmt.Errorf("cli: QUERY %q: %w", rest, err)
	}

	return writeTypeaheadResult(out, ids)
}

// dispatchWeightedQuery parses "<k> <b> <boost1> … <boostB> <prefixes…>"
// where each boost is "key:factor" and repeated keys multiply their
// factors together.
func dispatchWeightedQuery(session *typeahead.Session, rest string, out *bufio.Writer) error {
	fields, afterKB, ok := splitFields(rest, 2)
	if !ok {
		return fmt.Errorf("cli: WQUERY %q: missing k/b", rest)
	}

	k, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("cli: WQUERY %q: bad k: %w", rest, err)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("cli: WQUERY %q: bad boost count: %w", rest, err)
	}
	if b < 0 {
		return fmt.Errorf("cli: WQUERY %q: negative boost count %d", rest, b)
	}

	boostFields, prefixLine, ok := splitFields(afterKB, b)
	if !ok {
		return fmt.Errorf("cli: WQUERY %q: want %d boost fields", rest, b)
	}

	boosts := make(map[string]float64, len(boostFields))
	for _, raw := range boostFields {
		key, factor, err := parseBoost(raw)
		if err != nil {
			return fmt.Errorf("cli: WQUERY %q: %w", rest, err)
		}
		if existing, ok := boosts[key]; ok {
			boosts[key] = existing * factor
		} else {
			boosts[key] = factor
		}
	}

	ids, err := session.WeightedQuery(k, boosts, strings.Fields(prefixLine))
	if err != nil {
		return fmt.Errorf("cli: WQUERY %q: %w", rest, err)
	}

	return writeTypeaheadResult(out, ids)
}

// parseBoost splits "key:factor" into its key and factor.
func parseBoost(raw string) (key string, factor float64, err error) {
	k, f, ok := strings.Cut(raw, ":")
	if !ok {
		return "", 0, fmt.Errorf("bad boost %q: want key:factor", raw)
	}

	factor, err = strconv.ParseFloat(f, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad boost %q: %w", raw, err)
	}

	return k, factor, nil
}

// writeTypeaheadResult writes ids space-separated, or a blank line when
// empty.
func writeTypeaheadResult(out *bufio.Writer, ids []string) error {
	_, err := fmt.Fprintln(out, strings.Join(ids, " "))

	return err
}

// firstField splits line into its first whitespace-delimited field and the
// (left-trimmed) remainder.
func firstField(line string) (field, rest string, ok bool) {
	fields, rest, ok := splitFields(line, 1)
	if !ok {
		return "", "", false
	}

	return fields[0], rest, true
}

// splitFields extracts the first n whitespace-delimited fields from line
// and returns them alongside the untouched remainder of the line (with
// only its leading whitespace trimmed), so that verbatim data such as
// ADD's trailing text is never mangled by re-joining fields.
func splitFields(line string, n int) (fields []string, rest string, ok bool) {
	fields = make([]string, 0, n)
	i := 0
	for len(fields) < n {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) {
			return nil, "", false
		}
		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		fields = append(fields, line[start:i])
	}
	for i < len(line) && isSpace(line[i]) {
		i++
	}

	return fields, line[i:], true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
