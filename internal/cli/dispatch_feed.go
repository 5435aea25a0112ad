// Package cli implements the line-oriented command dispatchers for the
// feed and typeahead engines. It is a thin boundary: parsing and
// formatting only, with every domain decision delegated to the feed and
// typeahead packages.
package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/nullptr-labs/feedtrie/feed"
)

// RunFeedOptimizer drives a feed.Session from in, writing one result line
// per R command to out. The first line of in must be "N T H"; the next N
// lines are each an S or R command.
//
// Returns a non-nil error on any malformed line; the caller is expected
// to abort.
func RunFeedOptimizer(in *bufio.Scanner, out *bufio.Writer) error {
	if !in.Scan() {
		return fmt.Errorf("cli: missing header line")
	}

	n, t, h, err := parseFeedHeader(in.Text())
	if err != nil {
		return err
	}

	session, err := feed.NewSession(t, h)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	for i := 0; i < n; i++ {
		if !in.Scan() {
			return fmt.Errorf("cli: expected %d command lines, got %d", n, i)
		}

		if err := dispatchFeedLine(session, in.Text(), out); err != nil {
			return err
		}
	}

	return out.Flush()
}

// parseFeedHeader parses the "N T H" header line.
func parseFeedHeader(line string) (n, t, h int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("cli: header %q: want 3 fields, got %d", line, len(fields))
	}

	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("cli: header %q: bad command count: %w", line, err)
	}
	t, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("cli: header %q: bad time window: %w", line, err)
	}
	h, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("cli: header %q: bad browser height: %w", line, err)
	}

	return n, t, h, nil
}

// dispatchFeedLine parses a single S or R command and invokes the matching
// Session method, writing a result line for R.
func dispatchFeedLine(session *feed.Session, line string, out *bufio.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("cli: empty command line")
	}

	switch fields[0] {
	case "S":
		if len(fields) != 4 {
			return fmt.Errorf("cli: S %q: want 3 fields, got %d", line, len(fields)-1)
		}
		t, s, h, err := parseIntTriple(fields[1], fields[2], fields[3])
		if err != nil {
			return fmt.Errorf("cli: S %q: %w", line, err)
		}
		if _, err := session.AddStory(t, s, h); err != nil {
			return fmt.Errorf("cli: S %q: %w", line, err)
		}

		return nil

	case "R":
		if len(fields) != 2 {
			return fmt.Errorf("cli: R %q: want 1 field, got %d", line, len(fields)-1)
		}
		t, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("cli: R %q: bad time: %w", line, err)
		}

		result, err := session.Refresh(t)
		if err != nil {
			return fmt.Errorf("cli: R %q: %w", line, err)
		}

		return writeFeedResult(out, result)

	default:
		return fmt.Errorf("cli: unknown command verb %q", fields[0])
	}
}

// writeFeedResult writes "<total_score> <count> <id1> <id2> …", or "0 0"
// when the feed is empty.
func writeFeedResult(out *bufio.Writer, result feed.Feed) error {
	if result.Count() == 0 {
		_, err := fmt.Fprintln(out, "0 0")

		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %d", result.TotalScore, result.Count())
	for _, id := range result.IDs {
		fmt.Fprintf(&b, " %d", id)
	}
	_, err := fmt.Fprintln(out, b.String())

	return err
}

func parseIntTriple(a, b, c string) (x, y, z int, err error) {
	x, err = strconv.Atoi(a)
	if err != nil {
		return 0, 0, 0, err
	}
	y, err = strconv.Atoi(b)
	if err != nil {
		return 0, 0, 0, err
	}
	z, err = strconv.Atoi(c)
	if err != nil {
		return 0, 0, 0, err
	}

	return x, y, z, nil
}
