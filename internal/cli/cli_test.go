package cli_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullptr-labs/feedtrie/internal/cli"
)

func runFeed(t *testing.T, input string) string {
	t.Helper()

	in := bufio.NewScanner(strings.NewReader(input))
	var out strings.Builder
	w := bufio.NewWriter(&out)
	require.NoError(t, cli.RunFeedOptimizer(in, w))

	return out.String()
}

func runTypeahead(t *testing.T, input string) string {
	t.Helper()

	in := bufio.NewScanner(strings.NewReader(input))
	var out strings.Builder
	w := bufio.NewWriter(&out)
	require.NoError(t, cli.RunTypeahead(in, w))

	return out.String()
}

func TestFeed_RefreshSelectsBothStories(t *testing.T) {
	input := "3 10 100\nS 10 20 30\nS 11 21 31\nR 11\n"
	assert.Equal(t, "41 2 1 2\n", runFeed(t, input))
}

func TestFeed_RefreshExpiresOldStory(t *testing.T) {
	input := "3 10 100\nS 5 10 10\nS 20 20 10\nR 20\n"
	assert.Equal(t, "20 1 2\n", runFeed(t, input))
}

func TestFeed_MalformedVerb(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("1 10 100\nX 1 2 3\n"))
	w := bufio.NewWriter(&strings.Builder{})
	err := cli.RunFeedOptimizer(in, w)
	assert.Error(t, err)
}

func TestTypeahead_AddThenQuery(t *testing.T) {
	input := "2\nADD question q1 0.3 This is a question.\nQUERY 10 ques\n"
	assert.Equal(t, "q1\n", runTypeahead(t, input))
}

func TestTypeahead_WeightedQueryBoost(t *testing.T) {
	input := "" +
		"4\n" +
		"ADD question q1 0.3 a question\n" +
		"ADD question q2 0.6 a question\n" +
		"ADD user u1 0.5 Question Questionson\n" +
		"WQUERY 2 1 user:2.0 question\n"
	assert.Equal(t, "u1 q2\n", runTypeahead(t, input))
}

func TestTypeahead_DeleteThenQueryIsEmpty(t *testing.T) {
	input := "3\nADD question q1 0.3 How do I door?\nDEL q1\nQUERY 10 door\n"
	assert.Equal(t, "\n", runTypeahead(t, input))
}

func TestTypeahead_RepeatedBoostKeysMultiply(t *testing.T) {
	input := "" +
		"3\n" +
		"ADD user u1 1.0 golang\n" +
		"ADD topic t1 5.0 golang\n" +
		"WQUERY 1 2 user:2.0 user:3.0 golang\n"
	// u1's effective score becomes 1.0 * 2.0 * 3.0 = 6.0, beating t1's 5.0.
	// Either factor alone (2.0 or 3.0), or their sum (5.0, lost to t1 on
	// the seq tie-break), would leave t1 on top.
	assert.Equal(t, "u1\n", runTypeahead(t, input))
}

func TestTypeahead_MalformedVerb(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("1\nBOGUS foo\n"))
	w := bufio.NewWriter(&strings.Builder{})
	err := cli.RunTypeahead(in, w)
	assert.Error(t, err)
}
