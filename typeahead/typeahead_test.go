package typeahead_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullptr-labs/feedtrie/typeahead"
)

func TestAdd_Validation(t *testing.T) {
	s := typeahead.NewSession()

	err := s.Add(typeahead.TypeQuestion, "", 1, "data")
	assert.ErrorIs(t, err, typeahead.ErrEmptyID)

	err = s.Add(typeahead.EntryType("bogus"), "id1", 1, "data")
	assert.ErrorIs(t, err, typeahead.ErrBadType)
}

func TestQueryBasic(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeQuestion, "q1", 0.3, "This is a question."))

	got, err := s.Query(10, []string{"ques"})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, got)
}

// A type boost can lift a lower-scored entry over a higher-scored one.
func TestWeightedQueryBoost(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeQuestion, "q1", 0.3, "a question"))
	require.NoError(t, s.Add(typeahead.TypeQuestion, "q2", 0.6, "a question"))
	require.NoError(t, s.Add(typeahead.TypeUser, "u1", 0.5, "Question Questionson"))

	boosts := map[string]float64{"user": 2.0}
	got, err := s.WeightedQuery(2, boosts, []string{"question"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "q2"}, got)
}

// After delete, a query that previously matched returns nothing.
func TestDeleteRoundTrip(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeQuestion, "q1", 0.3, "How do I door?"))

	s.Delete("q1")

	got, err := s.Query(10, []string{"door"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeTopic, "t1", 1, "golang"))

	s.Delete("does-not-exist")

	got, err := s.Query(10, []string{"golang"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, got)
}

func TestAdd_ReplacesExistingID(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeTopic, "t1", 1, "golang rust"))
	require.NoError(t, s.Add(typeahead.TypeTopic, "t1", 5, "python"))

	got, err := s.Query(10, []string{"golang"})
	require.NoError(t, err)
	assert.Empty(t, got, "old tokens must be unindexed on replace")

	got, err = s.Query(10, []string{"python"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, got)
}

func TestQuery_IntersectsMultiplePrefixes(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeTopic, "t1", 1, "golang concurrency patterns"))
	require.NoError(t, s.Add(typeahead.TypeTopic, "t2", 1, "golang testing"))

	got, err := s.Query(10, []string{"go", "conc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, got)
}

func TestQuery_RanksByScoreThenSeqDescending(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeTopic, "a", 1.0, "golang"))
	require.NoError(t, s.Add(typeahead.TypeTopic, "b", 1.0, "golang"))
	require.NoError(t, s.Add(typeahead.TypeTopic, "c", 2.0, "golang"))

	got, err := s.Query(10, []string{"golang"})
	require.NoError(t, err)
	// c (score 2.0) first; between a and b (tied at 1.0), b was added
	// later (higher seq) and wins the tie.
	assert.Equal(t, []string{"c", "b", "a"}, got)
}

func TestQuery_TruncatesToK(t *testing.T) {
	s := typeahead.NewSession()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Add(typeahead.TypeTopic, id, 1, "golang"))
	}

	got, err := s.Query(2, []string{"golang"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestQuery_BadResultCap(t *testing.T) {
	s := typeahead.NewSession()
	_, err := s.Query(0, []string{"golang"})
	assert.ErrorIs(t, err, typeahead.ErrBadResultCap)
}

func TestTokenization_StripsEdgePunctuationOnly(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeQuestion, "q1", 1, "mother-in-law's recipe!"))

	got, err := s.Query(10, []string{"mother-in-law's"})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, got)

	got, err = s.Query(10, []string{"recipe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, got)
}

// After deleting one of two entries that diverge partway through a shared
// prefix, the remaining entry is still findable by every prefix of its
// token.
func TestRadixCollapseAfterDelete(t *testing.T) {
	s := typeahead.NewSession()
	require.NoError(t, s.Add(typeahead.TypeTopic, "t1", 1, "application"))
	require.NoError(t, s.Add(typeahead.TypeTopic, "t2", 1, "apple"))

	s.Delete("t2")

	for _, prefix := range []string{"a", "ap", "app", "appl", "applica", "application"} {
		got, err := s.Query(10, []string{prefix})
		require.NoError(t, err)
		assert.Equal(t, []string{"t1"}, got, "prefix %q", prefix)
	}

	got, err := s.Query(10, []string{"appl"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, got)
}
