package hotspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImEagle/codemetrics/pkg/scm"
	"github.com/ImEagle/codemetrics/pkg/testutil"
)

func spotsByPath(analysis *Analysis) map[string]HotSpot {
	m := make(map[string]HotSpot)
	for _, s := range analysis.Spots {
		m[s.Path] = s
	}
	return m
}

func TestAnalyze(t *testing.T) {
	a := New()

	analysis, err := a.Analyze(testutil.SampleLog(), testutil.SampleSizes())
	require.NoError(t, err)

	require.Len(t, analysis.Spots, 2)
	spots := spotsByPath(analysis)

	stats := spots["stats.py"]
	assert.Equal(t, 100.0, stats.Complexity)
	assert.Equal(t, 2.0, stats.Changes)
	assert.Equal(t, 1.0, stats.ComplexityScore)
	assert.Equal(t, 1.0, stats.ChangesScore)
	assert.Equal(t, 2.0, stats.Score)

	reqs := spots["requirements.txt"]
	assert.Equal(t, 3.0, reqs.Complexity)
	assert.Equal(t, 1.0, reqs.Changes)
	assert.Equal(t, 0.0, reqs.ComplexityScore)
	assert.Equal(t, 0.0, reqs.ChangesScore)
	assert.Equal(t, 0.0, reqs.Score)

	// Descriptive size columns pass through untouched.
	assert.Equal(t, "Python", stats.Language)
	assert.Equal(t, 28, stats.Blank)
	assert.Equal(t, 84, stats.Comment)
}

func TestAnalyzeEqualChangeCounts(t *testing.T) {
	// Both files changed once: the changes column has zero range and
	// scores 0 everywhere, leaving complexity as the only signal.
	entries := testutil.SampleEntries()[1:] // revision 1018 only
	a := New()

	analysis, err := a.Analyze(scm.NewLog(entries), testutil.SampleSizes())
	require.NoError(t, err)

	spots := spotsByPath(analysis)
	assert.Equal(t, 1.0, spots["stats.py"].ComplexityScore)
	assert.Equal(t, 0.0, spots["stats.py"].ChangesScore)
	assert.Equal(t, 0.0, spots["requirements.txt"].ComplexityScore)
	assert.Equal(t, 0.0, spots["requirements.txt"].ChangesScore)
}

func TestAnalyzeCountOneChangePerDay(t *testing.T) {
	// Collapsing revisions onto the same day leaves one change each.
	entries := testutil.SampleEntries()
	for i := range entries {
		entries[i].Extra = map[string]string{"day": "2018-02-24"}
	}
	a := New(WithCountOneChangePer("day"))

	analysis, err := a.Analyze(scm.NewLog(entries), testutil.SampleSizes())
	require.NoError(t, err)

	spots := spotsByPath(analysis)
	assert.Equal(t, 1.0, spots["stats.py"].Changes)
	assert.Equal(t, 1.0, spots["requirements.txt"].Changes)
}

func TestAnalyzeScoreBounds(t *testing.T) {
	a := New()

	analysis, err := a.Analyze(testutil.SampleLog(), testutil.SampleSizes())
	require.NoError(t, err)

	for _, s := range analysis.Spots {
		assert.GreaterOrEqual(t, s.ComplexityScore, 0.0)
		assert.LessOrEqual(t, s.ComplexityScore, 1.0)
		assert.GreaterOrEqual(t, s.ChangesScore, 0.0)
		assert.LessOrEqual(t, s.ChangesScore, 1.0)
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 2.0)
	}
}

func TestAnalyzeOuterMerge(t *testing.T) {
	// A path present only in the log still appears, with complexity 0;
	// a path present only in the size table appears with changes 0.
	entries := append(testutil.SampleEntries(), scm.Entry{
		Revision: "1020",
		Path:     "setup.py",
		Date:     testutil.MustTime("2018-02-27T09:00:00Z"),
		Author:   "elmotec",
		Message:  "added",
	})
	sizes := scm.NewSizeTable([]scm.SizeEntry{
		{Path: "stats.py", Language: "Python", Code: 100},
		{Path: "README.md", Language: "Markdown", Code: 12},
	})
	a := New()

	analysis, err := a.Analyze(scm.NewLog(entries), sizes)
	require.NoError(t, err)

	spots := spotsByPath(analysis)
	require.Len(t, spots, 4)
	assert.Equal(t, 0.0, spots["setup.py"].Complexity)
	assert.Equal(t, 1.0, spots["setup.py"].Changes)
	assert.Equal(t, 0.0, spots["README.md"].Changes)
	assert.Equal(t, 12.0, spots["README.md"].Complexity)
}

func TestAnalyzeEmptyLogPassesSizesThrough(t *testing.T) {
	a := New()

	analysis, err := a.Analyze(scm.NewLog(nil), testutil.SampleSizes())
	require.NoError(t, err)

	require.Len(t, analysis.Spots, 2)
	for _, s := range analysis.Spots {
		assert.Equal(t, 0.0, s.Changes)
		assert.Equal(t, 0.0, s.ChangesScore)
	}
}

func TestAnalyzeMissingColumn(t *testing.T) {
	a := New(WithCountOneChangePer("sprint"))

	_, err := a.Analyze(testutil.SampleLog(), testutil.SampleSizes())
	require.Error(t, err)
	assert.ErrorIs(t, err, scm.ErrMissingColumn)
}

func TestTop(t *testing.T) {
	a := New()

	analysis, err := a.Analyze(testutil.SampleLog(), testutil.SampleSizes())
	require.NoError(t, err)

	top := analysis.Top(1)
	require.Len(t, top, 1)
	assert.Equal(t, "stats.py", top[0].Path)
}
