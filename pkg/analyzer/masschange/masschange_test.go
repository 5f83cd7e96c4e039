package masschange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImEagle/codemetrics/pkg/scm"
	"github.com/ImEagle/codemetrics/pkg/testutil"
)

func TestAnalyze(t *testing.T) {
	a := New(WithMinChanges(1))

	analysis, err := a.Analyze(testutil.SampleLog())
	require.NoError(t, err)

	require.Len(t, analysis.Changes, 1)
	change := analysis.Changes[0]
	assert.Equal(t, "1018", change.Revision)
	assert.Equal(t, 2, change.PathCount)
	assert.Equal(t, "modified", change.Message)
	assert.Equal(t, "elmotec", change.Author)
}

func TestAnalyzeNothingQualifies(t *testing.T) {
	a := New(WithMinChanges(100))

	analysis, err := a.Analyze(testutil.SampleLog())
	require.NoError(t, err)
	assert.Empty(t, analysis.Changes)
}

func TestAnalyzeEmptyLog(t *testing.T) {
	a := New()

	analysis, err := a.Analyze(scm.NewLog(nil))
	require.NoError(t, err)
	assert.Empty(t, analysis.Changes)
}

// Lowering the threshold can only grow the set of returned revisions.
func TestThresholdMonotonicity(t *testing.T) {
	log := testutil.SampleLog()

	for lower := 0; lower < 3; lower++ {
		higher := lower + 1
		loose, err := New(WithMinChanges(lower)).Analyze(log)
		require.NoError(t, err)
		strict, err := New(WithMinChanges(higher)).Analyze(log)
		require.NoError(t, err)

		assert.Subset(t, loose.Revisions(), strict.Revisions(),
			"threshold %d should return a subset of threshold %d", higher, lower)
	}
}

func TestAnalyzeDistinctMetaPerRevision(t *testing.T) {
	entries := testutil.SampleEntries()
	// Same revision, divergent message: both triples survive the join.
	entries = append(entries, scm.Entry{
		Revision: "1018",
		Path:     "setup.py",
		Date:     testutil.MustTime("2018-02-24T11:14:11Z"),
		Author:   "elmotec",
		Message:  "amended",
	})

	analysis, err := New(WithMinChanges(2)).Analyze(scm.NewLog(entries))
	require.NoError(t, err)

	require.Len(t, analysis.Changes, 2)
	assert.Equal(t, 3, analysis.Changes[0].PathCount)
	assert.Equal(t, []string{"1018"}, analysis.Revisions())
	assert.ElementsMatch(t, []string{"modified", "amended"},
		[]string{analysis.Changes[0].Message, analysis.Changes[1].Message})
}
