package age

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImEagle/codemetrics/pkg/scm"
	"github.com/ImEagle/codemetrics/pkg/testutil"
)

var referenceTime = time.Date(2018, 2, 28, 0, 0, 0, 0, time.UTC)

func TestAnalyze(t *testing.T) {
	a := New(WithKeys("path"), WithReferenceTime(referenceTime))

	analysis, err := a.Analyze(testutil.SampleLog())
	require.NoError(t, err)

	require.Len(t, analysis.Records, 2)
	byPath := map[string]float64{}
	for _, r := range analysis.Records {
		byPath[r.Value("path")] = r.Age
	}
	assert.InDelta(t, 3.531817, byPath["requirements.txt"], 1e-5)
	assert.InDelta(t, 1.563889, byPath["stats.py"], 1e-5)
}

func TestAnalyzeDefaultKeys(t *testing.T) {
	a := New(WithReferenceTime(referenceTime))

	analysis, err := a.Analyze(testutil.SampleLog())
	require.NoError(t, err)

	// Default keys: every column minus the excluded set.
	assert.Equal(t, []string{"path", "kind"}, analysis.Keys)
	require.Len(t, analysis.Records, 2)
	for _, r := range analysis.Records {
		assert.Equal(t, "file", r.Value("kind"))
	}
}

func TestAnalyzeExtraColumnBecomesKey(t *testing.T) {
	entries := testutil.SampleEntries()
	for i := range entries {
		entries[i].Extra = map[string]string{"component": "kernel"}
	}
	a := New(WithKeys("component", "kind"), WithReferenceTime(referenceTime))

	analysis, err := a.Analyze(scm.NewLog(entries))
	require.NoError(t, err)

	// One group: the most recent date across the whole log wins.
	require.Len(t, analysis.Records, 1)
	assert.Equal(t, "kernel", analysis.Records[0].Value("component"))
	assert.Equal(t, "file", analysis.Records[0].Value("kind"))
	assert.InDelta(t, 1.563889, analysis.Records[0].Age, 1e-5)
}

func TestAnalyzeNonNegativeAges(t *testing.T) {
	// Reference at or after every date in the log.
	a := New(WithReferenceTime(referenceTime))

	analysis, err := a.Analyze(testutil.SampleLog())
	require.NoError(t, err)
	for _, r := range analysis.Records {
		assert.GreaterOrEqual(t, r.Age, 0.0)
	}
}

func TestAnalyzeMissingKeyColumn(t *testing.T) {
	a := New(WithKeys("sprint"), WithReferenceTime(referenceTime))

	_, err := a.Analyze(testutil.SampleLog())
	require.Error(t, err)
	assert.ErrorIs(t, err, scm.ErrMissingColumn)
}

func TestAnalyzeZeroDate(t *testing.T) {
	log := scm.NewLog([]scm.Entry{{Revision: "1", Path: "a.go"}})
	a := New(WithKeys("path"), WithReferenceTime(referenceTime))

	_, err := a.Analyze(log)
	assert.ErrorIs(t, err, scm.ErrInvalidDate)
}

func TestAnalyzeEmptyLog(t *testing.T) {
	a := New(WithKeys("path"), WithReferenceTime(referenceTime))

	analysis, err := a.Analyze(scm.NewLog(nil))
	require.NoError(t, err)
	assert.Empty(t, analysis.Records)
}

func TestKeyConfigResolve(t *testing.T) {
	log := scm.NewLog([]scm.Entry{
		{Revision: "1", Path: "a.go", Kind: "file", Extra: map[string]string{"day": "2018-02-24"}},
	})

	keys := DefaultKeyConfig().Resolve(log)
	assert.Equal(t, []string{"path", "kind", "day"}, keys)

	custom := KeyConfig{Excluded: map[string]struct{}{
		scm.ColRevision: {}, scm.ColAuthor: {}, scm.ColDate: {},
		scm.ColTextMods: {}, scm.ColAction: {}, scm.ColPropMods: {},
		scm.ColMessage: {}, scm.ColKind: {},
	}}
	assert.Equal(t, []string{"path", "day"}, custom.Resolve(log))
}
