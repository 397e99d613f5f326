package procvalidator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_SortBySeverityThenMessage(t *testing.T) {
	r := NewReport()
	r.Add(Success(RuleStatusLiteral).Message("b passed").Build())
	r.Add(Warning(RuleBranchName).Message("z branch").Build())
	r.Add(Error(RuleCanonicalURL).Message("b missing").Build())
	r.Add(Error(RuleCanonicalURL).Message("a missing").Build())
	r.Add(Info(RuleProcessID).Message("note").Build())

	fs := r.Findings()
	require.Len(t, fs, 5)
	assert.Equal(t, "a missing", fs[0].Message)
	assert.Equal(t, "b missing", fs[1].Message)
	assert.Equal(t, SeverityWarning, fs[2].Severity)
	assert.Equal(t, SeverityInformation, fs[3].Severity)
	assert.Equal(t, SeveritySuccess, fs[4].Severity)
}

// Equal findings keep insertion order; the sort is stable.
func TestReport_StableForEqualKeys(t *testing.T) {
	r := NewReport()
	first := Error(RuleCanonicalURL).Message("same").In("a.xml").Build()
	second := Error(RuleProfilePrefix).Message("same").In("b.xml").Build()
	r.Add(first)
	r.Add(second)

	fs := r.Findings()
	require.Len(t, fs, 2)
	assert.Equal(t, first, fs[0])
	assert.Equal(t, second, fs[1])
}

// Two identical findings both survive; there is no deduplication.
func TestReport_NoDeduplication(t *testing.T) {
	r := NewReport()
	f := Warning(RuleBranchName).Message("unnamed").In("demo.bpmn").Build()
	r.Add(f)
	r.Add(f)
	assert.Equal(t, 2, r.Len())
}

func TestReport_CountsAndHasErrors(t *testing.T) {
	r := NewReport()
	assert.False(t, r.HasErrors())

	r.Add(Error(RuleCanonicalURL).Message("x").Build())
	r.Add(Warning(RuleBranchName).Message("y").Build())
	r.Add(Success(RuleStatusLiteral).Message("z").Build())

	assert.True(t, r.HasErrors())
	assert.Equal(t, 1, r.Count(SeverityError))
	counts := r.Counts()
	assert.Equal(t, 1, counts[SeverityError])
	assert.Equal(t, 1, counts[SeverityWarning])
	assert.Equal(t, 1, counts[SeveritySuccess])
	assert.Zero(t, counts[SeverityInformation])
}

func TestReport_Partitions(t *testing.T) {
	r := NewReport()
	r.Add(Success(RuleStatusLiteral).Message("ok").Build())
	r.Add(Error(RuleCanonicalURL).Message("bad").Build())
	r.Add(Info(RuleProcessID).Message("note").Build())

	successes := r.Successes()
	require.Len(t, successes, 1)
	assert.True(t, successes[0].IsSuccess())

	others := r.Others()
	require.Len(t, others, 2)
	for _, f := range others {
		assert.False(t, f.IsSuccess())
	}
}

func TestReport_ByFileAndProcessID(t *testing.T) {
	r := NewReport()
	r.Add(Error(RuleCanonicalURL).Message("bad").In("a.xml").Build())
	r.Add(Success(RuleProcessID).Message("ok").In("demo.bpmn").At("demo").Build())
	r.Add(Warning(RuleBranchName).Message("hm").Build())

	grouped := r.ByFile()
	assert.Len(t, grouped["a.xml"], 1)
	assert.Len(t, grouped["demo.bpmn"], 1)
	assert.Len(t, grouped[""], 1)

	assert.Equal(t, "demo", r.ProcessID())
}

func TestReport_Merge(t *testing.T) {
	a := NewReport()
	a.Add(Error(RuleCanonicalURL).Message("x").Build())
	b := NewReport()
	b.Add(Success(RuleStatusLiteral).Message("y").Build())

	a.Merge(b)
	a.Merge(nil)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestReport_ConcurrentAdds(t *testing.T) {
	r := NewReport()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Add(Info(RuleProcessID).Message("note").Build())
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, r.Len())
}
