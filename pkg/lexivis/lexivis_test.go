package lexivis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexivis/pkg/lexivis/analytics"
	"github.com/cognicore/lexivis/pkg/lexivis/ingest"
	"github.com/cognicore/lexivis/pkg/lexivis/internalerr"
	"github.com/cognicore/lexivis/pkg/lexivis/scale"
)

func rawChapters(texts ...string) [][]string {
	out := make([][]string, len(texts))
	for i, text := range texts {
		out[i] = ingest.Tokenize(text)
	}
	return out
}

func recordByWord(t *testing.T, records []analytics.Record, word string) analytics.Record {
	t.Helper()
	for _, r := range records {
		if r.Word == word {
			return r
		}
	}
	t.Fatalf("word %q not found in %+v", word, records)
	return analytics.Record{}
}

func TestGenerateCatDogScenario(t *testing.T) {
	l := New(Options{})

	res, err := l.Generate(context.Background(),
		rawChapters("the cat sat on the mat", "the dog sat on the rug"), 5)
	require.NoError(t, err)
	require.Len(t, res.Chapters, 2)
	assert.NotEmpty(t, res.RunID)

	first := res.Chapters[0]
	require.Len(t, first, 3)
	assert.Equal(t, "cat", first[0].Word)
	assert.Equal(t, "sat", first[1].Word)
	assert.Equal(t, "mat", first[2].Word)

	cat := recordByWord(t, first, "cat")
	sat := recordByWord(t, first, "sat")
	assert.Less(t, sat.Uniqueness, cat.Uniqueness)
	assert.InDelta(t, 0.1, sat.Uniqueness, 1e-12)
	assert.InDelta(t, 1.0, cat.Uniqueness, 1e-12)

	second := res.Chapters[1]
	dog := recordByWord(t, second, "dog")
	sat2 := recordByWord(t, second, "sat")
	assert.Less(t, sat2.Uniqueness, dog.Uniqueness)

	// every chapter's words share a frequency, so freq collapses to the midpoint
	for _, r := range first {
		assert.InDelta(t, scale.DefaultRange.Mid(), r.Freq, 1e-12)
	}
}

func TestGenerateSingleWordChapter(t *testing.T) {
	l := New(Options{})

	res, err := l.Generate(context.Background(), [][]string{{"alone"}}, 25)
	require.NoError(t, err)
	require.Len(t, res.Chapters, 1)
	require.Len(t, res.Chapters[0], 1)

	r := res.Chapters[0][0]
	assert.Equal(t, "alone", r.Word)
	mid := scale.DefaultRange.Mid()
	assert.InDelta(t, mid, r.Freq, 1e-12)
	assert.InDelta(t, mid, r.Pos, 1e-12)
	assert.InDelta(t, mid, r.Uniqueness, 1e-12)
}

func TestGenerateEmptyChapter(t *testing.T) {
	l := New(Options{})

	res, err := l.Generate(context.Background(),
		rawChapters("The wart was a boy.", "the of , . ; said", "Kay was cross."), 25)
	require.NoError(t, err)
	require.Len(t, res.Chapters, 3)

	assert.NotNil(t, res.Chapters[1])
	assert.Empty(t, res.Chapters[1])
	assert.NotEmpty(t, res.Chapters[0])
	assert.NotEmpty(t, res.Chapters[2])
}

func TestGenerateScaledRange(t *testing.T) {
	l := New(Options{})

	text := strings.Repeat("dragon knight castle ", 3) + "dragon sword quest dragon tower knight moat"
	res, err := l.Generate(context.Background(),
		rawChapters(text, "knight castle moat bridge", "sword sword quest"), 25)
	require.NoError(t, err)

	for _, ch := range res.Chapters {
		for _, r := range ch {
			for _, v := range []float64{r.Freq, r.Uniqueness, r.Pos} {
				assert.GreaterOrEqual(t, v, 0.1, r.Word)
				assert.LessOrEqual(t, v, 1.0, r.Word)
			}
		}
	}
}

func TestGenerateWordCountLimit(t *testing.T) {
	l := New(Options{})

	res, err := l.Generate(context.Background(),
		rawChapters("alpha beta gamma delta epsilon zeta eta theta"), 3)
	require.NoError(t, err)
	require.Len(t, res.Chapters[0], 3)
	assert.Equal(t, "alpha", res.Chapters[0][0].Word)
	assert.Equal(t, "gamma", res.Chapters[0][2].Word)
	assert.Equal(t, 3, res.Words())
}

func TestGenerateFrequencySelection(t *testing.T) {
	l := New(Options{Selection: analytics.SelectFrequency})

	res, err := l.Generate(context.Background(),
		rawChapters("rare common common common middle middle"), 2)
	require.NoError(t, err)
	require.Len(t, res.Chapters[0], 2)
	assert.Equal(t, "common", res.Chapters[0][0].Word)
	assert.Equal(t, "middle", res.Chapters[0][1].Word)
}

func TestGenerateCustomRange(t *testing.T) {
	l := New(Options{Range: &scale.Range{Min: 0, Max: 10}})

	res, err := l.Generate(context.Background(), rawChapters("cat dog dog"), 5)
	require.NoError(t, err)
	cat := recordByWord(t, res.Chapters[0], "cat")
	dog := recordByWord(t, res.Chapters[0], "dog")
	assert.InDelta(t, 0.0, cat.Freq, 1e-12)
	assert.InDelta(t, 10.0, dog.Freq, 1e-12)
}

func TestGenerateInvalidInput(t *testing.T) {
	l := New(Options{})
	_, err := l.Generate(context.Background(), rawChapters("cat"), 0)
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))

	bad := New(Options{Range: &scale.Range{Min: 1, Max: 0.1}})
	_, err = bad.Generate(context.Background(), rawChapters("cat"), 5)
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
}

func TestGenerateConcurrentMatchesSequential(t *testing.T) {
	texts := []string{
		"The Wart climbed the tree and looked down at the castle moat.",
		"Merlyn turned the Wart into a fish in the castle moat.",
		"Sir Kay was cross because the Wart had gone to the forest.",
		"The forest was dark and the Wart met Robin Wood.",
		"Robin Wood and Maid Marian led the Wart through the forest.",
	}

	seq, err := New(Options{}).Generate(context.Background(), rawChapters(texts...), 10)
	require.NoError(t, err)
	par, err := New(Options{Workers: 4}).Generate(context.Background(), rawChapters(texts...), 10)
	require.NoError(t, err)

	assert.Equal(t, seq.Chapters, par.Chapters)
	assert.NotEqual(t, seq.RunID, par.RunID)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}).Generate(ctx, rawChapters("cat", "dog"), 5)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = New(Options{Workers: 2}).Generate(ctx, rawChapters("cat", "dog"), 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "ch1.txt")
	p2 := filepath.Join(dir, "ch2.txt")
	require.NoError(t, os.WriteFile(p1, []byte("The cat sat on the mat."), 0644))
	require.NoError(t, os.WriteFile(p2, []byte("The dog sat on the rug."), 0644))

	res, err := New(Options{}).GenerateFiles(context.Background(), []string{p1, p2}, 5)
	require.NoError(t, err)
	require.Len(t, res.Chapters, 2)
	assert.Equal(t, "cat", res.Chapters[0][0].Word)
	assert.Equal(t, "dog", res.Chapters[1][0].Word)

	_, err = New(Options{}).GenerateFiles(context.Background(), []string{filepath.Join(dir, "missing.txt")}, 5)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
