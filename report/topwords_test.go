package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableCounts struct {
	wt  [][]float64
	wts []float64
}

func (c tableCounts) TopicNum() int                   { return len(c.wt) }
func (c tableCounts) VocabSize() int                  { return len(c.wt[0]) }
func (c tableCounts) WordTopicCount(k, w int) float64 { return c.wt[k][w] }
func (c tableCounts) TopicCount(k int) float64        { return c.wts[k] }

type tokens []string

func (v tokens) Token(id int) string { return v[id] }

var catDog = tableCounts{
	wt: [][]float64{
		{1.3, 2.3, 1.3, 1.3, 1.3},
		{0.3, 0.3, 0.3, 0.3, 0.3},
	},
	wts: []float64{7.5, 1.5},
}

var catDogVocab = tokens{"cat", "sat", "mat", "dog", "log"}

func TestTopWordsRanking(t *testing.T) {
	topics := TopWords(catDog, catDogVocab, 3)

	require.Len(t, topics, 2)
	require.Len(t, topics[0].Words, 3)
	assert.Equal(t, "sat", topics[0].Words[0].Word)
	assert.InDelta(t, 2.3/7.5, topics[0].Words[0].Score, 1e-12)
	// ties keep vocabulary order
	assert.Equal(t, "cat", topics[0].Words[1].Word)
	assert.Equal(t, "mat", topics[0].Words[2].Word)

	assert.Equal(t, []int{0, 1, 2}, []int{
		topics[1].Words[0].ID, topics[1].Words[1].ID, topics[1].Words[2].ID,
	})
	assert.InDelta(t, 0.2, topics[1].Words[0].Score, 1e-12)
}

func TestTopWordsMatchesLargestScores(t *testing.T) {
	counts := tableCounts{
		wt:  [][]float64{{0.5, 4.5, 2.5, 9.5, 0.5, 3.5}},
		wts: []float64{21},
	}
	vocab := tokens{"a", "b", "c", "d", "e", "f"}

	topics := TopWords(counts, vocab, 4)

	var got []string
	for _, ws := range topics[0].Words {
		got = append(got, ws.Word)
	}
	assert.Equal(t, []string{"d", "b", "f", "c"}, got)
}

func TestTopWordsClampsN(t *testing.T) {
	topics := TopWords(catDog, catDogVocab, 50)
	assert.Len(t, topics[0].Words, 5)

	topics = TopWords(catDog, catDogVocab, -1)
	assert.Empty(t, topics[0].Words)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	topics := []Topic{{ID: 0, Words: []WordScore{{ID: 1, Word: "sat", Score: 0.25}}}}

	require.NoError(t, Write(&buf, topics))
	assert.Equal(t, "-----topic:0-----\nsat:0.25\n", buf.String())
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteHeader(&buf, "run1", 1200, 34000, 5, 2))
	assert.Equal(t, "run run1: 1,200 documents, 34,000 tokens, 5 words, 2 topics\n", buf.String())
}
