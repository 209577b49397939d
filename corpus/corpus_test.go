package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldsTokenizer struct{}

func (fieldsTokenizer) Tokenize(text string) []string { return strings.Fields(text) }

func TestBuildVocabularyFirstAppearance(t *testing.T) {
	v := BuildVocabulary([][]string{{"cat", "sat", "mat"}, {"dog", "sat", "log"}})

	assert.Equal(t, 5, v.Size())
	assert.Equal(t, []string{"cat", "sat", "mat", "dog", "log"}, v.Tokens())

	id, ok := v.ID("dog")
	assert.True(t, ok)
	assert.Equal(t, 3, id)
	assert.Equal(t, "log", v.Token(4))

	_, ok = v.ID("bird")
	assert.False(t, ok)
	assert.PanicsWithValue(t, ErrUnknownWordID, func() { v.Token(5) })
}

func TestNewVocabularyDuplicates(t *testing.T) {
	v := NewVocabulary([]string{"a", "b", "a"})

	assert.Equal(t, 2, v.Size())
	id, _ := v.ID("a")
	assert.Equal(t, 0, id)
}

func TestNewEncodesDocuments(t *testing.T) {
	vocab := NewVocabulary([]string{"cat", "sat", "mat", "dog", "log"})
	c, err := New([][]string{{"cat", "sat", "mat"}, {"dog", "sat", "log"}}, vocab)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1, 2}, {3, 1, 4}}, c.Docs)
	assert.Equal(t, 2, c.DocNum())
	assert.Equal(t, 5, c.VocabSize())
	assert.Equal(t, 6, c.TokenNum())
}

func TestNewUnknownToken(t *testing.T) {
	vocab := NewVocabulary([]string{"cat"})
	_, err := New([][]string{{"cat", "dog"}}, vocab)

	assert.True(t, errors.Is(err, ErrUnknownToken))
}

func TestFromIDsOutOfRange(t *testing.T) {
	vocab := NewVocabulary([]string{"a", "b"})
	_, err := FromIDs([][]int{{0, 2}}, vocab)

	assert.True(t, errors.Is(err, ErrUnknownWordID))
}

func TestLoadText(t *testing.T) {
	c, err := LoadText(strings.NewReader("cat sat mat\n\ndog sat log\n"), fieldsTokenizer{})
	require.NoError(t, err)

	assert.Equal(t, 3, c.DocNum())
	assert.Empty(t, c.Docs[1])
	assert.Equal(t, []int{3, 1, 4}, c.Docs[2])
}

func TestExpandWords(t *testing.T) {
	words := ExpandWords([]WordCount{{WordId: 3, Count: 2}, {WordId: 1, Count: 1}})

	assert.Equal(t, []int{3, 3, 1}, words)
}

func TestLoadBagOfWords(t *testing.T) {
	input := "7 0:2 3:1\n" +
		"bad\n" +
		"2 1:1 junk 2:2\n" +
		"7 4:1\n"
	c, err := LoadBagOfWords(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, c.DocNum())
	assert.Equal(t, 5, c.VocabSize())
	assert.Equal(t, []int{0, 0, 3, 4}, c.Docs[0])
	assert.Equal(t, []int{1, 2, 2}, c.Docs[1])
	assert.Equal(t, "3", c.Vocab.Token(3))
}

func TestLoadBagOfWordsBadNumber(t *testing.T) {
	_, err := LoadBagOfWords(strings.NewReader("1 x:2\n"))

	assert.True(t, errors.Is(err, ErrBadLine))
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "docs.txt")
	require.NoError(t, os.WriteFile(fn, []byte("a b\nb c\n"), 0o644))

	c, err := Load(fn, FormatText, fieldsTokenizer{})
	require.NoError(t, err)
	assert.Equal(t, 3, c.VocabSize())

	_, err = Load(fn, "xml", fieldsTokenizer{})
	assert.True(t, errors.Is(err, ErrBadFormat))
}
