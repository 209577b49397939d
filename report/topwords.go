// Package report summarizes a trained topic model as the most probable
// words of every topic.
package report

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TopicWordCounts is the read-only view of a trained model the reporter
// needs. The counts already include their smoothing pseudo-counts.
type TopicWordCounts interface {
	TopicNum() int
	VocabSize() int
	WordTopicCount(k, w int) float64
	TopicCount(k int) float64
}

// Vocabulary translates word ids back to surface tokens.
type Vocabulary interface {
	Token(id int) string
}

// WordScore is one ranked word of a topic.
type WordScore struct {
	ID    int
	Word  string
	Score float64
}

// Topic is the ranked head of one topic.
type Topic struct {
	ID    int
	Words []WordScore
}

// TopWords ranks the vocabulary of every topic by n_wz / n_z and keeps the
// first n words. Equal scores keep ascending word id order. n larger than
// the vocabulary returns the whole vocabulary.
func TopWords(m TopicWordCounts, vocab Vocabulary, n int) []Topic {
	if n < 0 {
		n = 0
	}
	vocabSize := m.VocabSize()
	if n > vocabSize {
		n = vocabSize
	}

	topics := make([]Topic, m.TopicNum())
	scores := make([]WordScore, vocabSize)
	for k := range topics {
		total := m.TopicCount(k)
		for w := 0; w < vocabSize; w += 1 {
			scores[w] = WordScore{ID: w, Score: m.WordTopicCount(k, w) / total}
		}
		slices.SortStableFunc(scores, func(a, b WordScore) int {
			switch {
			case a.Score > b.Score:
				return -1
			case a.Score < b.Score:
				return 1
			}
			return 0
		})

		words := make([]WordScore, n)
		copy(words, scores[:n])
		for i := range words {
			words[i].Word = vocab.Token(words[i].ID)
		}
		topics[k] = Topic{ID: k, Words: words}
	}
	return topics
}

// Write prints topics in the form
//
//	-----topic:0-----
//	word:score
func Write(out io.Writer, topics []Topic) error {
	p := message.NewPrinter(language.English)
	for _, topic := range topics {
		if _, err := p.Fprintf(out, "-----topic:%d-----\n", topic.ID); err != nil {
			return err
		}
		for _, ws := range topic.Words {
			line := ws.Word + ":" + strconv.FormatFloat(ws.Score, 'g', -1, 64) + "\n"
			if _, err := io.WriteString(out, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteHeader prints a one line summary of the run above the topics.
func WriteHeader(out io.Writer, runID string, docNum, tokenNum, vocabSize, topicNum int) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(out, "run %s: %d documents, %d tokens, %d words, %d topics\n",
		runID, docNum, tokenNum, vocabSize, topicNum)
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}
