package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Input formats understood by Load.
const (
	FormatText       = "text"
	FormatBagOfWords = "bow"
)

// Corpus is an ordered list of documents, each an ordered list of word
// ids into Vocab.
type Corpus struct {
	Vocab *Vocabulary
	Docs  [][]int
}

// Tokenizer turns one raw line into tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

type WordCount struct {
	WordId int
	Count  int
}

// expand word counts into a word sequence, each word id repeated count times
func ExpandWords(wcs []WordCount) []int {
	var words []int
	for _, wc := range wcs {
		for i := 0; i < wc.Count; i += 1 {
			words = append(words, wc.WordId)
		}
	}
	return words
}

// New encodes tokenized documents against vocab. Every token must be
// present in vocab.
func New(docs [][]string, vocab *Vocabulary) (*Corpus, error) {
	encoded := make([][]int, len(docs))
	for d, doc := range docs {
		ids := make([]int, len(doc))
		for j, token := range doc {
			id, ok := vocab.ID(token)
			if !ok {
				return nil, fmt.Errorf("%w: %q in document %d", ErrUnknownToken, token, d)
			}
			ids[j] = id
		}
		encoded[d] = ids
	}
	return &Corpus{Vocab: vocab, Docs: encoded}, nil
}

// FromDocuments builds the vocabulary from docs and encodes them.
func FromDocuments(docs [][]string) *Corpus {
	vocab := BuildVocabulary(docs)
	c, err := New(docs, vocab)
	if err != nil {
		// the vocabulary was built from the same documents
		panic(err)
	}
	return c
}

// FromIDs wraps already encoded documents. Every id must be in [0, V).
func FromIDs(docs [][]int, vocab *Vocabulary) (*Corpus, error) {
	for d, doc := range docs {
		for j, id := range doc {
			if id < 0 || id >= vocab.Size() {
				return nil, fmt.Errorf("%w: id %d at document %d position %d",
					ErrUnknownWordID, id, d, j)
			}
		}
	}
	return &Corpus{Vocab: vocab, Docs: docs}, nil
}

// number of documents D
func (c *Corpus) DocNum() int {
	return len(c.Docs)
}

// vocabulary size V
func (c *Corpus) VocabSize() int {
	return c.Vocab.Size()
}

// total number of tokens over all documents
func (c *Corpus) TokenNum() int {
	n := 0
	for _, doc := range c.Docs {
		n += len(doc)
	}
	return n
}

// Load reads a corpus file in the given format. tok is only used for
// FormatText.
func Load(fn string, format string, tok Tokenizer) (*Corpus, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c *Corpus
	switch format {
	case FormatText:
		c, err = LoadText(f, tok)
	case FormatBagOfWords:
		c, err = LoadBagOfWords(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fn, err)
	}

	p := message.NewPrinter(language.English)
	log.Info(p.Sprintf("number of documents %d", c.DocNum()))
	log.Info(p.Sprintf("number of tokens %d", c.TokenNum()))
	log.Info(p.Sprintf("vocabulary size %d", c.VocabSize()))
	return c, nil
}

// LoadText reads one document per line and tokenizes it with tok. Lines
// that produce no tokens become empty documents so document indices keep
// matching line numbers.
func LoadText(r io.Reader, tok Tokenizer) (*Corpus, error) {
	var docs [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		docs = append(docs, tok.Tokenize(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromDocuments(docs), nil
}

// load training data in bag-of-words form, the format should be like:
// [docId wordId:wordCount wordId:wordCount ... wordId:wordCount]
// documents keep the order in which their docId first appears, lines
// sharing a docId are merged. The vocabulary covers ids [0, max wordId]
// and each token is the decimal word id.
func LoadBagOfWords(r io.Reader) (*Corpus, error) {
	var docs [][]int
	index := make(map[uint64]int)
	vocabMaxId := -1

	lineIdx := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineIdx += 1
		doc := scanner.Text()
		vals := strings.Fields(doc)
		if len(vals) < 2 {
			log.Warningf("bad document at line %d: %s", lineIdx, doc)
			continue
		}

		docId, err := strconv.ParseUint(vals[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: doc id: %v", ErrBadLine, lineIdx, err)
		}

		var wcs []WordCount
		for _, kv := range vals[1:] {
			wc := strings.Split(kv, ":")
			if len(wc) != 2 {
				log.Warningf("bad word count at line %d: %s", lineIdx, kv)
				continue
			}

			wordId, err := strconv.ParseUint(wc[0], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: word id: %v", ErrBadLine, lineIdx, err)
			}

			count, err := strconv.ParseUint(wc[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: count: %v", ErrBadLine, lineIdx, err)
			}

			wcs = append(wcs, WordCount{
				WordId: int(wordId),
				Count:  int(count),
			})
			if int(wordId) > vocabMaxId {
				vocabMaxId = int(wordId)
			}
		}

		d, ok := index[docId]
		if !ok {
			d = len(docs)
			index[docId] = d
			docs = append(docs, nil)
		}
		docs[d] = append(docs[d], ExpandWords(wcs)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tokens := make([]string, vocabMaxId+1)
	for i := range tokens {
		tokens[i] = strconv.Itoa(i)
	}
	return FromIDs(docs, NewVocabulary(tokens))
}
