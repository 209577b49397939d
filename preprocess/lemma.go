package preprocess

import (
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	log "github.com/golang/glog"
)

var (
	lemmatizer     *golem.Lemmatizer
	lemmatizerOnce sync.Once
)

// irregular plural nouns, used only when the english dictionary
// cannot be loaded
var irregular = map[string]string{
	"children": "child",
	"men":      "man",
	"women":    "woman",
	"people":   "person",
	"mice":     "mouse",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"lives":    "life",
	"wives":    "wife",
	"knives":   "knife",
	"wolves":   "wolf",
}

func loadLemmatizer() *golem.Lemmatizer {
	lemmatizerOnce.Do(func() {
		l, err := golem.New(en.New())
		if err != nil {
			log.Warningf("english lemma dictionary unavailable: %v", err)
			return
		}
		lemmatizer = l
	})
	return lemmatizer
}

// Lemmatize maps an inflected english word to its dictionary form. Words
// the dictionary does not know are returned unchanged.
func Lemmatize(word string) string {
	if l := loadLemmatizer(); l != nil {
		if l.InDict(word) {
			return l.Lemma(word)
		}
		return word
	}
	if lemma, ok := irregular[word]; ok {
		return lemma
	}
	return word
}
