package corpus

// Vocabulary maintains the bi-directional mapping between tokens and
// dense ids in [0, V). Ids are assigned in order of first appearance. The
// id -> token direction is a slice, the map is only consulted while a
// corpus is being encoded.
type Vocabulary struct {
	tokens []string
	ids    map[string]int
}

func newVocabulary() *Vocabulary {
	return &Vocabulary{
		ids: make(map[string]int),
	}
}

// BuildVocabulary collects every distinct token of docs in order of first
// appearance.
func BuildVocabulary(docs [][]string) *Vocabulary {
	v := newVocabulary()
	for _, doc := range docs {
		for _, token := range doc {
			v.add(token)
		}
	}
	return v
}

// NewVocabulary creates a vocabulary from an explicit id-ordered token
// list: tokens[i] gets id i. Duplicate tokens keep their first id.
func NewVocabulary(tokens []string) *Vocabulary {
	v := newVocabulary()
	for _, token := range tokens {
		v.add(token)
	}
	return v
}

func (v *Vocabulary) add(token string) int {
	if id, ok := v.ids[token]; ok {
		return id
	}
	id := len(v.tokens)
	v.tokens = append(v.tokens, token)
	v.ids[token] = id
	return id
}

// Size returns the number of distinct tokens V.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// ID returns the id of token and whether it is known.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Token returns the surface form of id. It panics if id is outside [0, V).
func (v *Vocabulary) Token(id int) string {
	if id < 0 || id >= len(v.tokens) {
		panic(ErrUnknownWordID)
	}
	return v.tokens[id]
}

// Tokens returns a copy of the id-ordered token list.
func (v *Vocabulary) Tokens() []string {
	tokens := make([]string, len(v.tokens))
	copy(tokens, v.tokens)
	return tokens
}
