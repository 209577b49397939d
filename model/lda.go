package model

import (
	"fmt"

	log "github.com/golang/glog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/machi-da/lda/corpus"
	"github.com/machi-da/lda/matrix"
	"github.com/machi-da/lda/rng"
)

func init() {
	Register("lda", NewLDA)
}

// DefaultLogEvery is the progress log interval in iterations.
const DefaultLogEvery = 1000

// LDA is a collapsed gibbs sampler. It owns the four count tables and the
// topic assignment of every token; all of them carry their smoothing
// pseudo-counts from initialization on.
type LDA struct {
	data     *corpus.Corpus
	alpha    float64 // document topic mixture hyperparameter
	beta     float64 // topic word mixture hyperparameter
	topicNum int

	wt  *matrix.Float64Matrix // topic-word count table, Z x V
	dt  *matrix.Float64Matrix // doc-topic count table, D x Z
	wts *matrix.Float64Matrix // topic sum vector, Z x 1
	dts *matrix.Float64Matrix // doc length vector, D x 1
	dwt [][]int               // topic of the j-th word of doc d

	src         rng.Source
	logEvery    int
	checkTol    float64
	weights     []float64
	initialized bool
}

// Option configures an LDA sampler.
type Option func(*LDA)

// WithSource injects the random source used for initialization and
// resampling.
func WithSource(src rng.Source) Option {
	return func(m *LDA) {
		m.src = src
	}
}

// WithLogEvery sets the progress log interval; 0 disables progress logs.
func WithLogEvery(n int) Option {
	return func(m *LDA) {
		m.logEvery = n
	}
}

// WithInvariantCheck audits the count tables against a full recount after
// every iteration, failing training when they drift by more than tol.
func WithInvariantCheck(tol float64) Option {
	return func(m *LDA) {
		m.checkTol = tol
	}
}

// NewLDA creates a LDA instance with collapsed gibbs sampler. The tables
// are allocated and filled with their smoothing floors; Init draws the
// initial topics.
func NewLDA(dat *corpus.Corpus, topicNum int, alpha float64, beta float64,
	opts ...Option) (Model, error) {
	if topicNum < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadTopicNum, topicNum)
	}
	if !(alpha > 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadAlpha, alpha)
	}
	if !(beta > 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadBeta, beta)
	}
	vocabSize := dat.VocabSize()
	for d, doc := range dat.Docs {
		for j, w := range doc {
			if w < 0 || w >= vocabSize {
				return nil, fmt.Errorf("%w: id %d at document %d position %d",
					corpus.ErrUnknownWordID, w, d, j)
			}
		}
	}

	m := &LDA{
		data:     dat,
		alpha:    alpha,
		beta:     beta,
		topicNum: topicNum,
		logEvery: DefaultLogEvery,
		weights:  make([]float64, topicNum),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.src == nil {
		var seed uint64
		m.src, seed = rng.New(0)
		log.Infof("random seed %d", seed)
	}
	m.reset()
	return m, nil
}

// reset fills every table with its smoothing floor and clears topics.
func (this *LDA) reset() {
	docNum := this.data.DocNum()
	vocabSize := this.data.VocabSize()

	this.wt = matrix.NewFloat64Matrix(this.topicNum, vocabSize, this.beta)
	this.dt = matrix.NewFloat64Matrix(docNum, this.topicNum, this.alpha)
	this.wts = matrix.NewFloat64Matrix(this.topicNum, 1, float64(vocabSize)*this.beta)
	this.dts = matrix.NewFloat64Matrix(docNum, 1, float64(this.topicNum)*this.alpha)
	this.dwt = make([][]int, docNum)
	this.initialized = false
}

// Init randomly assigns a topic to every word, in document order then
// position order, and seeds the count tables from those assignments.
func (this *LDA) Init() {
	if this.initialized {
		this.reset()
	}
	for doc, words := range this.data.Docs {
		topics := make([]int, len(words))
		for i, w := range words {
			// sample word topic
			k := this.src.Intn(this.topicNum)
			topics[i] = k

			// update sufficient statistics
			this.increment(doc, w, k, 1)
		}
		this.dwt[doc] = topics
	}
	this.initialized = true
}

// Train runs iter sweeps of collapsed gibbs sampling over the corpus. The
// model is initialized first if Init has not been called.
func (this *LDA) Train(iter int) error {
	if iter < 0 {
		return fmt.Errorf("%w: %d", ErrBadIteration, iter)
	}
	if !this.initialized {
		this.Init()
	}

	p := message.NewPrinter(language.English)
	for iterIdx := 0; iterIdx < iter; iterIdx += 1 {
		if this.logEvery > 0 && iterIdx%this.logEvery == 0 {
			log.Info(p.Sprintf("iter %5d of %d", iterIdx, iter))
		}

		if err := this.sweep(); err != nil {
			return fmt.Errorf("iter %d: %w", iterIdx, err)
		}

		if this.checkTol > 0 {
			if err := this.Verify(this.checkTol); err != nil {
				return fmt.Errorf("iter %d: %w", iterIdx, err)
			}
		}
	}
	return nil
}

// sweep resamples every token once.
func (this *LDA) sweep() error {
	for doc, words := range this.data.Docs {
		for i := range words {
			if err := this.resample(doc, i); err != nil {
				return err
			}
		}
	}
	return nil
}

// resample draws a new topic for the i-th word of doc conditioned on all
// other assignments.
func (this *LDA) resample(doc, i int) error {
	w := this.data.Docs[doc][i]
	k := this.dwt[doc][i]

	// remove the word from the counts so it does not bias its own draw
	this.increment(doc, w, k, -1)

	this.conditional(doc, w, this.weights)
	newK, err := rng.Categorical(this.src, this.weights)
	if err != nil {
		// put the word back so the tables stay consistent
		this.increment(doc, w, k, 1)
		return fmt.Errorf("document %d position %d: %w", doc, i, err)
	}

	this.dwt[doc][i] = newK
	this.increment(doc, w, newK, 1)
	return nil
}

// conditional fills weights with the unnormalized full conditional of
// word w in doc over all topics.
func (this *LDA) conditional(doc, w int, weights []float64) {
	docLen := this.dts.Get(doc, 0)
	for k := 0; k < this.topicNum; k += 1 {
		weights[k] = this.wt.Get(k, w) * this.dt.Get(doc, k) /
			(this.wts.Get(k, 0) * docLen)
	}
}

// increment adds delta occurrences of word w with topic k in doc to all
// four tables. A cell dropping below its smoothing floor means the
// assignment and the counts disagree, which panics.
func (this *LDA) increment(doc, w, k int, delta float64) {
	if k < 0 || k >= this.topicNum {
		panic(fmt.Errorf("%w: topic %d", matrix.ErrIndexOutOfRange, k))
	}
	if delta >= 0 {
		this.dt.Incr(doc, k, delta)
		this.wt.Incr(k, w, delta)
		this.dts.Incr(doc, 0, delta)
		this.wts.Incr(k, 0, delta)
		return
	}

	this.dt.Decr(doc, k, -delta)
	this.wt.Decr(k, w, -delta)
	this.dts.Decr(doc, 0, -delta)
	this.wts.Decr(k, 0, -delta)
	if this.dt.Get(doc, k) < this.alpha-floorTol ||
		this.wt.Get(k, w) < this.beta-floorTol {
		panic(fmt.Errorf("%w: doc %d word %d topic %d",
			ErrCountUnderflow, doc, w, k))
	}
}

// Infer continues sampling for iter more sweeps.
func (this *LDA) Infer(iter int) error {
	return this.Train(iter)
}

// compute the point estimation of the topic-word mixture, Z x V.
// the tables already carry beta, so phi[z][w] = n_wz / n_z
func (this *LDA) Phi() *matrix.Float64Matrix {
	vocabSize := this.data.VocabSize()
	phi := matrix.NewFloat64Matrix(this.topicNum, vocabSize, 0)

	for k := 0; k < this.topicNum; k += 1 {
		sum := this.wts.Get(k, 0)
		for v := 0; v < vocabSize; v += 1 {
			phi.Set(k, v, this.wt.Get(k, v)/sum)
		}
	}

	return phi
}

// compute the point estimation of the document-topic mixture, D x Z.
// theta[d][z] = n_dz / n_d
func (this *LDA) Theta() *matrix.Float64Matrix {
	docNum := this.data.DocNum()
	theta := matrix.NewFloat64Matrix(docNum, this.topicNum, 0)

	for d := 0; d < docNum; d += 1 {
		sum := this.dts.Get(d, 0)
		for k := 0; k < this.topicNum; k += 1 {
			theta.Set(d, k, this.dt.Get(d, k)/sum)
		}
	}

	return theta
}

func (this *LDA) TopicNum() int {
	return this.topicNum
}

func (this *LDA) VocabSize() int {
	return this.data.VocabSize()
}

func (this *LDA) Vocabulary() *corpus.Vocabulary {
	return this.data.Vocab
}

// smoothed count of word w under topic k, n_wz[k][w]
func (this *LDA) WordTopicCount(k, w int) float64 {
	return this.wt.Get(k, w)
}

// smoothed number of words assigned to topic k, n_z[k]
func (this *LDA) TopicCount(k int) float64 {
	return this.wts.Get(k, 0)
}

// smoothed count of topic k in doc, n_dz[doc][k]
func (this *LDA) DocTopicCount(doc, k int) float64 {
	return this.dt.Get(doc, k)
}

// smoothed length of doc, n_d[doc]
func (this *LDA) DocCount(doc int) float64 {
	return this.dts.Get(doc, 0)
}

// Assignment returns a copy of the current topic of every word of doc.
func (this *LDA) Assignment(doc int) []int {
	topics := make([]int, len(this.dwt[doc]))
	copy(topics, this.dwt[doc])
	return topics
}
