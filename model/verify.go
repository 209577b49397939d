package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/machi-da/lda/matrix"
)

// Counts is a snapshot of the four smoothed count tables.
type Counts struct {
	WordTopic *matrix.Float64Matrix // Z x V
	DocTopic  *matrix.Float64Matrix // D x Z
	TopicSum  *matrix.Float64Matrix // Z x 1
	DocSum    *matrix.Float64Matrix // D x 1
}

// Snapshot copies the incrementally maintained tables.
func (this *LDA) Snapshot() Counts {
	return Counts{
		WordTopic: this.wt.Clone(),
		DocTopic:  this.dt.Clone(),
		TopicSum:  this.wts.Clone(),
		DocSum:    this.dts.Clone(),
	}
}

// Recount rebuilds the four tables from scratch by scanning the current
// topic assignment.
func (this *LDA) Recount() Counts {
	docNum := this.data.DocNum()
	vocabSize := this.data.VocabSize()

	c := Counts{
		WordTopic: matrix.NewFloat64Matrix(this.topicNum, vocabSize, this.beta),
		DocTopic:  matrix.NewFloat64Matrix(docNum, this.topicNum, this.alpha),
		TopicSum:  matrix.NewFloat64Matrix(this.topicNum, 1, float64(vocabSize)*this.beta),
		DocSum:    matrix.NewFloat64Matrix(docNum, 1, float64(this.topicNum)*this.alpha),
	}
	for doc, words := range this.data.Docs {
		for i, w := range words {
			k := this.dwt[doc][i]
			c.WordTopic.Incr(k, w, 1)
			c.DocTopic.Incr(doc, k, 1)
			c.TopicSum.Incr(k, 0, 1)
			c.DocSum.Incr(doc, 0, 1)
		}
	}
	return c
}

// Verify checks that every document keeps its length, that the topic
// totals agree across tables, that no cell fell below its smoothing floor
// and that the incremental tables match a full recount within tol.
func (this *LDA) Verify(tol float64) error {
	vocabSize := float64(this.data.VocabSize())
	topicNum := float64(this.topicNum)

	for doc, words := range this.data.Docs {
		if len(this.dwt[doc]) != len(words) {
			return fmt.Errorf("%w: document %d has %d topics for %d words",
				ErrInvariant, doc, len(this.dwt[doc]), len(words))
		}
		row := this.dt.Row(doc)
		if floats.Min(append(row, this.alpha)) < this.alpha-tol {
			return fmt.Errorf("%w: document %d topic count below alpha", ErrInvariant, doc)
		}
		assigned := floats.Sum(row) - topicNum*this.alpha
		if !scalar.EqualWithinAbs(assigned, float64(len(words)), tol) {
			return fmt.Errorf("%w: document %d has %g assigned words, length %d",
				ErrInvariant, doc, assigned, len(words))
		}
		if !scalar.EqualWithinAbs(this.dts.Get(doc, 0), float64(len(words))+topicNum*this.alpha, tol) {
			return fmt.Errorf("%w: document %d total %g", ErrInvariant, doc, this.dts.Get(doc, 0))
		}
	}

	for k := 0; k < this.topicNum; k += 1 {
		row := this.wt.Row(k)
		if floats.Min(append(row, this.beta)) < this.beta-tol {
			return fmt.Errorf("%w: topic %d word count below beta", ErrInvariant, k)
		}
		byWord := floats.Sum(row) - vocabSize*this.beta
		byDoc := floats.Sum(this.dt.Col(k)) - float64(this.data.DocNum())*this.alpha
		if !scalar.EqualWithinAbs(byWord, byDoc, tol) {
			return fmt.Errorf("%w: topic %d has %g words by word table, %g by doc table",
				ErrInvariant, k, byWord, byDoc)
		}
		if !scalar.EqualWithinAbs(this.wts.Get(k, 0), byWord+vocabSize*this.beta, tol) {
			return fmt.Errorf("%w: topic %d total %g", ErrInvariant, k, this.wts.Get(k, 0))
		}
	}

	recount := this.Recount()
	if !floats.EqualApprox(this.wt.Values(), recount.WordTopic.Values(), tol) ||
		!floats.EqualApprox(this.dt.Values(), recount.DocTopic.Values(), tol) ||
		!floats.EqualApprox(this.wts.Values(), recount.TopicSum.Values(), tol) ||
		!floats.EqualApprox(this.dts.Values(), recount.DocSum.Values(), tol) {
		return fmt.Errorf("%w: incremental counts drifted from recount", ErrInvariant)
	}
	return nil
}
