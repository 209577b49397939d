package model

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/machi-da/lda/corpus"
	"github.com/machi-da/lda/matrix"
)

var constructors = make(map[string]ModelCtor)

// the common interface new LDA samplers should follow
type Model interface {
	// randomly assign initial topics
	Init()
	// train model for iter iteration
	Train(iter int) error
	// continue sampling for iter iteration
	Infer(iter int) error
	// get topic-word distribution
	Phi() *matrix.Float64Matrix
	// get doc-topic distribution
	Theta() *matrix.Float64Matrix
	// read access for reporting
	TopicNum() int
	VocabSize() int
	Vocabulary() *corpus.Vocabulary
	WordTopicCount(k, w int) float64
	TopicCount(k int) float64
}

// new LDA sampler should register itself using this function
func Register(modelType string, m ModelCtor) {
	constructors[modelType] = m
}

type ModelCtor func(dat *corpus.Corpus, topicNum int, alpha float64, beta float64,
	opts ...Option) (Model, error)

func GetModel(modelType string) (ModelCtor, error) {
	if _, ok := constructors[modelType]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, modelType)
	}
	return constructors[modelType], nil
}

// Registered lists the registered model types in sorted order.
func Registered() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
