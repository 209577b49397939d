package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/oklog/ulid/v2"

	"github.com/machi-da/lda/config"
	"github.com/machi-da/lda/corpus"
	"github.com/machi-da/lda/model"
	"github.com/machi-da/lda/preprocess"
	"github.com/machi-da/lda/report"
	"github.com/machi-da/lda/rng"
	"github.com/machi-da/lda/sstable"
)

var (
	input      = flag.String("input_file", "", "input training file")
	configFile = flag.String("config", "", "yaml config file, flags given explicitly override it")
	topicModel = flag.String("model", "lda", "model type")
	alpha      = flag.Float64("alpha", 0.3, "document-topic mixture hyperparameter")
	beta       = flag.Float64("beta", 0.3, "topic-word mixture hyperparameter")
	topicNum   = flag.Int("k", 5, "number of topics")
	iteration  = flag.Int("iter", 1000, "number of iteration")
	logEvery   = flag.Int("log_every", model.DefaultLogEvery, "log progress every n iterations, 0 disables")
	seed       = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	topWords   = flag.Int("top", 10, "number of words reported per topic")
	format     = flag.String("format", corpus.FormatText, "input format: text (one document per line) or bow (docId wordId:count ...)")
	stoplist   = flag.String("stoplist", "", "yaml stoplist file replacing the built-in stop words")
	output     = flag.String("output", "", "write phi and theta to <output>.phi and <output>.theta")
	checkTol   = flag.Float64("check_tol", 0, "audit count tables after every iteration with this tolerance, 0 disables")
)

// loadConfig merges defaults, the optional yaml file and explicit flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model = *topicModel
		case "alpha":
			cfg.Alpha = *alpha
		case "beta":
			cfg.Beta = *beta
		case "k":
			cfg.Topics = *topicNum
		case "iter":
			cfg.Iterations = *iteration
		case "log_every":
			cfg.LogEvery = *logEvery
		case "seed":
			cfg.Seed = *seed
		case "top":
			cfg.TopWords = *topWords
		case "format":
			cfg.Format = *format
		case "stoplist":
			cfg.Stoplist = *stoplist
		case "output":
			cfg.Output = *output
		case "check_tol":
			cfg.CheckTol = *checkTol
		}
	})
	return cfg, cfg.Validate()
}

func newTokenizer(cfg config.Config) (*preprocess.Tokenizer, error) {
	var stopwords []string
	if cfg.Stoplist != "" {
		sl, err := config.LoadStoplist(cfg.Stoplist)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stopwords = sl.Terms
	}
	return preprocess.NewTokenizer(stopwords,
		preprocess.WithMinLen(cfg.MinTokenLen),
		preprocess.WithLemmatize(cfg.Lemmatize)), nil
}

func run(cfg config.Config, runID string) error {
	tok, err := newTokenizer(cfg)
	if err != nil {
		return err
	}

	// read training data
	data, err := corpus.Load(*input, cfg.Format, tok)
	if err != nil {
		return err
	}

	// init model
	ctor, err := model.GetModel(cfg.Model)
	if err != nil {
		return err
	}
	src, usedSeed := rng.New(cfg.Seed)
	log.Infof("run %s: random seed %d", runID, usedSeed)

	opts := []model.Option{model.WithSource(src), model.WithLogEvery(cfg.LogEvery)}
	if cfg.CheckTol > 0 {
		opts = append(opts, model.WithInvariantCheck(cfg.CheckTol))
	}
	m, err := ctor(data, cfg.Topics, cfg.Alpha, cfg.Beta, opts...)
	if err != nil {
		return err
	}

	m.Init()
	if err := m.Train(cfg.Iterations); err != nil {
		return err
	}
	log.Infof("run %s: finished %d iterations", runID, cfg.Iterations)

	if err := report.WriteHeader(os.Stdout, runID, data.DocNum(), data.TokenNum(),
		data.VocabSize(), cfg.Topics); err != nil {
		return err
	}
	if err := report.Write(os.Stdout, report.TopWords(m, m.Vocabulary(), cfg.TopWords)); err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := sstable.Float64SerializeFile(m.Phi(), cfg.Output+".phi"); err != nil {
			return err
		}
		if err := sstable.Float64SerializeFile(m.Theta(), cfg.Output+".theta"); err != nil {
			return err
		}
		log.Infof("run %s: wrote %s.phi and %s.theta", runID, cfg.Output, cfg.Output)
	}
	return nil
}

func main() {
	flag.Parse()
	defer log.Flush()

	if *input == "" {
		log.Exitf("-input_file is required")
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Exitf("config: %v", err)
	}

	runID := ulid.Make().String()
	if err := run(cfg, runID); err != nil {
		log.Exitf("run %s: %v", runID, err)
	}
}
