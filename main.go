package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	utils "github.com/viranchils96/rutext/utils"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newPipeline builds the stage chain for mode: clean runs the cleaner only,
// normalize lemmatizes raw text, full does both.
func newPipeline(mode string, stopwords []string, logger *zap.Logger) (*utils.Pipeline, error) {
	switch mode {
	case "clean":
		return utils.NewPipeline(stopwords, nil, logger), nil
	case "normalize":
		p := utils.NewPipeline(stopwords, utils.NewNormalizer(utils.NewSnowballAnalyzer()), logger)
		p.SkipClean = true
		return p, nil
	case "full":
		return utils.NewPipeline(stopwords, utils.NewNormalizer(utils.NewSnowballAnalyzer()), logger), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func main() {
	var input, stopwordsPath, mode string
	var verbose bool
	flag.StringVar(&input, "i", "-", "input file, one text per line (.gz accepted, - for stdin)")
	flag.StringVar(&stopwordsPath, "s", "", "stopword file, one substring per line")
	flag.StringVar(&mode, "mode", "full", "clean | normalize | full")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	logger, err := newLogger(verbose)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var stopwords []string
	if stopwordsPath != "" {
		stopwords, err = utils.ReadStopwords(stopwordsPath)
		if err != nil {
			logger.Fatal("load stopwords", zap.Error(err))
		}
		logger.Info("stopwords loaded", zap.Int("count", len(stopwords)))
	}

	p, err := newPipeline(mode, stopwords, logger)
	if err != nil {
		logger.Fatal("configure pipeline", zap.Error(err))
	}

	in, err := utils.OpenInput(input)
	if err != nil {
		logger.Fatal("open input", zap.String("path", input), zap.Error(err))
	}
	defer in.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	n, err := p.Run(ctx, in, os.Stdout)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted", zap.Int("lines", n))
	case err != nil:
		logger.Error("run", zap.Int("lines", n), zap.Error(err))
	}
	logger.Info("done", zap.Int("lines", n), zap.Duration("elapsed", time.Since(start)))
}
