package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Pipeline chains the cleaning, stopword and normalization stages.
// A nil Normalizer skips lemmatization; empty Stopwords keep every token.
// SkipClean feeds the raw text straight to the later stages.
type Pipeline struct {
	Cleaner    *Cleaner
	Stopwords  []string
	Normalizer *Normalizer
	Logger     *zap.Logger
	SkipClean  bool
}

// NewPipeline returns a pipeline using the default rule table.
func NewPipeline(stopwords []string, normalizer *Normalizer, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		Cleaner:    defaultCleaner(),
		Stopwords:  stopwords,
		Normalizer: normalizer,
		Logger:     logger,
	}
}

// Process runs text through every configured stage.
func (p *Pipeline) Process(text string) (string, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cleaner := p.Cleaner
	if cleaner == nil {
		cleaner = defaultCleaner()
	}

	out := text
	if !p.SkipClean {
		out = cleaner.Clean(text)
		log.Debug("cleaned", zap.String("text", out))
	}

	if len(p.Stopwords) > 0 {
		out = RemoveStopwords(out, p.Stopwords)
		log.Debug("stopwords removed", zap.String("text", out), zap.Int("stopwords", len(p.Stopwords)))
	}

	if p.Normalizer != nil {
		norm, err := p.Normalizer.NormalizeText(out)
		if err != nil {
			log.Warn("normalize failed", zap.String("text", out), zap.Error(err))
			return "", err
		}
		out = norm
		log.Debug("normalized", zap.String("text", out))
	}

	return out, nil
}

// Run processes r line by line, writing one result line per input line.
// A line that fails to process is logged and written empty. Run returns
// as soon as ctx is done, even if r is blocked, after flushing what was
// written so far. The returned count is the number of lines written.
func (p *Pipeline) Run(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	bw := bufio.NewWriter(w)
	lines, errCh := StreamLines(ctx, r)
	n := 0

	for {
		select {
		case <-ctx.Done():
			if err := bw.Flush(); err != nil {
				return n, fmt.Errorf("flush output: %w", err)
			}
			return n, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := bw.Flush(); err != nil {
					return n, fmt.Errorf("flush output: %w", err)
				}
				if err := <-errCh; err != nil {
					return n, fmt.Errorf("read input: %w", err)
				}
				return n, nil
			}

			out, err := p.Process(line)
			if err != nil {
				log.Error("process line", zap.Int("line", n+1), zap.Error(err))
				out = ""
			}
			if _, err := bw.WriteString(out + "\n"); err != nil {
				return n, fmt.Errorf("write output: %w", err)
			}
			n++
		}
	}
}
