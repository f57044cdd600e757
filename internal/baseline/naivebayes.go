// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package baseline

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

//go:embed corpus.yaml
var defaultCorpus []byte

// Sample is one labelled training message.
type Sample struct {
	Label types.BaselineLabel `yaml:"label"`
	Text  string              `yaml:"text"`
}

// Corpus is the on-disk seed corpus format.
type Corpus struct {
	Samples []Sample `yaml:"samples"`
}

// LoadCorpus reads a corpus from path, or the embedded default when path is
// empty.
func LoadCorpus(path string) (Corpus, error) {
	data := defaultCorpus
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Corpus{}, fmt.Errorf("reading corpus: %w", err)
		}
	}
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Corpus{}, fmt.Errorf("parsing corpus: %w", err)
	}
	return c, nil
}

// smoothing is the Laplace pseudo-count added to every token.
const smoothing = 1.0

type classModel struct {
	logPrior  float64
	logProb   map[string]float64
	logUnseen float64
}

// NaiveBayes is a multinomial naive Bayes model over unigram and bigram
// tokens. It is trained once in NewNaiveBayes and read-only afterwards.
type NaiveBayes struct {
	classes map[types.BaselineLabel]*classModel
}

// NewNaiveBayes trains a model on corpus. Both labels need at least one
// sample.
func NewNaiveBayes(corpus Corpus) (*NaiveBayes, error) {
	counts := map[types.BaselineLabel]map[string]float64{}
	docs := map[types.BaselineLabel]int{}
	vocab := map[string]bool{}

	for i, s := range corpus.Samples {
		if s.Label != types.BaselineFake && s.Label != types.BaselineReal {
			return nil, fmt.Errorf("sample %d: unknown label %q", i, s.Label)
		}
		if counts[s.Label] == nil {
			counts[s.Label] = map[string]float64{}
		}
		docs[s.Label]++
		for _, tok := range tokens(s.Text) {
			counts[s.Label][tok]++
			vocab[tok] = true
		}
	}
	for _, l := range []types.BaselineLabel{types.BaselineFake, types.BaselineReal} {
		if docs[l] == 0 {
			return nil, fmt.Errorf("corpus has no %q samples", l)
		}
	}

	nb := &NaiveBayes{classes: map[types.BaselineLabel]*classModel{}}
	v := float64(len(vocab))
	for label, c := range counts {
		total := 0.0
		for _, n := range c {
			total += n
		}
		denom := total + smoothing*v
		m := &classModel{
			logPrior:  math.Log(float64(docs[label]) / float64(len(corpus.Samples))),
			logProb:   make(map[string]float64, len(c)),
			logUnseen: math.Log(smoothing / denom),
		}
		for tok, n := range c {
			m.logProb[tok] = math.Log((n + smoothing) / denom)
		}
		nb.classes[label] = m
	}
	return nb, nil
}

// Classify returns the more probable label and its posterior probability.
// Tokens outside the training vocabulary contribute equally to both classes
// so text with no known tokens falls back to the priors.
func (nb *NaiveBayes) Classify(_ context.Context, text string) (types.Classification, error) {
	fakeScore := nb.score(types.BaselineFake, text)
	realScore := nb.score(types.BaselineReal, text)

	// Ties go to real.
	hi, lo, label := realScore, fakeScore, types.BaselineReal
	if fakeScore > realScore {
		hi, lo, label = fakeScore, realScore, types.BaselineFake
	}
	p := 1 / (1 + math.Exp(lo-hi))
	return types.Classification{Label: label, Confidence: p}, nil
}

func (nb *NaiveBayes) score(label types.BaselineLabel, text string) float64 {
	m := nb.classes[label]
	s := m.logPrior
	for _, tok := range tokens(text) {
		if lp, ok := m.logProb[tok]; ok {
			s += lp
		} else if nb.known(tok) {
			s += m.logUnseen
		}
	}
	return s
}

func (nb *NaiveBayes) known(tok string) bool {
	for _, m := range nb.classes {
		if _, ok := m.logProb[tok]; ok {
			return true
		}
	}
	return false
}

// tokens lower-cases text, splits it into words of two or more letters or
// digits, and appends the adjacent word bigrams.
func tokens(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	kept := words[:0]
	for _, w := range words {
		if len([]rune(w)) >= 2 {
			kept = append(kept, w)
		}
	}

	out := make([]string, 0, 2*len(kept))
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}
