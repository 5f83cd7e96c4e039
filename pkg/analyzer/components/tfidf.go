package components

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyVocabulary is returned when no token survives tokenization and
// stop-word removal.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents only contain stop words")

// Tokens are runs of two or more word characters, lowercased. Path
// separators and dots fall out naturally.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// vectorizer builds an l2-normalized tf-idf matrix over documents, one
// feature per distinct token.
type vectorizer struct {
	stopWords map[string]struct{}
	features  []string
	index     map[string]int
}

func newVectorizer(stopWords map[string]struct{}) *vectorizer {
	return &vectorizer{stopWords: stopWords}
}

func (v *vectorizer) tokenize(doc string) []string {
	var tokens []string
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(doc), -1) {
		if _, skip := v.stopWords[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// fitTransform learns the vocabulary from docs and returns the tf-idf
// matrix, one row per document. Inverse document frequency is smoothed:
// idf = ln((1+n)/(1+df)) + 1. Rows are l2-normalized.
func (v *vectorizer) fitTransform(docs []string) (*mat.Dense, error) {
	tokenized := make([][]string, len(docs))
	vocab := make(map[string]struct{})
	for i, doc := range docs {
		tokenized[i] = v.tokenize(doc)
		for _, tok := range tokenized[i] {
			vocab[tok] = struct{}{}
		}
	}
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v.features = make([]string, 0, len(vocab))
	for tok := range vocab {
		v.features = append(v.features, tok)
	}
	sort.Strings(v.features)
	v.index = make(map[string]int, len(v.features))
	for i, f := range v.features {
		v.index[f] = i
	}

	df := make([]float64, len(v.features))
	for _, tokens := range tokenized {
		seen := make(map[int]struct{})
		for _, tok := range tokens {
			seen[v.index[tok]] = struct{}{}
		}
		for j := range seen {
			df[j]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(v.features))
	for j := range idf {
		idf[j] = math.Log((1+n)/(1+df[j])) + 1
	}

	x := mat.NewDense(len(docs), len(v.features), nil)
	for i, tokens := range tokenized {
		row := x.RawRowView(i)
		for _, tok := range tokens {
			row[v.index[tok]]++
		}
		var norm float64
		for j := range row {
			row[j] *= idf[j]
			norm += row[j] * row[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
	}
	return x, nil
}

// featureNames returns the learned vocabulary in feature order.
func (v *vectorizer) featureNames() []string { return v.features }
