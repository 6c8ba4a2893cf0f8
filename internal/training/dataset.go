// Package training implements the offline artifact producer: dataset
// loading, stratified splitting, model fitting, and evaluation. Its output
// is the co-versioned vectorizer/classifier pair the service loads at
// startup.
package training

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/reviewpulse/reviewpulse/internal/domain"
)

// Document is one labeled training example.
type Document struct {
	Text  string
	Label domain.SentimentLabel
}

// LoadTSV reads a tab-separated dataset with a "Review<TAB>Liked" header,
// mapping Liked 1 to Positive and 0 to Negative. Malformed rows are
// skipped, not fatal: review datasets routinely contain stray lines.
func LoadTSV(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var docs []Document
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if strings.HasPrefix(strings.ToLower(line), "review") {
				continue
			}
		}

		text, liked, ok := splitRow(line)
		if !ok {
			continue
		}

		var label domain.SentimentLabel
		switch liked {
		case "1":
			label = domain.SentimentPositive
		case "0":
			label = domain.SentimentNegative
		default:
			continue
		}

		docs = append(docs, Document{Text: text, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("dataset %s contains no usable rows", path)
	}
	return docs, nil
}

// splitRow splits on the LAST tab so review texts containing tabs survive.
func splitRow(line string) (text, liked string, ok bool) {
	idx := strings.LastIndexByte(line, '\t')
	if idx < 0 {
		return "", "", false
	}
	text = strings.TrimSpace(line[:idx])
	liked = strings.TrimSpace(line[idx+1:])
	if text == "" || liked == "" {
		return "", "", false
	}
	return text, liked, true
}

// WithNeutralSeed appends the fixed neutral example set to a dataset.
func WithNeutralSeed(docs []Document) []Document {
	out := make([]Document, 0, len(docs)+len(neutralSeedReviews))
	out = append(out, docs...)
	for _, text := range neutralSeedReviews {
		out = append(out, Document{Text: text, Label: domain.SentimentNeutral})
	}
	return out
}
