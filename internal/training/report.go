package training

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reviewpulse/reviewpulse/internal/model"
)

// ClassReport holds evaluation metrics for one class.
type ClassReport struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Evaluate predicts every test document and computes per-class precision,
// recall, and F1, plus overall accuracy.
func Evaluate(b *model.Bundle, test []Document) ([]ClassReport, float64) {
	truePos := make(map[string]int)
	falsePos := make(map[string]int)
	falseNeg := make(map[string]int)
	support := make(map[string]int)

	correct := 0
	for _, doc := range test {
		vec := b.Vectorizer.Transform(doc.Text)
		predicted, _ := b.Classifier.Predict(vec)
		actual := string(doc.Label)

		support[actual]++
		if predicted == actual {
			truePos[actual]++
			correct++
		} else {
			falsePos[predicted]++
			falseNeg[actual]++
		}
	}

	labels := make([]string, 0, len(support))
	for label := range support {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	reports := make([]ClassReport, 0, len(labels))
	for _, label := range labels {
		tp := float64(truePos[label])
		precision := safeDiv(tp, tp+float64(falsePos[label]))
		recall := safeDiv(tp, tp+float64(falseNeg[label]))
		reports = append(reports, ClassReport{
			Label:     label,
			Precision: precision,
			Recall:    recall,
			F1:        safeDiv(2*precision*recall, precision+recall),
			Support:   support[label],
		})
	}

	accuracy := 0.0
	if len(test) > 0 {
		accuracy = float64(correct) / float64(len(test))
	}
	return reports, accuracy
}

// FormatReport renders the evaluation as an aligned text table.
func FormatReport(reports []ClassReport, accuracy float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s %9s %9s %9s %9s\n", "", "precision", "recall", "f1", "support")
	for _, r := range reports {
		fmt.Fprintf(&sb, "%-10s %9.2f %9.2f %9.2f %9d\n",
			r.Label, r.Precision, r.Recall, r.F1, r.Support)
	}
	fmt.Fprintf(&sb, "\naccuracy: %.4f\n", accuracy)
	return sb.String()
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
