package sentiment

import (
	"strings"
	"sync"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Rejection messages returned verbatim to the caller.
const (
	MsgEmptyReview      = "Please enter a valid review."
	MsgNotRestaurantish = "Please enter a correct restaurant review."
)

// Validator stage names, used in logs and metrics.
const (
	StageEmpty     = "empty"
	StageSubstance = "substance"
	StageDomain    = "domain"
)

const minWordCount = 3

// domainKeywords is the fixed restaurant vocabulary for the relevance
// check. Matching is case-insensitive substring matching: "menu" inside an
// unrelated compound word counts. That looseness is intentional.
var domainKeywords = []string{
	"food", "taste", "service", "restaurant", "staff",
	"meal", "dinner", "lunch", "breakfast", "dish",
	"menu", "drinks", "coffee", "waiter", "ambience",
	"atmosphere", "chef", "snacks", "cuisine", "buffet",
}

// Rejection describes a failed validation stage.
type Rejection struct {
	Stage   string
	Message string
}

// Validator is the three-stage input guard run before any review reaches
// the model. Stages short-circuit in order: emptiness, minimal substance,
// domain relevance.
type Validator struct {
	mu      sync.Mutex
	matcher *ahocorasick.Matcher
}

// NewValidator builds the keyword automaton once; the validator is then
// reused across requests.
func NewValidator() *Validator {
	return &Validator{
		matcher: ahocorasick.NewStringMatcher(domainKeywords),
	}
}

// Validate runs all stages against text. A nil return means the text is
// eligible for classification.
func (v *Validator) Validate(text string) *Rejection {
	if strings.TrimSpace(text) == "" {
		return &Rejection{Stage: StageEmpty, Message: MsgEmptyReview}
	}

	if len(strings.Fields(text)) < minWordCount || !containsLetter(text) {
		return &Rejection{Stage: StageSubstance, Message: MsgNotRestaurantish}
	}

	if !v.matchesDomain(strings.ToLower(text)) {
		return &Rejection{Stage: StageDomain, Message: MsgNotRestaurantish}
	}

	return nil
}

// matchesDomain reports whether any domain keyword occurs as a substring.
// The automaton is not reentrant, so matching is serialized.
func (v *Validator) matchesDomain(lowered string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.matcher.Match([]byte(lowered))) > 0
}

func containsLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
