package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

const (
	// DefaultRecommendation is returned when no answer carries a category.
	DefaultRecommendation = "Science"
	// NeutralCategory marks an answer that votes for nothing.
	NeutralCategory = "neutral"
)

// QuizCategories maps an agree/disagree response to a stream category.
type QuizCategories struct {
	Agree    string `json:"agree" yaml:"agree"`
	Disagree string `json:"disagree" yaml:"disagree"`
}

// QuizQuestion is a stream-aptitude statement answered agree/disagree/neutral.
type QuizQuestion struct {
	ID         int            `json:"id" yaml:"id"`
	Question   string         `json:"question" yaml:"question"`
	Categories QuizCategories `json:"categories" yaml:"categories"`
}

// CategoryFor returns the category a response votes for.
func (q QuizQuestion) CategoryFor(response string) string {
	switch response {
	case "agree":
		return q.Categories.Agree
	case "disagree":
		return q.Categories.Disagree
	default:
		return NeutralCategory
	}
}

// QuestionRef identifies a question. Clients send quiz ids as numbers and
// questionnaire ids as strings, so both decode into the same form.
type QuestionRef string

func (r *QuestionRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = QuestionRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("questionId must be a string or number: %w", err)
	}
	*r = QuestionRef(n.String())
	return nil
}

var canonicalInteger = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

// MarshalJSON writes canonical integers as JSON numbers and anything else,
// including "007" or "+5", as a string.
func (r QuestionRef) MarshalJSON() ([]byte, error) {
	if canonicalInteger.MatchString(string(r)) {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}

// Answer is one quiz response reduced to the category it votes for.
type Answer struct {
	QuestionID QuestionRef `json:"questionId"`
	Category   string      `json:"category"`
}

// Tally counts votes per category, remembering first-seen order.
type Tally struct {
	order  []string
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one vote for category.
func (t *Tally) Add(category string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, seen := t.counts[category]; !seen {
		t.order = append(t.order, category)
	}
	t.counts[category]++
}

func (t *Tally) Count(category string) int {
	return t.counts[category]
}

// Categories returns the tallied categories in first-seen order.
func (t *Tally) Categories() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Tally) Len() int {
	return len(t.order)
}

// MarshalJSON writes the tally as an object whose keys keep first-seen order.
func (t *Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(t.counts[category]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object back into a tally, preserving key order.
func (t *Tally) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tally: expected object, got %v", tok)
	}
	t.order = nil
	t.counts = make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("tally: expected string key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("tally: count for %q: %w", key, err)
		}
		if _, seen := t.counts[key]; !seen {
			t.order = append(t.order, key)
		}
		t.counts[key] = count
	}
	_, err = dec.Token()
	return err
}

// RecommendationResult is the outcome of scoring a quiz.
type RecommendationResult struct {
	Recommendation string `json:"recommendation"`
	Breakdown      *Tally `json:"breakdown"`
	Message        string `json:"message"`
}

// RecommendationMessage renders the user-facing sentence for a stream.
func RecommendationMessage(category string) string {
	return fmt.Sprintf("Based on your answers, we recommend exploring %s stream!", category)
}

// Score tallies answers by category and picks the plurality category.
// Answers with an empty or neutral category are skipped. Ties go to the
// category that reached the maximum first in first-seen order. With no
// countable answers the result is DefaultRecommendation and an empty
// breakdown.
func Score(answers []Answer) *RecommendationResult {
	tally := NewTally()
	for _, a := range answers {
		if a.Category == "" || a.Category == NeutralCategory {
			continue
		}
		tally.Add(a.Category)
	}

	recommendation := DefaultRecommendation
	maxCount := 0
	for _, category := range tally.order {
		if count := tally.counts[category]; count > maxCount {
			maxCount = count
			recommendation = category
		}
	}

	return &RecommendationResult{
		Recommendation: recommendation,
		Breakdown:      tally,
		Message:        RecommendationMessage(recommendation),
	}
}
