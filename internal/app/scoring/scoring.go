package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Category is one of the six vocational-interest dimensions.
type Category string

const (
	Realistic     Category = "Realistic"
	Investigative Category = "Investigative"
	Artistic      Category = "Artistic"
	Social        Category = "Social"
	Enterprising  Category = "Enterprising"
	Conventional  Category = "Conventional"
)

// QuestionsPerCategory is the number of questions owned by every category.
const QuestionsPerCategory = 10

// Scores maps each category to its percentage.
type Scores map[Category]float64

// categoryOrder is the declaration order of the categories.
var categoryOrder = []Category{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

// MarshalJSON writes the categories in declaration order. Keys that are not
// categories follow, sorted.
func (s Scores) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	keys := make([]Category, 0, len(s))
	known := make(map[Category]struct{}, len(categoryOrder))
	for _, c := range categoryOrder {
		known[c] = struct{}{}
		if _, ok := s[c]; ok {
			keys = append(keys, c)
		}
	}
	var extra []Category
	for c := range s {
		if _, ok := known[c]; !ok {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	keys = append(keys, extra...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s[c])
		if err != nil {
			return nil, fmt.Errorf("score of %s: %w", c, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CategoryQuestions binds a category to the question ids it aggregates.
type CategoryQuestions struct {
	Category  Category
	Questions [QuestionsPerCategory]int
}

// Table is the compiled scoring configuration. Category order is significant:
// it decides the dominant trait on ties and the order of report lines.
type Table struct {
	Categories    []CategoryQuestions
	ReverseScored map[int]struct{}
	NeutralValue  int
	// ReverseBase is the value answers are subtracted from when reversed.
	ReverseBase int
	// MaxRawSum is the largest possible per category sum on the answer scale.
	MaxRawSum float64
}

// StandardTable is the questionnaire in use: 60 questions assigned round-robin
// over the six categories, answered on a 1..5 scale.
var StandardTable = Table{
	Categories: []CategoryQuestions{
		{Realistic, [QuestionsPerCategory]int{1, 7, 13, 19, 25, 31, 37, 43, 49, 55}},
		{Investigative, [QuestionsPerCategory]int{2, 8, 14, 20, 26, 32, 38, 44, 50, 56}},
		{Artistic, [QuestionsPerCategory]int{3, 9, 15, 21, 27, 33, 39, 45, 51, 57}},
		{Social, [QuestionsPerCategory]int{4, 10, 16, 22, 28, 34, 40, 46, 52, 58}},
		{Enterprising, [QuestionsPerCategory]int{5, 11, 17, 23, 29, 35, 41, 47, 53, 59}},
		{Conventional, [QuestionsPerCategory]int{6, 12, 18, 24, 30, 36, 42, 48, 54, 60}},
	},
	// Literal list, not derived from the question numbering.
	ReverseScored: map[int]struct{}{10: {}, 20: {}, 30: {}, 40: {}, 50: {}, 60: {}},
	NeutralValue:  3,
	ReverseBase:   6,
	MaxRawSum:     50,
}

// Result is the outcome of scoring one questionnaire.
type Result struct {
	Scores   Scores   `json:"scores"`
	Dominant Category `json:"dominant_trait"`
}

// Engine scores questionnaire responses against a Table. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	table     Table
	questions map[int]struct{}
}

// New creates an Engine for the given table.
func New(table Table) *Engine {
	questions := make(map[int]struct{}, len(table.Categories)*QuestionsPerCategory)
	for _, cq := range table.Categories {
		for _, q := range cq.Questions {
			questions[q] = struct{}{}
		}
	}
	return &Engine{table: table, questions: questions}
}

// NewStandard creates an Engine for StandardTable.
func NewStandard() *Engine {
	return New(StandardTable)
}

// Categories returns the categories in declaration order.
func (e *Engine) Categories() []Category {
	out := make([]Category, 0, len(e.table.Categories))
	for _, cq := range e.table.Categories {
		out = append(out, cq.Category)
	}
	return out
}

// Score converts raw answers, keyed by the decimal question id, into category
// percentages and the dominant trait.
//
// Unanswered questions count as the neutral value. Answers are neither range
// checked nor clamped, so values outside the scale can push a percentage
// below 0 or above 100.
func (e *Engine) Score(responses map[string]int) Result {
	scores := make(Scores, len(e.table.Categories))
	for _, cq := range e.table.Categories {
		// Summed as float64: answers are unbounded and must not wrap.
		var total float64
		for _, q := range cq.Questions {
			raw, ok := responses[strconv.Itoa(q)]
			if !ok {
				raw = e.table.NeutralValue
			}
			v := float64(raw)
			if _, reversed := e.table.ReverseScored[q]; reversed {
				v = float64(e.table.ReverseBase) - v
			}
			total += v
		}
		scores[cq.Category] = total / e.table.MaxRawSum * 100
	}

	return Result{Scores: scores, Dominant: e.Dominant(scores)}
}

// Dominant returns the category with the highest score. Ties go to the
// category declared first.
func (e *Engine) Dominant(scores Scores) Category {
	var (
		best  Category
		found bool
		top   float64
	)
	for _, cq := range e.table.Categories {
		s, ok := scores[cq.Category]
		if !ok {
			continue
		}
		if !found || s > top {
			best, top, found = cq.Category, s, true
		}
	}
	return best
}

// UnknownKeys lists response keys that do not name a question of the table.
// Such keys are ignored by Score.
func (e *Engine) UnknownKeys(responses map[string]int) []string {
	var unknown []string
	for key := range responses {
		q, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(q) != key {
			unknown = append(unknown, key)
			continue
		}
		if _, ok := e.questions[q]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}
