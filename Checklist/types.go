package Checklist

// Answer is the tri-state (plus unanswered) state of a task.
type Answer string

const (
	AnswerYes        Answer = "yes"
	AnswerNo         Answer = "no"
	AnswerNA         Answer = "na"
	AnswerUnanswered Answer = "unanswered"
)

// ValidAnswer reports whether a is one of the four known answer states.
func ValidAnswer(a Answer) bool {
	switch a {
	case AnswerYes, AnswerNo, AnswerNA, AnswerUnanswered:
		return true
	}
	return false
}

// NextAnswer returns the answer following a in the manual toggle cycle:
// unanswered -> yes -> no -> na -> unanswered.
func NextAnswer(a Answer) Answer {
	switch a {
	case AnswerUnanswered:
		return AnswerYes
	case AnswerYes:
		return AnswerNo
	case AnswerNo:
		return AnswerNA
	default:
		return AnswerUnanswered
	}
}

// Task is a single checklist entry. GroupID is nil for ungrouped tasks.
type Task struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Answer  Answer `json:"answer"`
	GroupID *int64 `json:"groupId"`
}

// Group is a named bucket tasks can be assigned to.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HeaderData is the document-level metadata block.
type HeaderData struct {
	Title      string `json:"title"`
	Investor   string `json:"investor"`
	Contractor string `json:"contractor"`
	Date       string `json:"date"`
}

// Filter selects which tasks are visible. It is either "all" or one of the
// answer states.
type Filter string

const FilterAll Filter = "all"

// ValidFilter reports whether f is "all" or a known answer state.
func ValidFilter(f Filter) bool {
	return f == FilterAll || ValidAnswer(Answer(f))
}
