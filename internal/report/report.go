// Package report implements the mission report form and the lock it opens.
package report

import "time"

// Fixed presentation delays.
const (
	SendDelay   = 1000 * time.Millisecond
	UnlockDelay = 1500 * time.Millisecond
)

// Question identifies one of the two report questions.
type Question int

const (
	Result Question = iota
	Grit
)

// Option is an answer value.
type Option string

const (
	Success Option = "success"
	Close   Option = "close"
	Fail    Option = "fail"

	Great Option = "great"
	Good  Option = "good"
	Poor  Option = "poor"
)

// Choice is a labelled option.
type Choice struct {
	Value Option
	Label string
}

// Prompt is a question with its options in display order.
type Prompt struct {
	Question Question
	Text     string
	Choices  []Choice
}

// Prompts lists the report questions.
var Prompts = []Prompt{
	{Question: Result, Text: "Q1. How did it go?", Choices: []Choice{
		{Success, "Success!"},
		{Close, "So close"},
		{Fail, "Didn't work"},
	}},
	{Question: Grit, Text: "Q2. Did you keep trying?", Choices: []Choice{
		{Great, "Tried really hard"},
		{Good, "Tried"},
		{Poor, "Could try harder"},
	}},
}

func valid(q Question, opt Option) bool {
	for _, p := range Prompts {
		if p.Question != q {
			continue
		}
		for _, c := range p.Choices {
			if c.Value == opt {
				return true
			}
		}
	}
	return false
}

// State of the report submission.
type State int

const (
	Editing State = iota
	Sending
	Sent
)

func (s State) String() string {
	switch s {
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	}
	return "editing"
}

// Flow is the report form. Answers can change freely until Submit.
type Flow struct {
	answers map[Question]Option
	state   State
	lock    *Lock
}

// NewFlow returns an empty form that opens lock once sent.
func NewFlow(lock *Lock) *Flow {
	return &Flow{answers: make(map[Question]Option), lock: lock}
}

func (f *Flow) State() State { return f.state }

// Answer returns the selected option of q, or "".
func (f *Flow) Answer(q Question) Option { return f.answers[q] }

// Select marks opt as the only selected option of q. It is ignored once
// the report is submitted or when opt does not belong to q.
func (f *Flow) Select(q Question, opt Option) bool {
	if f.state != Editing || !valid(q, opt) {
		return false
	}
	f.answers[q] = opt
	return true
}

// CanSubmit reports whether both questions are answered and nothing has
// been submitted yet.
func (f *Flow) CanSubmit() bool {
	return f.state == Editing && f.answers[Result] != "" && f.answers[Grit] != ""
}

// Submit starts sending. Repeated or premature submits do nothing.
func (f *Flow) Submit() bool {
	if !f.CanSubmit() {
		return false
	}
	f.state = Sending
	return true
}

// Complete finishes sending and starts unlocking the lock.
func (f *Flow) Complete() bool {
	if f.state != Sending {
		return false
	}
	f.state = Sent
	if f.lock != nil {
		f.lock.Unlock()
	}
	return true
}
