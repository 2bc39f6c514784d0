package problem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mathdrill/backend/internal/answer"
)

var (
	ErrMissingNumber = errors.New("problem number is required")
	ErrMissingAnswer = errors.New("problem answer is required")
)

// Problem is a single exercise in the corpus.
type Problem struct {
	Key    string   `json:"key,omitempty"` // "<groupId>.<num>", set by the corpus loader
	Num    Num      `json:"num"`
	Text   string   `json:"text"`
	Answer Answer   `json:"answer"`
	Hint   string   `json:"hint,omitempty"`
	Steps  []string `json:"steps,omitempty"`
}

// Parts returns the answer blanks in stored order.
func (p *Problem) Parts() []answer.Part {
	return []answer.Part(p.Answer)
}

func (p *Problem) Validate() error {
	if p.Num == "" {
		return ErrMissingNumber
	}
	if len(p.Answer) == 0 {
		return fmt.Errorf("%s: %w", p.Num, ErrMissingAnswer)
	}
	for i, part := range p.Answer {
		if strings.TrimSpace(part.Value) == "" {
			return fmt.Errorf("%s part %d: %w", p.Num, i, ErrMissingAnswer)
		}
	}
	return nil
}

// Answer holds the canonical answer of a problem. In JSON it is either a bare
// string (one unlabeled blank) or an array of {label, value} objects.
type Answer []answer.Part

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Answer{{Value: s}}
		return nil
	}

	var parts []answer.Part
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("answer must be a string or a list of {label, value}: %w", err)
	}
	*a = parts
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a) == 1 && a[0].Label == "" {
		return json.Marshal(a[0].Value)
	}
	return json.Marshal([]answer.Part(a))
}

// Num is a problem number. The corpus writes it as a JSON number or a string
// ("m1", "e3"); both decode to the same text form.
type Num string

func (n *Num) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Num(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("problem number must be a string or a number: %w", err)
	}
	*n = Num(num.String())
	return nil
}

func (n Num) String() string { return string(n) }
