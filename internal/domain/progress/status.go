package progress

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Status is the position of a problem in its answer cycle.
type Status int

const (
	Unanswered Status = iota // No submission in the current cycle.
	Incorrect                // Graded wrong, retries remain.
	Correct                  // Every part accepted.
	Revealed                 // Retry budget spent; the answer is shown.
)

var (
	statusNames  = [...]string{Unanswered: "unanswered", Incorrect: "incorrect", Correct: "correct", Revealed: "revealed"}
	statusByName = map[string]Status{
		"unanswered": Unanswered,
		"incorrect":  Incorrect,
		"correct":    Correct,
		"revealed":   Revealed,
	}
)

var (
	_ fmt.Stringer             = Status(0)
	_ json.Marshaler           = Status(0)
	_ json.Unmarshaler         = (*Status)(nil)
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

func (s Status) isValid() bool {
	return s >= Unanswered && s <= Revealed
}

func (s Status) String() string {
	if s.isValid() {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether the current cycle is over. Only Reset leaves a
// terminal status.
func (s Status) Terminal() bool {
	return s == Correct || s == Revealed
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.isValid() {
		return nil, fmt.Errorf("progress: invalid status: %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, ok := statusByName[string(text)]
	if !ok {
		return fmt.Errorf("progress: invalid status: %q", text)
	}
	*s = v
	return nil
}

// MarshalJSON writes the status as a JSON string.
func (s Status) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a JSON string. An empty string reads as Unanswered.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("progress: invalid status: %s", data)
	}
	if str == "" {
		*s = Unanswered
		return nil
	}
	return s.UnmarshalText([]byte(str))
}
