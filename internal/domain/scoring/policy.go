package scoring

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// CorrectionPolicy decides what a problem answered correctly after the first
// attempt is worth.
type CorrectionPolicy int

const (
	Zero            CorrectionPolicy = iota // "0": later corrections earn nothing.
	Full                                    // "1": later corrections earn full credit.
	Half                                    // "0.5": later corrections earn half.
	HalfToThePowerN                         // "half_n": each extra attempt halves the credit.
)

var (
	policyNames  = [...]string{Zero: "0", Full: "1", Half: "0.5", HalfToThePowerN: "half_n"}
	policyByName = map[string]CorrectionPolicy{
		"0":      Zero,
		"1":      Full,
		"0.5":    Half,
		"half_n": HalfToThePowerN,
	}
)

var (
	_ fmt.Stringer             = CorrectionPolicy(0)
	_ json.Marshaler           = CorrectionPolicy(0)
	_ json.Unmarshaler         = (*CorrectionPolicy)(nil)
	_ encoding.TextMarshaler   = CorrectionPolicy(0)
	_ encoding.TextUnmarshaler = (*CorrectionPolicy)(nil)
)

func (p CorrectionPolicy) isValid() bool {
	return p >= Zero && p <= HalfToThePowerN
}

func (p CorrectionPolicy) String() string {
	if p.isValid() {
		return policyNames[p]
	}
	return fmt.Sprintf("CorrectionPolicy(%d)", int(p))
}

// ParsePolicy reads the text form ("0", "1", "0.5" or "half_n").
func ParsePolicy(s string) (CorrectionPolicy, error) {
	p, ok := policyByName[s]
	if !ok {
		return 0, fmt.Errorf("scoring: invalid correction policy: %q", s)
	}
	return p, nil
}

func (p CorrectionPolicy) MarshalText() ([]byte, error) {
	if !p.isValid() {
		return nil, fmt.Errorf("scoring: invalid correction policy: %d", int(p))
	}
	return []byte(policyNames[p]), nil
}

func (p *CorrectionPolicy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON writes the policy as a JSON string.
func (p CorrectionPolicy) MarshalJSON() ([]byte, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (p *CorrectionPolicy) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("scoring: invalid correction policy: %s", data)
	}
	return p.UnmarshalText([]byte(str))
}
