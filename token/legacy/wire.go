package legacy

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// wireToken is the serialized form of a legacy token.
type wireToken struct {
	Kind  Kind        `json:"type" yaml:"type"`
	Value interface{} `json:"value" yaml:"value"`
}

// MarshalJSON writes the value of scalars as a JSON number.
func (lt Token) MarshalJSON() ([]byte, error) {
	w := wireToken{Kind: lt.Kind, Value: lt.Value}
	if lt.Kind == KindScalar {
		w.Value = json.Number(lt.Scalar.String())
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads a legacy token. Scalar values may be given as numbers
// or as strings.
func (lt *Token) UnmarshalJSON(data []byte) error {
	var w struct {
		Kind  Kind            `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t := Token{Kind: w.Kind}
	if len(w.Value) > 0 && string(w.Value) != "null" {
		var err error
		if w.Kind == KindScalar {
			err = json.Unmarshal(w.Value, &t.Scalar)
		} else {
			err = json.Unmarshal(w.Value, &t.Value)
		}
		if err != nil {
			return fmt.Errorf("legacy %s token: %w", w.Kind, err)
		}
	}
	*lt = t
	return nil
}

// MarshalYAML writes the value of scalars as a YAML number.
func (lt Token) MarshalYAML() ([]byte, error) {
	value := strconv.Quote(lt.Value)
	if lt.Kind == KindScalar {
		value = lt.Scalar.String()
	}
	return []byte(fmt.Sprintf("type: %s\nvalue: %s\n", strconv.Quote(string(lt.Kind)), value)), nil
}

// UnmarshalYAML reads a legacy token. Scalar values may be given as numbers
// or as strings.
func (lt *Token) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var w wireToken
	if err := unmarshal(&w); err != nil {
		return err
	}
	t := Token{Kind: w.Kind}
	if w.Value != nil {
		if w.Kind == KindScalar {
			d, err := decimal.NewFromString(fmt.Sprint(w.Value))
			if err != nil {
				return fmt.Errorf("legacy scalar token: %w", err)
			}
			t.Scalar = d
		} else {
			s, ok := w.Value.(string)
			if !ok {
				return fmt.Errorf("legacy %s token: value %v is not a string", w.Kind, w.Value)
			}
			t.Value = s
		}
	}
	*lt = t
	return nil
}
