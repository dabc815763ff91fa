package fluid

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Edit is one option change carried over the live-edit channel between
// open pages of the same sketch.
type Edit struct {
	Field Field       `json:"field"`
	Value interface{} `json:"value"`
}

// ErrNoField is returned for edits that name no option.
var ErrNoField = errors.New("edit names no field")

// EncodeEdit serializes an edit for the live-edit channel.
func EncodeEdit(e Edit) ([]byte, error) {
	if e.Field == "" {
		return nil, ErrNoField
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode edit %s: %w", e.Field, err)
	}
	return data, nil
}

// DecodeEdit parses a live-edit message. Numbers decode as float64.
func DecodeEdit(data []byte) (Edit, error) {
	var e Edit
	if err := json.Unmarshal(data, &e); err != nil {
		return Edit{}, fmt.Errorf("decode edit: %w", err)
	}
	if e.Field == "" {
		return Edit{}, ErrNoField
	}
	return e, nil
}

// ApplyEdit applies an edit received from another page. It reports false
// when the panel has no control for the field or the value has the wrong
// kind.
func (p *Panel) ApplyEdit(e Edit) bool {
	return p.Set(e.Field, e.Value)
}
