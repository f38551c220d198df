package notification

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type kindEnvelope struct {
	Kind Kind `json:"kind" yaml:"kind"`
}

// Decode builds a notification from JSON carrying a "kind" discriminator.
func Decode(data []byte) (Notification, error) {
	var env kindEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	n, err := New(env.Kind, "")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if err := n.Common().Templates.Validate(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Kind, err)
	}
	return n, nil
}

// DecodeYAML builds a notification from YAML carrying a "kind" discriminator.
func DecodeYAML(data []byte) (Notification, error) {
	var env kindEnvelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	n, err := New(env.Kind, "")
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if err := n.Common().Templates.Validate(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Kind, err)
	}
	return n, nil
}
