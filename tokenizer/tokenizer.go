// Package tokenizer decomposes text into BPE token units, an alternative to
// rune units for the string metrics.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/tiktoken-go/tokenizer"
)

// Tokenizer splits text into token IDs using tiktoken's cl100k_base encoding.
// Tokenization runs locally; no API calls are made.
type Tokenizer struct {
	encoding tiktoken.Codec
}

// New creates a Tokenizer with the cl100k_base encoding.
func New() (*Tokenizer, error) {
	enc, err := tiktoken.Get(tiktoken.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	return &Tokenizer{encoding: enc}, nil
}

// Units decomposes text into its ordered token IDs.
func (t *Tokenizer) Units(text string) ([]uint, error) {
	if text == "" {
		return nil, nil
	}

	ids, _, err := t.encoding.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}

	return ids, nil
}

// CountTokens returns the number of token units in text.
func (t *Tokenizer) CountTokens(text string) (int, error) {
	ids, err := t.Units(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
