package sentiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodnote-ai/moodnote/pkg/sentiment"
)

func TestDetectDistress(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I want to end my life", true},
		{"I had a tough day", false},
		{"Sometimes I think about SUICIDE", true}, // case insensitive
		{"there is no way out of this", true},
		{"I feel hopeless lately", true},
		{"", false},
		{"great day at the beach", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, sentiment.DetectDistress(c.text), "text: %q", c.text)
	}
}
