package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Bar(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriter(&buf, "Downloading", 3)
	assert.Equal(t, "[..............................] 0/3", p.Bar())

	p.Increment()
	assert.Equal(t, "[##########....................] 1/3", p.Bar())

	p.Increment()
	p.Increment()
	p.Increment() // clamped at total
	assert.Equal(t, 3, p.Current())
	assert.Equal(t, "[##############################] 3/3", p.Bar())
}

func TestProgress_NonTTYIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriter(&buf, "Downloading", 2)
	p.Increment()
	p.Done()
	assert.Empty(t, buf.String())
}

func TestProgress_ZeroTotal(t *testing.T) {
	p := NewWriter(&bytes.Buffer{}, "Downloading", 0)
	p.Increment()
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, "[..............................] 0/0", p.Bar())
}
