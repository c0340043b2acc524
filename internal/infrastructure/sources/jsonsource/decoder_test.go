package jsonsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdice/emojisummary/internal/infrastructure/sources"
	"github.com/tsdice/emojisummary/internal/model"
)

func TestDecoder_ParsesObject(t *testing.T) {
	got := (&Decoder{}).Decode([]byte(`{"theme":"dark","gravity":true,"twinkle":true,"chaosLevel":7}`))

	assert.Equal(t, "dark", got.Theme)
	assert.True(t, got.Gravity)
	assert.True(t, got.Twinkle)
	assert.Equal(t, 7.0, got.Chaos())
}

func TestDecoder_InvalidTextIsEmpty(t *testing.T) {
	d := &Decoder{}
	for _, in := range []string{
		"",
		"   ",
		"not json",
		`{"theme":`,
		`["theme","dark"]`,
		`"dark"`,
		`42`,
		`null`,
	} {
		assert.Equal(t, model.ParticleConfig{}, d.Decode([]byte(in)), "input %q", in)
	}
}

func TestDecoder_RegisteredGlobally(t *testing.T) {
	got, err := sources.GlobalRegistry.Decode(Name, []byte(` {"shape":"star"} `))
	require.NoError(t, err)
	assert.Equal(t, "star", got.Shape)
}

func TestParse_KeepsNumbersAsFloat(t *testing.T) {
	m := Parse([]byte(`{"particleCount":250,"color":"#00ff00"}`))
	assert.Equal(t, 250.0, m["particleCount"])
}
