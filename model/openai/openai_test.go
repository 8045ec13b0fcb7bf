package openai

import (
	"testing"

	sdk "github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
)

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel()

	assert.Equal(t, sdk.ChatModelGPT4oMini, m.opts.Model)
	assert.Empty(t, m.opts.APIKey)
	assert.NotNil(t, m.client)
}

func TestNewModel_AppliesOptions(t *testing.T) {
	m := NewModel(func(o *Options) {
		o.Model = "gpt-4o"
		o.APIKey = "sk-test"
	})

	assert.Equal(t, "gpt-4o", m.opts.Model)
	assert.Equal(t, "sk-test", m.opts.APIKey)
}
