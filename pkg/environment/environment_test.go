package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunahq/luna/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" PROD ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"dev", environment.Development},
		{"", environment.Development},
		{"qa", environment.Development},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, environment.Parse(tt.in), "input %q", tt.in)
	}

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Staging.IsProduction())
}
