package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uafields/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected environment.Environment
	}{
		{name: "production", input: "production", expected: environment.Production},
		{name: "prod alias", input: "prod", expected: environment.Production},
		{name: "uppercase", input: "PRODUCTION", expected: environment.Production},
		{name: "staging", input: "staging", expected: environment.Staging},
		{name: "stage alias", input: "stage", expected: environment.Staging},
		{name: "development", input: "development", expected: environment.Development},
		{name: "dev alias", input: "dev", expected: environment.Development},
		{name: "padded", input: "  prod ", expected: environment.Production},
		{name: "empty", input: "", expected: environment.Development},
		{name: "unknown", input: "qa", expected: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, environment.Parse(tt.input))
		})
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Development.IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}
