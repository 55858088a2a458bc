package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXP_HOST", "db.internal")
	t.Setenv("EXP_PORT", "5432")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single variable",
			in:   "host: {{.EXP_HOST}}",
			want: "host: db.internal",
		},
		{
			name: "two variables in one value",
			in:   "dsn: {{.EXP_HOST}}:{{.EXP_PORT}}",
			want: "dsn: db.internal:5432",
		},
		{
			name: "missing variable expands to empty",
			in:   "token: '{{.EXP_DOES_NOT_EXIST}}'",
			want: "token: ''",
		},
		{
			name: "dollar signs survive untouched",
			in:   `pattern: "^task/.*$ costs $5"`,
			want: `pattern: "^task/.*$ costs $5"`,
		},
		{
			name: "no template syntax passes through",
			in:   "plain: value",
			want: "plain: value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.in))))
		})
	}
}

func TestExpandEnvMalformedTemplateReturnsInput(t *testing.T) {
	in := []byte("broken: {{.UNCLOSED")
	assert.Equal(t, in, ExpandEnv(in))
}
