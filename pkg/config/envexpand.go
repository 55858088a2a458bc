package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables into YAML config using
// {{.VAR_NAME}} template syntax. Plain $ stays untouched, which keeps
// literal dollars safe in trigger rule patterns, passwords and shell
// snippets embedded in stage prompts.
//
// Missing variables expand to an empty string; required-field
// validation catches them downstream. Content that fails to parse or
// execute as a template passes through unchanged.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only; values may contain more.
		if key, value, ok := strings.Cut(env, "="); ok && key != "" {
			envMap[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
