// Package prompts embeds the LLM prompt templates and renders them with
// text/template. Templates live in JSON files mapping a key to the template
// text; parsed templates are cached per file/key pair.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed *.json
var promptFS embed.FS

var (
	mu     sync.RWMutex
	files  = make(map[string]map[string]string)
	parsed = make(map[string]*template.Template)
)

// Render executes the template stored under filename/key with data. Unknown
// placeholders are an error so a prompt typo fails loudly instead of sending
// the literal placeholder to the model.
func Render(filename, key string, data map[string]string) (string, error) {
	tmpl, err := lookup(filename, key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s#%s: %w", filename, key, err)
	}
	return b.String(), nil
}

// Raw returns the unrendered template text.
func Raw(filename, key string) (string, error) {
	prompts, err := load(filename)
	if err != nil {
		return "", err
	}

	text, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return text, nil
}

// Keys lists the prompt keys available in a file.
func Keys(filename string) ([]string, error) {
	prompts, err := load(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	return keys, nil
}

func lookup(filename, key string) (*template.Template, error) {
	id := filename + "#" + key

	mu.RLock()
	tmpl, ok := parsed[id]
	mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	text, err := Raw(filename, key)
	if err != nil {
		return nil, err
	}

	tmpl, err = template.New(id).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt %s#%s: %w", filename, key, err)
	}

	mu.Lock()
	parsed[id] = tmpl
	mu.Unlock()
	return tmpl, nil
}

func load(filename string) (map[string]string, error) {
	mu.RLock()
	prompts, ok := files[filename]
	mu.RUnlock()
	if ok {
		return prompts, nil
	}

	data, err := promptFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	mu.Lock()
	files[filename] = prompts
	mu.Unlock()
	return prompts, nil
}

// reset drops both caches. Tests only.
func reset() {
	mu.Lock()
	files = make(map[string]map[string]string)
	parsed = make(map[string]*template.Template)
	mu.Unlock()
}
