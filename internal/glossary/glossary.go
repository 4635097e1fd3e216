package glossary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Table maps misrecognized terms to their corrected spelling.
type Table map[string]string

// Load reads a glossary file. A .json file holds a flat object of
// wrong-to-right pairs; any other extension is parsed line by line as
// "wrong=right" with # comments and blank lines ignored.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var table Table
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse glossary JSON: %w", err)
		}
		return table, nil
	}

	table := Table{}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wrong, right, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		wrong = strings.TrimSpace(wrong)
		right = strings.TrimSpace(right)
		if wrong != "" {
			table[wrong] = right
		}
	}
	return table, nil
}

// Apply replaces every glossary term in the text, matching case
// insensitively on word boundaries so "capcut" and "CapCut" both correct.
func (t Table) Apply(text string) string {
	for wrong, right := range t {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(wrong) + `\b`)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, right)
	}
	return text
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{2}\s?)?\(?\d{2}\)?\s?\d{4,5}[-\s]?\d{4}`)
	cpfRe   = regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`)
	cnpjRe  = regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b`)
)

// Redact masks personally identifying data with bracket placeholders.
// Document numbers go before phone numbers so a CPF is not half eaten by
// the looser phone pattern.
func Redact(text string) string {
	text = emailRe.ReplaceAllString(text, "[EMAIL]")
	text = cpfRe.ReplaceAllString(text, "[CPF]")
	text = cnpjRe.ReplaceAllString(text, "[CNPJ]")
	text = phoneRe.ReplaceAllString(text, "[TEL]")
	return text
}
