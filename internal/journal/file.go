package journal

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// ParseEntryFile deserializes a raw entry file: YAML front matter between
// "---" delimiters, followed by the free-form body. The body is kept opaque.
func ParseEntryFile(raw []byte) (Entry, error) {
	var entry Entry

	s := string(raw)
	if !strings.HasPrefix(s, frontMatterDelimiter) {
		return entry, fmt.Errorf("missing front-matter delimiter")
	}
	rest := s[len(frontMatterDelimiter):]
	idx := strings.Index(rest, "\n"+frontMatterDelimiter)
	if idx == -1 {
		return entry, fmt.Errorf("unclosed front-matter block")
	}

	if err := yaml.Unmarshal([]byte(rest[:idx]), &entry); err != nil {
		return entry, fmt.Errorf("yaml.Unmarshal(front matter) > %w", err)
	}

	body := rest[idx+len("\n"+frontMatterDelimiter):]
	// One blank line conventionally separates front matter from the body.
	if strings.HasPrefix(body, "\n\n") {
		body = body[2:]
	} else if strings.HasPrefix(body, "\n") {
		body = body[1:]
	}
	entry.Body = body

	return entry, nil
}

// FormatEntryFile renders an entry back to its on-disk representation.
func FormatEntryFile(entry Entry) ([]byte, error) {
	meta, err := yaml.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal(entry) > %w", err)
	}

	var sb strings.Builder
	sb.WriteString(frontMatterDelimiter + "\n")
	sb.Write(meta)
	sb.WriteString(frontMatterDelimiter + "\n\n")
	sb.WriteString(entry.Body)
	if !strings.HasSuffix(entry.Body, "\n") {
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}
