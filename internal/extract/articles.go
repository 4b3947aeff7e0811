package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ArticleSet is the result of extracting one legal code document.
type ArticleSet struct {
	Source      string    `json:"source_file"`
	ExtractedAt time.Time `json:"extracted_at"`
	Articles    Articles  `json:"articles"`
}

// Articles maps article identifiers to plain-text bodies. Identifiers are
// kept in discovery order so the JSON form follows the document.
type Articles struct {
	ids    []string
	bodies map[string]string
}

// set stores body under id. A repeated id keeps its first position and takes
// the latest body.
func (a *Articles) set(id, body string) {
	if a.bodies == nil {
		a.bodies = make(map[string]string)
	}
	if _, ok := a.bodies[id]; !ok {
		a.ids = append(a.ids, id)
	}
	a.bodies[id] = body
}

// Len returns the number of articles.
func (a Articles) Len() int { return len(a.ids) }

// Get returns the body for id.
func (a Articles) Get(id string) (string, bool) {
	body, ok := a.bodies[id]
	return body, ok
}

// IDs returns the identifiers in discovery order.
func (a Articles) IDs() []string {
	return append([]string(nil), a.ids...)
}

// Map returns a copy of the identifier to body mapping.
func (a Articles) Map() map[string]string {
	out := make(map[string]string, len(a.bodies))
	for k, v := range a.bodies {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the articles as a JSON object in discovery order.
func (a Articles) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	// HTML escaping is left to the caller's encoder settings
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	for i, id := range a.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(id); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(a.bodies[id]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (a *Articles) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = Articles{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("articles: expected object, got %v", tok)
	}
	var out Articles
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("articles: unexpected key %v", tok)
		}
		var body string
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("articles: %s: %w", id, err)
		}
		out.set(id, body)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = out
	return nil
}
