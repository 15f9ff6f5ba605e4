package generate

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/hyperifyio/citeset/internal/triple"
)

var (
	fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	arrayRe = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
)

// parseResponse extracts the JSON triple array from a model reply. Models
// sometimes wrap JSON in markdown fences or surround it with prose, so the
// extractor tries the fenced block first, then the outermost array pattern,
// then the raw text. Entries missing any of the three fields are dropped.
func parseResponse(raw string) ([]triple.Triple, error) {
	jsonStr := raw
	if m := fenceRe.FindStringSubmatch(raw); len(m) == 2 {
		jsonStr = m[1]
	} else if m := arrayRe.FindString(raw); m != "" {
		jsonStr = m
	}

	var wire []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Citation string `json:"citation"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return nil, err
	}
	out := make([]triple.Triple, 0, len(wire))
	for _, w := range wire {
		q := strings.TrimSpace(w.Question)
		a := strings.TrimSpace(w.Answer)
		c := strings.TrimSpace(w.Citation)
		if q == "" || a == "" || c == "" {
			continue
		}
		out = append(out, triple.Triple{Question: q, Answer: a, Citation: c})
	}
	if len(out) == 0 {
		return nil, errors.New("no complete triples in response")
	}
	return out, nil
}
