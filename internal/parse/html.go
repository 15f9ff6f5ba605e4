package parse

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// textFromHTML extracts readable text from an HTML document, preferring
// <main> or <article> over <body>. Script, style, and navigation chrome are
// skipped. Non-UTF-8 input is decoded via its declared or sniffed charset
// before parsing.
func textFromHTML(raw []byte) (string, error) {
	enc, _, _ := charset.DetermineEncoding(raw, "")
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		// Fall back to the raw bytes; html.Parse tolerates loose input.
		decoded = raw
	}
	node, err := html.Parse(bytes.NewReader(decoded))
	if err != nil || node == nil {
		return "", err
	}

	root := findElement(node, "main")
	if root == nil {
		root = findElement(node, "article")
	}
	if root == nil {
		root = findElement(node, "body")
	}
	var b strings.Builder
	if root != nil {
		collectText(&b, root, false)
	}
	return tidyBlankLines(b.String()), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectText(b *strings.Builder, n *html.Node, inPre bool) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
			return
		case "pre", "code":
			inPre = true
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol", "tr":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		data := n.Data
		if !inPre {
			data = strings.ReplaceAll(data, "\t", " ")
			data = strings.ReplaceAll(data, "\r", " ")
		}
		b.WriteString(data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c, inPre)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n\n")
		case "li", "tr", "pre", "code":
			b.WriteString("\n")
		}
	}
}

// tidyBlankLines trims each line and collapses runs of blank lines so the
// extracted text reads as paragraphs separated by single blank lines.
func tidyBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, collapseRuns(trimmed))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	return strings.Join(out, "\n")
}

func collapseRuns(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
