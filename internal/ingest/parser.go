// Package ingest converts uploaded documents into plain text for the
// pipeline. Only text-bearing formats are handled here; binary formats
// (PDF, DOCX, XLSX, PPTX) belong to an external conversion service and are
// rejected with ErrUnsupportedFormat.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ErrUnsupportedFormat marks a document format this service does not parse.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrParse marks a document that could not be read or decoded.
var ErrParse = errors.New("document parse error")

// ParseDocument reads the file at path and converts it to plain text based
// on its extension.
func ParseDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return ParseBytes(filepath.Base(path), data)
}

// ParseBytes converts raw document bytes to plain text. Unknown extensions
// are treated as plain text; invalid UTF-8 is dropped rather than failing
// the job.
func ParseBytes(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx":
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))

	case ".json":
		return parseJSON(data)

	case ".html", ".htm":
		return parseHTML(data)

	default:
		return sanitize(string(data)), nil
	}
}

// parseJSON re-serializes the document with stable indentation so that
// equivalent JSON bodies segment identically regardless of formatting.
func parseJSON(data []byte) (string, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return buf.String(), nil
}

// parseHTML reduces a page to its visible text, skipping script, style,
// noscript and iframe subtrees. Block-ish boundaries become newlines so the
// segmenter sees one clause run per element.
func parseHTML(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sanitize(buf.String()), nil
}

// sanitize drops invalid UTF-8 byte sequences, best-effort per the input
// contract: decoding problems degrade, they never fail a job.
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "")
}
