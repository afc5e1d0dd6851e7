// Package langdetect decides whether a target file holds CSS or HTML.
// The file extension settles most cases; for extensionless paths and raw
// fragments it falls back to go-enry and a few cheap content patterns.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the detected source language of a target file.
type Kind int

const (
	// KindUnknown means no detector produced a confident answer.
	KindUnknown Kind = iota
	// KindCSS marks a stylesheet target.
	KindCSS
	// KindHTML marks a markup target.
	KindHTML
)

// String returns the lowercase language name.
func (k Kind) String() string {
	switch k {
	case KindCSS:
		return "css"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

// DetectFile returns the language of the file at path with the given
// content. The extension wins when it is conclusive; otherwise detection
// falls through to Detect on the content.
func DetectFile(path string, content []byte) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return KindCSS
	case ".html", ".htm", ".xhtml":
		return KindHTML
	}
	return Detect(content)
}

// Detect returns the language of a raw fragment. Returns KindUnknown when
// the content matches neither language with any confidence.
func Detect(content []byte) Kind {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return KindUnknown
	}

	// Strategy 1: structural giveaways the classifier does not need to
	// weigh in on.
	if k := detectByPattern(trimmed); k != KindUnknown {
		return k
	}

	// Strategy 2: the enry classifier, restricted to the two candidates.
	if lang, safe := enry.GetLanguageByClassifier(content, []string{"CSS", "HTML"}); safe {
		switch lang {
		case "CSS":
			return KindCSS
		case "HTML":
			return KindHTML
		}
	}

	return KindUnknown
}

// detectByPattern checks for unambiguous openers of either language.
func detectByPattern(trimmed []byte) Kind {
	lower := bytes.ToLower(trimmed)

	if bytes.HasPrefix(lower, []byte("<!doctype")) ||
		bytes.HasPrefix(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head")) ||
		bytes.Contains(lower, []byte("<body")) {
		return KindHTML
	}

	// A tag fragment: starts with "<name" and closes somewhere.
	if trimmed[0] == '<' && len(trimmed) > 1 && isTagNameByte(trimmed[1]) &&
		bytes.IndexByte(trimmed, '>') > 0 {
		return KindHTML
	}

	// At-rules only occur in stylesheets.
	if bytes.HasPrefix(trimmed, []byte("@import")) ||
		bytes.HasPrefix(trimmed, []byte("@media")) ||
		bytes.HasPrefix(trimmed, []byte("@charset")) {
		return KindCSS
	}

	// A declaration block or bare declaration list: "prop: value" pairs
	// with no markup in sight.
	if !bytes.ContainsAny(trimmed, "<>") {
		if bytes.IndexByte(trimmed, ':') > 0 {
			return KindCSS
		}
		if bytes.IndexByte(trimmed, '{') > 0 && bytes.IndexByte(trimmed, '}') > 0 {
			return KindCSS
		}
	}

	return KindUnknown
}

func isTagNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '!' || c == '/'
}
