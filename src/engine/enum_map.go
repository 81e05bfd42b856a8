package engine

import "strings"

type enumPair struct {
	xmlToken string
	native   string
}

// EnumStringMap is a bidirectional mapping between the string tokens a
// document dialect uses for an enumerated field and our own internal values
type EnumStringMap struct {
	pairs []enumPair
}

func NewEnumStringMap() *EnumStringMap {
	return &EnumStringMap{}
}

// Add registers one token pair and returns the map for chaining
func (m *EnumStringMap) Add(xmlToken, native string) *EnumStringMap {
	m.pairs = append(m.pairs, enumPair{xmlToken: xmlToken, native: native})
	return m
}

// Native maps a document token to the internal value
func (m *EnumStringMap) Native(xmlToken string) (string, bool) {
	for _, p := range m.pairs {
		if p.xmlToken == xmlToken {
			return p.native, true
		}
	}
	return "", false
}

// XML maps an internal value back to the document token
func (m *EnumStringMap) XML(native string) (string, bool) {
	for _, p := range m.pairs {
		if p.native == native {
			return p.xmlToken, true
		}
	}
	return "", false
}

// XMLTokens lists the valid document tokens, for diagnostics
func (m *EnumStringMap) XMLTokens() string {
	tokens := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		tokens[i] = p.xmlToken
	}
	return strings.Join(tokens, ", ")
}
