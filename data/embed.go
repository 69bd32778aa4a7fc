// Package data embeds all lexicon and dictionary data files.
package data

import _ "embed"

//go:embed lexicon.yaml
var LexiconYAML []byte

//go:embed domains.yaml
var DomainsYAML []byte

//go:embed sentiment.tsv
var SentimentLexicon string
