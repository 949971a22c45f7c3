// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"gopkg.yapllang.org/compiler.go/internal/idl"
)

type yamlFile struct {
	URI   string     `yaml:"uri"`
	Lines []yamlLine `yaml:"lines"`
}

type yamlLine struct {
	Line   int32       `yaml:"line"`
	Tokens []yamlToken `yaml:"tokens"`
}

type yamlToken struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
	Span  string `yaml:"span"`
}

// YAML writes each file as its own document.
func YAML(w io.Writer, files ...*idl.LexedFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, f := range files {
		doc := yamlFile{URI: f.URI, Lines: make([]yamlLine, 0, len(f.Lines))}
		for _, line := range f.Lines {
			yl := yamlLine{
				Line:   line.Source.Span.Begin.Line,
				Tokens: make([]yamlToken, 0, len(line.Tokens)),
			}
			for _, t := range line.Tokens {
				yl.Tokens = append(yl.Tokens, yamlToken{
					Type:  t.Type.String(),
					Value: t.Value,
					Span:  t.Span.Begin.String() + "-" + t.Span.End.String(),
				})
			}
			doc.Lines = append(doc.Lines, yl)
		}
		if err := enc.Encode(&doc); err != nil {
			return err
		}
	}
	return enc.Close()
}
