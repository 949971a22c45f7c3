// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

// AtomicKind classifies the primitive tokens produced by the line scanner.
type AtomicKind uint8

//go:generate stringer -type=AtomicKind
const (
	AtomicKindNormal           AtomicKind = 0
	AtomicKindQuotedString     AtomicKind = 1
	AtomicKindMultiLineString  AtomicKind = 2
	AtomicKindEscapedCharacter AtomicKind = 3
	AtomicKindColon            AtomicKind = 4
	AtomicKindOpenParenthesis  AtomicKind = 5
	AtomicKindCloseParenthesis AtomicKind = 6
	AtomicKindOpenBracket      AtomicKind = 7
	AtomicKindCloseBracket     AtomicKind = 8
	AtomicKindOpenCurlyBrace   AtomicKind = 9
	AtomicKindCloseCurlyBrace  AtomicKind = 10
	AtomicKindComma            AtomicKind = 11
	AtomicKindCommentDash      AtomicKind = 12
	AtomicKindBlockCommentDash AtomicKind = 13
)

type AtomicToken struct {
	Kind  AtomicKind
	Value string
	Span  Span
}

// FileLine is one physical line of a source file without its terminator.
type FileLine struct {
	Text string
	Span Span
}

// SourceLine is a scanned FileLine. Leading and Trailing hold the runs of
// spaces and tabs around the body of the line. The synthetic end-of-file line
// has EOF set and no text.
type SourceLine struct {
	Text     string
	Span     Span
	Leading  string
	Trailing string
	Tokens   []AtomicToken
	EOF      bool
}

// Body is the line text without its leading and trailing whitespace.
func (self SourceLine) Body() string {
	return self.Text[len(self.Leading) : len(self.Text)-len(self.Trailing)]
}

func (self SourceLine) IsBlank() bool {
	return self.Body() == ""
}

// BodySpan covers the line body. For a blank line it is the zero width span
// after the leading whitespace.
func (self SourceLine) BodySpan() Span {
	begin := self.Span.Begin.Advance(len(self.Leading))
	return Span{
		URI:   self.Span.URI,
		Begin: begin,
		End:   begin.Advance(len(self.Body())),
	}
}

// Between returns the raw line text lying between the end of a and the start
// of b. Both spans must be on this line.
func (self SourceLine) Between(a Span, b Span) string {
	from := int(a.End.Column - self.Span.Begin.Column)
	to := int(b.Begin.Column - self.Span.Begin.Column)
	if from < 0 || to > len(self.Text) || from >= to {
		return ""
	}
	return self.Text[from:to]
}

type Token struct {
	Span  Span
	Type  TokenType
	Value string
}

type TokenType uint16

//go:generate stringer -type=TokenType
const (
	TokenTypeUnknown                     TokenType = 0
	TokenTypeNormal                      TokenType = 1
	TokenTypeOpenParenthesis             TokenType = 2
	TokenTypeCloseParenthesis            TokenType = 3
	TokenTypeOpenBracket                 TokenType = 4
	TokenTypeCloseBracket                TokenType = 5
	TokenTypeOpenCurlyBrace              TokenType = 6
	TokenTypeCloseCurlyBrace             TokenType = 7
	TokenTypeComma                       TokenType = 8
	TokenTypeComment                     TokenType = 9
	TokenTypeString                      TokenType = 10
	TokenTypeBeginBlock                  TokenType = 11
	TokenTypeEndBlock                    TokenType = 12
	TokenTypeTmpBeginSingleLineComment   TokenType = 13
	TokenTypeTmpEndSingleLineComment     TokenType = 14
	TokenTypeTmpSingleLineCommentContent TokenType = 15
	TokenTypeTmpBeginMultiLineComment    TokenType = 16
	TokenTypeTmpEndMultiLineComment      TokenType = 17
	TokenTypeTmpMultiLineCommentContent  TokenType = 18
	TokenTypeTmpBeginSingleLineString    TokenType = 19
	TokenTypeTmpEndSingleLineString      TokenType = 20
	TokenTypeTmpBeginMultiLineString     TokenType = 21
	TokenTypeTmpEndMultiLineString       TokenType = 22
	TokenTypeTmpStringContent            TokenType = 23
)

// IsProvisional reports whether the type only exists while relexing and must
// be resolved before tokens leave the relexer.
func (t TokenType) IsProvisional() bool {
	return t >= TokenTypeTmpBeginSingleLineComment && t <= TokenTypeTmpStringContent
}

// IsStructural reports whether the type is a synthetic block marker.
func (t TokenType) IsStructural() bool {
	return t == TokenTypeBeginBlock || t == TokenTypeEndBlock
}
