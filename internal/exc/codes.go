// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal                   = "Y0000"
	CodeFileNotFound                   = "Y0001"
	CodeUnsupportedFileSystemOperation = "Y0002"
	CodePermissionDenied               = "Y0003"
	CodeUnsupportedFileFormat          = "Y0004"
	CodeInvalidUTF8                    = "Y0005"
	CodeCrossSourceSpan                = "Y0006"
	CodeInvalidEncoding                = "Y0007"
)

// Relexer failures. All of them end the relexing of the file they occur in.
const (
	CodeClosingUnopenedBlock   = "Y0101"
	CodeUnknownEscapeCharacter = "Y0102"
	CodeInvalidTokenInContext  = "Y0103"
	CodeUnclosedOpenedBlock    = "Y0104"
	CodeIndentationError       = "Y0105"
	CodeAutomatonCorruption    = "Y0106"
)

const (
	CodeEOF = "_EOF_"
)

var (
	defaultNonFatal = map[string]bool{}
)

// CodeName returns a readable name for the known codes.
func CodeName(code string) string {
	switch code {
	case CodeFileNotFound:
		return "FileNotFound"
	case CodeUnsupportedFileSystemOperation:
		return "UnsupportedFileSystemOperation"
	case CodePermissionDenied:
		return "PermissionDenied"
	case CodeUnsupportedFileFormat:
		return "UnsupportedFileFormat"
	case CodeInvalidUTF8:
		return "InvalidUTF8"
	case CodeCrossSourceSpan:
		return "CrossSourceSpan"
	case CodeInvalidEncoding:
		return "InvalidEncoding"
	case CodeClosingUnopenedBlock:
		return "ClosingUnopenedBlock"
	case CodeUnknownEscapeCharacter:
		return "UnknownEscapeCharacter"
	case CodeInvalidTokenInContext:
		return "InvalidTokenInContext"
	case CodeUnclosedOpenedBlock:
		return "UnclosedOpenedBlock"
	case CodeIndentationError:
		return "IndentationError"
	case CodeAutomatonCorruption:
		return "AutomatonCorruption"
	default:
		return "Unknown"
	}
}
