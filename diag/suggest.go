package diag

import "github.com/lumenlang/lumen/token"

// suggestionKey pairs what the parser expected with what it found, the
// two-token context most "insert/replace X" suggestions are keyed on.
type suggestionKey [2]token.Kind

// suggestions holds canned fix-it text for common mismatched-token
// situations, looked up by (expected, found). Keeping this as data,
// rather than scattered at each call site that raises a diagnostic,
// keeps the suggestion mechanism to one table and many call sites.
var suggestions = map[suggestionKey]string{
	{token.Semicolon, token.RightBrace}: "insert ';' before '}'",
	{token.Semicolon, token.EOF}:        "insert ';' at the end of the statement",
	{token.RightParen, token.EOF}:       "insert ')' to close the open '('",
	{token.RightBrace, token.EOF}:       "insert '}' to close the open block",
	{token.RightBracket, token.EOF}:     "insert ']' to close the open '['",
	{token.Colon, token.Assign}:         "did you mean ':' instead of '='?",
	{token.Assign, token.Eq}:            "did you mean '=' instead of '=='?",
	{token.KwIn, token.Colon}:           "did you mean 'in'?",
}

// Suggest returns canned fix-it text for a token the parser expected but
// didn't find, given what it found instead. The empty string means no
// canned suggestion applies.
func Suggest(expected, found token.Kind) string {
	return suggestions[suggestionKey{expected, found}]
}
