// Package token provides line-level lexing for Praat text objects.
//
// [Source] reads an object file one line at a time and supports a single
// line of lookahead with [Source.Peek], which is all the Praat text format
// needs: every structural marker (`item [1]:`, `intervals: size = 3`,
// `frames []:`) is recognised by its prefix.
//
// [SplitKeyEquals], [BracketContents], [FirstBracket] and [Unquote] are the
// lexical primitives used on individual lines.
package token
