// Package idcase converts identifiers between naming conventions.
//
// Conversion happens in two steps. The tokenizer splits text into words,
// recorded as rune spans into the input rather than copies, using configurable
// boundary rules: case transitions, letter/digit transitions and
// user-supplied multi-character delimiters. A renderer then joins the words
// in the target convention.
//
// Core properties:
//   - Immutable, shareable configuration built once through a Builder
//   - Longest-match delimiter lookup through a compiled trie
//   - Protected rules that keep the segment after a delimiter intact
//   - Acronym preservation for camelCase and PascalCase
//
// Example:
//
//	idcase.ToSnake("myHTTPServer")  // "my_http_server"
//	idcase.ToCamel("my_http_server") // "myHttpServer"
//
//	cfg := idcase.NewBuilder().
//		Delimiters(".").
//		ProtectedRules(idcase.RuleCase).
//		Build()
//	idcase.OriginalTokens("java.util.concurrent.locks.ReentrantLock", cfg, ".")
//	// "java.util.concurrent.locks.ReentrantLock"
//
// Named styles (snake, camel, kebab, ...) are available through StyleByName
// and Convert, and ConvertLines applies a style to every line of a reader.
package idcase
