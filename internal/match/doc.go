// Package match decides which mapper types can index which storage kinds
// and ranks near-miss names for "did you mean" suggestions.
//
// Key functions:
//   - IsCompatible: checks a terminal storage type against a mapper type
//   - Check: IsCompatible with the alternatives a diagnostic needs
//   - Levenshtein, Similarity: edit distance between names
//   - Suggest: ranks candidate names by similarity
package match
