// Package shell turns a raw command line into the argument vector that gets
// dispatched.
//
// Processing happens in a fixed order:
//
// 1. The line is broken into tokens using POSIX shell quoting rules; see Split.
//
// 2. If the first token names an alias, it is replaced by the alias value,
// itself tokenized, and the remaining tokens are appended. Expansion happens
// once; see AliasTable.Resolve.
//
// 3. Output redirection operators (> and >>) and their operands are removed
// from the argument list; see ParseRedirects.
//
// 4. The caller runs a built-in or an external program with the result.
package shell
