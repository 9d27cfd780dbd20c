// Package pipeline implements the Markdown-to-HTML page pipeline.
//
// The stages, in order:
//   - Front matter extraction (YAML between --- lines)
//   - Markdown preprocessing (NFC, line normalization, ==highlight== syntax)
//   - Markdown to HTML conversion: the native block/inline assembler, or
//     Goldmark as an alternate engine
//   - Page templating and CSS injection
//   - Base path rewriting of root-relative links
//
// The native assembler is built from the block, inline, textnode and
// htmlnode packages and does no I/O. Everything here works on strings; the
// caller reads and writes files.
package pipeline
