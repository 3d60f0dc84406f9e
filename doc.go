// Package wallet provides the types and operations of a small personal
// finance ledger. It is designed to be local-first: all records live in a
// single human-readable JSON file that the user fully owns.
//
// The core functionalities include:
//   - Record: one dated transaction (category, amount, description).
//   - Wallet: the in-memory, file-backed ordered collection of records, with
//     add, edit, remove, search and balance operations. Every mutation
//     rewrites the store file so that disk and memory never diverge.
//   - Balance rules: a configurable mapping from category labels to their
//     accounting role (income, expense, or ignored), replacing hardcoded
//     labels while keeping exact, case-insensitive matching.
//
// This package serves as the foundational logic for the `wlt` command-line
// tool; everything user-facing (prompts, tables, localized output) lives in
// the cmd and renderer packages.
package wallet
