// Package domain holds the types shared by the board's entity sub-packages.
// Entities live in sub-packages (domain/project, domain/transfer); this root
// package only carries the sentinel errors and the field-level validation
// error that every layer above it reports through.
package domain
