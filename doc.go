// Package inkwell is the Composition Root for the Inkwell application.
//
// It connects the core domain (session, notes, credential) with the
// infrastructure adapters (local key-value storage, enhancement
// provider) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Inkwell is a local-first note keeper. Notes, the fabricated session
// identity, and the provider credential live in a small key-value
// mirror on disk, rewritten after every mutation. The only outward
// dependency is the optional enhancement call, which sends a note's
// content to a chat-completion provider and replaces it with the
// rewrite.
//
// Features:
//
//   - **Hexagonal Architecture**: Stores depend on the core.Storage
//     and core.Enhancer seams, not on a concrete backend.
//   - **Atomic Persistence**: The filesystem adapter writes each key
//     via temp file + rename; a reader never sees a torn record.
//   - **Crash Tolerant**: Unparseable persisted state is discarded and
//     logged, never fatal.
//   - **Observable**: A storage watcher reports key changes so another
//     process can follow mutations.
//
// Usage:
//
//	// Open an app over a vault directory with functional options
//	app, err := inkwell.Open(ctx, "~/.inkwell",
//		inkwell.WithLogger(logger),
//	)
//
//	// Create and enhance a note
//	note, err := app.Notes().Create(ctx, "title", "content")
//	err = app.Notes().Enhance(ctx, note.ID)
package inkwell
