// Package input defines the batch-producing Adapter interface of spec.md
// §4.I plus four concrete sources: one string per line of a file
// (LineAdapter), one string per whole file (FileAdapter), every regular
// file under a directory (DirAdapter), and every entry of a zip archive
// (ArchiveAdapter) — the last supplementing spec.md §1's "archive" mention
// with a concrete reader grounded on the standard library's archive/zip,
// since no ecosystem archive reader appeared in the retrieved pack (see
// DESIGN.md). Every adapter assigns idx in production order, starting at 0.
package input
