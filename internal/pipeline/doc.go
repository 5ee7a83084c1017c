// Package pipeline runs one gene category end to end: it builds the
// presence/absence table from a flat annotation folder, persists it, and
// derives one tree-ordered co-presence matrix per gene. Each gene is
// reconciled against the tree independently, so a tree failure or an empty
// intersection is reported per gene and never aborts the batch.
package pipeline
