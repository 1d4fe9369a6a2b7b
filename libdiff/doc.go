// Package libdiff compares TextGrids.
//
// Tiers are matched by name and kind. Within a tier, segments are aligned
// with a sequence diff; a deleted segment directly followed by an inserted
// one is reported as a replacement together with a diff of its text.
package libdiff
