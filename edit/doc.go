// Package edit provides structural edits of TextGrids: temporal slicing,
// interval redaction, tier and interval lookup and JSON patching.
//
// Edits never modify their input; they return edited copies.
package edit
