// Package litmap provides a command-line client for the Living Literary Map.
// It lists curated literary landmarks, asks the remote orchestration backend
// to explain them, imports locations extracted from books, and plays a
// narrated tour over every known landmark.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, gemini/).
package litmap
