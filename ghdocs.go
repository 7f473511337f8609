// Package ghdocs lets an automated client browse documentation stored in
// GitHub repositories without knowing each repository's docs layout upfront.
// Repositories are mapped to a documentation root either explicitly or by
// probing a ranked list of candidate directories for indicator files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., github/, mcp/, yaml/).
package ghdocs
