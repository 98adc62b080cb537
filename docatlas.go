// Package docatlas infers a module/submodule catalog from documentation
// sites. It crawls reachable pages within configured bounds, rebuilds a
// heading-based section tree per page, and merges the trees across pages
// into deduplicated modules with generated descriptions and confidence
// scores.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package docatlas
