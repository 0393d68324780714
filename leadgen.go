// Package leadgen discovers small-business leads by querying search
// engines and directory sites, extracting contact and social-media
// signals from arbitrary HTML, classifying and scoring each lead, and
// deduplicating results across batches.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, rod/), plus the search/ orchestration package.
package leadgen
