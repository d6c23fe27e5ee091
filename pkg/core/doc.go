// Package core defines the shared language of the driver core.
//
// This package contains:
//   - Dialect configuration (DialectConfig, IdentifierConfig, StringConfig)
//   - DDL operation and capability types (Operation, Capabilities)
//   - Splitter contracts (SplitterOptions, Statement, UsageContext)
//   - Schema-change intents (Column, Index, ForeignKey, PrimaryKey, Constraint)
//
// The Golden Rule: pkg/core imports ONLY stdlib. All other packages depend
// on core, not the reverse. Everything here is pure data; behavior lives in
// pkg/dialect, pkg/splitter and pkg/dump.
package core
