// Package driver composes dialect, dumper and splitter-option resolution
// into one addressable unit per supported engine.
//
// The Registry is built once from an explicit Config value - there is no
// ambient or environment-driven state - and is read-only afterwards, so it
// may be shared freely across goroutines.
package driver

import (
	"github.com/coxery/dbgate/pkg/core"
	"github.com/coxery/dbgate/pkg/dialect"
	"github.com/coxery/dbgate/pkg/dump"
)

// Driver is the composed unit exposed to the host for one engine: identity,
// capability view, dumper entry points and splitter-option resolution.
// Long-lived; built once by the Registry.
type Driver struct {
	engineID string
	title    string
	dialect  *dialect.Dialect
	dumper   *dump.Dumper
}

// EngineID returns the identifier the host addresses this driver by.
func (d *Driver) EngineID() string {
	return d.engineID
}

// Title returns the display title.
func (d *Driver) Title() string {
	return d.title
}

// Dialect returns the engine's dialect descriptor.
func (d *Driver) Dialect() *dialect.Dialect {
	return d.dialect
}

// Dumper returns the DDL dumper bound to this engine's dialect.
func (d *Driver) Dumper() *dump.Dumper {
	return d.dumper
}

// Capabilities returns the dialect's capability table.
func (d *Driver) Capabilities() core.Capabilities {
	return d.dialect.Capabilities()
}

// SplitterOptions resolves the splitter configuration for a usage context.
// ContextStream always resolves to the no-split configuration: the caller
// passes text directly to an execution channel that handles multi-statement
// scripts itself.
func (d *Driver) SplitterOptions(ctx core.UsageContext) core.SplitterOptions {
	return d.dialect.SplitterOptions(ctx)
}

// ConnectionFields returns the connection-form fields relevant to this
// engine. Pass-through display metadata.
func (d *Driver) ConnectionFields() []string {
	return d.dialect.ConnectionFields()
}

// ShowsConnectionField reports whether the named connection-form field is
// relevant for this engine.
func (d *Driver) ShowsConnectionField(name string) bool {
	for _, f := range d.dialect.ConnectionFields() {
		if f == name {
			return true
		}
	}
	return false
}
