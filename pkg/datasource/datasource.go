package datasource

import (
	"github.com/goliatone/go-kendo/pkg/options"
	"github.com/goliatone/go-kendo/pkg/script"
)

// Response types understood by kendo.data.DataSource.
const (
	TypeJSON = "json"
	TypeXML  = "xml"
)

// Client constructors, relative to the kendo namespace.
const (
	ConstructorDataSource          = "data.DataSource"
	ConstructorSchedulerDataSource = "data.SchedulerDataSource"
)

// SyncAction is the change action the client reports once a sync round trip
// completes.
const SyncAction = "sync"

// ReloadOnSync is the default change handler of a scheduler data source: it
// re-reads the data once a sync completes.
const ReloadOnSync = "function(e) { if (e.action === '" + SyncAction + "') { this.read(); } }"

// Option configures a data source before its defaults are applied.
type Option func(*config)

type config struct {
	kind    string
	options *options.Options
}

// WithType overrides the response type (TypeJSON by default).
func WithType(kind string) Option {
	return func(cfg *config) {
		if kind != "" {
			cfg.kind = kind
		}
	}
}

// WithOptions seeds the data source with a copy of opts. Defaults are applied
// on top, so an explicit "change" in opts is replaced; call Set afterwards to
// override a default.
func WithOptions(opts *options.Options) Option {
	return func(cfg *config) {
		if opts != nil {
			cfg.options = options.New().Merge(opts)
		}
	}
}

// DataSource accumulates the options of one client data source and renders
// the statement that constructs it into a page-level variable.
type DataSource struct {
	name        string
	constructor string
	options     *options.Options
	transport   *options.Options
}

// New creates a kendo.data.DataSource assigned to the variable name.
func New(name string, opts ...Option) *DataSource {
	return newDataSource(name, ConstructorDataSource, opts)
}

// NewScheduler creates a kendo.data.SchedulerDataSource that reloads itself
// after every sync.
func NewScheduler(name string, opts ...Option) *DataSource {
	ds := newDataSource(name, ConstructorSchedulerDataSource, opts)
	ds.Set("change", options.RawScript(ReloadOnSync))
	return ds
}

func newDataSource(name, constructor string, opts []Option) *DataSource {
	cfg := config{kind: TypeJSON}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.options == nil {
		cfg.options = options.New()
	}

	ds := &DataSource{
		name:        name,
		constructor: constructor,
		options:     cfg.options,
		transport:   options.New(),
	}
	ds.Set("type", cfg.kind)
	return ds
}

// Name returns the script variable the data source is assigned to.
func (d *DataSource) Name() string {
	return d.name
}

// Constructor returns the client constructor, relative to the kendo namespace.
func (d *DataSource) Constructor() string {
	return d.constructor
}

// Set stores an option; see options.Options.Set.
func (d *DataSource) Set(name string, value any) *DataSource {
	d.options.Set(name, value)
	return d
}

// Get returns an option value.
func (d *DataSource) Get(name string) (options.Value, bool) {
	return d.options.Get(name)
}

// Options returns a copy of the current options.
func (d *DataSource) Options() *options.Options {
	return d.options.Clone()
}

// SetTransportRead sets transport.read. A string is a URL; pass an
// options.Value or *options.Options for a function or a request object.
func (d *DataSource) SetTransportRead(value any) *DataSource {
	return d.setTransport("read", value)
}

// SetTransportCreate sets transport.create.
func (d *DataSource) SetTransportCreate(value any) *DataSource {
	return d.setTransport("create", value)
}

// SetTransportUpdate sets transport.update.
func (d *DataSource) SetTransportUpdate(value any) *DataSource {
	return d.setTransport("update", value)
}

// SetTransportDestroy sets transport.destroy.
func (d *DataSource) SetTransportDestroy(value any) *DataSource {
	return d.setTransport("destroy", value)
}

func (d *DataSource) setTransport(operation string, value any) *DataSource {
	d.transport.Set(operation, value)
	d.options.Set("transport", d.transport)
	return d
}

// SetSchema sets the schema option (model definition, data/total paths).
func (d *DataSource) SetSchema(schema *options.Options) *DataSource {
	return d.Set("schema", schema)
}

// Script renders the construction statement:
//
//	jQuery(function() { <name> = new kendo.<ctor>(<options>); });
func (d *DataSource) Script() (string, error) {
	return script.Construct(d.name, d.constructor, d.options)
}
