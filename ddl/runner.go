package ddl

import (
	"fmt"
	"io"
	"os"

	tabledef "github.com/sonohara/tabledef"
)

// RunConfig contains configuration for one rendering run
type RunConfig struct {
	Library     string           // defaults to the work library
	TableFilter string           // empty matches all tables in the library
	Dialect     tabledef.Dialect // defaults to native
	Destination io.Writer        // a temp file is allocated when nil
	EchoLog     io.Writer        // optional verbatim echo sink
}

// RunResult contains the result of a rendering run
type RunResult struct {
	Tables   int     // tables rendered
	Lines    int     // lines written, header included
	Output   string  // path of the allocated temp sink, empty otherwise
	Errors   []error // per-table failures the run continued past
	Warnings []error // malformed index metadata, rendered best-effort
}

// Operation represents a complete render operation over one catalog
type Operation struct {
	Config  RunConfig
	catalog Catalog
}

// NewOperation creates a render operation
func NewOperation(catalog Catalog, config RunConfig) *Operation {
	return &Operation{Config: config, catalog: catalog}
}

// Execute performs the complete render operation. The dialect is validated
// before any catalog access or output I/O. Tables are processed sequentially
// and independently: a failing table is reported in RunResult.Errors and the
// run continues, preserving output already written for earlier tables.
func (o *Operation) Execute() (*RunResult, error) {
	renderer, err := NewRenderer(o.Config.Dialect)
	if err != nil {
		return nil, err
	}

	collector := NewCollector(o.catalog)
	tables, err := collector.Tables(o.Config.Library, o.Config.TableFilter)
	if err != nil {
		return nil, err
	}
	schema, err := collector.ResolveSchema(o.Config.Library)
	if err != nil {
		return nil, err
	}

	result := &RunResult{}

	dest := o.Config.Destination
	if dest == nil {
		tmp, err := os.CreateTemp("", "tabledef-*.sql")
		if err != nil {
			return nil, fmt.Errorf("failed to allocate output sink: %w", err)
		}
		defer tmp.Close()
		dest = tmp
		result.Output = tmp.Name()
	}

	writer := NewWriter(dest)
	if o.Config.EchoLog != nil {
		writer.SetEchoSink(o.Config.EchoLog)
	}

	if err := writer.Append(renderer.Header()); err != nil {
		return nil, err
	}

	for _, table := range tables {
		meta, err := collector.CollectTable(table, schema)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		groups := GroupIndexes(meta.Indexes)
		result.Warnings = append(result.Warnings, ValidateIndexes(meta.Columns, groups)...)

		if err := writer.Append(renderer.RenderTable(meta, groups)); err != nil {
			result.Errors = append(result.Errors,
				fmt.Errorf("%s.%s: %w", table.Library, table.Name, err))
			continue
		}
		result.Tables++
	}

	result.Lines = writer.Lines()

	if err := writer.Echo(); err != nil {
		// the echo channel is observational; never fail the run for it
		result.Warnings = append(result.Warnings, err)
	}

	return result, nil
}

// Run is a convenience function that performs a complete render operation
func Run(catalog Catalog, config RunConfig) (*RunResult, error) {
	return NewOperation(catalog, config).Execute()
}
