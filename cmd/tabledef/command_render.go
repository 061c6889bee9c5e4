package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	tabledef "github.com/sonohara/tabledef"
	"github.com/sonohara/tabledef/ddl"
)

// RenderCmd represents the render command
type RenderCmd struct {
	// Catalog source options
	Catalog string `help:"YAML catalog file to render from" type:"path"`
	DB      string `help:"Database connection string"`
	Env     string `help:"Environment name from configuration"`

	// Selection options
	Library string `help:"Library to render (defaults to configuration, then 'work')"`
	Table   string `help:"Table name filter, '*' wildcards allowed (default: all tables)"`

	// Output options
	Dialect string `help:"Output dialect (native, tsql)"`
	Output  string `short:"o" help:"Output file path ('-' for stdout; a temp file is allocated when unset)"`
	Echo    bool   `help:"Echo written output to stderr after the run"`
}

func (cmd *RenderCmd) Run(ctx *Context) error {
	config, err := tabledef.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dialectName := cmd.Dialect
	if dialectName == "" {
		dialectName = config.Dialect
	}
	// fail fast, before any catalog access
	dialect, err := tabledef.ParseDialect(dialectName)
	if err != nil {
		return err
	}

	catalog, cleanup, err := cmd.resolveCatalog(config)
	if err != nil {
		return err
	}
	defer cleanup()
	catalog = ddl.WithOverrides(catalog, config.SchemaOverrides)

	dest, destCleanup, err := cmd.resolveDestination(config)
	if err != nil {
		return err
	}
	defer destCleanup()

	runConfig := ddl.RunConfig{
		Library:     config.LibraryOrDefault(cmd.Library),
		TableFilter: cmd.Table,
		Dialect:     dialect,
		Destination: dest,
	}
	if cmd.Echo || config.EchoLog {
		runConfig.EchoLog = os.Stderr
	}

	if ctx.Verbose {
		color.Blue("Library: %s", runConfig.Library)
		if runConfig.TableFilter != "" {
			color.Blue("Table filter: %s", runConfig.TableFilter)
		}
		color.Blue("Dialect: %s", dialect)
	}

	result, err := ddl.Run(catalog, runConfig)
	if err != nil {
		return fmt.Errorf("failed to render DDL: %w", err)
	}

	if !ctx.Quiet {
		cmd.displayResults(result)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("%d of %d tables failed", len(result.Errors), result.Tables+len(result.Errors))
	}

	return nil
}

// resolveCatalog picks the metadata source: an explicit YAML catalog file, a
// database URL, or a configured database environment, in that order.
func (cmd *RenderCmd) resolveCatalog(config *tabledef.Config) (ddl.Catalog, func(), error) {
	noop := func() {}

	if cmd.Catalog != "" {
		catalog, err := ddl.LoadCatalogFile(cmd.Catalog)
		if err != nil {
			return nil, noop, err
		}
		return catalog, noop, nil
	}

	databaseURL := cmd.DB
	if databaseURL == "" && cmd.Env != "" {
		if config.Databases == nil {
			return nil, noop, ErrNoDatabasesConfigured
		}
		envConfig, exists := config.Databases[cmd.Env]
		if !exists {
			return nil, noop, fmt.Errorf("%w: %q", ErrEnvironmentNotFound, cmd.Env)
		}
		databaseURL = envConfig.Connection
	}
	if databaseURL == "" {
		return nil, noop, ErrMissingCatalogSource
	}

	catalog, db, err := ddl.OpenCatalog(databaseURL)
	if err != nil {
		return nil, noop, err
	}
	return catalog, closeQuietly(db), nil
}

func (cmd *RenderCmd) resolveDestination(config *tabledef.Config) (io.Writer, func(), error) {
	noop := func() {}

	path := cmd.Output
	if path == "" {
		path = config.Output
	}
	switch path {
	case "":
		return nil, noop, nil // runner allocates a temp sink
	case "-":
		return os.Stdout, noop, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create output file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
}

// displayResults shows the outcome of the render operation
func (cmd *RenderCmd) displayResults(result *ddl.RunResult) {
	color.Green("✓ DDL rendering completed")
	color.Green("  Tables: %d", result.Tables)
	color.Green("  Lines: %d", result.Lines)
	if result.Output != "" {
		color.Green("  Output: %s", result.Output)
	}
	for _, warning := range result.Warnings {
		color.Yellow("  warning: %v", warning)
	}
	for _, err := range result.Errors {
		color.Red("  error: %v", err)
	}
}

func closeQuietly(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
