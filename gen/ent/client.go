// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Comparison is the client for interacting with the Comparison builders.
	Comparison *ComparisonClient
	// QuoteFile is the client for interacting with the QuoteFile builders.
	QuoteFile *QuoteFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Comparison = NewComparisonClient(c.config)
	c.QuoteFile = NewQuoteFileClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		Comparison: NewComparisonClient(cfg),
		QuoteFile:  NewQuoteFileClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		Comparison: NewComparisonClient(cfg),
		QuoteFile:  NewQuoteFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Comparison.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Comparison.Use(hooks...)
	c.QuoteFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Comparison.Intercept(interceptors...)
	c.QuoteFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ComparisonMutation:
		return c.Comparison.mutate(ctx, m)
	case *QuoteFileMutation:
		return c.QuoteFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ComparisonClient is a client for the Comparison schema.
type ComparisonClient struct {
	config
}

// NewComparisonClient returns a client for the Comparison from the given config.
func NewComparisonClient(c config) *ComparisonClient {
	return &ComparisonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `comparison.Hooks(f(g(h())))`.
func (c *ComparisonClient) Use(hooks ...Hook) {
	c.hooks.Comparison = append(c.hooks.Comparison, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `comparison.Intercept(f(g(h())))`.
func (c *ComparisonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Comparison = append(c.inters.Comparison, interceptors...)
}

// Create returns a builder for creating a Comparison entity.
func (c *ComparisonClient) Create() *ComparisonCreate {
	mutation := newComparisonMutation(c.config, OpCreate)
	return &ComparisonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Comparison entities.
func (c *ComparisonClient) CreateBulk(builders ...*ComparisonCreate) *ComparisonCreateBulk {
	return &ComparisonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComparisonClient) MapCreateBulk(slice any, setFunc func(*ComparisonCreate, int)) *ComparisonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComparisonCreateBulk{err: fmt.Errorf("calling to ComparisonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComparisonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComparisonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Comparison.
func (c *ComparisonClient) Update() *ComparisonUpdate {
	mutation := newComparisonMutation(c.config, OpUpdate)
	return &ComparisonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComparisonClient) UpdateOne(_m *Comparison) *ComparisonUpdateOne {
	mutation := newComparisonMutation(c.config, OpUpdateOne, withComparison(_m))
	return &ComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComparisonClient) UpdateOneID(id uuid.UUID) *ComparisonUpdateOne {
	mutation := newComparisonMutation(c.config, OpUpdateOne, withComparisonID(id))
	return &ComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Comparison.
func (c *ComparisonClient) Delete() *ComparisonDelete {
	mutation := newComparisonMutation(c.config, OpDelete)
	return &ComparisonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComparisonClient) DeleteOne(_m *Comparison) *ComparisonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComparisonClient) DeleteOneID(id uuid.UUID) *ComparisonDeleteOne {
	builder := c.Delete().Where(comparison.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComparisonDeleteOne{builder}
}

// Query returns a query builder for Comparison.
func (c *ComparisonClient) Query() *ComparisonQuery {
	return &ComparisonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComparison},
		inters: c.Interceptors(),
	}
}

// Get returns a Comparison entity by its id.
func (c *ComparisonClient) Get(ctx context.Context, id uuid.UUID) (*Comparison, error) {
	return c.Query().Where(comparison.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComparisonClient) GetX(ctx context.Context, id uuid.UUID) *Comparison {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiles queries the files edge of a Comparison.
func (c *ComparisonClient) QueryFiles(_m *Comparison) *QuoteFileQuery {
	query := (&QuoteFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(comparison.Table, comparison.FieldID, id),
			sqlgraph.To(quotefile.Table, quotefile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, comparison.FilesTable, comparison.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ComparisonClient) Hooks() []Hook {
	return c.hooks.Comparison
}

// Interceptors returns the client interceptors.
func (c *ComparisonClient) Interceptors() []Interceptor {
	return c.inters.Comparison
}

func (c *ComparisonClient) mutate(ctx context.Context, m *ComparisonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComparisonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComparisonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComparisonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Comparison mutation op: %q", m.Op())
	}
}

// QuoteFileClient is a client for the QuoteFile schema.
type QuoteFileClient struct {
	config
}

// NewQuoteFileClient returns a client for the QuoteFile from the given config.
func NewQuoteFileClient(c config) *QuoteFileClient {
	return &QuoteFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quotefile.Hooks(f(g(h())))`.
func (c *QuoteFileClient) Use(hooks ...Hook) {
	c.hooks.QuoteFile = append(c.hooks.QuoteFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quotefile.Intercept(f(g(h())))`.
func (c *QuoteFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuoteFile = append(c.inters.QuoteFile, interceptors...)
}

// Create returns a builder for creating a QuoteFile entity.
func (c *QuoteFileClient) Create() *QuoteFileCreate {
	mutation := newQuoteFileMutation(c.config, OpCreate)
	return &QuoteFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuoteFile entities.
func (c *QuoteFileClient) CreateBulk(builders ...*QuoteFileCreate) *QuoteFileCreateBulk {
	return &QuoteFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuoteFileClient) MapCreateBulk(slice any, setFunc func(*QuoteFileCreate, int)) *QuoteFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuoteFileCreateBulk{err: fmt.Errorf("calling to QuoteFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuoteFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuoteFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuoteFile.
func (c *QuoteFileClient) Update() *QuoteFileUpdate {
	mutation := newQuoteFileMutation(c.config, OpUpdate)
	return &QuoteFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuoteFileClient) UpdateOne(_m *QuoteFile) *QuoteFileUpdateOne {
	mutation := newQuoteFileMutation(c.config, OpUpdateOne, withQuoteFile(_m))
	return &QuoteFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuoteFileClient) UpdateOneID(id uuid.UUID) *QuoteFileUpdateOne {
	mutation := newQuoteFileMutation(c.config, OpUpdateOne, withQuoteFileID(id))
	return &QuoteFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuoteFile.
func (c *QuoteFileClient) Delete() *QuoteFileDelete {
	mutation := newQuoteFileMutation(c.config, OpDelete)
	return &QuoteFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuoteFileClient) DeleteOne(_m *QuoteFile) *QuoteFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuoteFileClient) DeleteOneID(id uuid.UUID) *QuoteFileDeleteOne {
	builder := c.Delete().Where(quotefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuoteFileDeleteOne{builder}
}

// Query returns a query builder for QuoteFile.
func (c *QuoteFileClient) Query() *QuoteFileQuery {
	return &QuoteFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuoteFile},
		inters: c.Interceptors(),
	}
}

// Get returns a QuoteFile entity by its id.
func (c *QuoteFileClient) Get(ctx context.Context, id uuid.UUID) (*QuoteFile, error) {
	return c.Query().Where(quotefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuoteFileClient) GetX(ctx context.Context, id uuid.UUID) *QuoteFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryComparison queries the comparison edge of a QuoteFile.
func (c *QuoteFileClient) QueryComparison(_m *QuoteFile) *ComparisonQuery {
	query := (&ComparisonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quotefile.Table, quotefile.FieldID, id),
			sqlgraph.To(comparison.Table, comparison.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quotefile.ComparisonTable, quotefile.ComparisonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuoteFileClient) Hooks() []Hook {
	return c.hooks.QuoteFile
}

// Interceptors returns the client interceptors.
func (c *QuoteFileClient) Interceptors() []Interceptor {
	return c.inters.QuoteFile
}

func (c *QuoteFileClient) mutate(ctx context.Context, m *QuoteFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuoteFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuoteFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuoteFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuoteFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuoteFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Comparison, QuoteFile []ent.Hook
	}
	inters struct {
		Comparison, QuoteFile []ent.Interceptor
	}
)
