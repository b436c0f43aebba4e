// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/klartext-health/befund/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/documentclass"
	"github.com/klartext-health/befund/ent/featureflag"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/modelconfig"
	"github.com/klartext-health/befund/ent/ocrconfiguration"
	"github.com/klartext-health/befund/ent/pipelinestep"
	"github.com/klartext-health/befund/ent/stepexecution"
	"github.com/klartext-health/befund/ent/systemsetting"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AIInteractionLog is the client for interacting with the AIInteractionLog builders.
	AIInteractionLog *AIInteractionLogClient
	// DocumentClass is the client for interacting with the DocumentClass builders.
	DocumentClass *DocumentClassClient
	// FeatureFlag is the client for interacting with the FeatureFlag builders.
	FeatureFlag *FeatureFlagClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// ModelConfig is the client for interacting with the ModelConfig builders.
	ModelConfig *ModelConfigClient
	// OCRConfiguration is the client for interacting with the OCRConfiguration builders.
	OCRConfiguration *OCRConfigurationClient
	// PipelineStep is the client for interacting with the PipelineStep builders.
	PipelineStep *PipelineStepClient
	// StepExecution is the client for interacting with the StepExecution builders.
	StepExecution *StepExecutionClient
	// SystemSetting is the client for interacting with the SystemSetting builders.
	SystemSetting *SystemSettingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AIInteractionLog = NewAIInteractionLogClient(c.config)
	c.DocumentClass = NewDocumentClassClient(c.config)
	c.FeatureFlag = NewFeatureFlagClient(c.config)
	c.Job = NewJobClient(c.config)
	c.ModelConfig = NewModelConfigClient(c.config)
	c.OCRConfiguration = NewOCRConfigurationClient(c.config)
	c.PipelineStep = NewPipelineStepClient(c.config)
	c.StepExecution = NewStepExecutionClient(c.config)
	c.SystemSetting = NewSystemSettingClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AIInteractionLog: NewAIInteractionLogClient(cfg),
		DocumentClass:    NewDocumentClassClient(cfg),
		FeatureFlag:      NewFeatureFlagClient(cfg),
		Job:              NewJobClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		OCRConfiguration: NewOCRConfigurationClient(cfg),
		PipelineStep:     NewPipelineStepClient(cfg),
		StepExecution:    NewStepExecutionClient(cfg),
		SystemSetting:    NewSystemSettingClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AIInteractionLog: NewAIInteractionLogClient(cfg),
		DocumentClass:    NewDocumentClassClient(cfg),
		FeatureFlag:      NewFeatureFlagClient(cfg),
		Job:              NewJobClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		OCRConfiguration: NewOCRConfigurationClient(cfg),
		PipelineStep:     NewPipelineStepClient(cfg),
		StepExecution:    NewStepExecutionClient(cfg),
		SystemSetting:    NewSystemSettingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AIInteractionLog.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AIInteractionLog, c.DocumentClass, c.FeatureFlag, c.Job, c.ModelConfig,
		c.OCRConfiguration, c.PipelineStep, c.StepExecution, c.SystemSetting,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AIInteractionLog, c.DocumentClass, c.FeatureFlag, c.Job, c.ModelConfig,
		c.OCRConfiguration, c.PipelineStep, c.StepExecution, c.SystemSetting,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AIInteractionLogMutation:
		return c.AIInteractionLog.mutate(ctx, m)
	case *DocumentClassMutation:
		return c.DocumentClass.mutate(ctx, m)
	case *FeatureFlagMutation:
		return c.FeatureFlag.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *ModelConfigMutation:
		return c.ModelConfig.mutate(ctx, m)
	case *OCRConfigurationMutation:
		return c.OCRConfiguration.mutate(ctx, m)
	case *PipelineStepMutation:
		return c.PipelineStep.mutate(ctx, m)
	case *StepExecutionMutation:
		return c.StepExecution.mutate(ctx, m)
	case *SystemSettingMutation:
		return c.SystemSetting.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AIInteractionLogClient is a client for the AIInteractionLog schema.
type AIInteractionLogClient struct {
	config
}

// NewAIInteractionLogClient returns a client for the AIInteractionLog from the given config.
func NewAIInteractionLogClient(c config) *AIInteractionLogClient {
	return &AIInteractionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `aiinteractionlog.Hooks(f(g(h())))`.
func (c *AIInteractionLogClient) Use(hooks ...Hook) {
	c.hooks.AIInteractionLog = append(c.hooks.AIInteractionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `aiinteractionlog.Intercept(f(g(h())))`.
func (c *AIInteractionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AIInteractionLog = append(c.inters.AIInteractionLog, interceptors...)
}

// Create returns a builder for creating a AIInteractionLog entity.
func (c *AIInteractionLogClient) Create() *AIInteractionLogCreate {
	mutation := newAIInteractionLogMutation(c.config, OpCreate)
	return &AIInteractionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AIInteractionLog entities.
func (c *AIInteractionLogClient) CreateBulk(builders ...*AIInteractionLogCreate) *AIInteractionLogCreateBulk {
	return &AIInteractionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AIInteractionLogClient) MapCreateBulk(slice any, setFunc func(*AIInteractionLogCreate, int)) *AIInteractionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AIInteractionLogCreateBulk{err: fmt.Errorf("calling to AIInteractionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AIInteractionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AIInteractionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AIInteractionLog.
func (c *AIInteractionLogClient) Update() *AIInteractionLogUpdate {
	mutation := newAIInteractionLogMutation(c.config, OpUpdate)
	return &AIInteractionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AIInteractionLogClient) UpdateOne(_m *AIInteractionLog) *AIInteractionLogUpdateOne {
	mutation := newAIInteractionLogMutation(c.config, OpUpdateOne, withAIInteractionLog(_m))
	return &AIInteractionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AIInteractionLogClient) UpdateOneID(id int) *AIInteractionLogUpdateOne {
	mutation := newAIInteractionLogMutation(c.config, OpUpdateOne, withAIInteractionLogID(id))
	return &AIInteractionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AIInteractionLog.
func (c *AIInteractionLogClient) Delete() *AIInteractionLogDelete {
	mutation := newAIInteractionLogMutation(c.config, OpDelete)
	return &AIInteractionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AIInteractionLogClient) DeleteOne(_m *AIInteractionLog) *AIInteractionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AIInteractionLogClient) DeleteOneID(id int) *AIInteractionLogDeleteOne {
	builder := c.Delete().Where(aiinteractionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AIInteractionLogDeleteOne{builder}
}

// Query returns a query builder for AIInteractionLog.
func (c *AIInteractionLogClient) Query() *AIInteractionLogQuery {
	return &AIInteractionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAIInteractionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AIInteractionLog entity by its id.
func (c *AIInteractionLogClient) Get(ctx context.Context, id int) (*AIInteractionLog, error) {
	return c.Query().Where(aiinteractionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AIInteractionLogClient) GetX(ctx context.Context, id int) *AIInteractionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a AIInteractionLog.
func (c *AIInteractionLogClient) QueryJob(_m *AIInteractionLog) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(aiinteractionlog.Table, aiinteractionlog.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, aiinteractionlog.JobTable, aiinteractionlog.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepExecution queries the step_execution edge of a AIInteractionLog.
func (c *AIInteractionLogClient) QueryStepExecution(_m *AIInteractionLog) *StepExecutionQuery {
	query := (&StepExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(aiinteractionlog.Table, aiinteractionlog.FieldID, id),
			sqlgraph.To(stepexecution.Table, stepexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, aiinteractionlog.StepExecutionTable, aiinteractionlog.StepExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AIInteractionLogClient) Hooks() []Hook {
	return c.hooks.AIInteractionLog
}

// Interceptors returns the client interceptors.
func (c *AIInteractionLogClient) Interceptors() []Interceptor {
	return c.inters.AIInteractionLog
}

func (c *AIInteractionLogClient) mutate(ctx context.Context, m *AIInteractionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AIInteractionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AIInteractionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AIInteractionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AIInteractionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AIInteractionLog mutation op: %q", m.Op())
	}
}

// DocumentClassClient is a client for the DocumentClass schema.
type DocumentClassClient struct {
	config
}

// NewDocumentClassClient returns a client for the DocumentClass from the given config.
func NewDocumentClassClient(c config) *DocumentClassClient {
	return &DocumentClassClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentclass.Hooks(f(g(h())))`.
func (c *DocumentClassClient) Use(hooks ...Hook) {
	c.hooks.DocumentClass = append(c.hooks.DocumentClass, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentclass.Intercept(f(g(h())))`.
func (c *DocumentClassClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentClass = append(c.inters.DocumentClass, interceptors...)
}

// Create returns a builder for creating a DocumentClass entity.
func (c *DocumentClassClient) Create() *DocumentClassCreate {
	mutation := newDocumentClassMutation(c.config, OpCreate)
	return &DocumentClassCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentClass entities.
func (c *DocumentClassClient) CreateBulk(builders ...*DocumentClassCreate) *DocumentClassCreateBulk {
	return &DocumentClassCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClassClient) MapCreateBulk(slice any, setFunc func(*DocumentClassCreate, int)) *DocumentClassCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentClassCreateBulk{err: fmt.Errorf("calling to DocumentClassClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentClassCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentClassCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentClass.
func (c *DocumentClassClient) Update() *DocumentClassUpdate {
	mutation := newDocumentClassMutation(c.config, OpUpdate)
	return &DocumentClassUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClassClient) UpdateOne(_m *DocumentClass) *DocumentClassUpdateOne {
	mutation := newDocumentClassMutation(c.config, OpUpdateOne, withDocumentClass(_m))
	return &DocumentClassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClassClient) UpdateOneID(id int) *DocumentClassUpdateOne {
	mutation := newDocumentClassMutation(c.config, OpUpdateOne, withDocumentClassID(id))
	return &DocumentClassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentClass.
func (c *DocumentClassClient) Delete() *DocumentClassDelete {
	mutation := newDocumentClassMutation(c.config, OpDelete)
	return &DocumentClassDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClassClient) DeleteOne(_m *DocumentClass) *DocumentClassDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClassClient) DeleteOneID(id int) *DocumentClassDeleteOne {
	builder := c.Delete().Where(documentclass.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentClassDeleteOne{builder}
}

// Query returns a query builder for DocumentClass.
func (c *DocumentClassClient) Query() *DocumentClassQuery {
	return &DocumentClassQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentClass},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentClass entity by its id.
func (c *DocumentClassClient) Get(ctx context.Context, id int) (*DocumentClass, error) {
	return c.Query().Where(documentclass.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClassClient) GetX(ctx context.Context, id int) *DocumentClass {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a DocumentClass.
func (c *DocumentClassClient) QuerySteps(_m *DocumentClass) *PipelineStepQuery {
	query := (&PipelineStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentclass.Table, documentclass.FieldID, id),
			sqlgraph.To(pipelinestep.Table, pipelinestep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentclass.StepsTable, documentclass.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClassClient) Hooks() []Hook {
	return c.hooks.DocumentClass
}

// Interceptors returns the client interceptors.
func (c *DocumentClassClient) Interceptors() []Interceptor {
	return c.inters.DocumentClass
}

func (c *DocumentClassClient) mutate(ctx context.Context, m *DocumentClassMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentClassCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentClassUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentClassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentClassDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentClass mutation op: %q", m.Op())
	}
}

// FeatureFlagClient is a client for the FeatureFlag schema.
type FeatureFlagClient struct {
	config
}

// NewFeatureFlagClient returns a client for the FeatureFlag from the given config.
func NewFeatureFlagClient(c config) *FeatureFlagClient {
	return &FeatureFlagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `featureflag.Hooks(f(g(h())))`.
func (c *FeatureFlagClient) Use(hooks ...Hook) {
	c.hooks.FeatureFlag = append(c.hooks.FeatureFlag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `featureflag.Intercept(f(g(h())))`.
func (c *FeatureFlagClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeatureFlag = append(c.inters.FeatureFlag, interceptors...)
}

// Create returns a builder for creating a FeatureFlag entity.
func (c *FeatureFlagClient) Create() *FeatureFlagCreate {
	mutation := newFeatureFlagMutation(c.config, OpCreate)
	return &FeatureFlagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeatureFlag entities.
func (c *FeatureFlagClient) CreateBulk(builders ...*FeatureFlagCreate) *FeatureFlagCreateBulk {
	return &FeatureFlagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeatureFlagClient) MapCreateBulk(slice any, setFunc func(*FeatureFlagCreate, int)) *FeatureFlagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeatureFlagCreateBulk{err: fmt.Errorf("calling to FeatureFlagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeatureFlagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeatureFlagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeatureFlag.
func (c *FeatureFlagClient) Update() *FeatureFlagUpdate {
	mutation := newFeatureFlagMutation(c.config, OpUpdate)
	return &FeatureFlagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeatureFlagClient) UpdateOne(_m *FeatureFlag) *FeatureFlagUpdateOne {
	mutation := newFeatureFlagMutation(c.config, OpUpdateOne, withFeatureFlag(_m))
	return &FeatureFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeatureFlagClient) UpdateOneID(id int) *FeatureFlagUpdateOne {
	mutation := newFeatureFlagMutation(c.config, OpUpdateOne, withFeatureFlagID(id))
	return &FeatureFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeatureFlag.
func (c *FeatureFlagClient) Delete() *FeatureFlagDelete {
	mutation := newFeatureFlagMutation(c.config, OpDelete)
	return &FeatureFlagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeatureFlagClient) DeleteOne(_m *FeatureFlag) *FeatureFlagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeatureFlagClient) DeleteOneID(id int) *FeatureFlagDeleteOne {
	builder := c.Delete().Where(featureflag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeatureFlagDeleteOne{builder}
}

// Query returns a query builder for FeatureFlag.
func (c *FeatureFlagClient) Query() *FeatureFlagQuery {
	return &FeatureFlagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeatureFlag},
		inters: c.Interceptors(),
	}
}

// Get returns a FeatureFlag entity by its id.
func (c *FeatureFlagClient) Get(ctx context.Context, id int) (*FeatureFlag, error) {
	return c.Query().Where(featureflag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeatureFlagClient) GetX(ctx context.Context, id int) *FeatureFlag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeatureFlagClient) Hooks() []Hook {
	return c.hooks.FeatureFlag
}

// Interceptors returns the client interceptors.
func (c *FeatureFlagClient) Interceptors() []Interceptor {
	return c.inters.FeatureFlag
}

func (c *FeatureFlagClient) mutate(ctx context.Context, m *FeatureFlagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeatureFlagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeatureFlagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeatureFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeatureFlagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeatureFlag mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStepExecutions queries the step_executions edge of a Job.
func (c *JobClient) QueryStepExecutions(_m *Job) *StepExecutionQuery {
	query := (&StepExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(stepexecution.Table, stepexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.StepExecutionsTable, job.StepExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAiInteractions queries the ai_interactions edge of a Job.
func (c *JobClient) QueryAiInteractions(_m *Job) *AIInteractionLogQuery {
	query := (&AIInteractionLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(aiinteractionlog.Table, aiinteractionlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.AiInteractionsTable, job.AiInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// ModelConfigClient is a client for the ModelConfig schema.
type ModelConfigClient struct {
	config
}

// NewModelConfigClient returns a client for the ModelConfig from the given config.
func NewModelConfigClient(c config) *ModelConfigClient {
	return &ModelConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfig.Hooks(f(g(h())))`.
func (c *ModelConfigClient) Use(hooks ...Hook) {
	c.hooks.ModelConfig = append(c.hooks.ModelConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfig.Intercept(f(g(h())))`.
func (c *ModelConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfig = append(c.inters.ModelConfig, interceptors...)
}

// Create returns a builder for creating a ModelConfig entity.
func (c *ModelConfigClient) Create() *ModelConfigCreate {
	mutation := newModelConfigMutation(c.config, OpCreate)
	return &ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfig entities.
func (c *ModelConfigClient) CreateBulk(builders ...*ModelConfigCreate) *ModelConfigCreateBulk {
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigClient) MapCreateBulk(slice any, setFunc func(*ModelConfigCreate, int)) *ModelConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigCreateBulk{err: fmt.Errorf("calling to ModelConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfig.
func (c *ModelConfigClient) Update() *ModelConfigUpdate {
	mutation := newModelConfigMutation(c.config, OpUpdate)
	return &ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigClient) UpdateOne(_m *ModelConfig) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfig(_m))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigClient) UpdateOneID(id int) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfigID(id))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfig.
func (c *ModelConfigClient) Delete() *ModelConfigDelete {
	mutation := newModelConfigMutation(c.config, OpDelete)
	return &ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigClient) DeleteOne(_m *ModelConfig) *ModelConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigClient) DeleteOneID(id int) *ModelConfigDeleteOne {
	builder := c.Delete().Where(modelconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigDeleteOne{builder}
}

// Query returns a query builder for ModelConfig.
func (c *ModelConfigClient) Query() *ModelConfigQuery {
	return &ModelConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfig entity by its id.
func (c *ModelConfigClient) Get(ctx context.Context, id int) (*ModelConfig, error) {
	return c.Query().Where(modelconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigClient) GetX(ctx context.Context, id int) *ModelConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelConfigClient) Hooks() []Hook {
	return c.hooks.ModelConfig
}

// Interceptors returns the client interceptors.
func (c *ModelConfigClient) Interceptors() []Interceptor {
	return c.inters.ModelConfig
}

func (c *ModelConfigClient) mutate(ctx context.Context, m *ModelConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfig mutation op: %q", m.Op())
	}
}

// OCRConfigurationClient is a client for the OCRConfiguration schema.
type OCRConfigurationClient struct {
	config
}

// NewOCRConfigurationClient returns a client for the OCRConfiguration from the given config.
func NewOCRConfigurationClient(c config) *OCRConfigurationClient {
	return &OCRConfigurationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ocrconfiguration.Hooks(f(g(h())))`.
func (c *OCRConfigurationClient) Use(hooks ...Hook) {
	c.hooks.OCRConfiguration = append(c.hooks.OCRConfiguration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ocrconfiguration.Intercept(f(g(h())))`.
func (c *OCRConfigurationClient) Intercept(interceptors ...Interceptor) {
	c.inters.OCRConfiguration = append(c.inters.OCRConfiguration, interceptors...)
}

// Create returns a builder for creating a OCRConfiguration entity.
func (c *OCRConfigurationClient) Create() *OCRConfigurationCreate {
	mutation := newOCRConfigurationMutation(c.config, OpCreate)
	return &OCRConfigurationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OCRConfiguration entities.
func (c *OCRConfigurationClient) CreateBulk(builders ...*OCRConfigurationCreate) *OCRConfigurationCreateBulk {
	return &OCRConfigurationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OCRConfigurationClient) MapCreateBulk(slice any, setFunc func(*OCRConfigurationCreate, int)) *OCRConfigurationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OCRConfigurationCreateBulk{err: fmt.Errorf("calling to OCRConfigurationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OCRConfigurationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OCRConfigurationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OCRConfiguration.
func (c *OCRConfigurationClient) Update() *OCRConfigurationUpdate {
	mutation := newOCRConfigurationMutation(c.config, OpUpdate)
	return &OCRConfigurationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OCRConfigurationClient) UpdateOne(_m *OCRConfiguration) *OCRConfigurationUpdateOne {
	mutation := newOCRConfigurationMutation(c.config, OpUpdateOne, withOCRConfiguration(_m))
	return &OCRConfigurationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OCRConfigurationClient) UpdateOneID(id int) *OCRConfigurationUpdateOne {
	mutation := newOCRConfigurationMutation(c.config, OpUpdateOne, withOCRConfigurationID(id))
	return &OCRConfigurationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OCRConfiguration.
func (c *OCRConfigurationClient) Delete() *OCRConfigurationDelete {
	mutation := newOCRConfigurationMutation(c.config, OpDelete)
	return &OCRConfigurationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OCRConfigurationClient) DeleteOne(_m *OCRConfiguration) *OCRConfigurationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OCRConfigurationClient) DeleteOneID(id int) *OCRConfigurationDeleteOne {
	builder := c.Delete().Where(ocrconfiguration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OCRConfigurationDeleteOne{builder}
}

// Query returns a query builder for OCRConfiguration.
func (c *OCRConfigurationClient) Query() *OCRConfigurationQuery {
	return &OCRConfigurationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOCRConfiguration},
		inters: c.Interceptors(),
	}
}

// Get returns a OCRConfiguration entity by its id.
func (c *OCRConfigurationClient) Get(ctx context.Context, id int) (*OCRConfiguration, error) {
	return c.Query().Where(ocrconfiguration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OCRConfigurationClient) GetX(ctx context.Context, id int) *OCRConfiguration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OCRConfigurationClient) Hooks() []Hook {
	return c.hooks.OCRConfiguration
}

// Interceptors returns the client interceptors.
func (c *OCRConfigurationClient) Interceptors() []Interceptor {
	return c.inters.OCRConfiguration
}

func (c *OCRConfigurationClient) mutate(ctx context.Context, m *OCRConfigurationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OCRConfigurationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OCRConfigurationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OCRConfigurationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OCRConfigurationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OCRConfiguration mutation op: %q", m.Op())
	}
}

// PipelineStepClient is a client for the PipelineStep schema.
type PipelineStepClient struct {
	config
}

// NewPipelineStepClient returns a client for the PipelineStep from the given config.
func NewPipelineStepClient(c config) *PipelineStepClient {
	return &PipelineStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestep.Hooks(f(g(h())))`.
func (c *PipelineStepClient) Use(hooks ...Hook) {
	c.hooks.PipelineStep = append(c.hooks.PipelineStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestep.Intercept(f(g(h())))`.
func (c *PipelineStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineStep = append(c.inters.PipelineStep, interceptors...)
}

// Create returns a builder for creating a PipelineStep entity.
func (c *PipelineStepClient) Create() *PipelineStepCreate {
	mutation := newPipelineStepMutation(c.config, OpCreate)
	return &PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineStep entities.
func (c *PipelineStepClient) CreateBulk(builders ...*PipelineStepCreate) *PipelineStepCreateBulk {
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStepClient) MapCreateBulk(slice any, setFunc func(*PipelineStepCreate, int)) *PipelineStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStepCreateBulk{err: fmt.Errorf("calling to PipelineStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineStep.
func (c *PipelineStepClient) Update() *PipelineStepUpdate {
	mutation := newPipelineStepMutation(c.config, OpUpdate)
	return &PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStepClient) UpdateOne(_m *PipelineStep) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStep(_m))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStepClient) UpdateOneID(id int) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStepID(id))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineStep.
func (c *PipelineStepClient) Delete() *PipelineStepDelete {
	mutation := newPipelineStepMutation(c.config, OpDelete)
	return &PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStepClient) DeleteOne(_m *PipelineStep) *PipelineStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStepClient) DeleteOneID(id int) *PipelineStepDeleteOne {
	builder := c.Delete().Where(pipelinestep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStepDeleteOne{builder}
}

// Query returns a query builder for PipelineStep.
func (c *PipelineStepClient) Query() *PipelineStepQuery {
	return &PipelineStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineStep},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineStep entity by its id.
func (c *PipelineStepClient) Get(ctx context.Context, id int) (*PipelineStep, error) {
	return c.Query().Where(pipelinestep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStepClient) GetX(ctx context.Context, id int) *PipelineStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumentClass queries the document_class edge of a PipelineStep.
func (c *PipelineStepClient) QueryDocumentClass(_m *PipelineStep) *DocumentClassQuery {
	query := (&DocumentClassClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinestep.Table, pipelinestep.FieldID, id),
			sqlgraph.To(documentclass.Table, documentclass.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinestep.DocumentClassTable, pipelinestep.DocumentClassColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineStepClient) Hooks() []Hook {
	return c.hooks.PipelineStep
}

// Interceptors returns the client interceptors.
func (c *PipelineStepClient) Interceptors() []Interceptor {
	return c.inters.PipelineStep
}

func (c *PipelineStepClient) mutate(ctx context.Context, m *PipelineStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineStep mutation op: %q", m.Op())
	}
}

// StepExecutionClient is a client for the StepExecution schema.
type StepExecutionClient struct {
	config
}

// NewStepExecutionClient returns a client for the StepExecution from the given config.
func NewStepExecutionClient(c config) *StepExecutionClient {
	return &StepExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepexecution.Hooks(f(g(h())))`.
func (c *StepExecutionClient) Use(hooks ...Hook) {
	c.hooks.StepExecution = append(c.hooks.StepExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepexecution.Intercept(f(g(h())))`.
func (c *StepExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepExecution = append(c.inters.StepExecution, interceptors...)
}

// Create returns a builder for creating a StepExecution entity.
func (c *StepExecutionClient) Create() *StepExecutionCreate {
	mutation := newStepExecutionMutation(c.config, OpCreate)
	return &StepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepExecution entities.
func (c *StepExecutionClient) CreateBulk(builders ...*StepExecutionCreate) *StepExecutionCreateBulk {
	return &StepExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepExecutionClient) MapCreateBulk(slice any, setFunc func(*StepExecutionCreate, int)) *StepExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepExecutionCreateBulk{err: fmt.Errorf("calling to StepExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepExecution.
func (c *StepExecutionClient) Update() *StepExecutionUpdate {
	mutation := newStepExecutionMutation(c.config, OpUpdate)
	return &StepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepExecutionClient) UpdateOne(_m *StepExecution) *StepExecutionUpdateOne {
	mutation := newStepExecutionMutation(c.config, OpUpdateOne, withStepExecution(_m))
	return &StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepExecutionClient) UpdateOneID(id string) *StepExecutionUpdateOne {
	mutation := newStepExecutionMutation(c.config, OpUpdateOne, withStepExecutionID(id))
	return &StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepExecution.
func (c *StepExecutionClient) Delete() *StepExecutionDelete {
	mutation := newStepExecutionMutation(c.config, OpDelete)
	return &StepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepExecutionClient) DeleteOne(_m *StepExecution) *StepExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepExecutionClient) DeleteOneID(id string) *StepExecutionDeleteOne {
	builder := c.Delete().Where(stepexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepExecutionDeleteOne{builder}
}

// Query returns a query builder for StepExecution.
func (c *StepExecutionClient) Query() *StepExecutionQuery {
	return &StepExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a StepExecution entity by its id.
func (c *StepExecutionClient) Get(ctx context.Context, id string) (*StepExecution, error) {
	return c.Query().Where(stepexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepExecutionClient) GetX(ctx context.Context, id string) *StepExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a StepExecution.
func (c *StepExecutionClient) QueryJob(_m *StepExecution) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepexecution.Table, stepexecution.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepexecution.JobTable, stepexecution.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAiInteractions queries the ai_interactions edge of a StepExecution.
func (c *StepExecutionClient) QueryAiInteractions(_m *StepExecution) *AIInteractionLogQuery {
	query := (&AIInteractionLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepexecution.Table, stepexecution.FieldID, id),
			sqlgraph.To(aiinteractionlog.Table, aiinteractionlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stepexecution.AiInteractionsTable, stepexecution.AiInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepExecutionClient) Hooks() []Hook {
	return c.hooks.StepExecution
}

// Interceptors returns the client interceptors.
func (c *StepExecutionClient) Interceptors() []Interceptor {
	return c.inters.StepExecution
}

func (c *StepExecutionClient) mutate(ctx context.Context, m *StepExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepExecution mutation op: %q", m.Op())
	}
}

// SystemSettingClient is a client for the SystemSetting schema.
type SystemSettingClient struct {
	config
}

// NewSystemSettingClient returns a client for the SystemSetting from the given config.
func NewSystemSettingClient(c config) *SystemSettingClient {
	return &SystemSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `systemsetting.Hooks(f(g(h())))`.
func (c *SystemSettingClient) Use(hooks ...Hook) {
	c.hooks.SystemSetting = append(c.hooks.SystemSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `systemsetting.Intercept(f(g(h())))`.
func (c *SystemSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.SystemSetting = append(c.inters.SystemSetting, interceptors...)
}

// Create returns a builder for creating a SystemSetting entity.
func (c *SystemSettingClient) Create() *SystemSettingCreate {
	mutation := newSystemSettingMutation(c.config, OpCreate)
	return &SystemSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SystemSetting entities.
func (c *SystemSettingClient) CreateBulk(builders ...*SystemSettingCreate) *SystemSettingCreateBulk {
	return &SystemSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SystemSettingClient) MapCreateBulk(slice any, setFunc func(*SystemSettingCreate, int)) *SystemSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SystemSettingCreateBulk{err: fmt.Errorf("calling to SystemSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SystemSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SystemSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SystemSetting.
func (c *SystemSettingClient) Update() *SystemSettingUpdate {
	mutation := newSystemSettingMutation(c.config, OpUpdate)
	return &SystemSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SystemSettingClient) UpdateOne(_m *SystemSetting) *SystemSettingUpdateOne {
	mutation := newSystemSettingMutation(c.config, OpUpdateOne, withSystemSetting(_m))
	return &SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SystemSettingClient) UpdateOneID(id int) *SystemSettingUpdateOne {
	mutation := newSystemSettingMutation(c.config, OpUpdateOne, withSystemSettingID(id))
	return &SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SystemSetting.
func (c *SystemSettingClient) Delete() *SystemSettingDelete {
	mutation := newSystemSettingMutation(c.config, OpDelete)
	return &SystemSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SystemSettingClient) DeleteOne(_m *SystemSetting) *SystemSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SystemSettingClient) DeleteOneID(id int) *SystemSettingDeleteOne {
	builder := c.Delete().Where(systemsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SystemSettingDeleteOne{builder}
}

// Query returns a query builder for SystemSetting.
func (c *SystemSettingClient) Query() *SystemSettingQuery {
	return &SystemSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSystemSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a SystemSetting entity by its id.
func (c *SystemSettingClient) Get(ctx context.Context, id int) (*SystemSetting, error) {
	return c.Query().Where(systemsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SystemSettingClient) GetX(ctx context.Context, id int) *SystemSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SystemSettingClient) Hooks() []Hook {
	return c.hooks.SystemSetting
}

// Interceptors returns the client interceptors.
func (c *SystemSettingClient) Interceptors() []Interceptor {
	return c.inters.SystemSetting
}

func (c *SystemSettingClient) mutate(ctx context.Context, m *SystemSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SystemSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SystemSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SystemSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SystemSetting mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AIInteractionLog, DocumentClass, FeatureFlag, Job, ModelConfig,
		OCRConfiguration, PipelineStep, StepExecution, SystemSetting []ent.Hook
	}
	inters struct {
		AIInteractionLog, DocumentClass, FeatureFlag, Job, ModelConfig,
		OCRConfiguration, PipelineStep, StepExecution, SystemSetting []ent.Interceptor
	}
)
