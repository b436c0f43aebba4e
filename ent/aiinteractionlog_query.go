// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/predicate"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// AIInteractionLogQuery is the builder for querying AIInteractionLog entities.
type AIInteractionLogQuery struct {
	config
	ctx               *QueryContext
	order             []aiinteractionlog.OrderOption
	inters            []Interceptor
	predicates        []predicate.AIInteractionLog
	withJob           *JobQuery
	withStepExecution *StepExecutionQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AIInteractionLogQuery builder.
func (_q *AIInteractionLogQuery) Where(ps ...predicate.AIInteractionLog) *AIInteractionLogQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AIInteractionLogQuery) Limit(limit int) *AIInteractionLogQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AIInteractionLogQuery) Offset(offset int) *AIInteractionLogQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AIInteractionLogQuery) Unique(unique bool) *AIInteractionLogQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AIInteractionLogQuery) Order(o ...aiinteractionlog.OrderOption) *AIInteractionLogQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryJob chains the current query on the "job" edge.
func (_q *AIInteractionLogQuery) QueryJob() *JobQuery {
	query := (&JobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(aiinteractionlog.Table, aiinteractionlog.FieldID, selector),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, aiinteractionlog.JobTable, aiinteractionlog.JobColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStepExecution chains the current query on the "step_execution" edge.
func (_q *AIInteractionLogQuery) QueryStepExecution() *StepExecutionQuery {
	query := (&StepExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(aiinteractionlog.Table, aiinteractionlog.FieldID, selector),
			sqlgraph.To(stepexecution.Table, stepexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, aiinteractionlog.StepExecutionTable, aiinteractionlog.StepExecutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AIInteractionLog entity from the query.
// Returns a *NotFoundError when no AIInteractionLog was found.
func (_q *AIInteractionLogQuery) First(ctx context.Context) (*AIInteractionLog, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{aiinteractionlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AIInteractionLogQuery) FirstX(ctx context.Context) *AIInteractionLog {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AIInteractionLog ID from the query.
// Returns a *NotFoundError when no AIInteractionLog ID was found.
func (_q *AIInteractionLogQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{aiinteractionlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AIInteractionLogQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AIInteractionLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AIInteractionLog entity is found.
// Returns a *NotFoundError when no AIInteractionLog entities are found.
func (_q *AIInteractionLogQuery) Only(ctx context.Context) (*AIInteractionLog, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{aiinteractionlog.Label}
	default:
		return nil, &NotSingularError{aiinteractionlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AIInteractionLogQuery) OnlyX(ctx context.Context) *AIInteractionLog {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AIInteractionLog ID in the query.
// Returns a *NotSingularError when more than one AIInteractionLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AIInteractionLogQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{aiinteractionlog.Label}
	default:
		err = &NotSingularError{aiinteractionlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AIInteractionLogQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AIInteractionLogs.
func (_q *AIInteractionLogQuery) All(ctx context.Context) ([]*AIInteractionLog, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AIInteractionLog, *AIInteractionLogQuery]()
	return withInterceptors[[]*AIInteractionLog](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AIInteractionLogQuery) AllX(ctx context.Context) []*AIInteractionLog {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AIInteractionLog IDs.
func (_q *AIInteractionLogQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(aiinteractionlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AIInteractionLogQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AIInteractionLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AIInteractionLogQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AIInteractionLogQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AIInteractionLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AIInteractionLogQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AIInteractionLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AIInteractionLogQuery) Clone() *AIInteractionLogQuery {
	if _q == nil {
		return nil
	}
	return &AIInteractionLogQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]aiinteractionlog.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.AIInteractionLog{}, _q.predicates...),
		withJob:           _q.withJob.Clone(),
		withStepExecution: _q.withStepExecution.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithJob tells the query-builder to eager-load the nodes that are connected to
// the "job" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AIInteractionLogQuery) WithJob(opts ...func(*JobQuery)) *AIInteractionLogQuery {
	query := (&JobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJob = query
	return _q
}

// WithStepExecution tells the query-builder to eager-load the nodes that are connected to
// the "step_execution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AIInteractionLogQuery) WithStepExecution(opts ...func(*StepExecutionQuery)) *AIInteractionLogQuery {
	query := (&StepExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStepExecution = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		JobID string `json:"job_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AIInteractionLog.Query().
//		GroupBy(aiinteractionlog.FieldJobID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AIInteractionLogQuery) GroupBy(field string, fields ...string) *AIInteractionLogGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AIInteractionLogGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = aiinteractionlog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		JobID string `json:"job_id,omitempty"`
//	}
//
//	client.AIInteractionLog.Query().
//		Select(aiinteractionlog.FieldJobID).
//		Scan(ctx, &v)
func (_q *AIInteractionLogQuery) Select(fields ...string) *AIInteractionLogSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AIInteractionLogSelect{AIInteractionLogQuery: _q}
	sbuild.label = aiinteractionlog.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AIInteractionLogSelect configured with the given aggregations.
func (_q *AIInteractionLogQuery) Aggregate(fns ...AggregateFunc) *AIInteractionLogSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AIInteractionLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !aiinteractionlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AIInteractionLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AIInteractionLog, error) {
	var (
		nodes       = []*AIInteractionLog{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withJob != nil,
			_q.withStepExecution != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AIInteractionLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AIInteractionLog{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withJob; query != nil {
		if err := _q.loadJob(ctx, query, nodes, nil,
			func(n *AIInteractionLog, e *Job) { n.Edges.Job = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStepExecution; query != nil {
		if err := _q.loadStepExecution(ctx, query, nodes, nil,
			func(n *AIInteractionLog, e *StepExecution) { n.Edges.StepExecution = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AIInteractionLogQuery) loadJob(ctx context.Context, query *JobQuery, nodes []*AIInteractionLog, init func(*AIInteractionLog), assign func(*AIInteractionLog, *Job)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AIInteractionLog)
	for i := range nodes {
		fk := nodes[i].JobID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(job.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "job_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AIInteractionLogQuery) loadStepExecution(ctx context.Context, query *StepExecutionQuery, nodes []*AIInteractionLog, init func(*AIInteractionLog), assign func(*AIInteractionLog, *StepExecution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AIInteractionLog)
	for i := range nodes {
		if nodes[i].StepExecutionID == nil {
			continue
		}
		fk := *nodes[i].StepExecutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(stepexecution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "step_execution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AIInteractionLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AIInteractionLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(aiinteractionlog.Table, aiinteractionlog.Columns, sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aiinteractionlog.FieldID)
		for i := range fields {
			if fields[i] != aiinteractionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withJob != nil {
			_spec.Node.AddColumnOnce(aiinteractionlog.FieldJobID)
		}
		if _q.withStepExecution != nil {
			_spec.Node.AddColumnOnce(aiinteractionlog.FieldStepExecutionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AIInteractionLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(aiinteractionlog.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = aiinteractionlog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *AIInteractionLogQuery) ForUpdate(opts ...sql.LockOption) *AIInteractionLogQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *AIInteractionLogQuery) ForShare(opts ...sql.LockOption) *AIInteractionLogQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// AIInteractionLogGroupBy is the group-by builder for AIInteractionLog entities.
type AIInteractionLogGroupBy struct {
	selector
	build *AIInteractionLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AIInteractionLogGroupBy) Aggregate(fns ...AggregateFunc) *AIInteractionLogGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AIInteractionLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AIInteractionLogQuery, *AIInteractionLogGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AIInteractionLogGroupBy) sqlScan(ctx context.Context, root *AIInteractionLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AIInteractionLogSelect is the builder for selecting fields of AIInteractionLog entities.
type AIInteractionLogSelect struct {
	*AIInteractionLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AIInteractionLogSelect) Aggregate(fns ...AggregateFunc) *AIInteractionLogSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AIInteractionLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AIInteractionLogQuery, *AIInteractionLogSelect](ctx, _s.AIInteractionLogQuery, _s, _s.inters, v)
}

func (_s *AIInteractionLogSelect) sqlScan(ctx context.Context, root *AIInteractionLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
