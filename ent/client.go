// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tutorkit/tutorkit/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorkit/tutorkit/ent/concept"
	"github.com/tutorkit/tutorkit/ent/course"
	"github.com/tutorkit/tutorkit/ent/progressrecord"
	"github.com/tutorkit/tutorkit/ent/reviewevent"
	"github.com/tutorkit/tutorkit/ent/sessionlog"
	"github.com/tutorkit/tutorkit/ent/transitionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Concept is the client for interacting with the Concept builders.
	Concept *ConceptClient
	// Course is the client for interacting with the Course builders.
	Course *CourseClient
	// ProgressRecord is the client for interacting with the ProgressRecord builders.
	ProgressRecord *ProgressRecordClient
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
	// SessionLog is the client for interacting with the SessionLog builders.
	SessionLog *SessionLogClient
	// TransitionEvent is the client for interacting with the TransitionEvent builders.
	TransitionEvent *TransitionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Concept = NewConceptClient(c.config)
	c.Course = NewCourseClient(c.config)
	c.ProgressRecord = NewProgressRecordClient(c.config)
	c.ReviewEvent = NewReviewEventClient(c.config)
	c.SessionLog = NewSessionLogClient(c.config)
	c.TransitionEvent = NewTransitionEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Concept:         NewConceptClient(cfg),
		Course:          NewCourseClient(cfg),
		ProgressRecord:  NewProgressRecordClient(cfg),
		ReviewEvent:     NewReviewEventClient(cfg),
		SessionLog:      NewSessionLogClient(cfg),
		TransitionEvent: NewTransitionEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Concept:         NewConceptClient(cfg),
		Course:          NewCourseClient(cfg),
		ProgressRecord:  NewProgressRecordClient(cfg),
		ReviewEvent:     NewReviewEventClient(cfg),
		SessionLog:      NewSessionLogClient(cfg),
		TransitionEvent: NewTransitionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Concept.
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
		c.Concept, c.Course, c.ProgressRecord, c.ReviewEvent, c.SessionLog,
		c.TransitionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Concept, c.Course, c.ProgressRecord, c.ReviewEvent, c.SessionLog,
		c.TransitionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConceptMutation:
		return c.Concept.mutate(ctx, m)
	case *CourseMutation:
		return c.Course.mutate(ctx, m)
	case *ProgressRecordMutation:
		return c.ProgressRecord.mutate(ctx, m)
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	case *SessionLogMutation:
		return c.SessionLog.mutate(ctx, m)
	case *TransitionEventMutation:
		return c.TransitionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConceptClient is a client for the Concept schema.
type ConceptClient struct {
	config
}

// NewConceptClient returns a client for the Concept from the given config.
func NewConceptClient(c config) *ConceptClient {
	return &ConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `concept.Hooks(f(g(h())))`.
func (c *ConceptClient) Use(hooks ...Hook) {
	c.hooks.Concept = append(c.hooks.Concept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `concept.Intercept(f(g(h())))`.
func (c *ConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Concept = append(c.inters.Concept, interceptors...)
}

// Create returns a builder for creating a Concept entity.
func (c *ConceptClient) Create() *ConceptCreate {
	mutation := newConceptMutation(c.config, OpCreate)
	return &ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Concept entities.
func (c *ConceptClient) CreateBulk(builders ...*ConceptCreate) *ConceptCreateBulk {
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptClient) MapCreateBulk(slice any, setFunc func(*ConceptCreate, int)) *ConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptCreateBulk{err: fmt.Errorf("calling to ConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Concept.
func (c *ConceptClient) Update() *ConceptUpdate {
	mutation := newConceptMutation(c.config, OpUpdate)
	return &ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptClient) UpdateOne(_m *Concept) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConcept(_m))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptClient) UpdateOneID(id int) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConceptID(id))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Concept.
func (c *ConceptClient) Delete() *ConceptDelete {
	mutation := newConceptMutation(c.config, OpDelete)
	return &ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptClient) DeleteOne(_m *Concept) *ConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptClient) DeleteOneID(id int) *ConceptDeleteOne {
	builder := c.Delete().Where(concept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptDeleteOne{builder}
}

// Query returns a query builder for Concept.
func (c *ConceptClient) Query() *ConceptQuery {
	return &ConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a Concept entity by its id.
func (c *ConceptClient) Get(ctx context.Context, id int) (*Concept, error) {
	return c.Query().Where(concept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptClient) GetX(ctx context.Context, id int) *Concept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptClient) Hooks() []Hook {
	return c.hooks.Concept
}

// Interceptors returns the client interceptors.
func (c *ConceptClient) Interceptors() []Interceptor {
	return c.inters.Concept
}

func (c *ConceptClient) mutate(ctx context.Context, m *ConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Concept mutation op: %q", m.Op())
	}
}

// CourseClient is a client for the Course schema.
type CourseClient struct {
	config
}

// NewCourseClient returns a client for the Course from the given config.
func NewCourseClient(c config) *CourseClient {
	return &CourseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `course.Hooks(f(g(h())))`.
func (c *CourseClient) Use(hooks ...Hook) {
	c.hooks.Course = append(c.hooks.Course, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `course.Intercept(f(g(h())))`.
func (c *CourseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Course = append(c.inters.Course, interceptors...)
}

// Create returns a builder for creating a Course entity.
func (c *CourseClient) Create() *CourseCreate {
	mutation := newCourseMutation(c.config, OpCreate)
	return &CourseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Course entities.
func (c *CourseClient) CreateBulk(builders ...*CourseCreate) *CourseCreateBulk {
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseClient) MapCreateBulk(slice any, setFunc func(*CourseCreate, int)) *CourseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseCreateBulk{err: fmt.Errorf("calling to CourseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Course.
func (c *CourseClient) Update() *CourseUpdate {
	mutation := newCourseMutation(c.config, OpUpdate)
	return &CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseClient) UpdateOne(_m *Course) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourse(_m))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseClient) UpdateOneID(id string) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourseID(id))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Course.
func (c *CourseClient) Delete() *CourseDelete {
	mutation := newCourseMutation(c.config, OpDelete)
	return &CourseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseClient) DeleteOne(_m *Course) *CourseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseClient) DeleteOneID(id string) *CourseDeleteOne {
	builder := c.Delete().Where(course.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseDeleteOne{builder}
}

// Query returns a query builder for Course.
func (c *CourseClient) Query() *CourseQuery {
	return &CourseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourse},
		inters: c.Interceptors(),
	}
}

// Get returns a Course entity by its id.
func (c *CourseClient) Get(ctx context.Context, id string) (*Course, error) {
	return c.Query().Where(course.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseClient) GetX(ctx context.Context, id string) *Course {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseClient) Hooks() []Hook {
	return c.hooks.Course
}

// Interceptors returns the client interceptors.
func (c *CourseClient) Interceptors() []Interceptor {
	return c.inters.Course
}

func (c *CourseClient) mutate(ctx context.Context, m *CourseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Course mutation op: %q", m.Op())
	}
}

// ProgressRecordClient is a client for the ProgressRecord schema.
type ProgressRecordClient struct {
	config
}

// NewProgressRecordClient returns a client for the ProgressRecord from the given config.
func NewProgressRecordClient(c config) *ProgressRecordClient {
	return &ProgressRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressrecord.Hooks(f(g(h())))`.
func (c *ProgressRecordClient) Use(hooks ...Hook) {
	c.hooks.ProgressRecord = append(c.hooks.ProgressRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressrecord.Intercept(f(g(h())))`.
func (c *ProgressRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressRecord = append(c.inters.ProgressRecord, interceptors...)
}

// Create returns a builder for creating a ProgressRecord entity.
func (c *ProgressRecordClient) Create() *ProgressRecordCreate {
	mutation := newProgressRecordMutation(c.config, OpCreate)
	return &ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressRecord entities.
func (c *ProgressRecordClient) CreateBulk(builders ...*ProgressRecordCreate) *ProgressRecordCreateBulk {
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressRecordClient) MapCreateBulk(slice any, setFunc func(*ProgressRecordCreate, int)) *ProgressRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressRecordCreateBulk{err: fmt.Errorf("calling to ProgressRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressRecord.
func (c *ProgressRecordClient) Update() *ProgressRecordUpdate {
	mutation := newProgressRecordMutation(c.config, OpUpdate)
	return &ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressRecordClient) UpdateOne(_m *ProgressRecord) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecord(_m))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressRecordClient) UpdateOneID(id int) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecordID(id))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressRecord.
func (c *ProgressRecordClient) Delete() *ProgressRecordDelete {
	mutation := newProgressRecordMutation(c.config, OpDelete)
	return &ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressRecordClient) DeleteOne(_m *ProgressRecord) *ProgressRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressRecordClient) DeleteOneID(id int) *ProgressRecordDeleteOne {
	builder := c.Delete().Where(progressrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressRecordDeleteOne{builder}
}

// Query returns a query builder for ProgressRecord.
func (c *ProgressRecordClient) Query() *ProgressRecordQuery {
	return &ProgressRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressRecord entity by its id.
func (c *ProgressRecordClient) Get(ctx context.Context, id int) (*ProgressRecord, error) {
	return c.Query().Where(progressrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressRecordClient) GetX(ctx context.Context, id int) *ProgressRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressRecordClient) Hooks() []Hook {
	return c.hooks.ProgressRecord
}

// Interceptors returns the client interceptors.
func (c *ProgressRecordClient) Interceptors() []Interceptor {
	return c.inters.ProgressRecord
}

func (c *ProgressRecordClient) mutate(ctx context.Context, m *ProgressRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressRecord mutation op: %q", m.Op())
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// SessionLogClient is a client for the SessionLog schema.
type SessionLogClient struct {
	config
}

// NewSessionLogClient returns a client for the SessionLog from the given config.
func NewSessionLogClient(c config) *SessionLogClient {
	return &SessionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionlog.Hooks(f(g(h())))`.
func (c *SessionLogClient) Use(hooks ...Hook) {
	c.hooks.SessionLog = append(c.hooks.SessionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionlog.Intercept(f(g(h())))`.
func (c *SessionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionLog = append(c.inters.SessionLog, interceptors...)
}

// Create returns a builder for creating a SessionLog entity.
func (c *SessionLogClient) Create() *SessionLogCreate {
	mutation := newSessionLogMutation(c.config, OpCreate)
	return &SessionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionLog entities.
func (c *SessionLogClient) CreateBulk(builders ...*SessionLogCreate) *SessionLogCreateBulk {
	return &SessionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionLogClient) MapCreateBulk(slice any, setFunc func(*SessionLogCreate, int)) *SessionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionLogCreateBulk{err: fmt.Errorf("calling to SessionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionLog.
func (c *SessionLogClient) Update() *SessionLogUpdate {
	mutation := newSessionLogMutation(c.config, OpUpdate)
	return &SessionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionLogClient) UpdateOne(_m *SessionLog) *SessionLogUpdateOne {
	mutation := newSessionLogMutation(c.config, OpUpdateOne, withSessionLog(_m))
	return &SessionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionLogClient) UpdateOneID(id int) *SessionLogUpdateOne {
	mutation := newSessionLogMutation(c.config, OpUpdateOne, withSessionLogID(id))
	return &SessionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionLog.
func (c *SessionLogClient) Delete() *SessionLogDelete {
	mutation := newSessionLogMutation(c.config, OpDelete)
	return &SessionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionLogClient) DeleteOne(_m *SessionLog) *SessionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionLogClient) DeleteOneID(id int) *SessionLogDeleteOne {
	builder := c.Delete().Where(sessionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionLogDeleteOne{builder}
}

// Query returns a query builder for SessionLog.
func (c *SessionLogClient) Query() *SessionLogQuery {
	return &SessionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionLog entity by its id.
func (c *SessionLogClient) Get(ctx context.Context, id int) (*SessionLog, error) {
	return c.Query().Where(sessionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionLogClient) GetX(ctx context.Context, id int) *SessionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionLogClient) Hooks() []Hook {
	return c.hooks.SessionLog
}

// Interceptors returns the client interceptors.
func (c *SessionLogClient) Interceptors() []Interceptor {
	return c.inters.SessionLog
}

func (c *SessionLogClient) mutate(ctx context.Context, m *SessionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionLog mutation op: %q", m.Op())
	}
}

// TransitionEventClient is a client for the TransitionEvent schema.
type TransitionEventClient struct {
	config
}

// NewTransitionEventClient returns a client for the TransitionEvent from the given config.
func NewTransitionEventClient(c config) *TransitionEventClient {
	return &TransitionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transitionevent.Hooks(f(g(h())))`.
func (c *TransitionEventClient) Use(hooks ...Hook) {
	c.hooks.TransitionEvent = append(c.hooks.TransitionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transitionevent.Intercept(f(g(h())))`.
func (c *TransitionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TransitionEvent = append(c.inters.TransitionEvent, interceptors...)
}

// Create returns a builder for creating a TransitionEvent entity.
func (c *TransitionEventClient) Create() *TransitionEventCreate {
	mutation := newTransitionEventMutation(c.config, OpCreate)
	return &TransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TransitionEvent entities.
func (c *TransitionEventClient) CreateBulk(builders ...*TransitionEventCreate) *TransitionEventCreateBulk {
	return &TransitionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransitionEventClient) MapCreateBulk(slice any, setFunc func(*TransitionEventCreate, int)) *TransitionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransitionEventCreateBulk{err: fmt.Errorf("calling to TransitionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransitionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransitionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TransitionEvent.
func (c *TransitionEventClient) Update() *TransitionEventUpdate {
	mutation := newTransitionEventMutation(c.config, OpUpdate)
	return &TransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransitionEventClient) UpdateOne(_m *TransitionEvent) *TransitionEventUpdateOne {
	mutation := newTransitionEventMutation(c.config, OpUpdateOne, withTransitionEvent(_m))
	return &TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransitionEventClient) UpdateOneID(id int) *TransitionEventUpdateOne {
	mutation := newTransitionEventMutation(c.config, OpUpdateOne, withTransitionEventID(id))
	return &TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TransitionEvent.
func (c *TransitionEventClient) Delete() *TransitionEventDelete {
	mutation := newTransitionEventMutation(c.config, OpDelete)
	return &TransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransitionEventClient) DeleteOne(_m *TransitionEvent) *TransitionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransitionEventClient) DeleteOneID(id int) *TransitionEventDeleteOne {
	builder := c.Delete().Where(transitionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransitionEventDeleteOne{builder}
}

// Query returns a query builder for TransitionEvent.
func (c *TransitionEventClient) Query() *TransitionEventQuery {
	return &TransitionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransitionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TransitionEvent entity by its id.
func (c *TransitionEventClient) Get(ctx context.Context, id int) (*TransitionEvent, error) {
	return c.Query().Where(transitionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransitionEventClient) GetX(ctx context.Context, id int) *TransitionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TransitionEventClient) Hooks() []Hook {
	return c.hooks.TransitionEvent
}

// Interceptors returns the client interceptors.
func (c *TransitionEventClient) Interceptors() []Interceptor {
	return c.inters.TransitionEvent
}

func (c *TransitionEventClient) mutate(ctx context.Context, m *TransitionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TransitionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Concept, Course, ProgressRecord, ReviewEvent, SessionLog,
		TransitionEvent []ent.Hook
	}
	inters struct {
		Concept, Course, ProgressRecord, ReviewEvent, SessionLog,
		TransitionEvent []ent.Interceptor
	}
)
