// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/tutorloop/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/tutorloop/ent/examquestion"
	"github.com/abhisek/tutorloop/ent/learningsession"
	"github.com/abhisek/tutorloop/ent/lesson"
	"github.com/abhisek/tutorloop/ent/llmrequestevent"
	"github.com/abhisek/tutorloop/ent/remediationmessage"
	"github.com/abhisek/tutorloop/ent/remediationthread"
	"github.com/abhisek/tutorloop/ent/studentmodel"
	"github.com/abhisek/tutorloop/ent/topic"
	"github.com/abhisek/tutorloop/ent/topicprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExamQuestion is the client for interacting with the ExamQuestion builders.
	ExamQuestion *ExamQuestionClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearningSession is the client for interacting with the LearningSession builders.
	LearningSession *LearningSessionClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// RemediationMessage is the client for interacting with the RemediationMessage builders.
	RemediationMessage *RemediationMessageClient
	// RemediationThread is the client for interacting with the RemediationThread builders.
	RemediationThread *RemediationThreadClient
	// StudentModel is the client for interacting with the StudentModel builders.
	StudentModel *StudentModelClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
	// TopicProgress is the client for interacting with the TopicProgress builders.
	TopicProgress *TopicProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExamQuestion = NewExamQuestionClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearningSession = NewLearningSessionClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.RemediationMessage = NewRemediationMessageClient(c.config)
	c.RemediationThread = NewRemediationThreadClient(c.config)
	c.StudentModel = NewStudentModelClient(c.config)
	c.Topic = NewTopicClient(c.config)
	c.TopicProgress = NewTopicProgressClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		ExamQuestion:       NewExamQuestionClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		LearningSession:    NewLearningSessionClient(cfg),
		Lesson:             NewLessonClient(cfg),
		RemediationMessage: NewRemediationMessageClient(cfg),
		RemediationThread:  NewRemediationThreadClient(cfg),
		StudentModel:       NewStudentModelClient(cfg),
		Topic:              NewTopicClient(cfg),
		TopicProgress:      NewTopicProgressClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ExamQuestion:       NewExamQuestionClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		LearningSession:    NewLearningSessionClient(cfg),
		Lesson:             NewLessonClient(cfg),
		RemediationMessage: NewRemediationMessageClient(cfg),
		RemediationThread:  NewRemediationThreadClient(cfg),
		StudentModel:       NewStudentModelClient(cfg),
		Topic:              NewTopicClient(cfg),
		TopicProgress:      NewTopicProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExamQuestion.
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
		c.ExamQuestion, c.LLMRequestEvent, c.LearningSession, c.Lesson,
		c.RemediationMessage, c.RemediationThread, c.StudentModel, c.Topic,
		c.TopicProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ExamQuestion, c.LLMRequestEvent, c.LearningSession, c.Lesson,
		c.RemediationMessage, c.RemediationThread, c.StudentModel, c.Topic,
		c.TopicProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExamQuestionMutation:
		return c.ExamQuestion.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearningSessionMutation:
		return c.LearningSession.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *RemediationMessageMutation:
		return c.RemediationMessage.mutate(ctx, m)
	case *RemediationThreadMutation:
		return c.RemediationThread.mutate(ctx, m)
	case *StudentModelMutation:
		return c.StudentModel.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	case *TopicProgressMutation:
		return c.TopicProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExamQuestionClient is a client for the ExamQuestion schema.
type ExamQuestionClient struct {
	config
}

// NewExamQuestionClient returns a client for the ExamQuestion from the given config.
func NewExamQuestionClient(c config) *ExamQuestionClient {
	return &ExamQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examquestion.Hooks(f(g(h())))`.
func (c *ExamQuestionClient) Use(hooks ...Hook) {
	c.hooks.ExamQuestion = append(c.hooks.ExamQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examquestion.Intercept(f(g(h())))`.
func (c *ExamQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamQuestion = append(c.inters.ExamQuestion, interceptors...)
}

// Create returns a builder for creating a ExamQuestion entity.
func (c *ExamQuestionClient) Create() *ExamQuestionCreate {
	mutation := newExamQuestionMutation(c.config, OpCreate)
	return &ExamQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamQuestion entities.
func (c *ExamQuestionClient) CreateBulk(builders ...*ExamQuestionCreate) *ExamQuestionCreateBulk {
	return &ExamQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamQuestionClient) MapCreateBulk(slice any, setFunc func(*ExamQuestionCreate, int)) *ExamQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamQuestionCreateBulk{err: fmt.Errorf("calling to ExamQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamQuestion.
func (c *ExamQuestionClient) Update() *ExamQuestionUpdate {
	mutation := newExamQuestionMutation(c.config, OpUpdate)
	return &ExamQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamQuestionClient) UpdateOne(_m *ExamQuestion) *ExamQuestionUpdateOne {
	mutation := newExamQuestionMutation(c.config, OpUpdateOne, withExamQuestion(_m))
	return &ExamQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamQuestionClient) UpdateOneID(id string) *ExamQuestionUpdateOne {
	mutation := newExamQuestionMutation(c.config, OpUpdateOne, withExamQuestionID(id))
	return &ExamQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamQuestion.
func (c *ExamQuestionClient) Delete() *ExamQuestionDelete {
	mutation := newExamQuestionMutation(c.config, OpDelete)
	return &ExamQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamQuestionClient) DeleteOne(_m *ExamQuestion) *ExamQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamQuestionClient) DeleteOneID(id string) *ExamQuestionDeleteOne {
	builder := c.Delete().Where(examquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamQuestionDeleteOne{builder}
}

// Query returns a query builder for ExamQuestion.
func (c *ExamQuestionClient) Query() *ExamQuestionQuery {
	return &ExamQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamQuestion entity by its id.
func (c *ExamQuestionClient) Get(ctx context.Context, id string) (*ExamQuestion, error) {
	return c.Query().Where(examquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamQuestionClient) GetX(ctx context.Context, id string) *ExamQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ExamQuestion.
func (c *ExamQuestionClient) QuerySession(_m *ExamQuestion) *LearningSessionQuery {
	query := (&LearningSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(examquestion.Table, examquestion.FieldID, id),
			sqlgraph.To(learningsession.Table, learningsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, examquestion.SessionTable, examquestion.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryThreads queries the threads edge of a ExamQuestion.
func (c *ExamQuestionClient) QueryThreads(_m *ExamQuestion) *RemediationThreadQuery {
	query := (&RemediationThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(examquestion.Table, examquestion.FieldID, id),
			sqlgraph.To(remediationthread.Table, remediationthread.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, examquestion.ThreadsTable, examquestion.ThreadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExamQuestionClient) Hooks() []Hook {
	return c.hooks.ExamQuestion
}

// Interceptors returns the client interceptors.
func (c *ExamQuestionClient) Interceptors() []Interceptor {
	return c.inters.ExamQuestion
}

func (c *ExamQuestionClient) mutate(ctx context.Context, m *ExamQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamQuestion mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearningSessionClient is a client for the LearningSession schema.
type LearningSessionClient struct {
	config
}

// NewLearningSessionClient returns a client for the LearningSession from the given config.
func NewLearningSessionClient(c config) *LearningSessionClient {
	return &LearningSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningsession.Hooks(f(g(h())))`.
func (c *LearningSessionClient) Use(hooks ...Hook) {
	c.hooks.LearningSession = append(c.hooks.LearningSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningsession.Intercept(f(g(h())))`.
func (c *LearningSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningSession = append(c.inters.LearningSession, interceptors...)
}

// Create returns a builder for creating a LearningSession entity.
func (c *LearningSessionClient) Create() *LearningSessionCreate {
	mutation := newLearningSessionMutation(c.config, OpCreate)
	return &LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningSession entities.
func (c *LearningSessionClient) CreateBulk(builders ...*LearningSessionCreate) *LearningSessionCreateBulk {
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningSessionClient) MapCreateBulk(slice any, setFunc func(*LearningSessionCreate, int)) *LearningSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningSessionCreateBulk{err: fmt.Errorf("calling to LearningSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningSession.
func (c *LearningSessionClient) Update() *LearningSessionUpdate {
	mutation := newLearningSessionMutation(c.config, OpUpdate)
	return &LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningSessionClient) UpdateOne(_m *LearningSession) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSession(_m))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningSessionClient) UpdateOneID(id string) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSessionID(id))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningSession.
func (c *LearningSessionClient) Delete() *LearningSessionDelete {
	mutation := newLearningSessionMutation(c.config, OpDelete)
	return &LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningSessionClient) DeleteOne(_m *LearningSession) *LearningSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningSessionClient) DeleteOneID(id string) *LearningSessionDeleteOne {
	builder := c.Delete().Where(learningsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningSessionDeleteOne{builder}
}

// Query returns a query builder for LearningSession.
func (c *LearningSessionClient) Query() *LearningSessionQuery {
	return &LearningSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningSession},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningSession entity by its id.
func (c *LearningSessionClient) Get(ctx context.Context, id string) (*LearningSession, error) {
	return c.Query().Where(learningsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningSessionClient) GetX(ctx context.Context, id string) *LearningSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTopic queries the topic edge of a LearningSession.
func (c *LearningSessionClient) QueryTopic(_m *LearningSession) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(learningsession.Table, learningsession.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, learningsession.TopicTable, learningsession.TopicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a LearningSession.
func (c *LearningSessionClient) QueryQuestions(_m *LearningSession) *ExamQuestionQuery {
	query := (&ExamQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(learningsession.Table, learningsession.FieldID, id),
			sqlgraph.To(examquestion.Table, examquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, learningsession.QuestionsTable, learningsession.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLessons queries the lessons edge of a LearningSession.
func (c *LearningSessionClient) QueryLessons(_m *LearningSession) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(learningsession.Table, learningsession.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, learningsession.LessonsTable, learningsession.LessonsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LearningSessionClient) Hooks() []Hook {
	return c.hooks.LearningSession
}

// Interceptors returns the client interceptors.
func (c *LearningSessionClient) Interceptors() []Interceptor {
	return c.inters.LearningSession
}

func (c *LearningSessionClient) mutate(ctx context.Context, m *LearningSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningSession mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id string) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id string) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id string) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id string) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Lesson.
func (c *LessonClient) QuerySession(_m *Lesson) *LearningSessionQuery {
	query := (&LearningSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(learningsession.Table, learningsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lesson.SessionTable, lesson.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// RemediationMessageClient is a client for the RemediationMessage schema.
type RemediationMessageClient struct {
	config
}

// NewRemediationMessageClient returns a client for the RemediationMessage from the given config.
func NewRemediationMessageClient(c config) *RemediationMessageClient {
	return &RemediationMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `remediationmessage.Hooks(f(g(h())))`.
func (c *RemediationMessageClient) Use(hooks ...Hook) {
	c.hooks.RemediationMessage = append(c.hooks.RemediationMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `remediationmessage.Intercept(f(g(h())))`.
func (c *RemediationMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.RemediationMessage = append(c.inters.RemediationMessage, interceptors...)
}

// Create returns a builder for creating a RemediationMessage entity.
func (c *RemediationMessageClient) Create() *RemediationMessageCreate {
	mutation := newRemediationMessageMutation(c.config, OpCreate)
	return &RemediationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RemediationMessage entities.
func (c *RemediationMessageClient) CreateBulk(builders ...*RemediationMessageCreate) *RemediationMessageCreateBulk {
	return &RemediationMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RemediationMessageClient) MapCreateBulk(slice any, setFunc func(*RemediationMessageCreate, int)) *RemediationMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RemediationMessageCreateBulk{err: fmt.Errorf("calling to RemediationMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RemediationMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RemediationMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RemediationMessage.
func (c *RemediationMessageClient) Update() *RemediationMessageUpdate {
	mutation := newRemediationMessageMutation(c.config, OpUpdate)
	return &RemediationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RemediationMessageClient) UpdateOne(_m *RemediationMessage) *RemediationMessageUpdateOne {
	mutation := newRemediationMessageMutation(c.config, OpUpdateOne, withRemediationMessage(_m))
	return &RemediationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RemediationMessageClient) UpdateOneID(id string) *RemediationMessageUpdateOne {
	mutation := newRemediationMessageMutation(c.config, OpUpdateOne, withRemediationMessageID(id))
	return &RemediationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RemediationMessage.
func (c *RemediationMessageClient) Delete() *RemediationMessageDelete {
	mutation := newRemediationMessageMutation(c.config, OpDelete)
	return &RemediationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RemediationMessageClient) DeleteOne(_m *RemediationMessage) *RemediationMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RemediationMessageClient) DeleteOneID(id string) *RemediationMessageDeleteOne {
	builder := c.Delete().Where(remediationmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RemediationMessageDeleteOne{builder}
}

// Query returns a query builder for RemediationMessage.
func (c *RemediationMessageClient) Query() *RemediationMessageQuery {
	return &RemediationMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRemediationMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a RemediationMessage entity by its id.
func (c *RemediationMessageClient) Get(ctx context.Context, id string) (*RemediationMessage, error) {
	return c.Query().Where(remediationmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RemediationMessageClient) GetX(ctx context.Context, id string) *RemediationMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a RemediationMessage.
func (c *RemediationMessageClient) QueryThread(_m *RemediationMessage) *RemediationThreadQuery {
	query := (&RemediationThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(remediationmessage.Table, remediationmessage.FieldID, id),
			sqlgraph.To(remediationthread.Table, remediationthread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, remediationmessage.ThreadTable, remediationmessage.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RemediationMessageClient) Hooks() []Hook {
	return c.hooks.RemediationMessage
}

// Interceptors returns the client interceptors.
func (c *RemediationMessageClient) Interceptors() []Interceptor {
	return c.inters.RemediationMessage
}

func (c *RemediationMessageClient) mutate(ctx context.Context, m *RemediationMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RemediationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RemediationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RemediationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RemediationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RemediationMessage mutation op: %q", m.Op())
	}
}

// RemediationThreadClient is a client for the RemediationThread schema.
type RemediationThreadClient struct {
	config
}

// NewRemediationThreadClient returns a client for the RemediationThread from the given config.
func NewRemediationThreadClient(c config) *RemediationThreadClient {
	return &RemediationThreadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `remediationthread.Hooks(f(g(h())))`.
func (c *RemediationThreadClient) Use(hooks ...Hook) {
	c.hooks.RemediationThread = append(c.hooks.RemediationThread, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `remediationthread.Intercept(f(g(h())))`.
func (c *RemediationThreadClient) Intercept(interceptors ...Interceptor) {
	c.inters.RemediationThread = append(c.inters.RemediationThread, interceptors...)
}

// Create returns a builder for creating a RemediationThread entity.
func (c *RemediationThreadClient) Create() *RemediationThreadCreate {
	mutation := newRemediationThreadMutation(c.config, OpCreate)
	return &RemediationThreadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RemediationThread entities.
func (c *RemediationThreadClient) CreateBulk(builders ...*RemediationThreadCreate) *RemediationThreadCreateBulk {
	return &RemediationThreadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RemediationThreadClient) MapCreateBulk(slice any, setFunc func(*RemediationThreadCreate, int)) *RemediationThreadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RemediationThreadCreateBulk{err: fmt.Errorf("calling to RemediationThreadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RemediationThreadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RemediationThreadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RemediationThread.
func (c *RemediationThreadClient) Update() *RemediationThreadUpdate {
	mutation := newRemediationThreadMutation(c.config, OpUpdate)
	return &RemediationThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RemediationThreadClient) UpdateOne(_m *RemediationThread) *RemediationThreadUpdateOne {
	mutation := newRemediationThreadMutation(c.config, OpUpdateOne, withRemediationThread(_m))
	return &RemediationThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RemediationThreadClient) UpdateOneID(id string) *RemediationThreadUpdateOne {
	mutation := newRemediationThreadMutation(c.config, OpUpdateOne, withRemediationThreadID(id))
	return &RemediationThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RemediationThread.
func (c *RemediationThreadClient) Delete() *RemediationThreadDelete {
	mutation := newRemediationThreadMutation(c.config, OpDelete)
	return &RemediationThreadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RemediationThreadClient) DeleteOne(_m *RemediationThread) *RemediationThreadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RemediationThreadClient) DeleteOneID(id string) *RemediationThreadDeleteOne {
	builder := c.Delete().Where(remediationthread.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RemediationThreadDeleteOne{builder}
}

// Query returns a query builder for RemediationThread.
func (c *RemediationThreadClient) Query() *RemediationThreadQuery {
	return &RemediationThreadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRemediationThread},
		inters: c.Interceptors(),
	}
}

// Get returns a RemediationThread entity by its id.
func (c *RemediationThreadClient) Get(ctx context.Context, id string) (*RemediationThread, error) {
	return c.Query().Where(remediationthread.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RemediationThreadClient) GetX(ctx context.Context, id string) *RemediationThread {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestion queries the question edge of a RemediationThread.
func (c *RemediationThreadClient) QueryQuestion(_m *RemediationThread) *ExamQuestionQuery {
	query := (&ExamQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(remediationthread.Table, remediationthread.FieldID, id),
			sqlgraph.To(examquestion.Table, examquestion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, remediationthread.QuestionTable, remediationthread.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a RemediationThread.
func (c *RemediationThreadClient) QueryMessages(_m *RemediationThread) *RemediationMessageQuery {
	query := (&RemediationMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(remediationthread.Table, remediationthread.FieldID, id),
			sqlgraph.To(remediationmessage.Table, remediationmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, remediationthread.MessagesTable, remediationthread.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RemediationThreadClient) Hooks() []Hook {
	return c.hooks.RemediationThread
}

// Interceptors returns the client interceptors.
func (c *RemediationThreadClient) Interceptors() []Interceptor {
	return c.inters.RemediationThread
}

func (c *RemediationThreadClient) mutate(ctx context.Context, m *RemediationThreadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RemediationThreadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RemediationThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RemediationThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RemediationThreadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RemediationThread mutation op: %q", m.Op())
	}
}

// StudentModelClient is a client for the StudentModel schema.
type StudentModelClient struct {
	config
}

// NewStudentModelClient returns a client for the StudentModel from the given config.
func NewStudentModelClient(c config) *StudentModelClient {
	return &StudentModelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentmodel.Hooks(f(g(h())))`.
func (c *StudentModelClient) Use(hooks ...Hook) {
	c.hooks.StudentModel = append(c.hooks.StudentModel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentmodel.Intercept(f(g(h())))`.
func (c *StudentModelClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentModel = append(c.inters.StudentModel, interceptors...)
}

// Create returns a builder for creating a StudentModel entity.
func (c *StudentModelClient) Create() *StudentModelCreate {
	mutation := newStudentModelMutation(c.config, OpCreate)
	return &StudentModelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentModel entities.
func (c *StudentModelClient) CreateBulk(builders ...*StudentModelCreate) *StudentModelCreateBulk {
	return &StudentModelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentModelClient) MapCreateBulk(slice any, setFunc func(*StudentModelCreate, int)) *StudentModelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentModelCreateBulk{err: fmt.Errorf("calling to StudentModelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentModelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentModelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentModel.
func (c *StudentModelClient) Update() *StudentModelUpdate {
	mutation := newStudentModelMutation(c.config, OpUpdate)
	return &StudentModelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentModelClient) UpdateOne(_m *StudentModel) *StudentModelUpdateOne {
	mutation := newStudentModelMutation(c.config, OpUpdateOne, withStudentModel(_m))
	return &StudentModelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentModelClient) UpdateOneID(id string) *StudentModelUpdateOne {
	mutation := newStudentModelMutation(c.config, OpUpdateOne, withStudentModelID(id))
	return &StudentModelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentModel.
func (c *StudentModelClient) Delete() *StudentModelDelete {
	mutation := newStudentModelMutation(c.config, OpDelete)
	return &StudentModelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentModelClient) DeleteOne(_m *StudentModel) *StudentModelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentModelClient) DeleteOneID(id string) *StudentModelDeleteOne {
	builder := c.Delete().Where(studentmodel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentModelDeleteOne{builder}
}

// Query returns a query builder for StudentModel.
func (c *StudentModelClient) Query() *StudentModelQuery {
	return &StudentModelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentModel},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentModel entity by its id.
func (c *StudentModelClient) Get(ctx context.Context, id string) (*StudentModel, error) {
	return c.Query().Where(studentmodel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentModelClient) GetX(ctx context.Context, id string) *StudentModel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentModelClient) Hooks() []Hook {
	return c.hooks.StudentModel
}

// Interceptors returns the client interceptors.
func (c *StudentModelClient) Interceptors() []Interceptor {
	return c.inters.StudentModel
}

func (c *StudentModelClient) mutate(ctx context.Context, m *StudentModelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentModelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentModelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentModelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentModelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentModel mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id string) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id string) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id string) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id string) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPrerequisite queries the prerequisite edge of a Topic.
func (c *TopicClient) QueryPrerequisite(_m *Topic) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topic.PrerequisiteTable, topic.PrerequisiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDependents queries the dependents edge of a Topic.
func (c *TopicClient) QueryDependents(_m *Topic) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topic.DependentsTable, topic.DependentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// TopicProgressClient is a client for the TopicProgress schema.
type TopicProgressClient struct {
	config
}

// NewTopicProgressClient returns a client for the TopicProgress from the given config.
func NewTopicProgressClient(c config) *TopicProgressClient {
	return &TopicProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicprogress.Hooks(f(g(h())))`.
func (c *TopicProgressClient) Use(hooks ...Hook) {
	c.hooks.TopicProgress = append(c.hooks.TopicProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicprogress.Intercept(f(g(h())))`.
func (c *TopicProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicProgress = append(c.inters.TopicProgress, interceptors...)
}

// Create returns a builder for creating a TopicProgress entity.
func (c *TopicProgressClient) Create() *TopicProgressCreate {
	mutation := newTopicProgressMutation(c.config, OpCreate)
	return &TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicProgress entities.
func (c *TopicProgressClient) CreateBulk(builders ...*TopicProgressCreate) *TopicProgressCreateBulk {
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicProgressClient) MapCreateBulk(slice any, setFunc func(*TopicProgressCreate, int)) *TopicProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicProgressCreateBulk{err: fmt.Errorf("calling to TopicProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicProgress.
func (c *TopicProgressClient) Update() *TopicProgressUpdate {
	mutation := newTopicProgressMutation(c.config, OpUpdate)
	return &TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicProgressClient) UpdateOne(_m *TopicProgress) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgress(_m))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicProgressClient) UpdateOneID(id string) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgressID(id))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicProgress.
func (c *TopicProgressClient) Delete() *TopicProgressDelete {
	mutation := newTopicProgressMutation(c.config, OpDelete)
	return &TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicProgressClient) DeleteOne(_m *TopicProgress) *TopicProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicProgressClient) DeleteOneID(id string) *TopicProgressDeleteOne {
	builder := c.Delete().Where(topicprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicProgressDeleteOne{builder}
}

// Query returns a query builder for TopicProgress.
func (c *TopicProgressClient) Query() *TopicProgressQuery {
	return &TopicProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicProgress entity by its id.
func (c *TopicProgressClient) Get(ctx context.Context, id string) (*TopicProgress, error) {
	return c.Query().Where(topicprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicProgressClient) GetX(ctx context.Context, id string) *TopicProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicProgressClient) Hooks() []Hook {
	return c.hooks.TopicProgress
}

// Interceptors returns the client interceptors.
func (c *TopicProgressClient) Interceptors() []Interceptor {
	return c.inters.TopicProgress
}

func (c *TopicProgressClient) mutate(ctx context.Context, m *TopicProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExamQuestion, LLMRequestEvent, LearningSession, Lesson, RemediationMessage,
		RemediationThread, StudentModel, Topic, TopicProgress []ent.Hook
	}
	inters struct {
		ExamQuestion, LLMRequestEvent, LearningSession, Lesson, RemediationMessage,
		RemediationThread, StudentModel, Topic, TopicProgress []ent.Interceptor
	}
)
