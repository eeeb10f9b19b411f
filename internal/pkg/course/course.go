// Package course pairs a fixed topic and instructor with a private roster of
// enrolled students.
package course

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/interfaces"
)

// Course is created by New. Topic and instructor never change after
// creation; the roster is only reachable through the methods below.
type Course struct {
	topic      string
	instructor string

	mu       sync.Mutex
	students []string

	logger   *zap.Logger
	recorder interfaces.Recorder
}

// Option configures a Course
type Option func(*Course)

// WithLogger sets the logger used for debug output
func WithLogger(l *zap.Logger) Option {
	return func(c *Course) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder sets where roster operations are counted
func WithRecorder(rec interfaces.Recorder) Option {
	return func(c *Course) {
		if rec != nil {
			c.recorder = rec
		}
	}
}

// New returns a course with an empty roster
func New(topic, instructor string, opts ...Option) *Course {
	c := &Course{
		topic:      topic,
		instructor: instructor,
		students:   []string{},
		logger:     zap.NewNop(),
		recorder:   interfaces.NopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("topic", topic))
	return c
}

func (c *Course) Topic() string      { return c.topic }
func (c *Course) Instructor() string { return c.instructor }

// AddStudent appends name to the roster. Duplicates are kept.
func (c *Course) AddStudent(name string) {
	c.mu.Lock()
	c.students = append(c.students, name)
	count := len(c.students)
	c.mu.Unlock()

	c.recorder.RecordRosterOperation(interfaces.RosterStudents, interfaces.OperationAdd, interfaces.ResultOK)
	c.logger.Debug("student added", zap.String("name", name), zap.Int("count", count))
}

// RemoveStudent removes the first student equal to name and reports whether
// one was found. A missing name leaves the roster untouched.
func (c *Course) RemoveStudent(name string) bool {
	c.mu.Lock()
	index := slices.Index(c.students, name)
	if index != -1 {
		c.students = slices.Delete(c.students, index, index+1)
	}
	c.mu.Unlock()

	if index == -1 {
		c.recorder.RecordRosterOperation(interfaces.RosterStudents, interfaces.OperationRemove, interfaces.ResultNotFound)
		c.logger.Debug("student not found", zap.String("name", name))
		return false
	}

	c.recorder.RecordRosterOperation(interfaces.RosterStudents, interfaces.OperationRemove, interfaces.ResultOK)
	c.logger.Debug("student removed", zap.String("name", name))
	return true
}

// Students returns a copy of the roster in enrollment order
func (c *Course) Students() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.students)
}
