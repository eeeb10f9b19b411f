// Package showcase walks through every closure-backed component using the
// configured inputs and prints what each one does.
package showcase

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/app/config"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/pkg/course"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/pkg/friends"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/pkg/idgen"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/pkg/multiples"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/interfaces"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/logger"
)

// Runner prints the showcase to out
type Runner struct {
	cfg      *config.Config
	out      *printer
	logger   *logger.Logger
	recorder interfaces.Recorder
}

// Result is what the showcase computed, for callers that want more than text
type Result struct {
	IDs        []int
	Friends    []string
	Removed    string
	Topic      string
	Instructor string
	Students   []string
	Sum        int
	SumDefined bool
}

// New creates a Runner. A nil recorder disables metrics.
func New(cfg *config.Config, out io.Writer, log *logger.Logger, recorder interfaces.Recorder) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	if recorder == nil {
		recorder = interfaces.NopRecorder{}
	}
	return &Runner{
		cfg:      cfg,
		out:      &printer{w: out},
		logger:   log.Named("showcase"),
		recorder: recorder,
	}
}

// Run executes every section in order. The only error it returns is a failure
// to write to out.
func (r *Runner) Run() (*Result, error) {
	result := &Result{}

	r.out.println("=== Testing Closures ===")

	r.identifiers(result)
	r.friendList(result)
	r.courseRoster(result)
	r.sumOfMultiples(result)

	r.out.println("=== End Testing Closures ===")

	if r.out.err != nil {
		return nil, fmt.Errorf("failed to write showcase output: %w", r.out.err)
	}
	return result, nil
}

func (r *Runner) identifiers(result *Result) {
	r.out.println("--- Identifier factory ---")

	opts := []idgen.Option{idgen.WithLogger(r.logger.Logger), idgen.WithRecorder(r.recorder)}
	next := idgen.New(opts...)
	result.IDs = idgen.Take(next, r.cfg.IDCount)
	for _, id := range result.IDs {
		r.out.printf("ID: %d\n", id)
	}

	// A second generator starts over at 1.
	other := idgen.New(opts...)
	r.out.printf("Second generator ID: %d\n", other())

	r.logger.Info("Identifiers generated", zap.Int("count", len(result.IDs)))
}

func (r *Runner) friendList(result *Result) {
	r.out.println("--- Friend list ---")

	registry := friends.New(
		friends.WithOutput(r.out),
		friends.WithLogger(r.logger.Logger),
		friends.WithRecorder(r.recorder),
	)

	registry.DisplayFriends()
	for _, name := range r.cfg.Friends {
		registry.AddFriend(name)
	}
	registry.DisplayFriends()

	if r.cfg.RemoveFriend != "" {
		if removed, ok := registry.RemoveFriend(r.cfg.RemoveFriend); ok {
			result.Removed = removed
		}
		registry.DisplayFriends()
	}

	result.Friends = registry.Friends()

	r.logger.Info("Friend list built",
		zap.Int("count", len(result.Friends)),
		zap.String("removed", result.Removed),
	)
}

func (r *Runner) courseRoster(result *Result) {
	r.out.println("--- Course roster ---")

	c := course.New(r.cfg.CourseTopic, r.cfg.CourseInstructor,
		course.WithLogger(r.logger.Logger),
		course.WithRecorder(r.recorder),
	)
	for _, name := range r.cfg.Students {
		c.AddStudent(name)
	}

	result.Topic = c.Topic()
	result.Instructor = c.Instructor()
	result.Students = c.Students()

	r.out.printf("%s taught by %s\n", c.Topic(), c.Instructor())
	r.out.printf("Students: %v\n", result.Students)

	r.logger.Info("Course roster built",
		zap.String("topic", c.Topic()),
		zap.Int("students", len(result.Students)),
	)
}

func (r *Runner) sumOfMultiples(result *Result) {
	r.out.println("--- Sum of multiples ---")

	sum, ok := multiples.Sum(r.cfg.Values, r.cfg.Factor)
	result.Sum, result.SumDefined = sum, ok

	if !ok {
		r.recorder.RecordSumOfMultiples(interfaces.ResultInvalidFactor)
		r.out.printf("Sum of multiples of %d in %v is undefined\n", r.cfg.Factor, r.cfg.Values)
		r.logger.Warn("Sum of multiples requested with zero factor", zap.Ints("values", r.cfg.Values))
		return
	}

	r.recorder.RecordSumOfMultiples(interfaces.ResultOK)
	r.out.printf("Sum of multiples of %d in %v is %d\n", r.cfg.Factor, r.cfg.Values, sum)
}

// printer remembers the first write error so sections can print freely
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	if err != nil {
		p.err = err
	}
	return n, err
}

func (p *printer) println(msg string) {
	fmt.Fprintln(p, msg)
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p, format, args...)
}
