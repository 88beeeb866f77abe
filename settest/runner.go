package settest

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/rdeusser/sets/set"
)

type options struct {
	logger *zap.Logger
	sizes  []Size
}

// Option configures a test run.
type Option func(*options)

// WithLogger logs skipped and failed tests to logger instead of the test
// log.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSizes restricts the run to the given subject sizes.
func WithSizes(sizes ...Size) Option {
	return func(o *options) {
		o.sizes = sizes
	}
}

// Report counts the outcome of a run.
type Report struct {
	Ran     int
	Skipped int
	Failed  int
}

func (r Report) String() string {
	return fmt.Sprintf("%s, %s, %s",
		color.GreenString("%d ran", r.Ran),
		color.YellowString("%d skipped", r.Skipped),
		color.RedString("%d failed", r.Failed),
	)
}

// SetTests returns every set test.
func SetTests[T comparable]() []Test[T] {
	var tests []Test[T]

	tests = append(tests, EqualsTests[T]()...)
	tests = append(tests, ContainsTests[T]()...)
	tests = append(tests, IterationTests[T]()...)
	tests = append(tests, AddTests[T]()...)
	tests = append(tests, RemoveTests[T]()...)

	return tests
}

// RunSetTests runs every set test against g.
func RunSetTests[T comparable](t *testing.T, g Generator[T], opts ...Option) Report {
	t.Helper()
	return Run(t, g, SetTests[T](), opts...)
}

// Run runs tests against subjects of every configured size built by g. Each
// test runs in a subtest named <generator>/<size>/<test>.
func Run[T comparable](t *testing.T, g Generator[T], tests []Test[T], opts ...Option) Report {
	t.Helper()

	checks := make([]check, 0, len(tests))
	for _, test := range tests {
		checks = append(checks, check{
			name:        test.Name,
			requirement: test.Requirement,
			run: func(t *testing.T, size Size) {
				test.Run(t, newSubject(g, size))
			},
		})
	}

	_, hasNil := (&Subject[T]{}).Nil()

	return runChecks(t, g.Name, g.features(), hasNil, checks, opts)
}

type check struct {
	name        string
	requirement Requirement
	run         func(t *testing.T, size Size)
}

func runChecks(t *testing.T, generator string, features *set.EnumSet[Feature], hasNil bool, checks []check, opts []Option) Report {
	t.Helper()

	o := options{sizes: Sizes()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = zaptest.NewLogger(t)
	}

	var (
		report Report
		logger = o.logger.With(zap.String("generator", generator), zap.Array("features", features))
	)

	for _, size := range o.sizes {
		for _, c := range checks {
			name := fmt.Sprintf("%s/%s/%s", generator, size, c.name)

			if reason := c.requirement.Check(features, size, hasNil); reason != "" {
				report.Skipped++
				logger.Debug("skipping test", zap.String("test", name), zap.String("reason", reason))
				continue
			}

			report.Ran++

			ok := t.Run(name, func(t *testing.T) {
				c.run(t, size)
			})

			if !ok {
				report.Failed++
				logger.Error("test failed", zap.String("test", name))
			}
		}
	}

	t.Logf("%s: %s", generator, report)

	return report
}
