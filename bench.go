// Package reloadbench measures page-reload latency of a local HTML file
// in a headless browser. A mock of the browser-extension host API is
// injected before any page script runs, so pages written for an
// extension context load standalone.
package reloadbench

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultIterations is the number of timed reloads per run.
	DefaultIterations = 10

	// DefaultSelector matches the last row the target page renders.
	// The page is considered ready once it appears.
	DefaultSelector = "tr:nth-child(255)"

	// DefaultTimeout bounds each navigation and wait step.
	DefaultTimeout = 30 * time.Second
)

// Bench drives one headless browser session through a warm-up load and
// a fixed number of timed reloads of the target page.
//
//	res, err := reloadbench.New().Iterations(20).Run()
type Bench struct {
	pagePath   string
	mockPath   string
	iterations int
	selector   string
	timeout    time.Duration
	headless   bool

	out    io.Writer
	logger *logrus.Logger
}

// New creates a benchmark with the defaults: 10 iterations, the 255th
// table row as the readiness condition, and the target page and mock
// script resolved next to the executable.
func New() *Bench {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	return &Bench{
		iterations: DefaultIterations,
		selector:   DefaultSelector,
		timeout:    DefaultTimeout,
		headless:   true,
		out:        os.Stdout,
		logger:     logger,
	}
}

// Page sets the target HTML file. An empty path means manage.html next
// to the executable.
func (b *Bench) Page(path string) *Bench {
	b.pagePath = path
	return b
}

// Mock sets the init script injected before every page load. An empty
// path means mock_chrome.js next to the executable.
func (b *Bench) Mock(path string) *Bench {
	b.mockPath = path
	return b
}

// Iterations sets how many timed reloads to run.
func (b *Bench) Iterations(n int) *Bench {
	b.iterations = n
	return b
}

// Selector sets the CSS selector whose presence marks the page as
// fully rendered.
func (b *Bench) Selector(sel string) *Bench {
	b.selector = sel
	return b
}

// Timeout sets the budget for each navigation and wait step.
func (b *Bench) Timeout(d time.Duration) *Bench {
	b.timeout = d
	return b
}

// Headless toggles headless mode, mostly useful for debugging a run
// with a visible browser.
func (b *Bench) Headless(enable bool) *Bench {
	b.headless = enable
	return b
}

// Output sets the writer for measurement lines. The per-iteration and
// average lines are the tool's contract, so they bypass the logger.
func (b *Bench) Output(w io.Writer) *Bench {
	b.out = w
	return b
}

// Logger sets the logger for diagnostics.
func (b *Bench) Logger(l *logrus.Logger) *Bench {
	b.logger = l
	return b
}

// Run executes the benchmark: acquire a browser, inject the mock, warm
// up, then reload-and-wait b.iterations times, timing each pass. Any
// launch, file-read or wait failure aborts the run with no result; the
// browser is closed on all exit paths.
func (b *Bench) Run() (*Result, error) {
	if b.iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrIterations, b.iterations)
	}

	pagePath, mockPath, err := b.resolvePaths()
	if err != nil {
		return nil, err
	}

	// Read the mock up front so a bad path fails before a browser is
	// ever launched.
	mock, err := os.ReadFile(mockPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMockScript, err)
	}

	l := launcher.New().Headless(b.headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	// Registered once per session, the script runs before the page's
	// own scripts on every navigation from here on, reloads included.
	if _, err := page.EvalOnNewDocument(string(mock)); err != nil {
		return nil, err
	}

	target := fileURL(pagePath)
	b.logger.WithFields(logrus.Fields{
		"url":      target,
		"mock":     mockPath,
		"selector": b.selector,
	}).Debug("session ready")

	fmt.Fprintln(b.out, "Warming up...")
	if err := b.open(page, target); err != nil {
		return nil, err
	}

	res := &Result{Samples: make([]float64, 0, b.iterations)}

	fmt.Fprintf(b.out, "Running %d iterations...\n", b.iterations)
	for i := 0; i < b.iterations; i++ {
		start := time.Now()
		if err := page.Timeout(b.timeout).Reload(); err != nil {
			return nil, err
		}
		if _, err := page.Timeout(b.timeout).Element(b.selector); err != nil {
			return nil, err
		}
		ms := float64(time.Since(start)) / float64(time.Millisecond)

		res.Samples = append(res.Samples, ms)
		fmt.Fprintf(b.out, "Iteration %d: %.2fms\n", i+1, ms)
	}

	fmt.Fprintf(b.out, "\nAverage time: %.2fms\n", res.Average())
	return res, nil
}

// open navigates to the target and blocks until the readiness selector
// matches. The warm-up pass primes layout and script caches so the
// first timed iteration is not penalized by one-time costs.
func (b *Bench) open(page *rod.Page, url string) error {
	if err := page.Timeout(b.timeout).Navigate(url); err != nil {
		return err
	}
	_, err := page.Timeout(b.timeout).Element(b.selector)
	return err
}
