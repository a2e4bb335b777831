package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	hideCursorSeq = "\033[?25l"
	showCursorSeq = "\033[?25h"
)

var spinnerFrames = []rune(`⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`)

// Spinner is a terminal progress indicator animated by its own goroutine
// between Start and Stop.
type Spinner struct {
	// StopMsg is written once the animation has been erased.
	StopMsg string

	mu       sync.Mutex
	out      io.Writer
	interval time.Duration
	message  string
	hide     bool
	last     string

	stop chan struct{}
	done chan struct{}
}

// NewSpinner returns a spinner writing to the standard error.
func NewSpinner(msg string, d time.Duration, hideCursor bool) *Spinner {
	return NewSpinnerTo(os.Stderr, msg, d, hideCursor)
}

// NewSpinnerTo returns a spinner writing to w.
func NewSpinnerTo(w io.Writer, msg string, d time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		out:      w,
		interval: d,
		message:  msg,
		hide:     hideCursor,
	}
}

// Start starts the animation. Starting a running spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return
	}
	if s.hide && runtime.GOOS != "windows" {
		fmt.Fprint(s.out, hideCursorSeq)
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

func (s *Spinner) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for i := 0; ; i++ {
		s.draw(spinnerFrames[i%len(spinnerFrames)])

		select {
		case <-stop:
			return
		case <-time.After(s.interval):
		}
	}
}

func (s *Spinner) draw(r rune) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := fmt.Sprintf("\r%s %s", s.message, DecorateText(string(r), SuccessMessage))
	fmt.Fprint(s.out, line)
	s.last = line
}

// Stop waits for the animation goroutine to exit, erases the spinner and
// writes StopMsg. Stopping a spinner which is not running does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	if s.hide && runtime.GOOS != "windows" {
		fmt.Fprint(s.out, showCursorSeq)
	}
	if s.StopMsg != "" {
		fmt.Fprint(s.out, s.StopMsg)
	}
}

// clear erases the last drawn line. The caller holds the lock.
func (s *Spinner) clear() {
	n := utf8.RuneCountInString(s.last)
	s.last = ""

	if runtime.GOOS == "windows" {
		fmt.Fprint(s.out, "\r"+strings.Repeat(" ", n)+"\r")
		return
	}
	var b strings.Builder
	for _, c := range []string{"\b", "\127", "\b", "\033[K"} { // "\033[K" for macOS Terminal
		b.WriteString(strings.Repeat(c, n))
	}
	b.WriteString("\r\033[K")
	fmt.Fprint(s.out, b.String())
}
