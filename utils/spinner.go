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

// brushFrames sweeps a brush stroke back and forth.
var brushFrames = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█", "▉", "▊", "▋", "▌", "▍", "▎"}

// Spinner shows on a single terminal line the stage a painting job is in,
// an animated brush and the time elapsed since Start.
type Spinner struct {
	// StopMsg is printed in place of the line when the spinner stops.
	StopMsg string

	mu         sync.Mutex
	writer     io.Writer
	delay      time.Duration
	prefix     string
	stage      string
	started    time.Time
	lastWidth  int
	hideCursor bool
	done       chan struct{}
	exited     chan struct{}
}

// NewSpinner returns a spinner printing the prefix in front of the current stage.
// The frames are redrawn every delay.
func NewSpinner(prefix string, delay time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		writer:     os.Stderr,
		delay:      delay,
		prefix:     prefix,
		hideCursor: hideCursor,
	}
}

// SetWriter redirects the spinner output. It must be called before Start.
func (s *Spinner) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writer = w
}

// SetStage changes the stage shown from the next frame on.
func (s *Spinner) SetStage(stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stage = stage
}

// Start shows the spinner until Stop is called.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25l")
	}
	s.started = time.Now()
	s.done = make(chan struct{})
	s.exited = make(chan struct{})

	go s.run(s.done, s.exited)
}

func (s *Spinner) run(done <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for frame := 0; ; frame = (frame + 1) % len(brushFrames) {
		s.draw(brushFrames[frame])

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

// draw replaces the current line with the given frame.
func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := strings.TrimSpace(s.prefix + " " + s.stage)
	line = fmt.Sprintf("%s %s%s%s %s", line,
		SuccessColor, frame, DefaultColor, FormatTime(time.Since(s.started)))

	s.clear()
	fmt.Fprint(s.writer, line)
	s.lastWidth = utf8.RuneCountInString(line)
}

// Stop removes the spinner line, prints StopMsg if set and
// returns once the spinner is no longer drawn.
func (s *Spinner) Stop() {
	s.mu.Lock()
	done, exited := s.done, s.exited
	s.done, s.exited = nil, nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	close(done)
	<-exited

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	s.RestoreCursor()
	if s.StopMsg != "" {
		fmt.Fprint(s.writer, s.StopMsg)
	}
}

// RestoreCursor makes the cursor visible again.
func (s *Spinner) RestoreCursor() {
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25h")
	}
}

// clear deletes the last drawn line. The caller must hold the lock.
func (s *Spinner) clear() {
	if s.lastWidth == 0 {
		return
	}
	if runtime.GOOS == "windows" {
		fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", s.lastWidth)+"\r")
	} else {
		fmt.Fprint(s.writer, "\r\033[K")
	}
	s.lastWidth = 0
}
