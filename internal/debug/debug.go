// Package debug prints color-coded diagnostic messages gated by a verbosity
// threshold. A message carries a level from 1 to 10; it is printed only when
// the level is at or below the current threshold. The default threshold of 0
// silences everything.
package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// maxLevel is the highest level with a color mapping. Messages above it
// never print, whatever the threshold.
const maxLevel = 10

// levelColors frames each level's output block: black text on a background
// that cycles red, green, yellow, blue, magenta, cyan, then repeats from red
// for the high levels.
var levelColors = map[int]*color.Color{
	1:  color.New(color.FgBlack, color.BgRed),
	2:  color.New(color.FgBlack, color.BgGreen),
	3:  color.New(color.FgBlack, color.BgYellow),
	4:  color.New(color.FgBlack, color.BgBlue),
	5:  color.New(color.FgBlack, color.BgMagenta),
	6:  color.New(color.FgBlack, color.BgCyan),
	7:  color.New(color.FgBlack, color.BgRed),
	8:  color.New(color.FgBlack, color.BgRed),
	9:  color.New(color.FgBlack, color.BgGreen),
	10: color.New(color.FgBlack, color.BgYellow),
}

// Printer writes gated debug messages to a single destination.
type Printer struct {
	threshold int
	out       io.Writer
}

// New creates a Printer writing to out with the threshold at 0, so nothing
// prints until SetThreshold raises it.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// SetThreshold sets the verbosity threshold. Messages print when their
// level is between 1 and the threshold inclusive.
func (p *Printer) SetThreshold(level int) {
	p.threshold = level
}

// Threshold returns the current verbosity threshold.
func (p *Printer) Threshold() int {
	return p.threshold
}

// Option annotates a message with its origin.
type Option func(*entry)

type entry struct {
	module   string
	class    string
	function string
}

// Module labels the message with the originating module.
func Module(name string) Option {
	return func(e *entry) {
		e.module = name
	}
}

// Class labels the message with the originating type.
func Class(name string) Option {
	return func(e *entry) {
		e.class = name
	}
}

// Function labels the message with the originating function.
func Function(name string) Option {
	return func(e *entry) {
		e.function = name
	}
}

// Print writes msg as a color-framed block when level is within 1..10 and
// at or below the threshold. Outside that range it does nothing. The block
// is a blank line, the level header, any origin labels, the message, and a
// closing blank line.
func (p *Printer) Print(level int, msg string, opts ...Option) {
	if level < 1 || level > maxLevel || level > p.threshold {
		return
	}

	var e entry
	for _, opt := range opts {
		opt(&e)
	}

	c := levelColors[level]
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, c.Sprintf("Debug level: %d", level))
	if e.module != "" {
		fmt.Fprintln(p.out, c.Sprintf("Module: %s", e.module))
	}
	if e.class != "" {
		fmt.Fprintln(p.out, c.Sprintf("Class: %s", e.class))
	}
	if e.function != "" {
		fmt.Fprintln(p.out, c.Sprintf("Function: %s", e.function))
	}
	fmt.Fprintln(p.out, c.Sprint(msg))
	fmt.Fprintln(p.out)
}

// Printf formats and prints like Print.
func (p *Printer) Printf(level int, format string, args ...any) {
	p.Print(level, fmt.Sprintf(format, args...))
}

// std is the process-wide default printer, mirroring the stdlib log setup.
var std = New(os.Stdout)

// SetThreshold sets the default printer's threshold.
func SetThreshold(level int) {
	std.SetThreshold(level)
}

// Threshold returns the default printer's threshold.
func Threshold() int {
	return std.Threshold()
}

// Print writes to the default printer.
func Print(level int, msg string, opts ...Option) {
	std.Print(level, msg, opts...)
}

// Printf formats and writes to the default printer.
func Printf(level int, format string, args ...any) {
	std.Printf(level, format, args...)
}
