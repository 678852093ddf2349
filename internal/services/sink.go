package services

import (
	"errors"
	"image"
	"strings"
)

// User-facing messages
const (
	NoFolderMessage     = "Please select a data folder first!"
	InvalidInputMessage = "Invalid input, please make sure you enter numbers!"
)

var ErrNoFolder = errors.New("no folder selected")

// Sink receives everything an action shows the user: text lines for the
// results panel and the rendered plot.
type Sink interface {
	Clear()
	Append(line string)
	ShowImage(img image.Image, path string)
}

// appendBlock writes a multi-line block one line at a time
func appendBlock(out Sink, block string) {
	block = strings.TrimRight(block, "\n")
	if block == "" {
		return
	}
	for _, line := range strings.Split(block, "\n") {
		out.Append(line)
	}
}

// BufferSink collects output in memory. Used by the CLI and tests.
type BufferSink struct {
	Lines     []string
	Image     image.Image
	ImagePath string
	Clears    int
}

func (b *BufferSink) Clear() {
	b.Lines = nil
	b.Clears++
}

func (b *BufferSink) Append(line string) {
	b.Lines = append(b.Lines, line)
}

func (b *BufferSink) ShowImage(img image.Image, path string) {
	b.Image = img
	b.ImagePath = path
}

// Text returns the collected lines joined by newlines
func (b *BufferSink) Text() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return strings.Join(b.Lines, "\n") + "\n"
}
