package cli

import (
	"bar-finder/internal/domain"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	PathPrompt        = "Path to venues JSON file: "
	CoordinatesPrompt = "Current GPS coordinates (longitude latitude): "
)

// ParseCoordinates parses "longitude latitude" as two whitespace-separated numbers.
func ParseCoordinates(input string) (domain.Coordinates, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return domain.Coordinates{}, fmt.Errorf(
			"parse coordinates: %w: expected 2 values, got %d",
			domain.ErrInvalidCoordinateInput, len(fields),
		)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates: %w: longitude %q", domain.ErrInvalidCoordinateInput, fields[0])
	}

	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates: %w: latitude %q", domain.ErrInvalidCoordinateInput, fields[1])
	}

	c, err := domain.NewCoordinates(lat, lon)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates: %w: %w", domain.ErrInvalidCoordinateInput, err)
	}

	return c, nil
}

// Prompter asks questions on out and reads single-line answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes the prompt and returns the next input line without its line ending.
// A final line without a newline is accepted.
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
