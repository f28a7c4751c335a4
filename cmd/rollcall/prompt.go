package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// terminalPrompter asks the operator for a new student's name on the
// terminal. Reading stdin can block for as long as the operator takes;
// the engine drops further scans in the meantime.
type terminalPrompter struct {
	in *bufio.Reader
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(os.Stdin)}
}

func (p *terminalPrompter) EnrollmentName(ctx context.Context, fingerprintID int) (string, error) {
	fmt.Printf("New fingerprint detected (FP ID: %d). Student name [Student %d]: ", fingerprintID, fingerprintID)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read enrollment name: %w", err)
	}
	return strings.TrimSpace(line), nil
}
