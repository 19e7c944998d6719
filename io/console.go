// Package io provides the operator console of the ReTI emulator.
// Debug instructions print to and read from it, and stepping mode waits on
// it between instructions.
package io

import (
	"bufio"
	"io"
	"strings"
)

// Console is a line-oriented operator terminal. A nil Input behaves as an
// exhausted stream and a nil Output discards everything.
type Console struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	source  io.Reader
}

// Rewind drops any buffered input.
func (con *Console) Rewind() {
	con.scanner = nil
	con.source = nil
}

// Writer returns the output stream.
func (con *Console) Writer() io.Writer {
	if con.Output == nil {
		return io.Discard
	}
	return con.Output
}

// Print writes text to the console output.
func (con *Console) Print(text string) (err error) {
	_, err = io.WriteString(con.Writer(), text)
	return
}

// Println writes text and a newline to the console output.
func (con *Console) Println(text string) (err error) {
	return con.Print(text + "\n")
}

// ReadLine prints the prompt, then reads one line of input without its line
// terminator.
func (con *Console) ReadLine(prompt string) (line string, err error) {
	if len(prompt) != 0 {
		err = con.Print(prompt)
		if err != nil {
			return
		}
	}

	if con.Input == nil {
		err = ErrConsoleClosed
		return
	}

	// Input may be swapped between reads.
	if con.scanner == nil || con.source != con.Input {
		con.scanner = bufio.NewScanner(con.Input)
		con.source = con.Input
	}

	if !con.scanner.Scan() {
		err = con.scanner.Err()
		if err == nil {
			err = ErrConsoleClosed
		}
		return
	}

	line = strings.TrimRight(con.scanner.Text(), "\r")
	return
}
