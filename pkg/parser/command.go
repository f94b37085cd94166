package parser

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Location represents position in source code.
type Location struct {
	Line   uint
	Column uint
}

// Command represents a parsed simple command with metadata.
type Command struct {
	Name     string   // Command name (e.g., "rm")
	Args     []string // Command arguments
	Location Location // Position in source
}

// String returns a string representation of the command.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}

// FullCommand returns the complete command as a string slice.
func (c *Command) FullCommand() []string {
	result := []string{c.Name}
	result = append(result, c.Args...)

	return result
}

// wordToString converts syntax.Word to string, handling quotes.
// Expansions that cannot be resolved statically are dropped.
func wordToString(word *syntax.Word) string {
	if word == nil {
		return ""
	}

	var result strings.Builder

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			result.WriteString(p.Value)
		case *syntax.SglQuoted:
			result.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, dqPart := range p.Parts {
				if lit, ok := dqPart.(*syntax.Lit); ok {
					result.WriteString(lit.Value)
				}
			}
		}
	}

	return result.String()
}

// wordsToStrings converts a slice of words to strings.
func wordsToStrings(words []*syntax.Word) []string {
	result := make([]string, 0, len(words))

	for _, word := range words {
		result = append(result, wordToString(word))
	}

	return result
}
