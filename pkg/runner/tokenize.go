package runner

import "strings"

// Tokenize splits an input line on single spaces.
// The first token is the command name and the rest are its arguments, so
// repeated spaces produce empty arguments. Blank lines report ok == false.
func Tokenize(line string) (name string, args []string, ok bool) {
	if strings.TrimSpace(line) == "" {
		return "", nil, false
	}
	tokens := strings.Split(line, " ")
	return tokens[0], tokens[1:], true
}
