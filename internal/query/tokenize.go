package query

import "strings"

// tokenize splits on whitespace. A double-quoted run is one token, so `""`
// yields an empty token.
func tokenize(input string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	inQuotes := false

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch c {
		case '"':
			if inQuotes {
				tokens = append(tokens, current.String())
				current.Reset()
				inQuotes = false
			} else {
				if current.Len() > 0 {
					tokens = append(tokens, current.String())
					current.Reset()
				}
				inQuotes = true
			}

		case ' ', '\t', '\n', '\r':
			if inQuotes {
				current.WriteByte(c)
				continue
			}

			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

		default:
			current.WriteByte(c)
		}
	}

	if inQuotes {
		return nil, ErrUnterminatedQuote
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}
