package parser

import "strconv"

// parseInt32 converts a lexed INTEGER token's text (which may carry a
// leading "-" folded in by the lexer, spec §9.2) into an int32.
func parseInt32(text string) (int32, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// parseFloat32 converts a lexed FLOAT token's text into a float32.
func parseFloat32(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}
