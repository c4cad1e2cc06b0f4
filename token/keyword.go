package token

// Keywords recognized in value position.
const (
	KeywordNone  = "None"
	KeywordTrue  = "true"
	KeywordFalse = "false"
)

func Keywords() []string {
	return []string{KeywordNone, KeywordTrue, KeywordFalse}
}
