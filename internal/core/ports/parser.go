package ports

// Parser decodes permissive JSON (comments and trailing commas allowed).
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse returns the decoded value, which may be any JSON value.
	Parse(data []byte) (any, error)
}
