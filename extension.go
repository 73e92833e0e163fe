package st00012

// Extension is a host-supplied requisite outside the built-in
// dictionary. Implementations are best kept as small closed sets with
// one fixed wire key per member.
type Extension interface {
	// Key returns the wire key of the requisite.
	Key() string

	// Value returns the wire value of the requisite.
	Value() string
}

// ExtensionParserFunc converts an unrecognized wire pair into an
// Extension. Parsers consult it only for keys outside the built-in
// dictionary; returning an error fails or drops the pair depending on
// the active Policy.
type ExtensionParserFunc func(key, value string) (Extension, error)

// noExtensions is the default ExtensionParserFunc: every unknown key
// fails with UnknownPairError.
func noExtensions(key, value string) (Extension, error) {
	return nil, &UnknownPairError{Key: key, Value: value}
}
