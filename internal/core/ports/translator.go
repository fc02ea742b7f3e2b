package ports

// Translator resolves display strings for the active locale.
type Translator interface {
	T(key string) string
}
