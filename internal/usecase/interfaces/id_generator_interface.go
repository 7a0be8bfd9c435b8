package interfaces

// IIDGenerator hands out record identifiers. Two calls never return the same
// value, even within the same millisecond.

type IIDGenerator interface {
	NewID(prefix string) string
}
