package interfaces

// IIDGenerator hands out identifiers for new entities. Implementations must
// never return the same id twice for the same prefix within a process.
type IIDGenerator interface {
	NewID(prefix string) string
}
