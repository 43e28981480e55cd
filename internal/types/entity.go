package types

// EntityID is the stable identifier of a simulated entity. Zero is never issued.
type EntityID uint64
