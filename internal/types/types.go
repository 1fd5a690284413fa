// internal/types/types.go
package types

// EntityID identifies a single ECS entity.
type EntityID uint64
