package model

import "context"

// ReferenceKind identifies one of the administratively managed lookup
// tables a user row points at.
type ReferenceKind string

const (
	KindRole   ReferenceKind = "rol"
	KindRegion ReferenceKind = "region"
	KindStatus ReferenceKind = "estado"
)

// ReferenceStore defines persistence operations for one reference table.
// The user service consumes it read-only; Create exists for the
// administrative CRUD surface and first-run seeding.
type ReferenceStore interface {
	Exists(ctx context.Context, id int32) (bool, error)
	GetByID(ctx context.Context, id int32) (Reference, error)
	List(ctx context.Context) ([]Reference, error)
	Create(ctx context.Context, ref Reference) (Reference, error)
}

// Reference is a row of a reference table: role, region or status.
type Reference struct {
	ID   int32  `json:"id"`
	Name string `json:"nombre"`
}
