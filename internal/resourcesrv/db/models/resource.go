package models

import "time"

/*
   Column     |   Type    | Nullable | Default
--------------+-----------+----------+------------------
 id           | integer   | not null | autoincrement
 name         | text      | not null |
 description  | text      |          |
 category     | text      |          |
 status       | text      | not null | 'active'
 created_at   | timestamp | not null | current timestamp
 updated_at   | timestamp | not null | current timestamp
Indexes:
    "resources_pkey" PRIMARY KEY (id)
    "idx_resources_created_at" btree (created_at)
*/

// DefaultStatus is assigned to resources created without a status.
const DefaultStatus = "active"

type Resource struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Category    *string   `db:"category" json:"category"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ResourceInput holds the fields accepted at creation. An empty Status means
// DefaultStatus.
type ResourceInput struct {
	Name        string
	Description *string
	Category    *string
	Status      string
}

// ResourceFilter narrows a listing. Empty fields do not filter.
type ResourceFilter struct {
	Name     string // substring, case-sensitive
	Category string
	Status   string
}

// Optional is a patch field. A Present field with a nil Value sets the column
// to NULL.
type Optional struct {
	Present bool
	Value   *string
}

// Set returns a present Optional holding v.
func Set(v string) Optional {
	return Optional{Present: true, Value: &v}
}

// Null returns a present Optional that clears the column.
func Null() Optional {
	return Optional{Present: true}
}

// ResourcePatch lists the columns an update should change.
type ResourcePatch struct {
	Name        Optional
	Description Optional
	Category    Optional
	Status      Optional
}

func (p ResourcePatch) IsEmpty() bool {
	return !p.Name.Present && !p.Description.Present && !p.Category.Present && !p.Status.Present
}
