package model

// Service is a priced catalog offering (spa, laundry, room service) as
// stored in the SERVICES table. It has no availability state.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – offering name, unique in the catalog.
//  Cost        – flat cost per request in cents.
//  Description – free-form description shown in the catalog.
type Service struct {
	ID          uint64 `json:"id"`          // services.service_id
	Name        string `json:"name"`        // services.name
	Cost        uint32 `json:"cost_cents"`  // services.cost
	Description string `json:"description"` // services.description
}
