// Package models defines the data types exchanged with the marketplace API.
package models

// Phone is a single listing in the marketplace catalog.
//
// Field names on the wire follow the upstream API: the identifier is
// serialized as "_id" and the tag list as "useIn". UseIn is an ordered
// sequence of category/use labels; duplicates are permitted. The catalog
// query engine treats Phone values as read-only — only the remote store
// mutates them.
type Phone struct {
	ID          string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	UseIn       []string `json:"useIn"`
}
