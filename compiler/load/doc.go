// Package load reads GraphQL schema documents and indexes their object types.
package load
