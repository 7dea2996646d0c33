// Package graphql provides the GraphQL transport layer for the StudyQuest
// backend: the executable schema, resolvers, per-request dataloaders and
// domain error mapping. Execution code in generated/ is produced by gqlgen
// from the schema files.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
