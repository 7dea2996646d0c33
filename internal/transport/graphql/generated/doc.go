// Package generated holds the gqlgen execution code for the schema under
// ../schema. generated.go and models_gen.go are written by
// `go generate ./internal/transport/graphql/...` and are not edited by hand.
package generated
