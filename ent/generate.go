// Package ent holds the generated ent client. Run go generate to produce
// it from the schemas in ./schema; generated code is not checked in.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
