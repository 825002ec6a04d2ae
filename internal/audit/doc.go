// Package audit identifies who performs a write.
//
// Every store write receives an explicit Actor that ends up in the
// created_by / updated_by columns. Resolvers derive the actor for an
// incoming request: StaticResolver always answers with the service's own
// system identity, while TokenResolver accepts an optional HMAC-signed
// bearer token whose subject names the caller.
package audit
