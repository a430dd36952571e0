// Package resolver provides the batch resolution logic that turns a
// list of artist names into MusicBrainz IDs.
//
// # Resolver
//
// The Resolver processes names strictly sequentially:
//
//  1. Wait on the rate limiter (one request per configured delay)
//  2. Issue one search via the Lookup
//  3. On a transient failure, back off and retry up to the bound
//  4. Record the name as resolved or unresolved
//
// # Basic Usage
//
//	res := resolver.New(settings, mbClient, func(event resolver.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	results, err := res.Resolve(ctx, names)
//
// Resolution order always matches input order. In strict mode, any
// unresolved name turns into an aggregate error after the whole batch
// has been attempted; otherwise unresolved names are only visible in
// the per-name results.
package resolver
