// Package api is the HTTP client for the BuildIT backend.
//
// The backend exposes three endpoints:
//
//	GET  /api/kits      -> []Kit
//	POST /api/generate  -> GenerationResult (body: GenerationRequest)
//	GET  /health        -> HealthStatus
//
// Non-2xx responses carry a JSON body with a "detail" field. A string
// detail is surfaced verbatim through (*Error).Error(); structured details
// (for example validation error lists) are JSON-encoded. Requests are never
// retried.
//
// # Usage
//
//	client := api.NewClient("http://localhost:8000")
//	kits, err := client.ListKits(ctx)
//
//	result, err := client.Generate(ctx, api.GenerationRequest{
//	    Mode: api.ModeReverse,
//	    Goal: "pick up small objects",
//	})
//	if api.IsHTTPError(err) {
//	    fmt.Println(err) // the backend's detail
//	}
package api
