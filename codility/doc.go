// Package codility provides a client for interacting with the Codility API.
//
// Codility is a technical assessment platform. This package implements a
// thin, typed Go client covering the documented endpoints: account
// information, CodeLive sessions, email templates, candidate sessions and
// test administration.
//
// # Usage
//
// Create a new client with your API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := codility.NewClient(
//		"your-api-key",
//		logger,
//		codility.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	tests, err := client.ListTests(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every method maps to exactly one endpoint and blocks until the response
// arrives. The client holds no mutable state after construction, performs no
// retries and no caching, and leaves pagination, backoff and credential
// sourcing to the caller.
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrMissingAPIKey: client constructed without a credential
//   - ValidationError: a required parameter was missing or empty; returned
//     before any request is sent
//   - APIError: any response with status >= 400, carrying the status code
//     and raw body
//   - TransportError: network-level failures (DNS, connection refused,
//     timeout), distinct from HTTP error responses
//
// API errors include helper methods for classification:
//
//	if apiErr, ok := err.(*codility.APIError); ok {
//		if apiErr.IsUnauthorized() {
//			// Handle auth failure
//		}
//	}
package codility
