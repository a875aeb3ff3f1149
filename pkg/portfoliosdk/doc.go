// Package portfoliosdk provides a typed Go client for the portfolio
// allocation service, along with the request and response types shared by
// the service's own HTTP handlers.
//
// Basic usage:
//
//	client := portfoliosdk.NewClient("http://localhost:8080")
//	alloc, err := client.CreateAllocation(ctx, portfoliosdk.CreateAllocationRequest{
//		ClientID: 1,
//		AssetID:  2,
//		Quantity: 10,
//	})
//
// Errors returned by the service are surfaced as *APIError, with validation
// failures carrying per-field details in *ValidationAPIError.
package portfoliosdk
