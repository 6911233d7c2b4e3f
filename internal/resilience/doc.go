// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes circuit breakers and retry logic used around external fetches and
// database operations.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.ExtractorConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return fetchPage(url)
//	})
//
//	err := retry.WithBackoff(ctx, retry.DefaultConfig(), func() error {
//	    return performOperation()
//	})
package resilience
