// Package metrics declares the service's Prometheus collectors, all under the
// "ncnews" namespace and registered on the default registry served at /metrics.
//
// HTTP collectors are labelled by normalized route so path parameters never
// become label values.
//
//	metrics.RecordVotes("article", delta)
//	metrics.RecordDBQuery("ArticleRepo.AddVotes", time.Since(start))
package metrics
