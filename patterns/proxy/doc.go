// Package proxy demonstrates the Proxy pattern.
//
// NginxServer stands in front of an Application and applies per-URL rate
// limiting before forwarding requests.
package proxy
