// Package clientip determines the address of the client behind a request.
//
// Proxy headers are checked in priority order (Cloudflare, DigitalOcean,
// X-Forwarded-For, X-Real-IP) before falling back to RemoteAddr. Every
// candidate is parsed with net/netip; malformed values are skipped and
// IPv4-mapped IPv6 addresses are reported in IPv4 form.
//
// Only trust these headers when a proxy you control sets them. Pass the
// headers your proxy actually sets to Middleware, or call Resolve without
// headers to use RemoteAddr alone.
package clientip
