// Package core provides a small, stable facade over piigate's internal
// pipeline for external integrations. It deliberately re-exports a narrow API
// surface so other programs can embed detection, scrubbing and the guard
// decision without depending on internal implementation packages.
//
// Example:
//
//	svc := core.New(nil)
//	res := svc.Scrub(ctx, "연락처는 010-1234-5678 입니다")
//	fmt.Println(res.Scrubbed)
package core
