// Package derpi provides a read-only client for the Derpibooru/Philomena
// image-board API.
//
// # Overview
//
// The Client is the single entry point. One method exists per resource:
//
//	client, err := derpi.NewClient(derpi.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	img, err := client.FetchImage(ctx, 1587999)
//	user, err := client.FetchUser(ctx, "Bytewave")
//	tag, err := client.FetchTag(ctx, "rainbow dash", nil)
//	results, err := client.Search(ctx, derpi.SearchOptions{Query: "pinkie pie"})
//
// All operations take a context and return either a hydrated value or an
// error; there are no partial results.
//
// # Cross-references
//
// Domain objects hold raw ids and names, never a client. Resolving a
// reference into the related object is always an explicit Client call:
//
//	uploader, err := client.FetchUploader(ctx, img)
//	tags := client.ImageTags(img)
//	first, ok, err := tags.First(ctx)
//
// ImageTags and ImpliedTags return a lazy collection (see the collection
// subpackage) that fetches each tag at most once, on first access.
//
// # ID resolution
//
// The API exposes users and tags by slug only. FetchUserByID and
// FetchTagByID bridge the gap by probing zero-prefixed numeric slugs
// ("0340598", "00340598", ...) until the API canonicalizes one to an entity
// with the requested id, then remember the winning slug for the lifetime of
// the Client. The probe gives up after ten attempts with a
// ResolutionExhaustedError. This mirrors a quirk of the backing service; the
// attempt semantics are deliberate and should not be "improved".
//
// # Pagination
//
// Search, tag and comment results carry the query state they were produced
// with. NextSearchPage, NextTagPage and NextCommentsPage replay that state
// with the page number incremented and return a fresh result value; the
// original is never mutated.
//
// # Errors
//
// Failures are typed so callers can branch on kind with errors.As:
//
//   - TransportError: the request never completed (DNS, connect, timeout)
//   - UnexpectedStatusError: any HTTP status other than 200 or 301
//   - DecodeError: the response body was not the expected JSON shape
//   - ResolutionExhaustedError: the id-to-slug probe ran out of attempts
//   - InvalidArgumentError: an invalid parameter combination, detected
//     before any network traffic
//
// The client applies no retries, backoff or rate limiting; those policies
// belong to the caller.
package derpi
