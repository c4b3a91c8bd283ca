// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fetcher loads wishlist results for a filter set.

# Client

Client.List sends GET /api/wishlist with one query pair per token and
decodes the item array. Non-2xx responses become a *StatusError carrying
the server's message. There are no retries.

# Keys

Every request is tagged with Key(set), the sorted token list. A Tracker
keeps the latest key; Apply ignores results for any other key, so a slow
response for an old filter never replaces a newer one:

	key, ok := tracker.Begin(set)
	if ok {
		items, err := client.List(ctx, set)
		tracker.Apply(fetcher.Result{Key: key, Items: items, Err: err})
	}

Fetcher wraps the same flow in a goroutine per request.
*/
package fetcher
