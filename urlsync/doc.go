// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package urlsync maps filter sets to and from query strings.

# Encoding

Filters travel as repeated key=value pairs, one per token:

	?repo=vercel%2Fnext.js&label=FE  <->  {"repo:vercel/next.js", "label:FE"}

Decode keeps pair order and drops duplicates. Unknown keys are kept as
opaque tokens. Encode splits each token at its first ':'.

# Sync

Mount reads the query exactly once. After that, Write pushes every changed
set to the History as a non-navigating replace:

	loc, _ := urlsync.NewLocation("http://localhost:3318/wishlist?label=FE")
	sync := urlsync.Mount(loc, loc.RawQuery())
	state := filter.NewState(sync.Initial())
	...
	sync.Write(state.Set)
*/
package urlsync
