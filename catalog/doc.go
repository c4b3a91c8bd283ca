// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog defines the filterable attribute groups of the wishlist.

# Groups

Each group has a display title, a stable key used in tokens and query
strings, an ordered list of allowed values and a display color:

	repos      Repository  repo      webpack/webpack, vercel/next.js
	libraries  Libraries   library   React, Vue
	labels     Labels      label     FE, BE
	languages  Language    language  JavaScript, TypeScript, GoLang, Rust

# Loading

The built-in catalog is returned by Default. A YAML file can replace it:

	groups:
	  - name: repos
	    title: Repository
	    key: repo
	    color: primary
	    items: [webpack/webpack, vercel/next.js]

	cat, err := catalog.Load("catalog.yaml")

The catalog is immutable once built.

# Lookup

Lookup resolves a "key:value" token to its group. Tokens with an unknown key
or a value outside the group's items are reported as not found; callers
treat them as opaque.
*/
package catalog
