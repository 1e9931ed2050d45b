package proptest

import (
	"archive/internal/catalog"

	"pgregory.net/rapid"
)

var (
	iterDirGen  = rapid.StringMatching(`[a-z]{8}`)
	titleGen    = rapid.StringMatching(`[A-Z][a-z]{2,8}( [A-Za-z][a-z]{1,8}){0,3}`)
	artistGen   = rapid.StringMatching(`([A-Z][a-z]{2,8} [A-Z][a-z]{2,10})?`)
	tagGen      = rapid.StringMatching(`[a-z]{3,8}`)
	queryGen    = rapid.StringMatching(`[a-zA-Z]{1,6}`)
	categoryGen = rapid.SampledFrom([]string{"Renaissance", "Baroque", "Impressionism", "Modern", "Ancient", "Medieval"})
	sortGen     = rapid.SampledFrom(catalog.SortOrders)
)

func filterStateGen() *rapid.Generator[catalog.FilterState] {
	return rapid.Custom(func(t *rapid.T) catalog.FilterState {
		var query string
		if rapid.Bool().Draw(t, "hasQuery") {
			query = queryGen.Draw(t, "query")
		}

		category := catalog.AllCategories
		if rapid.Bool().Draw(t, "hasCategory") {
			category = categoryGen.Draw(t, "category")
		}

		return catalog.FilterState{
			Query:    query,
			Category: category,
			Sort:     sortGen.Draw(t, "sort"),
		}
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("{"),
		rapid.Just("[{"),
		rapid.Just("{\"id\": \"x\"}"),
		rapid.Just("[1, 2, 3]"),
		rapid.Just("[{\"id\": 12}]"),
		rapid.Just("[{\"rating\": \"high\"}]"),
		rapid.Just("null"),
		rapid.Just(" null\n"),
		rapid.Just("null garbage"),
		rapid.StringMatching(`[^\[\]{}"n]{1,40}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(1, 64).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			// a trailing NUL keeps the document invalid whatever the prefix
			return "[" + string(bytes) + "\x00"
		}),
	)
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("values: [unclosed"),
		rapid.Just("values: {unclosed"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("values: [1, 2, 3]"),
	)
}
