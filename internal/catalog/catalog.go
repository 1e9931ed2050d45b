package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("item not found")
	ErrAlreadyExists      = errors.New("item already exists")
	ErrAlreadyInitialized = errors.New("catalog already initialized")
	ErrUnknownSort        = errors.New("unknown sort order")
)

// AllCategories is the category dropdown sentinel that disables the
// category clause.
const AllCategories = "all"

type FilterState struct {
	Query    string
	Category string
	Sort     SortOrder
}

type SortOrder string

const (
	SortBestMatch  SortOrder = "best-match"
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
	SortMostRated  SortOrder = "most-rated"
	SortLeastRated SortOrder = "least-rated"
)

var SortOrders = []SortOrder{SortBestMatch, SortAscending, SortDescending, SortMostRated, SortLeastRated}

func (o SortOrder) Label() string {
	switch o {
	case SortBestMatch:
		return "Best Match"
	case SortAscending:
		return "Title A-Z"
	case SortDescending:
		return "Title Z-A"
	case SortMostRated:
		return "Most Rated"
	case SortLeastRated:
		return "Least Rated"
	}
	return string(o)
}

// ParseSort accepts the canonical names, their short forms and every Label,
// as well as the legacy dropdown wording ("Most Few", "Least Few").
func ParseSort(s string) (SortOrder, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")
	switch norm {
	case "", string(SortBestMatch), "best":
		return SortBestMatch, nil
	case string(SortAscending), "asc", "title-a-z":
		return SortAscending, nil
	case string(SortDescending), "desc", "title-z-a":
		return SortDescending, nil
	case string(SortMostRated), "most-few", "most":
		return SortMostRated, nil
	case string(SortLeastRated), "least-few", "least":
		return SortLeastRated, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

type Facet struct {
	Category string
	Count    int
}
