// Package seed holds the fixed collections the screens start from in place
// of a backend.
package seed

import (
	"archive/internal/catalog"
	"archive/internal/notify"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

func Artworks() []catalog.Item {
	return mustDecode[catalog.Item]("data/artworks.yaml")
}

func Bookmarks() []catalog.Item {
	return mustDecode[catalog.Item]("data/bookmarks.yaml")
}

func Notifications() []notify.Notification {
	return mustDecode[notify.Notification]("data/notifications.yaml")
}

func decode[T any](name string) ([]T, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %q: %w", name, err)
	}
	return out, nil
}

// The seed files are compiled in, so a decode failure is a build defect.
func mustDecode[T any](name string) []T {
	out, err := decode[T](name)
	if err != nil {
		panic(err)
	}
	return out
}
