package models

import "sort"

// Catalog maps a category name to the styled titles of its entries.
type Catalog map[string][]string

// Categories returns the category names in sorted order so that a
// seeded roll always lands on the same pick.
func (c Catalog) Categories() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the styled titles registered under a category.
func (c Catalog) Entries(name string) []string {
	return c[name]
}
