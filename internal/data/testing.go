package data

import "sync"

var loadOnce sync.Once

// MustLoadForTests loads skill and item tables once per test binary.
// Intended for tests from other packages that need data setup.
func MustLoadForTests() {
	loadOnce.Do(func() {
		if err := LoadSkills(); err != nil {
			panic(err)
		}
		if err := LoadItemTemplates(); err != nil {
			panic(err)
		}
	})
}
