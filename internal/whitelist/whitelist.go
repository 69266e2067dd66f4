// Package whitelist suppresses detections whose exact value is explicitly
// exempted, e.g. a public hotline number or a support mailbox.
package whitelist

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piigate/piigate/internal/types"
)

// fileShape is the on-disk YAML document: three named lists of exact strings.
type fileShape struct {
	Phones   []string `yaml:"phones"`
	Emails   []string `yaml:"emails"`
	Accounts []string `yaml:"accounts"`
}

// Whitelist holds exact-match exemption sets for the whitelist-eligible
// categories. It is built once at startup and is safe for concurrent reads.
type Whitelist struct {
	phones   map[string]struct{}
	emails   map[string]struct{}
	accounts map[string]struct{}
}

// Empty returns a whitelist that exempts nothing.
func Empty() *Whitelist {
	return &Whitelist{
		phones:   map[string]struct{}{},
		emails:   map[string]struct{}{},
		accounts: map[string]struct{}{},
	}
}

// New builds a whitelist from explicit value lists.
func New(phones, emails, accounts []string) *Whitelist {
	w := Empty()
	for _, p := range phones {
		w.phones[p] = struct{}{}
	}
	for _, e := range emails {
		w.emails[e] = struct{}{}
	}
	for _, a := range accounts {
		w.accounts[a] = struct{}{}
	}
	return w
}

// Load reads a whitelist YAML file. A missing or malformed file degrades to
// an empty whitelist; loading never fails startup.
func Load(path string) (*Whitelist, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Empty(), err
	}
	var fs fileShape
	if err := yaml.Unmarshal(b, &fs); err != nil {
		return Empty(), err
	}
	return New(fs.Phones, fs.Emails, fs.Accounts), nil
}

// Contains reports whether the exact value is exempted for the category.
// Only PHONE, EMAIL and ACCOUNT are whitelist-eligible; every other category
// always returns false.
func (w *Whitelist) Contains(cat types.Category, value string) bool {
	if w == nil {
		return false
	}
	switch cat {
	case types.CatPhone:
		_, ok := w.phones[value]
		return ok
	case types.CatEmail:
		_, ok := w.emails[value]
		return ok
	case types.CatAccount:
		_, ok := w.accounts[value]
		return ok
	}
	return false
}

// Size returns the total number of exempted values, for startup logging.
func (w *Whitelist) Size() int {
	if w == nil {
		return 0
	}
	return len(w.phones) + len(w.emails) + len(w.accounts)
}
