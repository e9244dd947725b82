// Package catalog holds the clinic's fixed list of treatments and prices.
package catalog

import "strings"

// Service is one treatment offered by the clinic. Price is in whole rupees.
type Service struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Benefits         []string `json:"benefits"`
	Icon             string   `json:"icon"`
	Price            int      `json:"price"`
}

// Catalog is a read-only set of services in display order.
type Catalog struct {
	services []Service
	byID     map[string]int
}

// New builds a catalog from the given services. Later duplicates of an id are ignored.
func New(services []Service) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(services))}
	for _, svc := range services {
		if _, dup := c.byID[svc.ID]; dup {
			continue
		}
		c.byID[svc.ID] = len(c.services)
		c.services = append(c.services, clone(svc))
	}
	return c
}

// Default returns the clinic's built-in catalog.
func Default() *Catalog {
	return New(defaultServices)
}

// Lookup resolves a service id. The returned value is a copy.
func (c *Catalog) Lookup(id string) (Service, bool) {
	if c == nil {
		return Service{}, false
	}
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Service{}, false
	}
	return clone(c.services[idx]), true
}

// All returns copies of every service in display order.
func (c *Catalog) All() []Service {
	if c == nil {
		return nil
	}
	out := make([]Service, 0, len(c.services))
	for _, svc := range c.services {
		out = append(out, clone(svc))
	}
	return out
}

// IDs lists service ids in display order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.services))
	for _, svc := range c.services {
		ids = append(ids, svc.ID)
	}
	return ids
}

func clone(svc Service) Service {
	svc.Benefits = append([]string(nil), svc.Benefits...)
	return svc
}
