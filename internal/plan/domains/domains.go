// Package domains defines the domain mapping section of a scaffold plan:
// the bounded contexts a generated project is partitioned into, and the
// dependency relation between them.
package domains

// Mapping is the set of bounded contexts declared by a scaffold plan.
type Mapping struct {
	// Domains is the ordered list of bounded contexts.
	Domains []Schema `json:"domains" toml:"domains"`

	// SharedEntities lists entity identifiers used by more than one domain.
	SharedEntities []string `json:"shared_entities,omitempty" toml:"shared_entities"`

	// DependencyGraph optionally declares the dependency relation explicitly,
	// domain name to the names it depends on. When empty, the relation is
	// derived from each schema's DependsOn list.
	DependencyGraph map[string][]string `json:"dependency_graph,omitempty" toml:"dependency_graph"`
}

// Schema describes one bounded context.
type Schema struct {
	// Name is a lowercase hyphenated token, e.g. "user-accounts".
	Name        string `json:"name"        toml:"name"`
	Description string `json:"description" toml:"description"`

	// RootEntity is the aggregate root entity identifier for this domain.
	RootEntity string `json:"root_entity" toml:"root_entity"`

	// Entities is the non-empty list of member entity identifiers.
	Entities []string `json:"entities" toml:"entities"`

	// Features optionally names the feature IDs this domain owns.
	Features []string `json:"features,omitempty" toml:"features"`

	// DependsOn lists the names of other domains this domain depends on.
	DependsOn []string `json:"depends_on,omitempty" toml:"depends_on"`
}

// Names returns the domain names in declaration order.
func (m *Mapping) Names() []string {
	names := make([]string, len(m.Domains))
	for i, d := range m.Domains {
		names[i] = d.Name
	}
	return names
}

// Edges returns the dependency relation as adjacency lists, preferring the
// explicit DependencyGraph when the plan declares one.
func (m *Mapping) Edges() map[string][]string {
	if len(m.DependencyGraph) > 0 {
		return m.DependencyGraph
	}

	edges := make(map[string][]string, len(m.Domains))
	for _, d := range m.Domains {
		edges[d.Name] = d.DependsOn
	}
	return edges
}
