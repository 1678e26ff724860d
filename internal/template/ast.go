package template

import "strings"

// The engine parses template source into a small tree over the grammar
//
//	TEXT | VAR | IF(name, BODY) | EACH(name, BODY)
//
// which is then evaluated once bottom-up against the environment. This
// replaces repeated marker rescanning: nesting falls out of the tree shape
// instead of a fixpoint loop.

type node interface {
	render(sb *strings.Builder, env *Environment, d *DomainRecord)
}

type nodeList []node

func (nl nodeList) render(sb *strings.Builder, env *Environment, d *DomainRecord) {
	for _, n := range nl {
		n.render(sb, env, d)
	}
}

// textNode is a literal run of template text.
type textNode string

func (t textNode) render(sb *strings.Builder, _ *Environment, _ *DomainRecord) {
	sb.WriteString(string(t))
}

// varNode is a bare uppercase-token placeholder. An unbound name renders
// its original marker text verbatim, supporting partial template authoring.
type varNode struct {
	name string
	raw  string
}

func (v varNode) render(sb *strings.Builder, env *Environment, d *DomainRecord) {
	if d != nil {
		if val, ok := domainValue(v.name, d); ok {
			sb.WriteString(val)
			return
		}
	}
	if val, ok := env.Lookup(v.name); ok {
		sb.WriteString(Stringify(val))
		return
	}
	sb.WriteString(v.raw)
}

// ifNode renders its body only when the named value is truthy. A falsy
// outer block suppresses its whole body, nested blocks included.
type ifNode struct {
	name string
	body nodeList
}

func (i ifNode) render(sb *strings.Builder, env *Environment, d *DomainRecord) {
	if !truthyInContext(i.name, env, d) {
		return
	}
	i.body.render(sb, env, d)
}

// eachNode instantiates its body once per domain record, concatenated in
// list order with no separator beyond what the template supplies.
type eachNode struct {
	name string
	body nodeList
}

func (e eachNode) render(sb *strings.Builder, env *Environment, _ *DomainRecord) {
	for idx := range env.Domains() {
		rec := env.Domains()[idx]
		e.body.render(sb, env, &rec)
	}
}

func truthyInContext(name string, env *Environment, d *DomainRecord) bool {
	if d != nil {
		if val, ok := domainValue(name, d); ok {
			return val != ""
		}
	}
	return env.Truthy(name)
}

// domainValue resolves the fixed per-item placeholder set inside an
// iteration block.
func domainValue(name string, d *DomainRecord) (string, bool) {
	switch name {
	case "DOMAIN_NAME":
		return d.Name, true
	case "DOMAIN_DESCRIPTION":
		return d.Description, true
	case "DOMAIN_ROOT_ENTITY":
		return d.RootEntity, true
	case "DOMAIN_ENTITIES":
		return strings.Join(d.Entities, ", "), true
	case "DOMAIN_DEPENDENCIES":
		if len(d.Dependencies) == 0 {
			return "None", true
		}
		return strings.Join(d.Dependencies, ", "), true
	case "DOMAIN_FEATURES":
		return strings.Join(d.Features, ", "), true
	default:
		return "", false
	}
}
