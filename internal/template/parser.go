package template

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrUnclosedBlock indicates a block tag with no matching close tag.
	ErrUnclosedBlock = errors.New("unclosed block")

	// ErrUnexpectedCloseTag indicates a close tag with no open block.
	ErrUnexpectedCloseTag = errors.New("unexpected close tag")

	// ErrUnknownCollection indicates an each block over anything other than
	// the domains collection.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Tag patterns, anchored at the current scan position. Marker text that
// matches none of these is plain template text, not an error.
var (
	openIfPattern   = regexp.MustCompile(`^\{\{#if ([A-Za-z_][A-Za-z0-9_]*)\}\}`)
	openEachPattern = regexp.MustCompile(`^\{\{#each ([a-z][a-z0-9_]*)\}\}`)
	varPattern      = regexp.MustCompile(`^\{\{([A-Z][A-Z0-9_]*)\}\}`)
)

const (
	closeIfTag   = "{{/if}}"
	closeEachTag = "{{/each}}"
)

type parser struct {
	src string
	pos int
}

// parse builds the node tree for a template source.
func parse(src string) (nodeList, error) {
	p := &parser{src: src}
	nodes, closedBy, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if closedBy != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedCloseTag, closedBy)
	}
	return nodes, nil
}

// parseNodes consumes nodes until EOF or a close tag, returning the close
// tag it stopped at ("" at EOF). The caller that opened the block checks
// the close tag matches.
func (p *parser) parseNodes() (nodeList, string, error) {
	var nodes nodeList

	for p.pos < len(p.src) {
		next := strings.Index(p.src[p.pos:], "{{")
		if next < 0 {
			nodes = append(nodes, textNode(p.src[p.pos:]))
			p.pos = len(p.src)
			break
		}
		if next > 0 {
			nodes = append(nodes, textNode(p.src[p.pos:p.pos+next]))
			p.pos += next
		}

		rest := p.src[p.pos:]
		switch {
		case strings.HasPrefix(rest, closeIfTag):
			p.pos += len(closeIfTag)
			return nodes, closeIfTag, nil

		case strings.HasPrefix(rest, closeEachTag):
			p.pos += len(closeEachTag)
			return nodes, closeEachTag, nil

		case openIfPattern.MatchString(rest):
			m := openIfPattern.FindStringSubmatch(rest)
			p.pos += len(m[0])
			body, closedBy, err := p.parseNodes()
			if err != nil {
				return nil, "", err
			}
			if closedBy != closeIfTag {
				return nil, "", fmt.Errorf("%w: {{#if %s}}", ErrUnclosedBlock, m[1])
			}
			nodes = append(nodes, ifNode{name: m[1], body: body})

		case openEachPattern.MatchString(rest):
			m := openEachPattern.FindStringSubmatch(rest)
			if m[1] != DomainsCollection {
				return nil, "", fmt.Errorf("%w: %q", ErrUnknownCollection, m[1])
			}
			p.pos += len(m[0])
			body, closedBy, err := p.parseNodes()
			if err != nil {
				return nil, "", err
			}
			if closedBy != closeEachTag {
				return nil, "", fmt.Errorf("%w: {{#each %s}}", ErrUnclosedBlock, m[1])
			}
			nodes = append(nodes, eachNode{name: m[1], body: body})

		case varPattern.MatchString(rest):
			m := varPattern.FindStringSubmatch(rest)
			p.pos += len(m[0])
			nodes = append(nodes, varNode{name: m[1], raw: m[0]})

		default:
			// A lone "{{" that opens no recognized tag is template text.
			nodes = append(nodes, textNode("{{"))
			p.pos += 2
		}
	}

	return nodes, "", nil
}
