package analyzer

import "regexp"

// javaStrategy extracts classes, Spring request mappings and JPA entities.
// Patterns are lexical, not grammar-aware: a string literal shaped like an
// annotation will produce a false positive, which is accepted imprecision.
type javaStrategy struct{}

var (
	javaClassRe       = regexp.MustCompile(`(?:public\s+)?(?:abstract\s+)?(?:final\s+)?(?:class|interface|enum)\s+(\w+)`)
	javaEndpointRe    = regexp.MustCompile(`@(?:RequestMapping|GetMapping|PostMapping|PutMapping|DeleteMapping|PatchMapping)\s*\(\s*(?:value\s*=\s*)?["']([^"']+)["']`)
	javaEntityRe      = regexp.MustCompile(`@(?:Entity|Table)\s`)
	javaEntityClassRe = regexp.MustCompile(`@(?:Entity|Table)[\s\S]{0,200}?class\s+(\w+)`)
)

func (javaStrategy) Extract(content, relPath string) []Symbol {
	var syms []Symbol

	for _, m := range javaClassRe.FindAllStringSubmatchIndex(content, -1) {
		syms = append(syms, Symbol{
			Kind: KindClass,
			Name: content[m[2]:m[3]],
			File: relPath,
			Line: lineAt(content, m[0]),
		})
	}
	for _, m := range javaEndpointRe.FindAllStringSubmatchIndex(content, -1) {
		syms = append(syms, Symbol{
			Kind: KindAPIEndpoint,
			Name: content[m[2]:m[3]],
			File: relPath,
			Line: lineAt(content, m[0]),
		})
	}
	if javaEntityRe.MatchString(content) {
		for _, m := range javaEntityClassRe.FindAllStringSubmatch(content, -1) {
			syms = append(syms, Symbol{
				Kind: KindDBEntity,
				Name: m[1],
				File: relPath,
			})
		}
	}

	return syms
}

func init() {
	registerStrategy(javaStrategy{}, ".java")
}
