package analyzer

import "regexp"

// jstsStrategy covers JavaScript and TypeScript in one pattern set:
// classes, interfaces, function declarations in their three common shapes,
// and Express-style route registrations.
type jstsStrategy struct{}

var (
	jsClassRe     = regexp.MustCompile(`(?:^|\s)class\s+(\w+)`)
	jsInterfaceRe = regexp.MustCompile(`(?:^|\s)interface\s+(\w+)`)
	jsFuncRe      = regexp.MustCompile(`(?:function\s+(\w+)|(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?\(|(\w+)\s*:\s*(?:async\s*)?\()`)
	jsRouteRe     = regexp.MustCompile(`(?:app|router)\.\s*(?:get|post|put|delete|patch|use)\s*\(\s*["']([^"']+)["']`)
)

func (jstsStrategy) Extract(content, relPath string) []Symbol {
	var syms []Symbol

	for _, m := range jsClassRe.FindAllStringSubmatchIndex(content, -1) {
		syms = append(syms, Symbol{
			Kind: KindClass,
			Name: content[m[2]:m[3]],
			File: relPath,
			Line: lineAt(content, m[0]),
		})
	}
	for _, m := range jsInterfaceRe.FindAllStringSubmatch(content, -1) {
		syms = append(syms, Symbol{Kind: KindInterface, Name: m[1], File: relPath})
	}
	for _, m := range jsFuncRe.FindAllStringSubmatchIndex(content, -1) {
		name := firstGroup(content, m)
		if len(name) > 1 {
			syms = append(syms, Symbol{
				Kind: KindFunction,
				Name: name,
				File: relPath,
				Line: lineAt(content, m[0]),
			})
		}
	}
	for _, m := range jsRouteRe.FindAllStringSubmatch(content, -1) {
		syms = append(syms, Symbol{Kind: KindAPIEndpoint, Name: m[1], File: relPath})
	}

	return syms
}

// firstGroup returns the text of the first capture group that matched
func firstGroup(content string, m []int) string {
	for g := 1; g*2 < len(m); g++ {
		if m[g*2] >= 0 {
			return content[m[g*2]:m[g*2+1]]
		}
	}
	return ""
}

func init() {
	registerStrategy(jstsStrategy{}, ".js", ".jsx", ".ts", ".tsx")
}
