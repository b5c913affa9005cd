package analyzer

import "regexp"

// pythonStrategy extracts top-level classes and functions plus Flask and
// FastAPI route decorators.
type pythonStrategy struct{}

var (
	pyClassRe   = regexp.MustCompile(`(?m)^class\s+(\w+)`)
	pyFuncRe    = regexp.MustCompile(`(?m)^def\s+(\w+)\s*\(`)
	pyFlaskRe   = regexp.MustCompile(`@(?:app|bp|blueprint)\.route\s*\(\s*["']([^"']+)["']`)
	pyFastAPIRe = regexp.MustCompile(`@(?:app|router)\.\s*(?:get|post|put|delete|patch)\s*\(\s*["']([^"']+)["']`)
)

func (pythonStrategy) Extract(content, relPath string) []Symbol {
	var syms []Symbol

	for _, m := range pyClassRe.FindAllStringSubmatchIndex(content, -1) {
		syms = append(syms, Symbol{
			Kind: KindClass,
			Name: content[m[2]:m[3]],
			File: relPath,
			Line: lineAt(content, m[0]),
		})
	}
	for _, m := range pyFuncRe.FindAllStringSubmatchIndex(content, -1) {
		syms = append(syms, Symbol{
			Kind: KindFunction,
			Name: content[m[2]:m[3]],
			File: relPath,
			Line: lineAt(content, m[0]),
		})
	}
	for _, m := range pyFlaskRe.FindAllStringSubmatch(content, -1) {
		syms = append(syms, Symbol{Kind: KindAPIEndpoint, Name: m[1], File: relPath})
	}
	for _, m := range pyFastAPIRe.FindAllStringSubmatch(content, -1) {
		syms = append(syms, Symbol{Kind: KindAPIEndpoint, Name: m[1], File: relPath})
	}

	return syms
}

func init() {
	registerStrategy(pythonStrategy{}, ".py")
}
