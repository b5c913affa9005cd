package analyzer

import (
	"math"
	"path"
	"path/filepath"
	"strings"
)

// languageExts maps file extensions to display language names
var languageExts = map[string]string{
	".java": "Java", ".kt": "Kotlin", ".scala": "Scala",
	".py": "Python",
	".js": "JavaScript", ".jsx": "JavaScript", ".ts": "TypeScript", ".tsx": "TypeScript",
	".go": "Go", ".rs": "Rust", ".cpp": "C++", ".c": "C", ".cs": "C#",
	".rb": "Ruby", ".php": "PHP", ".swift": "Swift",
	".html": "HTML", ".css": "CSS", ".scss": "SCSS", ".less": "LESS",
	".sql": "SQL", ".sh": "Shell", ".yaml": "YAML", ".yml": "YAML",
	".json": "JSON", ".xml": "XML", ".proto": "Protobuf",
}

// indicatorSet pairs a detected name with its indicator files. Slices keep
// detection order stable so de-duplicated results are reproducible.
type indicatorSet struct {
	name       string
	indicators []string
}

// frameworkIndicators lists framework indicator files. Entries marked in
// contentChecks are ambiguous and confirmed by a substring check against the
// manifest's content rather than its mere presence.
var frameworkIndicators = []indicatorSet{
	{"Spring Boot", []string{"pom.xml", "build.gradle", "src/main/resources/application.yml", "src/main/resources/application.properties"}},
	{"React", []string{"package.json"}},
	{"Angular", []string{"angular.json"}},
	{"Vue", []string{"vue.config.js"}},
	{"NestJS", []string{"nest-cli.json"}},
	{"FastAPI", []string{"main.py"}},
	{"Django", []string{"manage.py"}},
	{"Flask", []string{"app.py"}},
	{"Next.js", []string{"next.config.js"}},
	{"Nuxt.js", []string{"nuxt.config.js"}},
	{"Svelte", []string{"svelte.config.js"}},
	{"Express", []string{"package.json"}},
	{"Cargo (Rust)", []string{"Cargo.toml"}},
	{"Go Module", []string{"go.mod"}},
	{"Gradle", []string{"build.gradle", "gradlew"}},
	{"Maven", []string{"pom.xml"}},
	{"pip", []string{"requirements.txt", "setup.py", "pyproject.toml"}},
	{"npm", []string{"package.json"}},
	{"yarn", []string{"yarn.lock"}},
	{"pnpm", []string{"pnpm-lock.yaml"}},
}

// contentChecks holds the disambiguation rules: indicator file, framework,
// and the substring its content must contain. An empty substring accepts the
// framework on file presence alone.
var contentChecks = map[string]map[string]string{
	"package.json": {"React": `"react"`, "Express": `"express"`, "npm": ""},
	"main.py":      {"FastAPI": "fastapi"},
	"app.py":       {"Flask": "flask"},
}

var buildToolFiles = []indicatorSet{
	{"Maven", []string{"pom.xml"}},
	{"Gradle", []string{"build.gradle", "gradlew"}},
	{"npm", []string{"package.json"}},
	{"yarn", []string{"yarn.lock"}},
	{"pnpm", []string{"pnpm-lock.yaml"}},
	{"pip", []string{"requirements.txt", "setup.py"}},
	{"poetry", []string{"pyproject.toml"}},
	{"Cargo", []string{"Cargo.toml"}},
	{"Make", []string{"Makefile"}},
	{"Docker", []string{"Dockerfile"}},
	{"docker-compose", []string{"docker-compose.yml", "docker-compose.yaml"}},
}

var archPatterns = []indicatorSet{
	{"Microservices", []string{"docker-compose.yml", "kubernetes", "k8s", "helm"}},
	{"Monorepo", []string{"lerna.json", "nx.json", "turbo.json", "packages/"}},
	{"Micro-frontends", []string{"packages/", "apps/"}},
	{"API Gateway", []string{"gateway", "proxy", "nginx.conf"}},
	{"Event-Driven", []string{"kafka", "rabbitmq", "event", "message-broker"}},
	{"MVC", []string{"controllers/", "models/", "views/"}},
	{"Layered", []string{"service/", "repository/", "domain/"}},
}

var serviceDirSuffixes = []string{"-service", "-api", "-gateway", "service", "microservice"}

var configFileNames = []string{
	"application.yml", "application.yaml", "application.properties",
	"appsettings.json", "appsettings.Development.json",
	".env", ".env.example", ".env.local",
	"config.yml", "config.yaml", "config.json",
	"settings.py",
	"webpack.config.js", "vite.config.js", "vite.config.ts",
	"tsconfig.json", "jest.config.js", "jest.config.ts",
	"Dockerfile", "docker-compose.yml",
}

var testFrameworks = []indicatorSet{
	{"JUnit", []string{"*Test.java", "*Tests.java", "src/test/"}},
	{"pytest", []string{"test_*.py", "*_test.py", "tests/"}},
	{"Jest", []string{"*.test.js", "*.spec.js", "*.test.ts", "*.spec.ts"}},
	{"Cypress", []string{"cypress/"}},
	{"Playwright", []string{"playwright.config.js", "playwright.config.ts"}},
	{"TestNG", []string{"testng.xml"}},
	{"Mocha", []string{"*.spec.js", "test/"}},
	{"RSpec", []string{"*_spec.rb", "spec/"}},
}

var testPathMarkers = []string{"test", "spec", "__tests__"}

// detectLanguages builds the language histogram. Percentages use the number
// of recognized files as denominator, rounded to one decimal.
func detectLanguages(files []FileEntry) map[string]LanguageStat {
	counts := map[string]int{}
	total := 0
	for _, f := range files {
		if lang, ok := languageExts[f.Ext]; ok {
			counts[lang]++
			total++
		}
	}
	if total == 0 {
		total = 1
	}

	stats := make(map[string]LanguageStat, len(counts))
	for lang, cnt := range counts {
		pct := math.Round(float64(cnt)/float64(total)*1000) / 10
		stats[lang] = LanguageStat{Count: cnt, Percent: pct}
	}
	return stats
}

// detectFrameworks returns frameworks in detection order, de-duplicated
func detectFrameworks(root string, files []FileEntry) []string {
	names := map[string]bool{}
	relPaths := map[string]bool{}
	for _, f := range files {
		names[path.Base(f.RelPath)] = true
		relPaths[f.RelPath] = true
	}

	var found []string
	for _, fw := range frameworkIndicators {
		for _, ind := range fw.indicators {
			if !names[ind] && !relPaths[ind] {
				continue
			}
			if checks, ok := contentChecks[ind]; ok {
				if needle, ambiguous := checks[fw.name]; ambiguous {
					content := strings.ToLower(ReadFileCapped(filepath.Join(root, ind), 500_000))
					if content != "" && strings.Contains(content, strings.ToLower(needle)) {
						found = append(found, fw.name)
					}
					break
				}
			}
			found = append(found, fw.name)
			break
		}
	}
	return dedupeOrdered(found)
}

// detectBuildTools tags build tools by direct filename membership
func detectBuildTools(files []FileEntry) []string {
	names := map[string]bool{}
	for _, f := range files {
		names[path.Base(f.RelPath)] = true
	}

	var found []string
	for _, tool := range buildToolFiles {
		for _, ind := range tool.indicators {
			if names[ind] {
				found = append(found, tool.name)
				break
			}
		}
	}
	return dedupeOrdered(found)
}

// detectArchitecture tags coarse architecture patterns from directory names
// and path substrings, with a service-directory count fallback and a final
// "Monolith" tag when nothing matches.
func detectArchitecture(files []FileEntry) []string {
	dirSet := map[string]bool{}
	var lowerPaths []string
	for _, f := range files {
		lowerPaths = append(lowerPaths, strings.ToLower(f.RelPath))
		parts := strings.Split(f.RelPath, "/")
		for _, part := range parts[:len(parts)-1] {
			dirSet[strings.ToLower(part)] = true
		}
	}

	var patterns []string
	for _, ap := range archPatterns {
		for _, sig := range ap.indicators {
			sig = strings.ToLower(strings.TrimRight(sig, "/\\"))
			hit := dirSet[sig]
			if !hit {
				for _, p := range lowerPaths {
					if strings.Contains(p, sig) {
						hit = true
						break
					}
				}
			}
			if hit {
				patterns = append(patterns, ap.name)
				break
			}
		}
	}

	serviceDirs := 0
	for dir := range dirSet {
		for _, suffix := range serviceDirSuffixes {
			if strings.HasSuffix(dir, suffix) {
				serviceDirs++
				break
			}
		}
	}
	if serviceDirs >= 3 && !contains(patterns, "Microservices") {
		patterns = append(patterns, "Microservices")
	}

	if len(patterns) == 0 {
		return []string{"Monolith"}
	}
	return dedupeOrdered(patterns)
}

// detectTests finds test framework signals and counts test-looking files
func detectTests(files []FileEntry) TestInfo {
	names := map[string]bool{}
	dirParts := map[string]bool{}
	for _, f := range files {
		names[path.Base(f.RelPath)] = true
		for _, part := range strings.Split(f.RelPath, "/") {
			dirParts[strings.ToLower(part)] = true
		}
	}

	found := map[string]string{}
	for _, fw := range testFrameworks {
		for _, pat := range fw.indicators {
			if strings.HasSuffix(pat, "/") {
				if dirParts[strings.ToLower(strings.TrimRight(pat, "/"))] {
					found[fw.name] = strings.TrimRight(pat, "/")
					break
				}
				continue
			}
			matched := false
			for name := range names {
				if ok, _ := path.Match(pat, name); ok {
					found[fw.name] = pat
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}

	count := 0
	for _, f := range files {
		rel := strings.ToLower(f.RelPath)
		for _, marker := range testPathMarkers {
			if strings.Contains(rel, marker) {
				count++
				break
			}
		}
	}

	return TestInfo{Frameworks: found, TestFileCount: count}
}

// extractConfigs collects bounded excerpts of well-known configuration files
// and env-variable keys from .env style files.
func extractConfigs(files []FileEntry) Configurations {
	byName := map[string]FileEntry{}
	for _, f := range files {
		byName[path.Base(f.RelPath)] = f
	}

	cfg := Configurations{
		ConfigFiles:  map[string]string{},
		EnvVariables: []string{},
	}

	for _, name := range configFileNames {
		entry, ok := byName[name]
		if !ok {
			continue
		}
		content := ReadFileCapped(entry.Path, 10_000)
		excerpt := content
		if len(excerpt) > 2000 {
			excerpt = excerpt[:2000]
		}
		cfg.ConfigFiles[entry.RelPath] = excerpt

		if strings.HasPrefix(name, ".env") {
			for _, line := range strings.Split(content, "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if key, _, ok := strings.Cut(line, "="); ok {
					cfg.EnvVariables = append(cfg.EnvVariables, strings.TrimSpace(key))
				}
			}
		}
	}

	cfg.EnvVariables = dedupeOrdered(cfg.EnvVariables)
	return cfg
}

// dedupeOrdered removes duplicates preserving first-occurrence order
func dedupeOrdered(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
