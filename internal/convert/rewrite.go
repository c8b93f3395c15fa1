package convert

import "regexp"

// AssetPrefix climbs from papers/<year>/<month>/ back to the docs root.
const AssetPrefix = "../../../"

type rewriteRule struct {
	pattern *regexp.Regexp
	replace string
}

// Each rule matches only an attribute prefix, so prose mentioning ico or fig is untouched
// and already rewritten prefixes never match again.
var assetRules = []rewriteRule{
	{regexp.MustCompile(`srcset="ico/(dm|wm)/`), `srcset="` + AssetPrefix + `ico/${1}/`},
	{regexp.MustCompile(`src="ico/(dm|wm)/`), `src="` + AssetPrefix + `ico/${1}/`},
	{regexp.MustCompile(`src="fig\\`), `src="` + AssetPrefix + `fig/`},
	{regexp.MustCompile(`src="fig/`), `src="` + AssetPrefix + `fig/`},
}

// RewriteAssetPaths points icon and figure references at the shared asset folders.
func RewriteAssetPaths(entry string) string {
	for _, rule := range assetRules {
		entry = rule.pattern.ReplaceAllString(entry, rule.replace)
	}
	return entry
}
