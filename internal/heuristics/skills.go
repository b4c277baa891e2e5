package heuristics

import "regexp"

// skillPatterns is a fixed ordered dictionary of canonical skill names and
// the patterns that signal them in a description. Word boundaries keep "R"
// and "Go" from matching inside unrelated words.
var skillPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Python", regexp.MustCompile(`(?i)\bpython\b|\bpandas\b|\bnumpy\b|\bdjango\b|\bflask\b`)},
	{"JavaScript", regexp.MustCompile(`(?i)\bjavascript\b|\bnode\.js\b|\btypescript\b`)},
	{"React", regexp.MustCompile(`(?i)\breact\b|\breact\.js\b|\bnext\.js\b`)},
	{"Java", regexp.MustCompile(`(?i)\bjava\b|\bspring boot\b|\bhibernate\b`)},
	{"Go", regexp.MustCompile(`(?i)\bgolang\b|\bgo\b`)},
	{"Rust", regexp.MustCompile(`(?i)\brust\b`)},
	{"C++", regexp.MustCompile(`(?i)\bc\+\+`)},
	{"C#", regexp.MustCompile(`(?i)\bc#|\.net\b`)},
	{"Ruby", regexp.MustCompile(`(?i)\bruby\b|\brails\b`)},
	{"SQL", regexp.MustCompile(`(?i)\bsql\b|\bmysql\b|\bpostgresql\b|\bpostgres\b`)},
	{"NoSQL", regexp.MustCompile(`(?i)\bnosql\b|\bmongodb\b|\bcassandra\b|\bredis\b|\belasticsearch\b`)},
	{"AWS", regexp.MustCompile(`(?i)\baws\b|\bamazon web services\b|\bec2\b|\blambda\b`)},
	{"Azure", regexp.MustCompile(`(?i)\bazure\b`)},
	{"GCP", regexp.MustCompile(`(?i)\bgcp\b|\bgoogle cloud\b`)},
	{"Docker", regexp.MustCompile(`(?i)\bdocker\b|\bcontainers?\b`)},
	{"Kubernetes", regexp.MustCompile(`(?i)\bkubernetes\b|\bk8s\b`)},
	{"Terraform", regexp.MustCompile(`(?i)\bterraform\b`)},
	{"CI/CD", regexp.MustCompile(`(?i)\bci/cd\b|\bjenkins\b|\bgithub actions\b`)},
	{"Git", regexp.MustCompile(`(?i)\bgit\b|\bgithub\b|\bgitlab\b`)},
	{"Linux", regexp.MustCompile(`(?i)\blinux\b|\bunix\b|\bbash\b`)},
	{"Machine Learning", regexp.MustCompile(`(?i)\bmachine learning\b|\bdeep learning\b|\bnlp\b`)},
	{"TensorFlow", regexp.MustCompile(`(?i)\btensorflow\b`)},
	{"PyTorch", regexp.MustCompile(`(?i)\bpytorch\b`)},
	{"Spark", regexp.MustCompile(`(?i)\bspark\b|\bpyspark\b`)},
	{"Kafka", regexp.MustCompile(`(?i)\bkafka\b`)},
	{"Airflow", regexp.MustCompile(`(?i)\bairflow\b`)},
	{"ETL", regexp.MustCompile(`(?i)\betl\b|\bdata pipeline\b`)},
	{"Tableau", regexp.MustCompile(`(?i)\btableau\b`)},
	{"Power BI", regexp.MustCompile(`(?i)\bpower bi\b`)},
	{"Excel", regexp.MustCompile(`(?i)\bexcel\b|\bvba\b`)},
	{"REST API", regexp.MustCompile(`(?i)\brest\b|\brestful\b`)},
	{"GraphQL", regexp.MustCompile(`(?i)\bgraphql\b`)},
	{"Agile", regexp.MustCompile(`(?i)\bagile\b|\bscrum\b|\bkanban\b`)},
	{"Statistics", regexp.MustCompile(`(?i)\bstatistics\b|\bstatistical\b|\bregression\b`)},
	{"A/B Testing", regexp.MustCompile(`(?i)\ba/b test\w*\b|\bexperimentation\b`)},
}

// Skills returns the canonical names of every recognized skill mentioned in
// the text, in dictionary order. Nil when none match.
func Skills(pageText string) []string {
	var out []string
	for _, sp := range skillPatterns {
		if sp.re.MatchString(pageText) {
			out = append(out, sp.name)
		}
	}
	return out
}
