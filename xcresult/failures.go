package xcresult

import "sort"

var failureStatuses = map[string]bool{
	"Failure": true,
	"Failed":  true,
}

// FailingTests walks the resolved testsRef document and returns the failing
// test names, deduplicated and sorted. The traversal order over a JSON object
// is unspecified, sorting keeps the report deterministic.
func FailingTests(node interface{}) []string {
	failures := map[string]bool{}
	collectFailingTests(node, failures)

	var names []string
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectFailingTests(node interface{}, failures map[string]bool) {
	switch node := node.(type) {
	case map[string]interface{}:
		if failureStatuses[wrappedValue(node, "testStatus")] {
			name := wrappedValue(node, "identifier")
			if name == "" {
				name = wrappedValue(node, "name")
			}
			if name != "" {
				failures[name] = true
			}
		}
		for _, value := range node {
			collectFailingTests(value, failures)
		}
	case []interface{}:
		for _, value := range node {
			collectFailingTests(value, failures)
		}
	}
}

// wrappedValue unwraps the xcresult `{"key": {"_value": "..."}}` string shape.
func wrappedValue(node map[string]interface{}, key string) string {
	wrapper, ok := node[key].(map[string]interface{})
	if !ok {
		return ""
	}
	value, ok := wrapper["_value"].(string)
	if !ok {
		return ""
	}
	return value
}
